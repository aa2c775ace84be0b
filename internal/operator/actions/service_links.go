package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbox-server/internal/apperr"
	"github.com/carson-networks/cashbox-server/internal/storage"
	"github.com/carson-networks/cashbox-server/internal/storage/catalog"
)

// replaceServiceLinks verifies every service exists and links it to the transaction.
func replaceServiceLinks(ctx context.Context, writer *storage.Writer, id uuid.UUID, serviceIDs []uuid.UUID) error {
	if len(serviceIDs) == 0 {
		return apperr.Validation("at least one service is required")
	}

	found, err := writer.Services.FindByIDs(ctx, serviceIDs)
	if err != nil {
		return err
	}
	if missing := catalog.Missing(serviceIDs, found); len(missing) > 0 {
		return apperr.Validation("unknown services %v", missing)
	}

	return writer.Transactions.InsertLinks(ctx, id, serviceIDs)
}
