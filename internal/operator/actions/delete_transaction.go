package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbox-server/internal/apperr"
	"github.com/carson-networks/cashbox-server/internal/storage"
)

type DeleteTransaction struct {
	IDs []uuid.UUID

	// Deleted is the number of transaction rows removed.
	Deleted int64
	IAction
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Transactions.DeleteLinks(ctx, d.IDs); err != nil {
		return err
	}

	deleted, err := writer.Transactions.Delete(ctx, d.IDs)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperr.NotFound("transaction %v not found", d.IDs)
	}

	d.Deleted = deleted
	return nil
}
