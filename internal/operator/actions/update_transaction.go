package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbox-server/internal/storage"
	"github.com/carson-networks/cashbox-server/internal/storage/transaction"
)

// UpdateTransaction changes the set scalar fields and replaces the whole service link set.
type UpdateTransaction struct {
	ID         uuid.UUID
	Update     transaction.TransactionUpdate
	ServiceIDs []uuid.UUID
	IAction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Transactions.FindByIDForUpdate(ctx, u.ID); err != nil {
		return err
	}

	if err := writer.Transactions.Update(ctx, u.ID, &u.Update); err != nil {
		return err
	}

	if err := writer.Transactions.DeleteLinks(ctx, []uuid.UUID{u.ID}); err != nil {
		return err
	}

	return replaceServiceLinks(ctx, writer, u.ID, u.ServiceIDs)
}
