package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbox-server/internal/storage"
	"github.com/carson-networks/cashbox-server/internal/storage/transaction"
)

type CreateTransaction struct {
	Patient       string
	Specialist    string
	Amount        decimal.Decimal
	PaymentMethod string
	Comment       string
	ServiceIDs    []uuid.UUID
	CreatedAt     time.Time

	// CreatedID is set once Perform succeeds.
	CreatedID uuid.UUID
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	storageCreate := &transaction.TransactionCreate{
		Patient:       t.Patient,
		Specialist:    t.Specialist,
		Amount:        t.Amount,
		PaymentMethod: t.PaymentMethod,
		Comment:       t.Comment,
		CreatedAt:     t.CreatedAt,
	}
	id, err := writer.Transactions.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	if err := replaceServiceLinks(ctx, writer, id, t.ServiceIDs); err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
