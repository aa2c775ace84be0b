package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/cashbox-server/internal/apperr"
	"github.com/carson-networks/cashbox-server/internal/storage/pgsql"
)

const linkTableName = "transaction_services"

var _ IWriter = (*Writer)(nil)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate reads the row and holds its lock until the session ends.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return w.findByID(ctx, id, true)
}

// Insert creates a new transaction row and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	createdAt := create.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := psql.Insert(
		im.Into(tableName, "patient", "specialist", "amount", "payment_method", "comment", "created_at"),
		im.Values(
			psql.Arg(create.Patient),
			psql.Arg(create.Specialist),
			psql.Arg(create.Amount),
			psql.Arg(create.PaymentMethod),
			psql.Arg(create.Comment),
			psql.Arg(createdAt),
		),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, fmt.Errorf("transaction.Insert: %w", err)
	}
	return id, nil
}

// Update sets only the columns present in update.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(tableName),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.PaymentMethod.Get(); ok {
		queryMods = append(queryMods, um.SetCol("payment_method").ToArg(v))
	}
	if v, ok := update.Comment.Get(); ok {
		queryMods = append(queryMods, um.SetCol("comment").ToArg(v))
	}

	if _, err := bob.Exec(ctx, w.tx, psql.Update(queryMods...)); err != nil {
		return fmt.Errorf("transaction.Update: %w", err)
	}
	return nil
}

// InsertLinks attaches every service in serviceIDs to the transaction.
func (w *Writer) InsertLinks(ctx context.Context, id uuid.UUID, serviceIDs []uuid.UUID) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into(linkTableName, "transaction_id", "service_id"),
	}
	for _, serviceID := range serviceIDs {
		queryMods = append(queryMods, im.Values(psql.Arg(id), psql.Arg(serviceID)))
	}

	_, err := bob.Exec(ctx, w.tx, psql.Insert(queryMods...))
	if pgsql.IsForeignKeyViolation(err) {
		return apperr.Validation("unknown service in %v", serviceIDs)
	}
	if err != nil {
		return fmt.Errorf("transaction.InsertLinks: %w", err)
	}
	return nil
}

// DeleteLinks removes every service link of the given transactions.
func (w *Writer) DeleteLinks(ctx context.Context, ids []uuid.UUID) error {
	query := psql.Delete(
		dm.From(linkTableName),
		dm.Where(psql.Quote("transaction_id").EQ(pgsql.AnyUUID(ids))),
	)
	if _, err := bob.Exec(ctx, w.tx, query); err != nil {
		return fmt.Errorf("transaction.DeleteLinks: %w", err)
	}
	return nil
}

// Delete removes the transaction rows and returns how many existed.
func (w *Writer) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	query := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(pgsql.AnyUUID(ids))),
	)
	res, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return 0, fmt.Errorf("transaction.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("transaction.Delete.RowsAffected: %w", err)
	}
	return affected, nil
}
