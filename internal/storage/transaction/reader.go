package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/cashbox-server/internal/apperr"
)

const tableName = "transactions"

var columns = []any{"id", "patient", "specialist", "amount", "payment_method", "comment", "created_at"}

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return r.findByID(ctx, id, false)
}

func (r *Reader) findByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("transaction %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("transaction.FindByID: %w", err)
	}
	return &row, nil
}

// detailRow is one row of the transaction-to-services left join. The service
// columns are null when the transaction has no links.
type detailRow struct {
	ID            uuid.UUID           `db:"id"`
	Patient       string              `db:"patient"`
	Specialist    string              `db:"specialist"`
	Amount        decimal.Decimal     `db:"amount"`
	PaymentMethod string              `db:"payment_method"`
	Comment       string              `db:"comment"`
	CreatedAt     time.Time           `db:"created_at"`
	ServiceID     uuid.NullUUID       `db:"service_id"`
	ServiceTitle  sql.NullString      `db:"service_title"`
	ServicePrice  decimal.NullDecimal `db:"service_price"`
}

// FindWithServices reads a transaction and its linked services, ordered by title,
// in one statement so both come from the same snapshot.
func (r *Reader) FindWithServices(ctx context.Context, id uuid.UUID) (*Transaction, []LinkedService, error) {
	query := psql.Select(
		sm.Columns(
			"t.id", "t.patient", "t.specialist", "t.amount", "t.payment_method", "t.comment", "t.created_at",
			psql.Quote("s", "id").As("service_id"),
			psql.Quote("s", "title").As("service_title"),
			psql.Quote("s", "price").As("service_price"),
		),
		sm.From(tableName).As("t"),
		sm.LeftJoin(linkTableName).As("ts").On(psql.Quote("ts", "transaction_id").EQ(psql.Quote("t", "id"))),
		sm.LeftJoin("services").As("s").On(psql.Quote("s", "id").EQ(psql.Quote("ts", "service_id"))),
		sm.Where(psql.Quote("t", "id").EQ(psql.Arg(id))),
		sm.OrderBy(psql.Quote("s", "title")).Asc(),
		sm.OrderBy(psql.Quote("s", "id")).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[detailRow]())
	if err != nil {
		return nil, nil, fmt.Errorf("transaction.FindWithServices: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, apperr.NotFound("transaction %s not found", id)
	}

	first := rows[0]
	tx := &Transaction{
		ID:            first.ID,
		Patient:       first.Patient,
		Specialist:    first.Specialist,
		Amount:        first.Amount,
		PaymentMethod: first.PaymentMethod,
		Comment:       first.Comment,
		CreatedAt:     first.CreatedAt,
	}
	services := make([]LinkedService, 0, len(rows))
	for _, row := range rows {
		if !row.ServiceID.Valid {
			continue
		}
		services = append(services, LinkedService{
			ID:    row.ServiceID.UUID,
			Title: row.ServiceTitle.String,
			Price: row.ServicePrice.Decimal,
		})
	}
	return tx, services, nil
}

// List returns transactions newest first, ties broken by id descending. Nil filter returns all.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
	}
	if filter != nil {
		if filter.After != nil {
			queryMods = append(queryMods, sm.Where(
				psql.Raw("(created_at, id) < (?, ?)", filter.After.CreatedAt, filter.After.ID),
			))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, fmt.Errorf("transaction.List: %w", err)
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// ReportRows joins transactions to their linked services inside the filter window.
// A transaction linked to n services yields n rows, each carrying the full amount.
func (r *Reader) ReportRows(ctx context.Context, filter ReportFilter) ([]ReportRow, error) {
	query := psql.Select(
		sm.Columns(
			"t.created_at",
			psql.Quote("s", "id").As("service_id"),
			psql.Quote("s", "title").As("service_title"),
			"t.payment_method",
			"t.amount",
		),
		sm.From(tableName).As("t"),
		sm.InnerJoin(linkTableName).As("ts").On(psql.Quote("ts", "transaction_id").EQ(psql.Quote("t", "id"))),
		sm.InnerJoin("services").As("s").On(psql.Quote("s", "id").EQ(psql.Quote("ts", "service_id"))),
		sm.Where(psql.Quote("t", "created_at").GTE(psql.Arg(filter.From))),
		sm.Where(psql.Quote("t", "created_at").LTE(psql.Arg(filter.To))),
		sm.OrderBy(psql.Quote("t", "created_at")).Desc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[ReportRow]())
	if err != nil {
		return nil, fmt.Errorf("transaction.ReportRows: %w", err)
	}
	return rows, nil
}
