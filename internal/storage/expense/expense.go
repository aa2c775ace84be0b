// Package expense reads clinic expenses for reporting.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Expense struct {
	ID          uuid.UUID       `db:"id"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Filter narrows by creation time. Nil bounds are open.
type Filter struct {
	From *time.Time
	To   *time.Time
}

// IReader lists rows for reporting.
//
//go:generate mockery --name IReader --inpackage --with-expecter --filename mock_IReader.go
type IReader interface {
	List(ctx context.Context, filter *Filter) ([]*Expense, error)
}

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) List(ctx context.Context, filter *Filter) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("id", "category", "amount", "description", "created_at"),
		sm.From("expenses"),
	}
	if filter != nil {
		if filter.From != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").GTE(psql.Arg(*filter.From))))
		}
		if filter.To != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.To))))
		}
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("created_at")).Desc())

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Expense]())
	if err != nil {
		return nil, fmt.Errorf("expense.List: %w", err)
	}
	result := make([]*Expense, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
