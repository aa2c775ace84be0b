// Package catalog reads the clinic's service catalog. Service CRUD lives elsewhere.
package catalog

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/cashbox-server/internal/storage/pgsql"
)

// Service is a billable clinic service.
type Service struct {
	ID          uuid.UUID       `db:"id"`
	Title       string          `db:"title"`
	Price       decimal.Decimal `db:"price"`
	IsAvailable bool            `db:"is_available"`
}

type IReader interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Service, error)
}

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByIDs returns the services whose id is in ids. Unknown ids are silently absent.
func (r *Reader) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := psql.Select(
		sm.Columns("id", "title", "price", "is_available"),
		sm.From("services"),
		sm.Where(psql.Quote("id").EQ(pgsql.AnyUUID(ids))),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Service]())
	if err != nil {
		return nil, fmt.Errorf("catalog.FindByIDs: %w", err)
	}
	result := make([]*Service, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Missing returns the ids in want that are absent from found, in want order.
func Missing(want []uuid.UUID, found []*Service) []uuid.UUID {
	present := make(map[uuid.UUID]struct{}, len(found))
	for _, s := range found {
		present[s.ID] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
