// Package appointment reads scheduled visits for reporting.
package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Appointment struct {
	ID                  uuid.UUID `db:"id"`
	Patient             string    `db:"patient"`
	Specialist          string    `db:"specialist"`
	Service             string    `db:"service"`
	AppointmentDateTime time.Time `db:"appointment_date_time"`
	Status              string    `db:"status"`
	Comment             string    `db:"comment"`
	PaymentType         string    `db:"payment_type"`
}

// Filter narrows by appointment time. Nil bounds are open.
type Filter struct {
	From *time.Time
	To   *time.Time
}

// IReader lists rows for reporting.
//
//go:generate mockery --name IReader --inpackage --with-expecter --filename mock_IReader.go
type IReader interface {
	List(ctx context.Context, filter *Filter) ([]*Appointment, error)
}

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) List(ctx context.Context, filter *Filter) ([]*Appointment, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("id", "patient", "specialist", "service", "appointment_date_time", "status", "comment", "payment_type"),
		sm.From("appointments"),
	}
	if filter != nil {
		if filter.From != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("appointment_date_time").GTE(psql.Arg(*filter.From))))
		}
		if filter.To != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("appointment_date_time").LTE(psql.Arg(*filter.To))))
		}
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("appointment_date_time")).Desc())

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Appointment]())
	if err != nil {
		return nil, fmt.Errorf("appointment.List: %w", err)
	}
	result := make([]*Appointment, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
