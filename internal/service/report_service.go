package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbox-server/internal/apperr"
	"github.com/carson-networks/cashbox-server/internal/period"
	"github.com/carson-networks/cashbox-server/internal/report"
	"github.com/carson-networks/cashbox-server/internal/storage"
	"github.com/carson-networks/cashbox-server/internal/storage/appointment"
	"github.com/carson-networks/cashbox-server/internal/storage/expense"
	"github.com/carson-networks/cashbox-server/internal/storage/transaction"
)

// cashboxDefaultDays is the trailing window used when a cashbox report has no range.
const cashboxDefaultDays = 30

// ReportService turns expense, appointment and cashbox rows into period buckets.
// Every method validates its period and dates before touching storage.
type ReportService struct {
	reader   *storage.Reader
	location *time.Location
	now      func() time.Time
}

// NewReportService creates a ReportService cutting buckets in loc.
func NewReportService(reader *storage.Reader, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportService{reader: reader, location: loc, now: time.Now}
}

// ExpensesByPeriod groups expenses by category, then by period bucket.
func (s *ReportService) ExpensesByPeriod(ctx context.Context, periodToken, start, end string) ([]report.Series, error) {
	p, err := period.Parse(periodToken)
	if err != nil {
		return nil, err
	}
	rng, err := report.ParseOptionalDateRange(start, end, s.location)
	if err != nil {
		return nil, err
	}

	rows, err := s.expenseRows(ctx, rng)
	if err != nil {
		return nil, apperr.Store("ReportService.ExpensesByPeriod", err)
	}
	return report.Grouped(rows, s.options(p, rng)), nil
}

// ExpenseSummaryByPeriod returns one bucket per period with per-category sub-totals.
func (s *ReportService) ExpenseSummaryByPeriod(ctx context.Context, periodToken, start, end string) ([]report.Bucket, error) {
	p, err := period.Parse(periodToken)
	if err != nil {
		return nil, err
	}
	rng, err := report.ParseOptionalDateRange(start, end, s.location)
	if err != nil {
		return nil, err
	}

	rows, err := s.expenseRows(ctx, rng)
	if err != nil {
		return nil, apperr.Store("ReportService.ExpenseSummaryByPeriod", err)
	}
	return report.Flat(rows, s.options(p, rng)), nil
}

// ExpensesByDateRange returns one bucket per day in [start, end] with per-category sub-totals.
func (s *ReportService) ExpensesByDateRange(ctx context.Context, start, end string) ([]report.Bucket, error) {
	rng, err := report.ParseDateRange(start, end, s.location)
	if err != nil {
		return nil, err
	}

	rows, err := s.expenseRows(ctx, &rng)
	if err != nil {
		return nil, apperr.Store("ReportService.ExpensesByDateRange", err)
	}
	return report.Flat(rows, s.options(period.Daily, &rng)), nil
}

// AppointmentsByPeriod counts visits per service and period, with per-status sub-counts.
func (s *ReportService) AppointmentsByPeriod(ctx context.Context, periodToken string) ([]report.Series, error) {
	p, err := period.Parse(periodToken)
	if err != nil {
		return nil, err
	}

	rows, err := s.appointmentRows(ctx, nil, func(a *appointment.Appointment) string { return a.Status })
	if err != nil {
		return nil, apperr.Store("ReportService.AppointmentsByPeriod", err)
	}
	return report.Grouped(rows, s.options(p, nil)), nil
}

// AppointmentsByDateRange counts visits per day in [start, end] with per-service sub-counts.
func (s *ReportService) AppointmentsByDateRange(ctx context.Context, start, end string) ([]report.Bucket, error) {
	rng, err := report.ParseDateRange(start, end, s.location)
	if err != nil {
		return nil, err
	}

	rows, err := s.appointmentRows(ctx, &rng, func(a *appointment.Appointment) string { return a.Service })
	if err != nil {
		return nil, apperr.Store("ReportService.AppointmentsByDateRange", err)
	}
	return report.Flat(rows, s.options(period.Daily, &rng)), nil
}

// CashboxByPeriod sums transaction amounts per linked service and period. Without a
// range it covers the trailing 30 days ending today.
func (s *ReportService) CashboxByPeriod(ctx context.Context, start, end, periodToken string) ([]report.Series, error) {
	p, err := period.Parse(periodToken)
	if err != nil {
		return nil, err
	}
	rng, err := report.ParseOptionalDateRange(start, end, s.location)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		trailing := report.TrailingDays(s.now(), cashboxDefaultDays, s.location)
		rng = &trailing
	}

	return s.cashbox(ctx, "ReportService.CashboxByPeriod", p, *rng)
}

// CashboxByDateRange is CashboxByPeriod with daily buckets and a required range.
func (s *ReportService) CashboxByDateRange(ctx context.Context, start, end string) ([]report.Series, error) {
	rng, err := report.ParseDateRange(start, end, s.location)
	if err != nil {
		return nil, err
	}

	return s.cashbox(ctx, "ReportService.CashboxByDateRange", period.Daily, rng)
}

func (s *ReportService) cashbox(ctx context.Context, op string, p period.Period, rng report.DateRange) ([]report.Series, error) {
	stored, err := s.reader.Transactions.ReportRows(ctx, transaction.ReportFilter{From: rng.Start, To: rng.End})
	if err != nil {
		return nil, apperr.Store(op, err)
	}

	rows := make([]report.Row, len(stored))
	for i, r := range stored {
		rows[i] = report.Row{
			At:         r.CreatedAt,
			GroupKey:   r.ServiceID.String(),
			GroupLabel: r.ServiceTitle,
			SubKey:     r.PaymentMethod,
			Value:      r.Amount,
		}
	}
	return report.Grouped(rows, s.options(p, &rng)), nil
}

func (s *ReportService) expenseRows(ctx context.Context, rng *report.DateRange) ([]report.Row, error) {
	stored, err := s.reader.Expenses.List(ctx, expenseFilter(rng))
	if err != nil {
		return nil, err
	}

	rows := make([]report.Row, len(stored))
	for i, e := range stored {
		rows[i] = report.Row{
			At:         e.CreatedAt,
			GroupKey:   e.Category,
			GroupLabel: e.Category,
			SubKey:     e.Category,
			Value:      e.Amount,
		}
	}
	return rows, nil
}

func (s *ReportService) appointmentRows(ctx context.Context, rng *report.DateRange, subKey func(*appointment.Appointment) string) ([]report.Row, error) {
	filter := &appointment.Filter{}
	if rng != nil {
		filter.From, filter.To = &rng.Start, &rng.End
	}
	stored, err := s.reader.Appointments.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]report.Row, len(stored))
	for i, a := range stored {
		rows[i] = report.Row{
			At:         a.AppointmentDateTime,
			GroupKey:   a.Service,
			GroupLabel: a.Service,
			SubKey:     subKey(a),
			Value:      visit,
		}
	}
	return rows, nil
}

func (s *ReportService) options(p period.Period, rng *report.DateRange) report.Options {
	return report.Options{Period: p, Location: s.location, Range: rng}
}

func expenseFilter(rng *report.DateRange) *expense.Filter {
	if rng == nil {
		return nil
	}
	return &expense.Filter{From: &rng.Start, To: &rng.End}
}

var visit = decimal.NewFromInt(1)
