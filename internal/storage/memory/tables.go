package memory

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbox-server/internal/apperr"
	"github.com/carson-networks/cashbox-server/internal/storage"
	"github.com/carson-networks/cashbox-server/internal/storage/appointment"
	"github.com/carson-networks/cashbox-server/internal/storage/catalog"
	"github.com/carson-networks/cashbox-server/internal/storage/expense"
	"github.com/carson-networks/cashbox-server/internal/storage/transaction"
)

var errSessionDone = errors.New("memory: session already finished")

type viewFunc func(fn func(*state))

func newReader(view viewFunc) *storage.Reader {
	return &storage.Reader{
		Transactions: txReader{view: view},
		Services:     serviceReader{view: view},
		Expenses:     expenseReader{view: view},
		Appointments: appointmentReader{view: view},
	}
}

type txReader struct {
	view viewFunc
}

func (r txReader) FindByID(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	var (
		row transaction.Transaction
		ok  bool
	)
	r.view(func(st *state) { row, ok = st.transactions[id] })
	if !ok {
		return nil, apperr.NotFound("transaction %s not found", id)
	}
	return &row, nil
}

func (r txReader) FindWithServices(_ context.Context, id uuid.UUID) (*transaction.Transaction, []transaction.LinkedService, error) {
	var (
		row      transaction.Transaction
		ok       bool
		services []transaction.LinkedService
	)
	r.view(func(st *state) {
		row, ok = st.transactions[id]
		for _, serviceID := range st.links[id] {
			s := st.services[serviceID]
			services = append(services, transaction.LinkedService{ID: s.ID, Title: s.Title, Price: s.Price})
		}
	})
	if !ok {
		return nil, nil, apperr.NotFound("transaction %s not found", id)
	}
	sort.Slice(services, func(i, j int) bool {
		if services[i].Title != services[j].Title {
			return services[i].Title < services[j].Title
		}
		return bytes.Compare(services[i].ID.Bytes(), services[j].ID.Bytes()) < 0
	})
	return &row, services, nil
}

func (r txReader) List(_ context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	var rows []*transaction.Transaction
	r.view(func(st *state) {
		for _, t := range st.transactions {
			if filter != nil && filter.After != nil && !comesAfter(t, filter.After) {
				continue
			}
			row := t
			rows = append(rows, &row)
		}
	})
	sortTransactions(rows)

	if filter != nil && filter.Limit > 0 && len(rows) > filter.Limit+1 {
		rows = rows[:filter.Limit+1]
	}
	return rows, nil
}

// comesAfter reports whether t is listed after pos, matching
// `(created_at, id) < (pos.created_at, pos.id)`.
func comesAfter(t transaction.Transaction, pos *transaction.Position) bool {
	if !t.CreatedAt.Equal(pos.CreatedAt) {
		return t.CreatedAt.Before(pos.CreatedAt)
	}
	return bytes.Compare(t.ID.Bytes(), pos.ID.Bytes()) < 0
}

func (r txReader) ReportRows(_ context.Context, filter transaction.ReportFilter) ([]transaction.ReportRow, error) {
	var rows []transaction.ReportRow
	r.view(func(st *state) {
		for id, t := range st.transactions {
			if !inWindow(t.CreatedAt, &filter.From, &filter.To) {
				continue
			}
			for _, serviceID := range st.links[id] {
				s := st.services[serviceID]
				rows = append(rows, transaction.ReportRow{
					CreatedAt:     t.CreatedAt,
					ServiceID:     s.ID,
					ServiceTitle:  s.Title,
					PaymentMethod: t.PaymentMethod,
					Amount:        t.Amount,
				})
			}
		}
	})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return rows, nil
}

type txWriter struct {
	txReader
	sess *session
}

func (w *txWriter) check(op string) error {
	if w.sess.done {
		return errSessionDone
	}
	return w.sess.store.failure(op)
}

func (w *txWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	if w.sess.done {
		return nil, errSessionDone
	}
	return w.FindByID(ctx, id)
}

func (w *txWriter) Insert(_ context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	if err := w.check("Insert"); err != nil {
		return uuid.Nil, err
	}
	if create.Amount.IsNegative() {
		return uuid.Nil, errors.New("memory: amount violates check constraint")
	}

	createdAt := create.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	// timestamptz keeps microseconds
	createdAt = createdAt.Round(0).Truncate(time.Microsecond)
	id := uuid.Must(uuid.NewV4())
	w.sess.working.transactions[id] = transaction.Transaction{
		ID:            id,
		Patient:       create.Patient,
		Specialist:    create.Specialist,
		Amount:        create.Amount,
		PaymentMethod: create.PaymentMethod,
		Comment:       create.Comment,
		CreatedAt:     createdAt,
	}
	return id, nil
}

func (w *txWriter) Update(_ context.Context, id uuid.UUID, update *transaction.TransactionUpdate) error {
	if err := w.check("Update"); err != nil {
		return err
	}
	row, ok := w.sess.working.transactions[id]
	if !ok || update.IsEmpty() {
		return nil
	}
	if v, ok := update.Amount.Get(); ok {
		row.Amount = v
	}
	if v, ok := update.PaymentMethod.Get(); ok {
		row.PaymentMethod = v
	}
	if v, ok := update.Comment.Get(); ok {
		row.Comment = v
	}
	w.sess.working.transactions[id] = row
	return nil
}

func (w *txWriter) InsertLinks(_ context.Context, id uuid.UUID, serviceIDs []uuid.UUID) error {
	if err := w.check("InsertLinks"); err != nil {
		return err
	}
	st := w.sess.working
	if _, ok := st.transactions[id]; !ok {
		return errors.New("memory: link references missing transaction")
	}
	existing := make(map[uuid.UUID]struct{}, len(st.links[id]))
	for _, serviceID := range st.links[id] {
		existing[serviceID] = struct{}{}
	}
	for _, serviceID := range serviceIDs {
		if _, ok := st.services[serviceID]; !ok {
			return apperr.Validation("unknown service in %v", serviceIDs)
		}
		if _, ok := existing[serviceID]; ok {
			return errors.New("memory: duplicate transaction service link")
		}
		existing[serviceID] = struct{}{}
	}
	st.links[id] = append(st.links[id], serviceIDs...)
	return nil
}

func (w *txWriter) DeleteLinks(_ context.Context, ids []uuid.UUID) error {
	if err := w.check("DeleteLinks"); err != nil {
		return err
	}
	for _, id := range ids {
		delete(w.sess.working.links, id)
	}
	return nil
}

func (w *txWriter) Delete(_ context.Context, ids []uuid.UUID) (int64, error) {
	if err := w.check("Delete"); err != nil {
		return 0, err
	}
	var affected int64
	for _, id := range ids {
		if _, ok := w.sess.working.transactions[id]; !ok {
			continue
		}
		delete(w.sess.working.transactions, id)
		delete(w.sess.working.links, id)
		affected++
	}
	return affected, nil
}

type serviceReader struct {
	view viewFunc
}

func (r serviceReader) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*catalog.Service, error) {
	var result []*catalog.Service
	r.view(func(st *state) {
		for _, id := range ids {
			if s, ok := st.services[id]; ok {
				row := s
				result = append(result, &row)
			}
		}
	})
	return result, nil
}

type expenseReader struct {
	view viewFunc
}

func (r expenseReader) List(_ context.Context, filter *expense.Filter) ([]*expense.Expense, error) {
	var result []*expense.Expense
	r.view(func(st *state) {
		for _, e := range st.expenses {
			if filter != nil && !inWindow(e.CreatedAt, filter.From, filter.To) {
				continue
			}
			row := e
			result = append(result, &row)
		}
	})
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type appointmentReader struct {
	view viewFunc
}

func (r appointmentReader) List(_ context.Context, filter *appointment.Filter) ([]*appointment.Appointment, error) {
	var result []*appointment.Appointment
	r.view(func(st *state) {
		for _, a := range st.appointments {
			if filter != nil && !inWindow(a.AppointmentDateTime, filter.From, filter.To) {
				continue
			}
			row := a
			result = append(result, &row)
		}
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AppointmentDateTime.After(result[j].AppointmentDateTime)
	})
	return result, nil
}
