// Package memory is an in-process store with the same reader and writer
// interfaces as the Postgres storage. Sessions are serialized: Write waits for the
// previous session to finish, works on a private copy of the data, and Commit
// publishes that copy.
package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbox-server/internal/storage"
	"github.com/carson-networks/cashbox-server/internal/storage/appointment"
	"github.com/carson-networks/cashbox-server/internal/storage/catalog"
	"github.com/carson-networks/cashbox-server/internal/storage/expense"
	"github.com/carson-networks/cashbox-server/internal/storage/transaction"
)

type state struct {
	transactions map[uuid.UUID]transaction.Transaction
	links        map[uuid.UUID][]uuid.UUID
	services     map[uuid.UUID]catalog.Service
	expenses     []expense.Expense
	appointments []appointment.Appointment
}

func newState() *state {
	return &state{
		transactions: make(map[uuid.UUID]transaction.Transaction),
		links:        make(map[uuid.UUID][]uuid.UUID),
		services:     make(map[uuid.UUID]catalog.Service),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	for k, v := range s.links {
		c.links[k] = append([]uuid.UUID(nil), v...)
	}
	for k, v := range s.services {
		c.services[k] = v
	}
	// expenses and appointments are never written inside a session
	c.expenses = s.expenses
	c.appointments = s.appointments
	return c
}

// Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	current *state
	failOn  map[string]error

	session chan struct{}
	reader  *storage.Reader
}

var _ storage.Transactor = (*Store)(nil)

func New() *Store {
	s := &Store{
		current: newState(),
		failOn:  make(map[string]error),
		session: make(chan struct{}, 1),
	}
	s.reader = newReader(s.view)
	return s
}

func (s *Store) view(fn func(*state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.current)
}

// Reader reads committed data only.
func (s *Store) Reader() *storage.Reader {
	return s.reader
}

// Write opens a session. It blocks until any other open session ends or ctx is done.
func (s *Store) Write(ctx context.Context) (*storage.Writer, error) {
	select {
	case s.session <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.RLock()
	sess := &session{store: s, working: s.current.clone()}
	s.mu.RUnlock()

	view := func(fn func(*state)) { fn(sess.working) }
	return storage.NewWriterWith(sess, &txWriter{txReader: txReader{view: view}, sess: sess}, serviceReader{view: view}), nil
}

// FailOn makes the named writer step ("Insert", "Update", "InsertLinks",
// "DeleteLinks", "Delete", "Commit") return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failOn, op)
		return
	}
	s.failOn[op] = err
}

func (s *Store) failure(op string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failOn[op]
}

// AddService seeds a catalog service and returns its id.
func (s *Store) AddService(title string, price decimal.Decimal) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.services[id] = catalog.Service{ID: id, Title: title, Price: price, IsAvailable: true}
	return id
}

// AddExpense seeds an expense row.
func (s *Store) AddExpense(e expense.Expense) {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV4())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.expenses = append(append([]expense.Expense(nil), s.current.expenses...), e)
}

// AddAppointment seeds an appointment row.
func (s *Store) AddAppointment(a appointment.Appointment) {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV4())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.appointments = append(append([]appointment.Appointment(nil), s.current.appointments...), a)
}

// Counts reports the committed number of transactions and links.
func (s *Store) Counts() (transactions int, links int) {
	s.view(func(st *state) {
		transactions = len(st.transactions)
		for _, l := range st.links {
			links += len(l)
		}
	})
	return transactions, links
}

type session struct {
	store   *Store
	working *state
	done    bool
}

func (t *session) Commit(context.Context) error {
	if t.done {
		return errSessionDone
	}
	t.done = true
	defer func() { <-t.store.session }()

	if err := t.store.failure("Commit"); err != nil {
		return err
	}
	t.store.mu.Lock()
	t.store.current = t.working
	t.store.mu.Unlock()
	return nil
}

func (t *session) Rollback(context.Context) error {
	if t.done {
		return errSessionDone
	}
	t.done = true
	t.working = nil
	<-t.store.session
	return nil
}

func sortTransactions(rows []*transaction.Transaction) {
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return bytes.Compare(rows[i].ID.Bytes(), rows[j].ID.Bytes()) > 0
	})
}

func inWindow(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
