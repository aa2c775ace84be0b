package storage

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/cashbox-server/internal/apperr"
	"github.com/carson-networks/cashbox-server/internal/storage/expense"
	"github.com/carson-networks/cashbox-server/internal/storage/transaction"
)

// newPostgresStorage starts a throwaway Postgres, migrates it and opens a Storage on it.
func newPostgresStorage(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests skipped in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("cashbox"),
		postgres.WithUsername("cashbox"),
		postgres.WithPassword("cashbox"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	require.NoError(t, RunMigrations(url, logger))

	s, err := Open(url, 4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Ping(ctx))
	return s
}

func insertService(t *testing.T, s *Storage, title, price string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := s.db.QueryRowContext(context.Background(),
		"INSERT INTO services (title, price) VALUES ($1, $2) RETURNING id", title, price).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestPostgres_TransactionLifecycle(t *testing.T) {
	s := newPostgresStorage(t)
	ctx := context.Background()
	consultation := insertService(t, s, "Consultation", "100.00")
	cleaning := insertService(t, s, "Cleaning", "40.00")
	createdAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	var id uuid.UUID
	err := WithTx(ctx, s, func(w *Writer) error {
		var err error
		id, err = w.Transactions.Insert(ctx, &transaction.TransactionCreate{
			Patient:       "patient-1",
			Specialist:    "specialist-1",
			Amount:        decimal.RequireFromString("140.00"),
			PaymentMethod: "cash",
			CreatedAt:     createdAt,
		})
		if err != nil {
			return err
		}
		return w.Transactions.InsertLinks(ctx, id, []uuid.UUID{consultation, cleaning})
	})
	require.NoError(t, err)

	got, services, err := s.Reader().Transactions.FindWithServices(ctx, id)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("140").Equal(got.Amount))
	assert.Equal(t, "cash", got.PaymentMethod)
	require.Len(t, services, 2)
	assert.Equal(t, "Cleaning", services[0].Title)
	assert.Equal(t, "Consultation", services[1].Title)

	rows, err := s.Reader().Transactions.ReportRows(ctx, transaction.ReportFilter{
		From: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	err = WithTx(ctx, s, func(w *Writer) error {
		if _, err := w.Transactions.FindByIDForUpdate(ctx, id); err != nil {
			return err
		}
		if err := w.Transactions.Update(ctx, id, &transaction.TransactionUpdate{Comment: omit.From("paid twice")}); err != nil {
			return err
		}
		if err := w.Transactions.DeleteLinks(ctx, []uuid.UUID{id}); err != nil {
			return err
		}
		return w.Transactions.InsertLinks(ctx, id, []uuid.UUID{cleaning})
	})
	require.NoError(t, err)

	got, services, err = s.Reader().Transactions.FindWithServices(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "paid twice", got.Comment)
	assert.Equal(t, "cash", got.PaymentMethod)
	require.Len(t, services, 1)
	assert.Equal(t, cleaning, services[0].ID)

	var deleted int64
	err = WithTx(ctx, s, func(w *Writer) error {
		if err := w.Transactions.DeleteLinks(ctx, []uuid.UUID{id}); err != nil {
			return err
		}
		var err error
		deleted, err = w.Transactions.Delete(ctx, []uuid.UUID{id})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = s.Reader().Transactions.FindByID(ctx, id)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPostgres_UnknownServiceRollsBack(t *testing.T) {
	s := newPostgresStorage(t)
	ctx := context.Background()

	err := WithTx(ctx, s, func(w *Writer) error {
		id, err := w.Transactions.Insert(ctx, &transaction.TransactionCreate{
			Patient:       "patient-1",
			Specialist:    "specialist-1",
			Amount:        decimal.RequireFromString("10"),
			PaymentMethod: "card",
		})
		if err != nil {
			return err
		}
		return w.Transactions.InsertLinks(ctx, id, []uuid.UUID{uuid.Must(uuid.NewV4())})
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	all, err := s.Reader().Transactions.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPostgres_ExpenseWindow(t *testing.T) {
	s := newPostgresStorage(t)
	ctx := context.Background()
	for _, at := range []string{"2024-01-31T23:59:59Z", "2024-02-01T00:00:00Z", "2024-02-29T23:59:59Z", "2024-03-01T00:00:00Z"} {
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO expenses (category, amount, created_at) VALUES ('rent', 10, $1)", at)
		require.NoError(t, err)
	}

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)
	rows, err := s.Reader().Expenses.List(ctx, &expense.Filter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestPostgres_ListKeysetWithTies(t *testing.T) {
	s := newPostgresStorage(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 123456000, time.UTC)

	err := WithTx(ctx, s, func(w *Writer) error {
		for i := 0; i < 5; i++ {
			if _, err := w.Transactions.Insert(ctx, &transaction.TransactionCreate{
				Patient:       "patient-1",
				Specialist:    "specialist-1",
				Amount:        decimal.NewFromInt(int64(i)),
				PaymentMethod: "cash",
				CreatedAt:     at.Add(time.Duration(i/3) * time.Microsecond),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	all, err := s.Reader().Transactions.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 5)

	var walked []uuid.UUID
	filter := &transaction.TransactionFilter{Limit: 2}
	for {
		rows, err := s.Reader().Transactions.List(ctx, filter)
		require.NoError(t, err)
		if len(rows) > filter.Limit {
			rows = rows[:filter.Limit]
		}
		for _, row := range rows {
			walked = append(walked, row.ID)
		}
		if len(rows) < filter.Limit {
			break
		}
		last := rows[len(rows)-1]
		filter = &transaction.TransactionFilter{
			Limit: 2,
			After: &transaction.Position{CreatedAt: last.CreatedAt, ID: last.ID},
		}
	}

	want := make([]uuid.UUID, len(all))
	for i, row := range all {
		want[i] = row.ID
	}
	assert.Equal(t, want, walked)
}
