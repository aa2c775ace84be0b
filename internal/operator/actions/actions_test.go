package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbox-server/internal/apperr"
	"github.com/carson-networks/cashbox-server/internal/storage"
	"github.com/carson-networks/cashbox-server/internal/storage/memory"
	"github.com/carson-networks/cashbox-server/internal/storage/transaction"
)

func perform(t *testing.T, store *memory.Store, action IAction) error {
	t.Helper()
	return storage.WithTx(context.Background(), store, func(w *storage.Writer) error {
		return action.Perform(context.Background(), w)
	})
}

func createOne(t *testing.T, store *memory.Store, serviceIDs ...uuid.UUID) uuid.UUID {
	t.Helper()
	action := &CreateTransaction{
		Patient:       "patient-1",
		Specialist:    "specialist-1",
		Amount:        decimal.RequireFromString("150.00"),
		PaymentMethod: "cash",
		ServiceIDs:    serviceIDs,
	}
	require.NoError(t, perform(t, store, action))
	require.NotEqual(t, uuid.Nil, action.CreatedID)
	return action.CreatedID
}

func TestCreateTransaction_LinksEveryService(t *testing.T) {
	store := memory.New()
	s1 := store.AddService("Consultation", decimal.RequireFromString("100"))
	s2 := store.AddService("Cleaning", decimal.RequireFromString("50"))

	id := createOne(t, store, s1, s2)

	_, services, err := store.Reader().Transactions.FindWithServices(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Cleaning", services[0].Title)
	assert.Equal(t, "Consultation", services[1].Title)
}

func TestCreateTransaction_UnknownServiceLeavesNothing(t *testing.T) {
	store := memory.New()
	s1 := store.AddService("Consultation", decimal.RequireFromString("100"))

	action := &CreateTransaction{
		Amount:     decimal.RequireFromString("10"),
		ServiceIDs: []uuid.UUID{s1, uuid.Must(uuid.NewV4())},
	}
	err := perform(t, store, action)

	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	transactions, links := store.Counts()
	assert.Zero(t, transactions)
	assert.Zero(t, links)
}

func TestCreateTransaction_LinkFailureRollsBack(t *testing.T) {
	store := memory.New()
	s1 := store.AddService("Consultation", decimal.RequireFromString("100"))
	store.FailOn("InsertLinks", errors.New("connection reset"))

	err := perform(t, store, &CreateTransaction{Amount: decimal.RequireFromString("10"), ServiceIDs: []uuid.UUID{s1}})

	assert.EqualError(t, err, "connection reset")
	transactions, links := store.Counts()
	assert.Zero(t, transactions)
	assert.Zero(t, links)
}

func TestUpdateTransaction_ReplacesLinkSet(t *testing.T) {
	store := memory.New()
	s1 := store.AddService("A", decimal.RequireFromString("1"))
	s2 := store.AddService("B", decimal.RequireFromString("2"))
	s3 := store.AddService("C", decimal.RequireFromString("3"))
	id := createOne(t, store, s1, s2)

	err := perform(t, store, &UpdateTransaction{
		ID:         id,
		Update:     transaction.TransactionUpdate{Comment: omit.From("follow-up")},
		ServiceIDs: []uuid.UUID{s2, s3},
	})
	require.NoError(t, err)

	row, services, err := store.Reader().Transactions.FindWithServices(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, s2, services[0].ID)
	assert.Equal(t, s3, services[1].ID)
	assert.Equal(t, "follow-up", row.Comment)
	assert.Equal(t, "cash", row.PaymentMethod)
	assert.True(t, row.Amount.Equal(decimal.RequireFromString("150.00")))
}

func TestUpdateTransaction_FailureKeepsPreviousState(t *testing.T) {
	store := memory.New()
	s1 := store.AddService("A", decimal.RequireFromString("1"))
	s2 := store.AddService("B", decimal.RequireFromString("2"))
	id := createOne(t, store, s1)
	store.FailOn("InsertLinks", errors.New("disk full"))

	err := perform(t, store, &UpdateTransaction{
		ID:         id,
		Update:     transaction.TransactionUpdate{Amount: omit.From(decimal.RequireFromString("999"))},
		ServiceIDs: []uuid.UUID{s2},
	})
	require.Error(t, err)

	row, services, err := store.Reader().Transactions.FindWithServices(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, row.Amount.Equal(decimal.RequireFromString("150.00")))
	require.Len(t, services, 1)
	assert.Equal(t, s1, services[0].ID)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	store := memory.New()
	s1 := store.AddService("A", decimal.RequireFromString("1"))

	err := perform(t, store, &UpdateTransaction{ID: uuid.Must(uuid.NewV4()), ServiceIDs: []uuid.UUID{s1}})

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUpdateTransaction_EmptyServiceSet(t *testing.T) {
	store := memory.New()
	s1 := store.AddService("A", decimal.RequireFromString("1"))
	id := createOne(t, store, s1)

	err := perform(t, store, &UpdateTransaction{ID: id})

	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	_, links := store.Counts()
	assert.Equal(t, 1, links)
}

func TestDeleteTransaction(t *testing.T) {
	store := memory.New()
	s1 := store.AddService("A", decimal.RequireFromString("1"))
	id := createOne(t, store, s1)
	keep := createOne(t, store, s1)

	action := &DeleteTransaction{IDs: []uuid.UUID{id}}
	require.NoError(t, perform(t, store, action))
	assert.EqualValues(t, 1, action.Deleted)

	transactions, links := store.Counts()
	assert.Equal(t, 1, transactions)
	assert.Equal(t, 1, links)
	_, err := store.Reader().Transactions.FindByID(context.Background(), keep)
	assert.NoError(t, err)

	err = perform(t, store, &DeleteTransaction{IDs: []uuid.UUID{id}})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
