package cashbox

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbox-server/internal/operator"
	"github.com/carson-networks/cashbox-server/internal/service"
	"github.com/carson-networks/cashbox-server/internal/storage/memory"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, req service.TransactionPageRequest) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, req)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return txs, next, args.Error(2)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func sampleTransaction(now time.Time) service.Transaction {
	return service.Transaction{
		ID:            uuid.Must(uuid.NewV4()),
		Patient:       "patient-1",
		Specialist:    "specialist-1",
		Amount:        decimal.RequireFromString("10.00"),
		PaymentMethod: "cash",
		CreatedAt:     now,
	}
}

// newLedger wires a LedgerService to an in-memory store with one catalog service.
func newLedger(t *testing.T) (*service.LedgerService, uuid.UUID) {
	t.Helper()
	store := memory.New()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	op := operator.NewOperatorDelegator(store, logger, 2, 16)
	op.Start()
	t.Cleanup(op.Stop)
	return service.NewLedgerService(store.Reader(), op), store.AddService("Consultation", decimal.RequireFromString("50"))
}

func TestCursor_RoundTripKeepsSubSecondTime(t *testing.T) {
	in := &service.TransactionCursor{
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 120450000, time.UTC),
		ID:        uuid.Must(uuid.NewV4()),
	}

	out, err := decodeCursor(encodeCursor(in))

	require.NoError(t, err)
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	assert.Equal(t, in.ID, out.ID)
	assert.Empty(t, encodeCursor(nil))
}

func TestCursor_RejectsMalformedTokens(t *testing.T) {
	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }
	tokens := map[string]string{
		"not base64":   "%%%",
		"no separator": encode("2024-05-01T12:00:00Z"),
		"bad time":     encode("yesterday|" + uuid.Must(uuid.NewV4()).String()),
		"bad id":       encode("2024-05-01T12:00:00Z|42"),
	}
	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			_, err := decodeCursor(token)
			assert.ErrorIs(t, err, errMalformedCursor)
		})
	}
}

func TestHTTP_ListTransactions_WalksEveryPage(t *testing.T) {
	ledger, serviceID := newLedger(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	created := make(map[string]bool)
	for i := 0; i < 12; i++ {
		id, err := ledger.CreateTransaction(context.Background(), service.TransactionCreate{
			Patient:       "patient-1",
			Specialist:    "specialist-1",
			Amount:        decimal.NewFromInt(int64(i)),
			PaymentMethod: "cash",
			ServiceIDs:    []uuid.UUID{serviceID},
			CreatedAt:     base.Add(time.Duration(i) * 10 * time.Millisecond),
		})
		require.NoError(t, err)
		created[id.String()] = true
	}
	api := newListTestAPI(t, ledger)

	seen := make(map[string]bool)
	body := ListTransactionsBody{Limit: 5}
	pages := 0
	for {
		resp := api.Post("/v1/cashbox/list", body)
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
		var page CashboxPage
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
		pages++
		for _, tx := range page.Transactions {
			assert.False(t, seen[tx.ID], "transaction %s listed twice", tx.ID)
			seen[tx.ID] = true
		}
		if !page.HasMore {
			assert.Empty(t, page.NextCursor)
			break
		}
		require.Less(t, pages, 5)
		body.After = page.NextCursor
	}

	assert.Equal(t, 3, pages)
	assert.Equal(t, created, seen)
}

func TestHTTP_ListTransactions_EmptyLedger(t *testing.T) {
	ledger, _ := newLedger(t)

	resp := newListTestAPI(t, ledger).Post("/v1/cashbox/list", ListTransactionsBody{})

	require.Equal(t, http.StatusOK, resp.Code)
	var page CashboxPage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page))
	assert.NotNil(t, page.Transactions)
	assert.Empty(t, page.Transactions)
	assert.False(t, page.HasMore)
	assert.NotContains(t, resp.Body.String(), "nextCursor")
}

func TestHTTP_ListTransactions_PassesLimitAndCursor(t *testing.T) {
	cursor := &service.TransactionCursor{
		CreatedAt: time.Date(2025, 6, 15, 8, 0, 0, 500, time.UTC),
		ID:        uuid.Must(uuid.NewV4()),
	}
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.MatchedBy(func(req service.TransactionPageRequest) bool {
		return req.Limit == 7 && req.After != nil && req.After.ID == cursor.ID && req.After.CreatedAt.Equal(cursor.CreatedAt)
	})).Return([]service.Transaction{sampleTransaction(cursor.CreatedAt)}, (*service.TransactionCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/cashbox/list", ListTransactionsBody{Limit: 7, After: encodeCursor(cursor)})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_InvalidCursor(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Post("/v1/cashbox/list", ListTransactionsBody{After: "garbage!"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
}

func TestHTTP_ListTransactions_LimitAboveMaximum(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Post("/v1/cashbox/list", ListTransactionsBody{Limit: 500})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything).
		Return(([]service.Transaction)(nil), (*service.TransactionCursor)(nil), errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Post("/v1/cashbox/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "database unavailable")
}
