package cashbox

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbox-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/cashbox-server/internal/logging"
	"github.com/carson-networks/cashbox-server/internal/service"
)

// ListTransactionsBody asks for one page of the cashbox, newest first.
type ListTransactionsBody struct {
	Limit int    `json:"limit,omitempty" minimum:"1" maximum:"100" doc:"Page size, 20 when omitted"`
	After string `json:"after,omitempty" doc:"nextCursor of the previous page; omit for the first page"`
}

type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// CashboxPage is one page of transactions. NextCursor is empty on the last page.
type CashboxPage struct {
	Transactions []Transaction `json:"transactions"`
	HasMore      bool          `json:"hasMore"`
	NextCursor   string        `json:"nextCursor,omitempty" doc:"Opaque token for the following page"`
}

type ListTransactionsOutput struct {
	Body CashboxPage
}

type transactionLister interface {
	ListTransactions(ctx context.Context, req service.TransactionPageRequest) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/cashbox/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-cashbox-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/cashbox/list",
		Summary:     "List cashbox transactions",
		Description: "Pages through every transaction, newest first. Pass the returned nextCursor as `after` until hasMore is false.",
		Tags:        []string{"Cashbox"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionPageRequest, error) {
	req := service.TransactionPageRequest{Limit: input.Body.Limit}
	if input.Body.After == "" {
		return req, nil
	}

	after, err := decodeCursor(input.Body.After)
	if err != nil {
		return req, huma.NewError(http.StatusBadRequest, "invalid cursor", err)
	}
	req.After = after
	return req, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	req, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	if logData != nil {
		defer logData.AddTiming("listTransactionsMs")()
	}

	transactions, next, err := h.TransactionService.ListTransactions(ctx, req)
	if err != nil {
		return nil, apierror.From(ctx, err, "failed to list transactions")
	}

	page := CashboxPage{
		Transactions: make([]Transaction, len(transactions)),
		HasMore:      next != nil,
		NextCursor:   encodeCursor(next),
	}
	for i, tx := range transactions {
		page.Transactions[i] = toTransaction(tx)
	}
	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
		logData.AddData("hasMore", page.HasMore)
	}
	return &ListTransactionsOutput{Body: page}, nil
}
