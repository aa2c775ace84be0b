package cashbox

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbox-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/cashbox-server/internal/service"
)

// TransactionPathInput identifies a transaction by path.
type TransactionPathInput struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// GetTransactionOutput is the Huma output for reading a transaction.
type GetTransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/cashbox/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-cashbox-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/cashbox/{id}",
		Summary:     "Get cashbox transaction",
		Description: "Returns one transaction with the services it is linked to.",
		Tags:        []string{"Cashbox"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *TransactionPathInput) (*GetTransactionOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.GetTransaction(ctx, id)
	if err != nil {
		return nil, apierror.From(ctx, err, "failed to get transaction")
	}

	return &GetTransactionOutput{Body: toTransaction(*tx)}, nil
}
