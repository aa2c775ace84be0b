package cashbox

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbox-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/cashbox-server/internal/service"
)

// UpdateTransactionBody changes the given fields and replaces the linked services.
type UpdateTransactionBody struct {
	Amount        *string  `json:"amount,omitempty" doc:"New decimal amount"`
	PaymentMethod *string  `json:"paymentMethod,omitempty" minLength:"1" doc:"New payment method"`
	Comment       *string  `json:"comment,omitempty" doc:"New comment"`
	ServiceIDs    []string `json:"serviceIds" required:"true" minItems:"1" doc:"Complete new set of service UUIDs"`
}

type UpdateTransactionInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id uuid.UUID, update service.TransactionUpdate) error
}

// UpdateTransactionHandler handles PUT /v1/cashbox/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-cashbox-transaction",
		Method:        http.MethodPut,
		Path:          "/v1/cashbox/{id}",
		Summary:       "Update cashbox transaction",
		Description:   "Updates the given fields and replaces the whole set of linked services atomically.",
		Tags:          []string{"Cashbox"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (uuid.UUID, service.TransactionUpdate, error) {
	var update service.TransactionUpdate

	id, err := parseID(input.ID)
	if err != nil {
		return uuid.Nil, update, err
	}
	if input.Body.Amount != nil {
		amount, err := parseAmount(*input.Body.Amount)
		if err != nil {
			return uuid.Nil, update, err
		}
		update.Amount = omit.From(amount)
	}
	if input.Body.PaymentMethod != nil {
		update.PaymentMethod = omit.From(*input.Body.PaymentMethod)
	}
	if input.Body.Comment != nil {
		update.Comment = omit.From(*input.Body.Comment)
	}
	update.ServiceIDs, err = parseServiceIDs(input.Body.ServiceIDs)
	if err != nil {
		return uuid.Nil, update, err
	}
	return id, update, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*struct{}, error) {
	id, update, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.UpdateTransaction(ctx, id, update); err != nil {
		return nil, apierror.From(ctx, err, "failed to update transaction")
	}
	return nil, nil
}
