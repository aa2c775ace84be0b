package cashbox

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbox-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/cashbox-server/internal/logging"
	"github.com/carson-networks/cashbox-server/internal/service"
)

// CreateTransactionBody is the request body for recording a cashbox transaction.
type CreateTransactionBody struct {
	Patient       string   `json:"patient" required:"true" minLength:"1" doc:"Patient reference"`
	Specialist    string   `json:"specialist" required:"true" minLength:"1" doc:"Specialist reference"`
	Amount        string   `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	PaymentMethod string   `json:"paymentMethod" required:"true" minLength:"1" doc:"How the patient paid"`
	Comment       string   `json:"comment,omitempty" doc:"Free text"`
	ServiceIDs    []string `json:"serviceIds" required:"true" minItems:"1" doc:"UUIDs of the services paid for"`
	CreatedAt     string   `json:"createdAt,omitempty" format:"date-time" doc:"RFC3339 creation time, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for a created transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"UUID of the new transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create service.TransactionCreate) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/cashbox.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-cashbox-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/cashbox",
		Summary:       "Create cashbox transaction",
		Description:   "Records a payment and links it to every service it covers in one atomic write.",
		Tags:          []string{"Cashbox"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreate, error) {
	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return service.TransactionCreate{}, err
	}
	serviceIDs, err := parseServiceIDs(input.Body.ServiceIDs)
	if err != nil {
		return service.TransactionCreate{}, err
	}

	var createdAt time.Time
	if input.Body.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339, input.Body.CreatedAt)
		if err != nil {
			return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid createdAt", err)
		}
	}

	return service.TransactionCreate{
		Patient:       input.Body.Patient,
		Specialist:    input.Body.Specialist,
		Amount:        amount,
		PaymentMethod: input.Body.PaymentMethod,
		Comment:       input.Body.Comment,
		ServiceIDs:    serviceIDs,
		CreatedAt:     createdAt,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("serviceCount", len(create.ServiceIDs))
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.From(ctx, err, "failed to create transaction")
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: id.String()},
	}, nil
}
