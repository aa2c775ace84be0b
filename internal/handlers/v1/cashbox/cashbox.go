package cashbox

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbox-server/internal/service"
)

// Transaction is the API response model for a cashbox transaction.
type Transaction struct {
	ID            string    `json:"id" doc:"Transaction UUID"`
	Patient       string    `json:"patient" doc:"Patient reference"`
	Specialist    string    `json:"specialist" doc:"Specialist reference"`
	Amount        string    `json:"amount" doc:"Decimal amount"`
	PaymentMethod string    `json:"paymentMethod" doc:"How the patient paid"`
	Comment       string    `json:"comment" doc:"Free text"`
	CreatedAt     string    `json:"createdAt" doc:"RFC3339 creation time"`
	Services      []Service `json:"services,omitempty" doc:"Linked services, only on single reads"`
}

// Service is a catalog service linked to a transaction.
type Service struct {
	ID    string `json:"id" doc:"Service UUID"`
	Title string `json:"title" doc:"Service title"`
	Price string `json:"price" doc:"Catalog price"`
}

func toTransaction(tx service.Transaction) Transaction {
	resp := Transaction{
		ID:            tx.ID.String(),
		Patient:       tx.Patient,
		Specialist:    tx.Specialist,
		Amount:        tx.Amount.String(),
		PaymentMethod: tx.PaymentMethod,
		Comment:       tx.Comment,
		CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
	}
	for _, s := range tx.Services {
		resp.Services = append(resp.Services, Service{ID: s.ID.String(), Title: s.Title, Price: s.Price.String()})
	}
	return resp
}

func parseServiceIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.FromString(s)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid serviceIds", err)
		}
		ids[i] = id
	}
	return ids, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return amount, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}
