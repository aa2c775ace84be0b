package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a cashbox transaction in the service layer.
type Transaction struct {
	ID            uuid.UUID
	Patient       string
	Specialist    string
	Amount        decimal.Decimal
	PaymentMethod string
	Comment       string
	CreatedAt     time.Time
	// Services is only filled by GetTransaction.
	Services []LinkedService
}

type LinkedService struct {
	ID    uuid.UUID
	Title string
	Price decimal.Decimal
}

// TransactionCreate is the input for recording a payment against one or more services.
type TransactionCreate struct {
	Patient       string
	Specialist    string
	Amount        decimal.Decimal
	PaymentMethod string
	Comment       string
	ServiceIDs    []uuid.UUID
	CreatedAt     time.Time // defaults to now if zero
}

// TransactionUpdate changes the set scalar fields and replaces the service link set.
type TransactionUpdate struct {
	Amount        omit.Val[decimal.Decimal]
	PaymentMethod omit.Val[string]
	Comment       omit.Val[string]
	ServiceIDs    []uuid.UUID
}

// TransactionCursor is the last transaction of a page. The next page starts
// strictly after it in list order (newest first, ties by id descending).
type TransactionCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// TransactionPageRequest asks for up to Limit transactions after the cursor.
// A zero Limit uses the default page size; a nil After starts at the newest.
type TransactionPageRequest struct {
	Limit int
	After *TransactionCursor
}
