package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a cashbox transaction record.
type Transaction struct {
	ID            uuid.UUID       `db:"id"`
	Patient       string          `db:"patient"`
	Specialist    string          `db:"specialist"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	Comment       string          `db:"comment"`
	CreatedAt     time.Time       `db:"created_at"`
}

// LinkedService is a catalog service attached to a transaction.
type LinkedService struct {
	ID    uuid.UUID       `db:"id"`
	Title string          `db:"title"`
	Price decimal.Decimal `db:"price"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Patient       string
	Specialist    string
	Amount        decimal.Decimal
	PaymentMethod string
	Comment       string
	CreatedAt     time.Time // defaults to now if zero
}

// TransactionUpdate carries the scalar columns to change. Unset fields are left as they are.
type TransactionUpdate struct {
	Amount        omit.Val[decimal.Decimal]
	PaymentMethod omit.Val[string]
	Comment       omit.Val[string]
}

// IsEmpty reports whether no column is set.
func (u *TransactionUpdate) IsEmpty() bool {
	return u == nil || (u.Amount.IsUnset() && u.PaymentMethod.IsUnset() && u.Comment.IsUnset())
}

// Position is a row's place in list order: created_at DESC, id DESC.
type Position struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// TransactionFilter selects one page of the list. After excludes every row at or
// before that position; Limit > 0 returns up to Limit+1 rows so callers can tell
// whether another page exists.
type TransactionFilter struct {
	Limit int
	After *Position
}

// ReportFilter bounds the rows feeding a cashbox report. Both ends are inclusive.
type ReportFilter struct {
	From time.Time
	To   time.Time
}

// ReportRow is one (transaction, linked service) pair.
type ReportRow struct {
	CreatedAt     time.Time       `db:"created_at"`
	ServiceID     uuid.UUID       `db:"service_id"`
	ServiceTitle  string          `db:"service_title"`
	PaymentMethod string          `db:"payment_method"`
	Amount        decimal.Decimal `db:"amount"`
}

// IReader defines the read side of transaction storage.
//
//go:generate mockery --name IReader --inpackage --with-expecter --filename mock_IReader.go
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindWithServices(ctx context.Context, id uuid.UUID) (*Transaction, []LinkedService, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	ReportRows(ctx context.Context, filter ReportFilter) ([]ReportRow, error)
}

// IWriter runs inside a single store session.
type IWriter interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	InsertLinks(ctx context.Context, id uuid.UUID, serviceIDs []uuid.UUID) error
	DeleteLinks(ctx context.Context, ids []uuid.UUID) error
	Delete(ctx context.Context, ids []uuid.UUID) (int64, error)
}
