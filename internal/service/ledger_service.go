package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbox-server/internal/apperr"
	"github.com/carson-networks/cashbox-server/internal/operator/actions"
	"github.com/carson-networks/cashbox-server/internal/storage"
	"github.com/carson-networks/cashbox-server/internal/storage/transaction"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// actionProcessor runs a write action inside one store session.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// LedgerService handles cashbox transaction business logic.
type LedgerService struct {
	reader   *storage.Reader
	operator actionProcessor
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(reader *storage.Reader, op actionProcessor) *LedgerService {
	return &LedgerService{reader: reader, operator: op}
}

// CreateTransaction records a transaction and its service links atomically and returns its ID.
func (s *LedgerService) CreateTransaction(ctx context.Context, create TransactionCreate) (uuid.UUID, error) {
	serviceIDs, err := normalizeServiceIDs(create.ServiceIDs)
	if err != nil {
		return uuid.Nil, err
	}
	if err := validateAmount(create.Amount); err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateTransaction{
		Patient:       create.Patient,
		Specialist:    create.Specialist,
		Amount:        create.Amount,
		PaymentMethod: create.PaymentMethod,
		Comment:       create.Comment,
		ServiceIDs:    serviceIDs,
		CreatedAt:     create.CreatedAt,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, apperr.Store("LedgerService.CreateTransaction", err)
	}
	return action.CreatedID, nil
}

// GetTransaction returns the transaction with its linked services.
func (s *LedgerService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, linked, err := s.reader.Transactions.FindWithServices(ctx, id)
	if err != nil {
		return nil, apperr.Store("LedgerService.GetTransaction", err)
	}

	tx := transactionFromStorage(row)
	tx.Services = make([]LinkedService, len(linked))
	for i, l := range linked {
		tx.Services[i] = LinkedService{ID: l.ID, Title: l.Title, Price: l.Price}
	}
	return &tx, nil
}

// UpdateTransaction applies the set scalar fields and fully replaces the linked services.
func (s *LedgerService) UpdateTransaction(ctx context.Context, id uuid.UUID, update TransactionUpdate) error {
	serviceIDs, err := normalizeServiceIDs(update.ServiceIDs)
	if err != nil {
		return err
	}
	if amount, ok := update.Amount.Get(); ok {
		if err := validateAmount(amount); err != nil {
			return err
		}
	}

	action := &actions.UpdateTransaction{
		ID: id,
		Update: transaction.TransactionUpdate{
			Amount:        update.Amount,
			PaymentMethod: update.PaymentMethod,
			Comment:       update.Comment,
		},
		ServiceIDs: serviceIDs,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return apperr.Store("LedgerService.UpdateTransaction", err)
	}
	return nil
}

// DeleteTransaction removes the transaction and every link to it.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	action := &actions.DeleteTransaction{IDs: []uuid.UUID{id}}
	if err := s.operator.Process(ctx, action); err != nil {
		return apperr.Store("LedgerService.DeleteTransaction", err)
	}
	return nil
}

// ListTransactions returns one page of transactions, newest first, and the cursor
// for the next page. The cursor is nil on the last page.
func (s *LedgerService) ListTransactions(ctx context.Context, req TransactionPageRequest) ([]Transaction, *TransactionCursor, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := &transaction.TransactionFilter{Limit: limit}
	if req.After != nil {
		filter.After = &transaction.Position{CreatedAt: req.After.CreatedAt, ID: req.After.ID}
	}

	rows, err := s.reader.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, apperr.Store("LedgerService.ListTransactions", err)
	}

	var next *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[limit-1]
		next = &TransactionCursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	page := make([]Transaction, len(rows))
	for i, row := range rows {
		page[i] = transactionFromStorage(row)
	}
	return page, next, nil
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:            row.ID,
		Patient:       row.Patient,
		Specialist:    row.Specialist,
		Amount:        row.Amount,
		PaymentMethod: row.PaymentMethod,
		Comment:       row.Comment,
		CreatedAt:     row.CreatedAt,
	}
}

// normalizeServiceIDs rejects an empty set and collapses duplicates, keeping first-seen order.
func normalizeServiceIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, apperr.Validation("at least one service is required")
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, apperr.Validation("service id must not be empty")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperr.Validation("amount must not be negative, got %s", amount)
	}
	return nil
}
