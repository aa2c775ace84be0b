package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashbox-server/internal/storage/catalog"
	"github.com/carson-networks/cashbox-server/internal/storage/transaction"
)

// TxFinisher ends a store session.
type TxFinisher interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups every table writer sharing one store session.
type Writer struct {
	tx           TxFinisher
	Transactions transaction.IWriter
	Services     catalog.IReader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transaction.NewWriter(tx),
		Services:     catalog.NewReader(tx),
	}
}

// NewWriterWith builds a Writer over an arbitrary session, such as the in-memory store's.
func NewWriterWith(tx TxFinisher, transactions transaction.IWriter, services catalog.IReader) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Services:     services,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
