package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashbox-server/internal/storage/appointment"
	"github.com/carson-networks/cashbox-server/internal/storage/catalog"
	"github.com/carson-networks/cashbox-server/internal/storage/expense"
	"github.com/carson-networks/cashbox-server/internal/storage/transaction"
)

type Reader struct {
	Transactions transaction.IReader
	Services     catalog.IReader
	Expenses     expense.IReader
	Appointments appointment.IReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Transactions: transaction.NewReader(exec),
		Services:     catalog.NewReader(exec),
		Expenses:     expense.NewReader(exec),
		Appointments: appointment.NewReader(exec),
	}
}
