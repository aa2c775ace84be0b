package service

import (
	"time"

	"github.com/carson-networks/cashbox-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Ledger *LedgerService
	Report *ReportService
}

// NewService wires the services over the shared reader and the write operator.
func NewService(reader *storage.Reader, op actionProcessor, loc *time.Location) *Service {
	return &Service{
		Ledger: NewLedgerService(reader, op),
		Report: NewReportService(reader, loc),
	}
}
