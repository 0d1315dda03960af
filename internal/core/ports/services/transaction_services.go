package services

import (
	"context"
	"time"

	"github.com/kiranabook/kirana_backend/internal/core/domain"
	"github.com/kiranabook/kirana_backend/internal/dto"
)

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// AddTransaction records a new transaction: the amount is converted to
	// the base currency before persistence. Fails with ErrRateLimited when
	// the creation gate rejects the call, ErrConversion when the rate fetch
	// fails, and ErrValidation for unknown transaction types.
	AddTransaction(ctx context.Context, req dto.AddTransactionRequest) (*domain.Transaction, error)
}

// TransactionReportingSvc defines reporting operations over stored transactions
type TransactionReportingSvc interface {
	// GetReports returns all transactions created within [start, end].
	GetReports(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)

	// GenerateFinancialReport sums credit and debit amounts over [start, end]
	// and computes the net flow.
	GenerateFinancialReport(ctx context.Context, start, end time.Time) (*domain.FinancialReport, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionWriterSvc
	TransactionReportingSvc
}
