package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kiranabook/kirana_backend/internal/apperrors"
	"github.com/kiranabook/kirana_backend/internal/core/domain"
	portsrepo "github.com/kiranabook/kirana_backend/internal/core/ports/repositories"
	portssvc "github.com/kiranabook/kirana_backend/internal/core/ports/services"
	"github.com/kiranabook/kirana_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionService records transactions and produces windowed reports.
type TransactionService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	converter    portssvc.ConversionSvcFacade
	gate         portssvc.CreationGate
	baseCurrency string
}

// NewTransactionService creates a new TransactionService. All stored amounts
// are normalized to baseCurrency.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	converter portssvc.ConversionSvcFacade,
	gate portssvc.CreationGate,
	baseCurrency string,
) *TransactionService {
	return &TransactionService{
		txnRepo:      txnRepo,
		converter:    converter,
		gate:         gate,
		baseCurrency: baseCurrency,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// AddTransaction records a new transaction. The rate limit is checked before
// the conversion call so a rejected request never spends quota on the
// external API; type validation deliberately stays after conversion to match
// the established failure ordering.
func (s *TransactionService) AddTransaction(ctx context.Context, req dto.AddTransactionRequest) (*domain.Transaction, error) {
	allowed, err := s.gate.Allow(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check creation gate: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("%w: too many requests, please try again later", apperrors.ErrRateLimited)
	}

	convertedAmount, err := s.converter.Convert(ctx, req.Amount, req.Currency, s.baseCurrency)
	if err != nil {
		return nil, err
	}

	txnType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        convertedAmount,
		Currency:      s.baseCurrency,
		Type:          txnType,
		CreatedAt:     time.Now(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction in service: %w", err)
	}

	return &txn, nil
}

// GetReports returns all transactions created within [start, end].
func (s *TransactionService) GetReports(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// GenerateFinancialReport sums credits and debits over [start, end] and
// computes the net flow.
func (s *TransactionService) GenerateFinancialReport(ctx context.Context, start, end time.Time) (*domain.FinancialReport, error) {
	txns, err := s.GetReports(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totalCredits := decimal.Zero
	totalDebits := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case domain.Credit:
			totalCredits = totalCredits.Add(txn.Amount)
		case domain.Debit:
			totalDebits = totalDebits.Add(txn.Amount)
		}
	}

	return &domain.FinancialReport{
		TotalCredits: totalCredits,
		TotalDebits:  totalDebits,
		NetFlow:      totalCredits.Sub(totalDebits),
	}, nil
}
