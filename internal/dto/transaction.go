package dto

import (
	"time"

	"github.com/kiranabook/kirana_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddTransactionParams defines the query parameters accepted by the
// add-transaction endpoint. Amount stays a string here so the handler can
// map a malformed decimal to a 400 instead of a binding panic.
type AddTransactionParams struct {
	Amount   string `form:"amount" binding:"required"`
	Type     string `form:"type" binding:"required"`
	Currency string `form:"currency" binding:"required,iso3"`
}

// AddTransactionRequest is the service-level request to record a transaction.
type AddTransactionRequest struct {
	Amount   decimal.Decimal
	Type     string
	Currency string
}

// ReportParams defines the query parameters for the report endpoints.
type ReportParams struct {
	Type string `form:"type" binding:"required"`
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"id"`
	Amount        decimal.Decimal        `json:"amount"`
	Currency      string                 `json:"currency"`
	Type          domain.TransactionType `json:"type"`
	Timestamp     time.Time              `json:"timestamp"`
}

// ToTransactionResponse converts a domain.Transaction to its API representation.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Type:          txn.Type,
		Timestamp:     txn.CreatedAt,
	}
}

// ToTransactionListResponse converts a slice of domain transactions,
// always yielding a non-nil slice so the API renders [] rather than null.
func ToTransactionListResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// FinancialReportResponse is the API representation of an aggregate report.
type FinancialReportResponse struct {
	TotalCredits decimal.Decimal `json:"totalCredits"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	NetFlow      decimal.Decimal `json:"netFlow"`
}

// ToFinancialReportResponse converts a domain.FinancialReport to its API representation.
func ToFinancialReportResponse(report *domain.FinancialReport) FinancialReportResponse {
	return FinancialReportResponse{
		TotalCredits: report.TotalCredits,
		TotalDebits:  report.TotalDebits,
		NetFlow:      report.NetFlow,
	}
}
