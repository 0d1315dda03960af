package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/kiranabook/kirana_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// ParseTransactionType parses a user-supplied type string case-insensitively.
// Anything other than credit/debit fails with ErrValidation.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(s)) {
	case Credit:
		return Credit, nil
	case Debit:
		return Debit, nil
	default:
		return "", fmt.Errorf("%w: invalid transaction type: %s", apperrors.ErrValidation, s)
	}
}

// Transaction represents a single credit or debit record.
// Amount is always stored in the canonical base currency; the currency the
// caller originally submitted is not retained. Records are immutable once
// persisted and are never deleted by this service.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Amount        decimal.Decimal `json:"amount"`        // Converted amount; precise decimal type
	Currency      string          `json:"currency"`      // Always the base currency post-conversion
	Type          TransactionType `json:"type"`          // DEBIT or CREDIT (Not Null)
	CreatedAt     time.Time       `json:"timestamp"`     // Stamped server-side at creation
}
