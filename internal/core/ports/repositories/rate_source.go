package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateSource fetches a single exchange rate from an external provider.
// Implementations make one synchronous call per invocation; caching is the
// caller's concern.
type RateSource interface {
	// FetchRate returns the rate for converting one unit of fromCurrency
	// into toCurrency.
	FetchRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}
