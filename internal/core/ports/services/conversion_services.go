package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// ConversionSvcFacade converts monetary amounts between currencies.
type ConversionSvcFacade interface {
	// Convert returns amount multiplied by the fromCurrency->toCurrency rate.
	// Fails with ErrConversion when no rate can be obtained.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error)
}

// CreationGate is the non-blocking admission check applied to transaction
// creation. Allow consumes a token when one is available and never waits.
type CreationGate interface {
	Allow(ctx context.Context) (bool, error)
}
