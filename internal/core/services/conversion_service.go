package services

import (
	"context"
	"fmt"
	"sync"

	portsrepo "github.com/kiranabook/kirana_backend/internal/core/ports/repositories"
	portssvc "github.com/kiranabook/kirana_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ConversionService converts amounts between currencies using an external
// rate source, caching one rate per currency pair for the process lifetime.
// Rates are never refreshed; restarting the process clears the cache.
type ConversionService struct {
	rateSource portsrepo.RateSource

	mu    sync.RWMutex
	rates map[string]decimal.Decimal
}

// NewConversionService creates a new ConversionService.
func NewConversionService(rateSource portsrepo.RateSource) *ConversionService {
	return &ConversionService{
		rateSource: rateSource,
		rates:      make(map[string]decimal.Decimal),
	}
}

var _ portssvc.ConversionSvcFacade = (*ConversionService)(nil)

func pairKey(from, to string) string {
	return from + "_" + to
}

// Convert multiplies amount by the cached fromCurrency->toCurrency rate,
// fetching it once on the first miss. Concurrent first misses on the same
// pair may each fetch; the duplicate write is benign since both store the
// same provider value.
func (s *ConversionService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	key := pairKey(fromCurrency, toCurrency)

	s.mu.RLock()
	rate, ok := s.rates[key]
	s.mu.RUnlock()

	if !ok {
		fetched, err := s.rateSource.FetchRate(ctx, fromCurrency, toCurrency)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("failed to convert %s to %s: %w", fromCurrency, toCurrency, err)
		}
		s.mu.Lock()
		s.rates[key] = fetched
		s.mu.Unlock()
		rate = fetched
	}

	return amount.Mul(rate), nil
}
