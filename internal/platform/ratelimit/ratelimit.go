// Package ratelimit adapts ulule/limiter into the non-blocking admission
// gate used by transaction creation. The bucket is shared process-wide: a
// single key, not per-client.
package ratelimit

import (
	"context"
	"fmt"

	portssvc "github.com/kiranabook/kirana_backend/internal/core/ports/services"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const creationKey = "transactions:add"

// CreationLimiter gates transaction creation with an in-memory limiter.
type CreationLimiter struct {
	limiter *limiter.Limiter
}

// NewCreationLimiter builds a limiter from a ulule formatted rate such as
// "10-S" (ten per second).
func NewCreationLimiter(formattedRate string) (*CreationLimiter, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formattedRate, err)
	}
	store := memory.NewStore()
	return &CreationLimiter{limiter: limiter.New(store, rate)}, nil
}

var _ portssvc.CreationGate = (*CreationLimiter)(nil)

// Allow consumes a token if one is available and reports whether the call is
// admitted. It never blocks.
func (l *CreationLimiter) Allow(ctx context.Context) (bool, error) {
	lctx, err := l.limiter.Get(ctx, creationKey)
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}
	return !lctx.Reached, nil
}
