package ratelimit_test

import (
	"context"
	"testing"

	"github.com/kiranabook/kirana_backend/internal/platform/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreationLimiter_InvalidRate(t *testing.T) {
	_, err := ratelimit.NewCreationLimiter("not-a-rate")
	require.Error(t, err)
}

func TestAllow_AdmitsUpToLimit(t *testing.T) {
	limiter, err := ratelimit.NewCreationLimiter("10-S")
	require.NoError(t, err)

	ctx := context.Background()
	admitted := 0
	rejected := 0
	for i := 0; i < 15; i++ {
		ok, err := limiter.Allow(ctx)
		require.NoError(t, err)
		if ok {
			admitted++
		} else {
			rejected++
		}
	}

	// 15 immediate calls against a 10/s bucket: the first 10 pass, the rest
	// are rejected without blocking.
	assert.Equal(t, 10, admitted)
	assert.Equal(t, 5, rejected)
}

func TestAllow_IndependentLimiters(t *testing.T) {
	ctx := context.Background()

	first, err := ratelimit.NewCreationLimiter("1-S")
	require.NoError(t, err)
	second, err := ratelimit.NewCreationLimiter("1-S")
	require.NoError(t, err)

	ok, err := first.Allow(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// Exhausting one limiter leaves a freshly constructed one untouched.
	ok, err = first.Allow(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = second.Allow(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}
