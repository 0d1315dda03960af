// Package fxrates is an HTTP client for the external FX-rate API. The
// provider returns a rate table for a base currency; one symbol is requested
// per call and the amount arithmetic happens upstream.
package fxrates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kiranabook/kirana_backend/internal/apperrors"
	portsrepo "github.com/kiranabook/kirana_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Client fetches exchange rates from a fxratesapi-compatible endpoint
// (GET <baseURL>?base=FROM&symbols=TO, JSON body carrying a "rates" map).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rate client. The timeout bounds the whole call; there
// is no retry, a failed fetch propagates immediately.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

var _ portsrepo.RateSource = (*Client)(nil)

// ratesResponse mirrors the provider payload. Rates decode through
// shopspring decimal so no precision is lost to float64.
type ratesResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRate requests the rate table for fromCurrency restricted to
// toCurrency and extracts the single rate. Any transport failure, non-2xx
// status, missing rate table, or absent target symbol fails with ErrConversion.
func (c *Client) FetchRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	reqURL := fmt.Sprintf("%s?base=%s&symbols=%s", c.baseURL, url.QueryEscape(fromCurrency), url.QueryEscape(toCurrency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: building rate request: %v", apperrors.ErrConversion, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: calling rate API: %v", apperrors.ErrConversion, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decimal.Decimal{}, fmt.Errorf("%w: rate API returned status %d", apperrors.ErrConversion, resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: decoding rate response: %v", apperrors.ErrConversion, err)
	}
	if body.Rates == nil {
		return decimal.Decimal{}, fmt.Errorf("%w: rate response has no rates table", apperrors.ErrConversion)
	}

	rate, ok := body.Rates[toCurrency]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate for %s in response", apperrors.ErrConversion, toCurrency)
	}
	return rate, nil
}
