package fxrate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
)

// Client calls the external currency-rate API:
//
//	GET {baseURL}/v3/latest?base_currency=JOD&currencies=ILS&apikey=<key>
//
// and extracts the scalar rate at data.<QUOTE>.value.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a rate-provider client. httpClient may be nil, in which
// case a client with a 10s timeout is used.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type latestResponse struct {
	Data map[string]struct {
		Value decimal.Decimal `json:"value"`
	} `json:"data"`
}

// LatestRate fetches the current base→quote rate. A missing API key, HTTP
// failure, non-200 status or a payload without a positive numeric value is a
// hard failure; no retry is attempted.
func (c *Client) LatestRate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	if c.apiKey == "" {
		return decimal.Zero, fmt.Errorf("%w: API key not configured", apperrors.ErrRateProvider)
	}

	q := url.Values{}
	q.Set("base_currency", base)
	q.Set("currencies", quote)
	q.Set("apikey", c.apiKey)
	endpoint := fmt.Sprintf("%s/v3/latest?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: building request: %v", apperrors.ErrRateProvider, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrRateProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: unexpected status %d", apperrors.ErrRateProvider, resp.StatusCode)
	}

	var payload latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("%w: decoding payload: %v", apperrors.ErrRateProvider, err)
	}

	entry, ok := payload.Data[quote]
	if !ok || !entry.Value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: no usable %s value in payload", apperrors.ErrRateProvider, quote)
	}

	return entry.Value, nil
}
