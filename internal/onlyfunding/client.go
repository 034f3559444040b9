package onlyfunding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/suwandre/fundity/internal/models"
)

const (
	DefaultBaseURL = "https://api.onlyfunding.fun"
	DefaultTimeout = 30 * time.Second

	userAgent = "fundity-go/1.0.0"
)

// Provider yields a funding-rate snapshot on demand.
type Provider interface {
	GetFundingRates(ctx context.Context) (*models.Snapshot, error)
}

// Client talks to the onlyfunding.fun REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Constructor function. Creates a client with default settings.
func NewClient() *Client {
	return NewClientWithOptions(DefaultBaseURL, DefaultTimeout)
}

// Creates a client with a custom base URL and request timeout.
func NewClientWithOptions(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetches the current funding-rate snapshot across all exchanges.
func (c *Client) GetFundingRates(ctx context.Context) (*models.Snapshot, error) {
	url := fmt.Sprintf("%s/funding", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("onlyfunding: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("onlyfunding: funding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("onlyfunding: unexpected status %d: %s", resp.StatusCode, body)
	}

	var snap models.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("onlyfunding: failed to decode response: %w", err)
	}

	return &snap, nil
}

// Returns the funding rate for one exchange and symbol as a percentage.
// A missing exchange or symbol is an error, not a zero rate.
func (c *Client) GetRate(ctx context.Context, exchange, symbol string) (float64, error) {
	snap, err := c.GetFundingRates(ctx)
	if err != nil {
		return 0, err
	}

	if rates, ok := snap.FundingRates[exchange]; ok {
		if rate, ok := rates[symbol]; ok {
			return float64(rate) / 10000.0, nil
		}
	}

	return 0, fmt.Errorf("onlyfunding: rate not found for %s on %s", symbol, exchange)
}
