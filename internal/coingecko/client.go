// Package coingecko provides a client for the CoinGecko v3 public API.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://api.coingecko.com/api/v3"
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = 60 * time.Second

	// The free tier allows roughly 30 calls/minute; stay under it.
	DefaultRateLimit = rate.Limit(0.5)
)

// Quote is a simple-price entry: current USD price and 24h percent change.
type Quote struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
}

// PricePoint is one sample of a coin's price history.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// MarketCoin is one row of the top-market overview.
type MarketCoin struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	MarketCap    float64 `json:"market_cap"`
	Change24h    float64 `json:"price_change_percentage_24h"`
}

// APIError represents a non-200 response from the API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("coingecko API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Client is a rate-limited CoinGecko API client with a TTL quote cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter

	cacheTTL time.Duration
	mu       sync.Mutex
	cache    map[string]cachedQuote
	now      func() time.Time
}

type cachedQuote struct {
	quote     Quote
	fetchedAt time.Time
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRateLimit sets the request rate limit
func WithRateLimit(limit rate.Limit) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, 1)
	}
}

// WithCacheTTL sets how long simple-price quotes stay fresh
func WithCacheTTL(ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.cacheTTL = ttl
	}
}

// NewClient creates a new CoinGecko client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter:  rate.NewLimiter(DefaultRateLimit, 1),
		cacheTTL: DefaultCacheTTL,
		cache:    make(map[string]cachedQuote),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a rate-limited GET request and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// SimplePrices returns current USD price and 24h change for the given
// coin IDs. Fresh cached quotes are served without a network call; the
// rest are fetched in a single batched request. IDs the API cannot price
// are omitted from the result, so the map may be a strict subset of ids.
func (c *Client) SimplePrices(ctx context.Context, ids []string) (map[string]Quote, error) {
	result := make(map[string]Quote, len(ids))

	c.mu.Lock()
	var missing []string
	for _, id := range ids {
		if entry, ok := c.cache[id]; ok && c.now().Sub(entry.fetchedAt) < c.cacheTTL {
			result[id] = entry.quote
		} else {
			missing = append(missing, id)
		}
	}
	c.mu.Unlock()

	if len(missing) == 0 {
		return result, nil
	}
	sort.Strings(missing)

	params := url.Values{}
	params.Set("ids", strings.Join(missing, ","))
	params.Set("vs_currencies", "usd")
	params.Set("include_24hr_change", "true")

	var raw map[string]map[string]float64
	if err := c.get(ctx, "/simple/price", params, &raw); err != nil {
		return nil, err
	}

	fetchedAt := c.now()
	c.mu.Lock()
	for _, id := range missing {
		data, ok := raw[id]
		if !ok {
			continue
		}
		q := Quote{
			Price:     data["usd"],
			Change24h: data["usd_24h_change"],
		}
		result[id] = q
		c.cache[id] = cachedQuote{quote: q, fetchedAt: fetchedAt}
	}
	c.mu.Unlock()

	return result, nil
}

// MarketChart returns up to the requested number of days of historical
// prices for one coin, oldest first.
func (c *Client) MarketChart(ctx context.Context, coinID string, days int) ([]PricePoint, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("days", strconv.Itoa(days))

	var raw struct {
		Prices [][2]float64 `json:"prices"`
	}
	if err := c.get(ctx, "/coins/"+url.PathEscape(coinID)+"/market_chart", params, &raw); err != nil {
		return nil, err
	}

	points := make([]PricePoint, 0, len(raw.Prices))
	for _, p := range raw.Prices {
		points = append(points, PricePoint{
			// Timestamps arrive as Unix milliseconds.
			Time:  time.UnixMilli(int64(p[0])).UTC(),
			Price: p[1],
		})
	}
	return points, nil
}

// TopMarkets returns the top coins by market cap, one page.
func (c *Client) TopMarkets(ctx context.Context, perPage int) ([]MarketCoin, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", "1")
	params.Set("sparkline", "false")

	var coins []MarketCoin
	if err := c.get(ctx, "/coins/markets", params, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}
