package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(
		WithBaseURL(srv.URL),
		WithRateLimit(rate.Inf),
	)
	return c, srv
}

func TestSimplePrices(t *testing.T) {
	t.Run("parses_quotes", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/simple/price" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("ids"); got != "bitcoin,ethereum" {
				t.Errorf("unexpected ids param %q", got)
			}
			if r.URL.Query().Get("include_24hr_change") != "true" {
				t.Error("expected include_24hr_change=true")
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"bitcoin": {"usd": 43000.5, "usd_24h_change": -2.34},
				"ethereum": {"usd": 2280.1, "usd_24h_change": 4.1}
			}`))
		})

		quotes, err := c.SimplePrices(context.Background(), []string{"bitcoin", "ethereum"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(quotes))
		}
		if quotes["bitcoin"].Price != 43000.5 || quotes["bitcoin"].Change24h != -2.34 {
			t.Errorf("unexpected bitcoin quote %+v", quotes["bitcoin"])
		}
	})

	t.Run("missing_ids_omitted", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"bitcoin": {"usd": 100, "usd_24h_change": 1}}`))
		})

		quotes, err := c.SimplePrices(context.Background(), []string{"bitcoin", "not-a-coin"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 1 {
			t.Fatalf("expected strict subset with 1 quote, got %d", len(quotes))
		}
		if _, ok := quotes["not-a-coin"]; ok {
			t.Error("unpriceable ID must be omitted, not zero-filled")
		}
	})

	t.Run("missing_change_defaults_to_zero", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"bitcoin": {"usd": 100}}`))
		})

		quotes, err := c.SimplePrices(context.Background(), []string{"bitcoin"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quotes["bitcoin"].Change24h != 0 {
			t.Errorf("expected change 0, got %f", quotes["bitcoin"].Change24h)
		}
	})

	t.Run("cache_avoids_refetch", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{"bitcoin": {"usd": 100, "usd_24h_change": 1}}`))
		})

		for i := 0; i < 3; i++ {
			if _, err := c.SimplePrices(context.Background(), []string{"bitcoin"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if calls.Load() != 1 {
			t.Errorf("expected 1 upstream call with warm cache, got %d", calls.Load())
		}
	})

	t.Run("cache_expires", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{"bitcoin": {"usd": 100, "usd_24h_change": 1}}`))
		})

		current := time.Now()
		c.now = func() time.Time { return current }

		if _, err := c.SimplePrices(context.Background(), []string{"bitcoin"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		current = current.Add(DefaultCacheTTL + time.Second)
		if _, err := c.SimplePrices(context.Background(), []string{"bitcoin"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != 2 {
			t.Errorf("expected refetch after TTL, got %d calls", calls.Load())
		}
	})

	t.Run("api_error", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"status": {"error_code": 429}}`))
		})

		_, err := c.SimplePrices(context.Background(), []string{"bitcoin"})
		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected *APIError, got %T: %v", err, err)
		}
		if apiErr.StatusCode != http.StatusTooManyRequests {
			t.Errorf("expected status 429, got %d", apiErr.StatusCode)
		}
	})
}

func TestMarketChart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin/market_chart" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("days") != "30" {
			t.Errorf("unexpected days %q", r.URL.Query().Get("days"))
		}
		w.Write([]byte(`{"prices": [[1700000000000, 36500.2], [1700086400000, 37012.9]]}`))
	})

	points, err := c.MarketChart(context.Background(), "bitcoin", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Price != 36500.2 {
		t.Errorf("unexpected first price %f", points[0].Price)
	}
	if points[0].Time != time.UnixMilli(1700000000000).UTC() {
		t.Errorf("unexpected first timestamp %v", points[0].Time)
	}
}

func TestTopMarkets(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/markets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("per_page") != "10" {
			t.Errorf("unexpected per_page %q", r.URL.Query().Get("per_page"))
		}
		w.Write([]byte(`[
			{"id": "bitcoin", "symbol": "btc", "name": "Bitcoin", "current_price": 43000, "market_cap": 840000000000, "price_change_percentage_24h": -1.2},
			{"id": "ethereum", "symbol": "eth", "name": "Ethereum", "current_price": 2280, "market_cap": 270000000000, "price_change_percentage_24h": 2.5}
		]`))
	})

	coins, err := c.TopMarkets(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coins) != 2 {
		t.Fatalf("expected 2 coins, got %d", len(coins))
	}
	if coins[0].ID != "bitcoin" || coins[0].Change24h != -1.2 {
		t.Errorf("unexpected first coin %+v", coins[0])
	}
}

func TestSupportedCoins(t *testing.T) {
	if len(SupportedCoins) < 20 {
		t.Errorf("expected at least 20 supported coins, got %d", len(SupportedCoins))
	}
	if !IsSupported("bitcoin") {
		t.Error("bitcoin must be supported")
	}
	if IsSupported("not-a-coin") {
		t.Error("unknown ID must not be supported")
	}
	if CoinName("bitcoin") != "Bitcoin" {
		t.Errorf("unexpected name %q", CoinName("bitcoin"))
	}
	if CoinName("mystery") != "mystery" {
		t.Errorf("unknown ID should fall back to itself, got %q", CoinName("mystery"))
	}
}
