package services

import (
	"context"
	"sort"
	"testing"

	"cryptofolio/internal/coingecko"
	"cryptofolio/internal/testutil"
)

func TestListCoins(t *testing.T) {
	svc := NewMarketService(&stubPriceSource{})

	coins := svc.ListCoins()
	if len(coins) != len(coingecko.SupportedCoins) {
		t.Fatalf("expected %d coins, got %d", len(coingecko.SupportedCoins), len(coins))
	}
	if !sort.SliceIsSorted(coins, func(i, j int) bool { return coins[i].Name < coins[j].Name }) {
		t.Error("catalog should be sorted by display name")
	}
}

func TestGetPrices(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stub := &stubPriceSource{quotes: map[string]coingecko.Quote{
			"bitcoin": {Price: 43000, Change24h: -2},
		}}
		svc := NewMarketService(stub)

		quotes, err := svc.GetPrices(context.Background(), []string{"bitcoin"})
		testutil.AssertNoError(t, err)
		if quotes["bitcoin"].Price != 43000 {
			t.Errorf("unexpected quote %+v", quotes["bitcoin"])
		}
	})

	t.Run("empty_ids", func(t *testing.T) {
		svc := NewMarketService(&stubPriceSource{})
		_, err := svc.GetPrices(context.Background(), nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unsupported_coin", func(t *testing.T) {
		svc := NewMarketService(&stubPriceSource{})
		_, err := svc.GetPrices(context.Background(), []string{"bitcoin", "dogwifhat"})
		testutil.AssertAppError(t, err, "UNSUPPORTED_COIN")
	})
}

func TestGetHistory(t *testing.T) {
	t.Run("days_out_of_range_falls_back", func(t *testing.T) {
		stub := &stubPriceSource{}
		svc := NewMarketService(stub)

		_, err := svc.GetHistory(context.Background(), "bitcoin", 0)
		testutil.AssertNoError(t, err)
		if stub.lastDays != 30 {
			t.Errorf("expected fallback to 30 days, got %d", stub.lastDays)
		}

		_, err = svc.GetHistory(context.Background(), "bitcoin", 9000)
		testutil.AssertNoError(t, err)
		if stub.lastDays != 30 {
			t.Errorf("expected fallback to 30 days, got %d", stub.lastDays)
		}
	})

	t.Run("unsupported_coin", func(t *testing.T) {
		svc := NewMarketService(&stubPriceSource{})
		_, err := svc.GetHistory(context.Background(), "dogwifhat", 30)
		testutil.AssertAppError(t, err, "UNSUPPORTED_COIN")
	})
}

func TestGetOverview(t *testing.T) {
	stub := &stubPriceSource{markets: []coingecko.MarketCoin{{ID: "bitcoin"}}}
	svc := NewMarketService(stub)

	coins, err := svc.GetOverview(context.Background(), 0)
	testutil.AssertNoError(t, err)
	if stub.lastPerPage != 10 {
		t.Errorf("expected default page size 10, got %d", stub.lastPerPage)
	}
	if len(coins) != 1 {
		t.Errorf("expected passthrough of 1 coin, got %d", len(coins))
	}

	_, err = svc.GetOverview(context.Background(), 500)
	testutil.AssertNoError(t, err)
	if stub.lastPerPage != 10 {
		t.Errorf("expected oversize request clamped to default, got %d", stub.lastPerPage)
	}
}
