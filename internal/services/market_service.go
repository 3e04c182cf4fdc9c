package services

import (
	"context"
	"sort"

	"cryptofolio/internal/coingecko"
	apperrors "cryptofolio/internal/errors"
)

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 365

	defaultOverviewSize = 10
	maxOverviewSize     = 50
)

// marketService exposes catalog lookups and market data passthroughs.
type marketService struct {
	prices PriceSource
}

// NewMarketService creates a new MarketServicer.
func NewMarketService(prices PriceSource) MarketServicer {
	return &marketService{prices: prices}
}

// ListCoins returns the supported coin catalog sorted by display name.
func (s *marketService) ListCoins() []coingecko.CoinInfo {
	coins := make([]coingecko.CoinInfo, 0, len(coingecko.SupportedCoins))
	for name, id := range coingecko.SupportedCoins {
		coins = append(coins, coingecko.CoinInfo{ID: id, Name: name})
	}
	sort.Slice(coins, func(i, j int) bool { return coins[i].Name < coins[j].Name })
	return coins
}

// GetPrices returns current quotes for the requested supported coins.
func (s *marketService) GetPrices(ctx context.Context, ids []string) (map[string]coingecko.Quote, error) {
	if len(ids) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one coin ID is required")
	}
	for _, id := range ids {
		if !coingecko.IsSupported(id) {
			return nil, apperrors.WithMessage(apperrors.ErrUnsupportedCoin, "unsupported coin: "+id)
		}
	}

	quotes, err := s.prices.SimplePrices(ctx, ids)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
	}
	return quotes, nil
}

// GetHistory returns a coin's price history. Days outside 1..365 fall back
// to the 30-day default.
func (s *marketService) GetHistory(ctx context.Context, coinID string, days int) ([]coingecko.PricePoint, error) {
	if !coingecko.IsSupported(coinID) {
		return nil, apperrors.WithMessage(apperrors.ErrUnsupportedCoin, "unsupported coin: "+coinID)
	}
	if days < 1 || days > maxHistoryDays {
		days = defaultHistoryDays
	}

	points, err := s.prices.MarketChart(ctx, coinID, days)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
	}
	return points, nil
}

// GetOverview returns the top coins by market cap.
func (s *marketService) GetOverview(ctx context.Context, perPage int) ([]coingecko.MarketCoin, error) {
	if perPage < 1 || perPage > maxOverviewSize {
		perPage = defaultOverviewSize
	}

	coins, err := s.prices.TopMarkets(ctx, perPage)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
	}
	return coins, nil
}
