package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cryptofolio/internal/analytics"
	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/logger"
)

// portfolioService values holdings against live prices and runs the
// risk engine over the result.
type portfolioService struct {
	db           *gorm.DB
	transactions TransactionServicer
	prices       PriceSource
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB, transactions TransactionServicer, prices PriceSource) PortfolioServicer {
	return &portfolioService{
		db:           db,
		transactions: transactions,
		prices:       prices,
	}
}

// GetPortfolio loads the user's holdings, fetches a price snapshot, and
// returns per-holding valuations plus portfolio metrics. Holdings the
// price source could not quote are excluded from every figure and listed
// in Unpriced so the client can surface a staleness warning.
func (s *portfolioService) GetPortfolio(ctx context.Context, userID uint, confidence float64) (*PortfolioView, error) {
	if confidence == 0 {
		confidence = analytics.DefaultConfidence
	}
	if confidence < 0.8 || confidence > 0.999 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "confidence must be between 0.8 and 0.999")
	}

	stored, err := s.transactions.GetUserHoldings(userID)
	if err != nil {
		return nil, err
	}

	holdings := make([]analytics.Holding, 0, len(stored))
	ids := make([]string, 0, len(stored))
	for _, h := range stored {
		holdings = append(holdings, analytics.Holding{
			ID:        h.CoinID,
			Name:      h.CoinName,
			Quantity:  h.Quantity,
			CostBasis: h.CostBasis,
		})
		ids = append(ids, h.CoinID)
	}

	quotes := make(map[string]analytics.Quote)
	if len(ids) > 0 {
		fetched, err := s.prices.SimplePrices(ctx, ids)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
		}
		for id, q := range fetched {
			quotes[id] = analytics.Quote{Price: q.Price, Change24h: q.Change24h}
		}
	}

	records, metrics := analytics.Analyze(holdings, quotes, confidence)

	var unpriced []string
	for _, id := range ids {
		if _, ok := quotes[id]; !ok {
			unpriced = append(unpriced, id)
		}
	}
	if len(unpriced) > 0 {
		logger.Get().Warnw("holdings excluded from valuation, no quote available",
			"user_id", userID, "coins", unpriced)
	}

	return &PortfolioView{
		Holdings:    records,
		Metrics:     metrics,
		Unpriced:    unpriced,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
