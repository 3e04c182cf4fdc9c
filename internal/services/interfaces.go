package services

import (
	"context"
	"time"

	"cryptofolio/internal/analytics"
	"cryptofolio/internal/coingecko"
	"cryptofolio/internal/models"
	"cryptofolio/internal/pagination"
)

// PriceSource is the market-data contract the services depend on. The
// concrete implementation is the CoinGecko client; tests substitute an
// in-memory fake. The returned quote map may be a strict subset of the
// requested IDs.
type PriceSource interface {
	SimplePrices(ctx context.Context, ids []string) (map[string]coingecko.Quote, error)
	MarketChart(ctx context.Context, coinID string, days int) ([]coingecko.PricePoint, error)
	TopMarkets(ctx context.Context, perPage int) ([]coingecko.MarketCoin, error)
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	CoinID *string
	Type   *models.TransactionType
}

// TransactionServicer defines the contract for the buy/sell ledger and
// the holdings derived from it.
type TransactionServicer interface {
	RecordTransaction(userID uint, coinID string, txType models.TransactionType, quantity, pricePerCoin float64, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
	GetUserHoldings(userID uint) ([]models.Holding, error)
}

// PortfolioView is the full dashboard payload: per-holding valuations,
// portfolio metrics, and the coin IDs that were excluded because the
// price source could not quote them.
type PortfolioView struct {
	Holdings    []analytics.ValuationRecord `json:"holdings"`
	Metrics     analytics.PortfolioMetrics  `json:"metrics"`
	Unpriced    []string                    `json:"unpriced_coins,omitempty"`
	GeneratedAt time.Time                   `json:"generated_at"`
}

// PortfolioServicer defines the contract for portfolio valuation.
type PortfolioServicer interface {
	GetPortfolio(ctx context.Context, userID uint, confidence float64) (*PortfolioView, error)
}

// SnapshotServicer defines the contract for portfolio history snapshots.
type SnapshotServicer interface {
	RecordSnapshot(ctx context.Context, userID uint) (*models.PortfolioSnapshot, error)
	GetUserSnapshots(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error)
}

// MarketServicer defines the contract for market data lookups.
type MarketServicer interface {
	ListCoins() []coingecko.CoinInfo
	GetPrices(ctx context.Context, ids []string) (map[string]coingecko.Quote, error)
	GetHistory(ctx context.Context, coinID string, days int) ([]coingecko.PricePoint, error)
	GetOverview(ctx context.Context, perPage int) ([]coingecko.MarketCoin, error)
}

// ExportServicer defines the contract for report and CSV generation.
type ExportServicer interface {
	PortfolioCSV(view *PortfolioView) ([]byte, error)
	TransactionsCSV(transactions []models.Transaction) ([]byte, error)
	ReportText(view *PortfolioView, generatedAt time.Time) string
}
