package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "buy"
	TransactionTypeSell TransactionType = "sell"
)

// Transaction represents a single buy or sell of a coin. The transaction
// ledger is the source of truth: holdings are always rebuilt from it.
type Transaction struct {
	Base
	UserID       uint            `gorm:"not null;index" json:"user_id"`
	CoinID       string          `gorm:"not null;index" json:"coin_id"`
	CoinName     string          `gorm:"not null" json:"coin_name"`
	Type         TransactionType `gorm:"not null" json:"type"`
	Quantity     float64         `gorm:"not null" json:"quantity"`
	PricePerCoin float64         `gorm:"not null" json:"price_per_coin"`
	TotalCost    float64         `gorm:"not null" json:"total_cost"`
	Date         time.Time       `gorm:"not null" json:"date"`
}
