package models

// Holding represents the current position in one coin, derived from the
// transaction ledger. Rows are fully rebuilt after every ledger mutation;
// positions with non-positive quantity are never stored.
type Holding struct {
	Base
	UserID       uint    `gorm:"not null;index:idx_holdings_user_coin,unique" json:"user_id"`
	CoinID       string  `gorm:"not null;index:idx_holdings_user_coin,unique" json:"coin_id"`
	CoinName     string  `gorm:"not null" json:"coin_name"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	CostBasis    float64 `gorm:"not null" json:"cost_basis"`
	AvgCostBasis float64 `gorm:"not null" json:"avg_cost_basis"`
	BuyCount     int     `gorm:"not null;default:0" json:"buy_count"`
	SellCount    int     `gorm:"not null;default:0" json:"sell_count"`
}
