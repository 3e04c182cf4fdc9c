package models

import "time"

// PortfolioSnapshot represents a point-in-time record of portfolio value
// and risk. Snapshots are immutable time-series data, so no Base embed
// and no soft deletes.
type PortfolioSnapshot struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`
	TotalValue float64   `gorm:"not null" json:"total_value"`
	TotalCost  float64   `gorm:"not null" json:"total_cost"`
	ProfitLoss float64   `gorm:"not null" json:"profit_loss"`
	RiskScore  float64   `gorm:"not null" json:"risk_score"`
}
