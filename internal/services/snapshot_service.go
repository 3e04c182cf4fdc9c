package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cryptofolio/internal/analytics"
	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/models"
	"cryptofolio/internal/pagination"
)

// snapshotService records point-in-time portfolio values for history charts.
type snapshotService struct {
	db        *gorm.DB
	portfolio PortfolioServicer
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB, portfolio PortfolioServicer) SnapshotServicer {
	return &snapshotService{db: db, portfolio: portfolio}
}

// RecordSnapshot values the portfolio at the default confidence level and
// persists the headline figures.
func (s *snapshotService) RecordSnapshot(ctx context.Context, userID uint) (*models.PortfolioSnapshot, error) {
	view, err := s.portfolio.GetPortfolio(ctx, userID, analytics.DefaultConfidence)
	if err != nil {
		return nil, err
	}

	snapshot := &models.PortfolioSnapshot{
		UserID:     userID,
		RecordedAt: time.Now().UTC(),
		TotalValue: view.Metrics.TotalValue,
		TotalCost:  view.Metrics.TotalCost,
		ProfitLoss: view.Metrics.TotalProfitLoss,
		RiskScore:  view.Metrics.RiskScore,
	}

	if err := s.db.Create(snapshot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return snapshot, nil
}

// GetUserSnapshots retrieves the user's snapshots, newest first.
func (s *snapshotService) GetUserSnapshots(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error) {
	page.Defaults()

	base := s.db.Model(&models.PortfolioSnapshot{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.PortfolioSnapshot
	if err := base.Scopes(pagination.Paginate(page)).
		Order("recorded_at DESC, id DESC").
		Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}
