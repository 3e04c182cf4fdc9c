package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"cryptofolio/internal/coingecko"
	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/models"
	"cryptofolio/internal/pagination"
)

// transactionService handles the buy/sell ledger and derived holdings.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// RecordTransaction validates and stores a buy or sell, then rebuilds the
// user's holdings from the full ledger. Sells that exceed the current
// position are rejected.
func (s *transactionService) RecordTransaction(
	userID uint,
	coinID string,
	txType models.TransactionType,
	quantity, pricePerCoin float64,
	date time.Time,
) (*models.Transaction, error) {
	// Validate input
	if txType != models.TransactionTypeBuy && txType != models.TransactionTypeSell {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !coingecko.IsSupported(coinID) {
		return nil, apperrors.WithMessage(apperrors.ErrUnsupportedCoin, "unsupported coin: "+coinID)
	}
	if quantity <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than zero")
	}
	if pricePerCoin <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price per coin must be greater than zero")
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}

	if txType == models.TransactionTypeSell {
		held, err := s.heldQuantity(userID, coinID)
		if err != nil {
			return nil, err
		}
		if quantity > held {
			return nil, apperrors.ErrInsufficientHoldings
		}
	}

	transaction := &models.Transaction{
		UserID:       userID,
		CoinID:       coinID,
		CoinName:     coingecko.CoinName(coinID),
		Type:         txType,
		Quantity:     quantity,
		PricePerCoin: pricePerCoin,
		TotalCost:    quantity * pricePerCoin,
		Date:         date,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return rebuildHoldings(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's transactions.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.CoinID != nil {
		q = q.Where("coin_id = ?", *f.CoinID)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	return q
}

// GetTransactionByID retrieves a single transaction owned by the user.
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction and rebuilds holdings from the
// remaining ledger.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return rebuildHoldings(tx, userID)
	})
}

// GetUserHoldings retrieves the user's current positions.
func (s *transactionService) GetUserHoldings(userID uint) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := s.db.Where("user_id = ?", userID).Order("coin_id ASC").Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holdings, nil
}

// heldQuantity returns the user's current quantity of one coin.
func (s *transactionService) heldQuantity(userID uint, coinID string) (float64, error) {
	var holding models.Holding
	err := s.db.Where("user_id = ? AND coin_id = ?", userID, coinID).First(&holding).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holding.Quantity, nil
}

// position accumulates one coin's state during a ledger replay.
type position struct {
	name      string
	quantity  float64
	costBasis float64
	buyCount  int
	sellCount int
}

// rebuildHoldings replays the user's entire ledger in date order and
// replaces the holdings rows with the result. Sells reduce the cost basis
// proportionally at the average cost of the position at sale time.
// Positions that end at or below zero quantity are dropped.
func rebuildHoldings(tx *gorm.DB, userID uint) error {
	var ledger []models.Transaction
	if err := tx.Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&ledger).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	positions := make(map[string]*position)
	order := make([]string, 0)

	for _, entry := range ledger {
		pos, ok := positions[entry.CoinID]
		if !ok {
			pos = &position{name: entry.CoinName}
			positions[entry.CoinID] = pos
			order = append(order, entry.CoinID)
		}

		switch entry.Type {
		case models.TransactionTypeBuy:
			pos.quantity += entry.Quantity
			pos.costBasis += entry.TotalCost
			pos.buyCount++
		case models.TransactionTypeSell:
			before := pos.quantity
			pos.quantity -= entry.Quantity
			if pos.quantity > 0 && before > 0 {
				avg := pos.costBasis / before
				pos.costBasis -= avg * entry.Quantity
			} else {
				pos.costBasis = 0
			}
			pos.sellCount++
		}
	}

	// Hard-delete so soft-deleted rows cannot collide with the unique
	// (user_id, coin_id) index on re-insert.
	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Holding{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, coinID := range order {
		pos := positions[coinID]
		if pos.quantity <= 0 {
			continue
		}
		holding := models.Holding{
			UserID:       userID,
			CoinID:       coinID,
			CoinName:     pos.name,
			Quantity:     pos.quantity,
			CostBasis:    pos.costBasis,
			AvgCostBasis: pos.costBasis / pos.quantity,
			BuyCount:     pos.buyCount,
			SellCount:    pos.sellCount,
		}
		if err := tx.Create(&holding).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return nil
}
