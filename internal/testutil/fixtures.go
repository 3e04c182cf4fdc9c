package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"cryptofolio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithUsername(t, db, username)
}

// CreateTestUserWithUsername creates a user with the given username. The
// password is always "password123".
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a ledger entry of the given type.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, coinID string, txType models.TransactionType, quantity, pricePerCoin float64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:       userID,
		CoinID:       coinID,
		CoinName:     coinID,
		Type:         txType,
		Quantity:     quantity,
		PricePerCoin: pricePerCoin,
		TotalCost:    quantity * pricePerCoin,
		Date:         time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestHolding creates a position directly, bypassing the ledger.
func CreateTestHolding(t *testing.T, db *gorm.DB, userID uint, coinID string, quantity, costBasis float64) *models.Holding {
	t.Helper()

	avg := 0.0
	if quantity > 0 {
		avg = costBasis / quantity
	}
	holding := &models.Holding{
		UserID:       userID,
		CoinID:       coinID,
		CoinName:     coinID,
		Quantity:     quantity,
		CostBasis:    costBasis,
		AvgCostBasis: avg,
		BuyCount:     1,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestSnapshot creates a portfolio snapshot recorded at the given time.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, userID uint, recordedAt time.Time, totalValue float64) *models.PortfolioSnapshot {
	t.Helper()

	snap := &models.PortfolioSnapshot{
		UserID:     userID,
		RecordedAt: recordedAt,
		TotalValue: totalValue,
	}
	if err := db.Create(snap).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snap
}
