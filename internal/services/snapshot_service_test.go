package services

import (
	"context"
	"testing"
	"time"

	"cryptofolio/internal/coingecko"
	"cryptofolio/internal/pagination"
	"cryptofolio/internal/testutil"
)

func TestRecordSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)
	testutil.CreateTestHolding(t, db, user.ID, "bitcoin", 0.2, 10000)

	prices := &stubPriceSource{quotes: map[string]coingecko.Quote{
		"bitcoin": {Price: 60000, Change24h: -5},
	}}
	portfolio := NewPortfolioService(db, NewTransactionService(db), prices)
	svc := NewSnapshotService(db, portfolio)

	snap, err := svc.RecordSnapshot(context.Background(), user.ID)
	testutil.AssertNoError(t, err)

	if snap.ID == 0 {
		t.Fatal("expected non-zero snapshot ID")
	}
	if snap.TotalValue != 12000 || snap.TotalCost != 10000 || snap.ProfitLoss != 2000 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if snap.RiskScore != 33.3 {
		t.Errorf("expected risk score 33.3, got %f", snap.RiskScore)
	}
	if snap.RecordedAt.IsZero() {
		t.Error("expected recorded time to be set")
	}
}

func TestGetUserSnapshots(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		testutil.CreateTestSnapshot(t, db, user.ID, base.AddDate(0, 0, i), float64(1000*(i+1)))
	}
	testutil.CreateTestSnapshot(t, db, other.ID, base, 9999)

	portfolio := NewPortfolioService(db, NewTransactionService(db), &stubPriceSource{})
	svc := NewSnapshotService(db, portfolio)

	page, err := svc.GetUserSnapshots(user.ID, pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)

	if page.TotalItems != 3 || page.TotalPages != 2 {
		t.Errorf("unexpected page metadata %+v", page)
	}
	if len(page.Data) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(page.Data))
	}
	// Newest first.
	if page.Data[0].TotalValue != 3000 {
		t.Errorf("expected newest snapshot first, got %+v", page.Data[0])
	}
}
