package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cryptofolio/internal/analytics"
	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/models"
	"cryptofolio/internal/pagination"
	"cryptofolio/internal/services"
)

// --- mock portfolio and snapshot services ---

type mockPortfolioService struct {
	getPortfolioFn func(ctx context.Context, userID uint, confidence float64) (*services.PortfolioView, error)
}

func (m *mockPortfolioService) GetPortfolio(ctx context.Context, userID uint, confidence float64) (*services.PortfolioView, error) {
	if m.getPortfolioFn != nil {
		return m.getPortfolioFn(ctx, userID, confidence)
	}
	return &services.PortfolioView{}, nil
}

var _ services.PortfolioServicer = (*mockPortfolioService)(nil)

type mockSnapshotService struct {
	recordSnapshotFn   func(ctx context.Context, userID uint) (*models.PortfolioSnapshot, error)
	getUserSnapshotsFn func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error)
}

func (m *mockSnapshotService) RecordSnapshot(ctx context.Context, userID uint) (*models.PortfolioSnapshot, error) {
	if m.recordSnapshotFn != nil {
		return m.recordSnapshotFn(ctx, userID)
	}
	return &models.PortfolioSnapshot{}, nil
}

func (m *mockSnapshotService) GetUserSnapshots(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error) {
	if m.getUserSnapshotsFn != nil {
		return m.getUserSnapshotsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.PortfolioSnapshot{}, 1, 20, 0)
	return &resp, nil
}

var _ services.SnapshotServicer = (*mockSnapshotService)(nil)

func setupPortfolioRouter(handler *PortfolioHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/holdings", handler.GetHoldings)
	auth.GET("/portfolio", handler.GetPortfolio)
	auth.GET("/portfolio/recommendations", handler.GetRecommendations)
	auth.POST("/portfolio/snapshots", handler.CreateSnapshot)
	auth.GET("/portfolio/snapshots", handler.GetSnapshots)
	return r
}

func TestPortfolioHandler_GetPortfolio(t *testing.T) {
	t.Run("returns the valued portfolio", func(t *testing.T) {
		pfSvc := &mockPortfolioService{
			getPortfolioFn: func(_ context.Context, _ uint, confidence float64) (*services.PortfolioView, error) {
				return &services.PortfolioView{
					Holdings: []analytics.ValuationRecord{{ID: "bitcoin", Name: "Bitcoin", CurrentValue: 12000}},
					Metrics: analytics.PortfolioMetrics{
						TotalValue: 12000,
						RiskScore:  33.3,
						RiskLabel:  "Medium",
						Confidence: confidence,
					},
					Unpriced: []string{"vechain"},
				}, nil
			},
		}
		handler := NewPortfolioHandler(&mockTransactionService{}, pfSvc, &mockSnapshotService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		metrics := result["metrics"].(map[string]interface{})
		if metrics["risk_label"] != "Medium" {
			t.Errorf("expected Medium risk, got %v", metrics["risk_label"])
		}
		unpriced := result["unpriced_coins"].([]interface{})
		if len(unpriced) != 1 || unpriced[0] != "vechain" {
			t.Errorf("expected unpriced_coins [vechain], got %v", unpriced)
		}
	})

	t.Run("passes confidence through", func(t *testing.T) {
		var gotConfidence float64
		pfSvc := &mockPortfolioService{
			getPortfolioFn: func(_ context.Context, _ uint, confidence float64) (*services.PortfolioView, error) {
				gotConfidence = confidence
				return &services.PortfolioView{}, nil
			},
		}
		handler := NewPortfolioHandler(&mockTransactionService{}, pfSvc, &mockSnapshotService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio?confidence=0.99", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotConfidence != 0.99 {
			t.Errorf("expected confidence 0.99, got %f", gotConfidence)
		}
	})

	t.Run("returns 400 on non-numeric confidence", func(t *testing.T) {
		handler := NewPortfolioHandler(&mockTransactionService{}, &mockPortfolioService{}, &mockSnapshotService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio?confidence=high", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 502 when prices unavailable", func(t *testing.T) {
		pfSvc := &mockPortfolioService{
			getPortfolioFn: func(context.Context, uint, float64) (*services.PortfolioView, error) {
				return nil, apperrors.ErrPriceUnavailable
			},
		}
		handler := NewPortfolioHandler(&mockTransactionService{}, pfSvc, &mockSnapshotService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio", "")

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PRICE_UNAVAILABLE")
	})
}

func TestPortfolioHandler_GetHoldings(t *testing.T) {
	txSvc := &mockTransactionService{
		getUserHoldingsFn: func(uint) ([]models.Holding, error) {
			return []models.Holding{{CoinID: "bitcoin", CoinName: "Bitcoin", Quantity: 0.5}}, nil
		},
	}
	handler := NewPortfolioHandler(txSvc, &mockPortfolioService{}, &mockSnapshotService{})
	r := setupPortfolioRouter(handler)

	rec := doRequest(r, "GET", "/holdings", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	holdings := result["holdings"].([]interface{})
	if len(holdings) != 1 {
		t.Fatalf("expected 1 holding, got %d", len(holdings))
	}
}

func TestPortfolioHandler_GetRecommendations(t *testing.T) {
	pfSvc := &mockPortfolioService{
		getPortfolioFn: func(context.Context, uint, float64) (*services.PortfolioView, error) {
			return &services.PortfolioView{
				Metrics: analytics.PortfolioMetrics{
					Recommendations: []string{"Consider diversifying with more assets"},
				},
			}, nil
		},
	}
	handler := NewPortfolioHandler(&mockTransactionService{}, pfSvc, &mockSnapshotService{})
	r := setupPortfolioRouter(handler)

	rec := doRequest(r, "GET", "/portfolio/recommendations", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	recs := result["recommendations"].([]interface{})
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
}

func TestPortfolioHandler_Snapshots(t *testing.T) {
	t.Run("create returns 201", func(t *testing.T) {
		snapSvc := &mockSnapshotService{
			recordSnapshotFn: func(_ context.Context, userID uint) (*models.PortfolioSnapshot, error) {
				return &models.PortfolioSnapshot{
					ID:         1,
					UserID:     userID,
					RecordedAt: time.Now(),
					TotalValue: 12000,
				}, nil
			},
		}
		handler := NewPortfolioHandler(&mockTransactionService{}, &mockPortfolioService{}, snapSvc)
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "POST", "/portfolio/snapshots", "")

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		snap := result["snapshot"].(map[string]interface{})
		if snap["total_value"].(float64) != 12000 {
			t.Errorf("expected total_value 12000, got %v", snap["total_value"])
		}
	})

	t.Run("list returns page", func(t *testing.T) {
		snapSvc := &mockSnapshotService{
			getUserSnapshotsFn: func(_ uint, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error) {
				resp := pagination.NewPageResponse([]models.PortfolioSnapshot{{ID: 1}}, page.Page, page.PageSize, 1)
				return &resp, nil
			},
		}
		handler := NewPortfolioHandler(&mockTransactionService{}, &mockPortfolioService{}, snapSvc)
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio/snapshots?page=1&page_size=10", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 1 {
			t.Errorf("expected total_items 1, got %v", result["total_items"])
		}
	})
}
