package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/pagination"
	"cryptofolio/internal/services"
)

// PortfolioHandler handles portfolio valuation and snapshot requests.
type PortfolioHandler struct {
	transactionService services.TransactionServicer
	portfolioService   services.PortfolioServicer
	snapshotService    services.SnapshotServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(
	transactionService services.TransactionServicer,
	portfolioService services.PortfolioServicer,
	snapshotService services.SnapshotServicer,
) *PortfolioHandler {
	return &PortfolioHandler{
		transactionService: transactionService,
		portfolioService:   portfolioService,
		snapshotService:    snapshotService,
	}
}

// GetHoldings returns the user's current positions without price data
// @Summary     Get holdings
// @Description Get the user's current positions derived from the transaction ledger
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Holdings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [get]
func (h *PortfolioHandler) GetHoldings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holdings, err := h.transactionService.GetUserHoldings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holdings": holdings})
}

// GetPortfolio returns the full valued portfolio with risk metrics
// @Summary     Get portfolio
// @Description Get per-holding valuations plus portfolio risk metrics at current prices
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       confidence query number false "VaR confidence level between 0.8 and 0.999 (default 0.95)"
// @Success     200 {object} services.PortfolioView "Valued portfolio"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Price data unavailable"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	confidence := 0.0
	if v := c.Query("confidence"); v != "" {
		parsed, parseErr := strconv.ParseFloat(v, 64)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid confidence value"))
			return
		}
		confidence = parsed
	}

	view, err := h.portfolioService.GetPortfolio(c.Request.Context(), userID, confidence)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetRecommendations returns only the recommendation strings
// @Summary     Get recommendations
// @Description Get plain-English suggestions derived from the portfolio's risk profile
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]string "Recommendations"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Price data unavailable"
// @Router      /portfolio/recommendations [get]
func (h *PortfolioHandler) GetRecommendations(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.portfolioService.GetPortfolio(c.Request.Context(), userID, 0)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": view.Metrics.Recommendations})
}

// CreateSnapshot records a snapshot of the current portfolio value
// @Summary     Record a snapshot
// @Description Value the portfolio at current prices and store the headline figures
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     201 {object} models.PortfolioSnapshot "Snapshot recorded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Price data unavailable"
// @Router      /portfolio/snapshots [post]
func (h *PortfolioHandler) CreateSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := h.snapshotService.RecordSnapshot(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}

// GetSnapshots returns the user's snapshot history
// @Summary     Get snapshots
// @Description Get a paginated history of portfolio snapshots, newest first
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.PortfolioSnapshot] "Paginated snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/snapshots [get]
func (h *PortfolioHandler) GetSnapshots(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.snapshotService.GetUserSnapshots(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
