package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/services"
)

// MarketHandler handles market data requests.
type MarketHandler struct {
	marketService services.MarketServicer
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService services.MarketServicer) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// ListCoins returns the supported coin catalog
// @Summary     List supported coins
// @Description Get the catalog of coins the dashboard can track
// @Tags        market
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]interface{} "Supported coins"
// @Router      /market/coins [get]
func (h *MarketHandler) ListCoins(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"coins": h.marketService.ListCoins()})
}

// GetPrices returns current quotes for the requested coins
// @Summary     Get current prices
// @Description Get USD price and 24h change for a comma-separated list of coin IDs
// @Tags        market
// @Accept      json
// @Produce     json
// @Param       ids query string true "Comma-separated coin IDs (e.g. bitcoin,ethereum)"
// @Success     200 {object} map[string]interface{} "Quotes keyed by coin ID"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Price data unavailable"
// @Router      /market/prices [get]
func (h *MarketHandler) GetPrices(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "ids query parameter is required"))
		return
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	quotes, err := h.marketService.GetPrices(c.Request.Context(), ids)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prices": quotes})
}

// GetHistory returns a coin's price history
// @Summary     Get price history
// @Description Get historical USD prices for one coin, oldest first
// @Tags        market
// @Accept      json
// @Produce     json
// @Param       id   path  string true  "Coin ID (e.g. bitcoin)"
// @Param       days query int    false "Number of days of history, 1-365 (default 30)"
// @Success     200 {object} map[string]interface{} "Price points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Price data unavailable"
// @Router      /market/coins/{id}/history [get]
func (h *MarketHandler) GetHistory(c *gin.Context) {
	coinID := c.Param("id")

	days := 0
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid days value"))
			return
		}
		days = parsed
	}

	points, err := h.marketService.GetHistory(c.Request.Context(), coinID, days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coin_id": coinID, "prices": points})
}

// GetOverview returns the top coins by market cap
// @Summary     Get market overview
// @Description Get the top coins by market cap with current prices
// @Tags        market
// @Accept      json
// @Produce     json
// @Param       limit query int false "Number of coins, 1-50 (default 10)"
// @Success     200 {object} map[string]interface{} "Top market coins"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Price data unavailable"
// @Router      /market/overview [get]
func (h *MarketHandler) GetOverview(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid limit value"))
			return
		}
		limit = parsed
	}

	coins, err := h.marketService.GetOverview(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coins": coins})
}
