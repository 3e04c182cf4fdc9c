package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cryptofolio/internal/models"
	"cryptofolio/internal/pagination"
	"cryptofolio/internal/services"
)

// ExportHandler handles CSV and report downloads.
type ExportHandler struct {
	transactionService services.TransactionServicer
	portfolioService   services.PortfolioServicer
	exportService      services.ExportServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(
	transactionService services.TransactionServicer,
	portfolioService services.PortfolioServicer,
	exportService services.ExportServicer,
) *ExportHandler {
	return &ExportHandler{
		transactionService: transactionService,
		portfolioService:   portfolioService,
		exportService:      exportService,
	}
}

// ExportPortfolioCSV streams the valued portfolio as a CSV download
// @Summary     Export portfolio CSV
// @Description Download the current valued portfolio as a CSV file
// @Tags        export
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Price data unavailable"
// @Router      /export/portfolio.csv [get]
func (h *ExportHandler) ExportPortfolioCSV(c *gin.Context) {
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

	data, err := h.exportService.PortfolioCSV(view)
	if err != nil {
		respondWithError(c, err)
		return
	}

	writeDownload(c, "portfolio.csv", "text/csv", data)
}

// ExportTransactionsCSV streams the full ledger as a CSV download
// @Summary     Export transactions CSV
// @Description Download the full transaction history as a CSV file
// @Tags        export
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/transactions.csv [get]
func (h *ExportHandler) ExportTransactionsCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.allTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.exportService.TransactionsCSV(transactions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	writeDownload(c, "transactions.csv", "text/csv", data)
}

// ExportReport streams a plain-text portfolio summary
// @Summary     Export text report
// @Description Download a plain-text portfolio summary report
// @Tags        export
// @Produce     text/plain
// @Security    BearerAuth
// @Success     200 {string} string "Text report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Price data unavailable"
// @Router      /export/report.txt [get]
func (h *ExportHandler) ExportReport(c *gin.Context) {
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

	report := h.exportService.ReportText(view, time.Now())
	writeDownload(c, "report.txt", "text/plain; charset=utf-8", []byte(report))
}

// allTransactions drains the paginated listing, oldest page last.
func (h *ExportHandler) allTransactions(userID uint) ([]models.Transaction, error) {
	var all []models.Transaction
	page := pagination.PageRequest{Page: 1, PageSize: 100}

	for {
		result, err := h.transactionService.GetUserTransactions(userID, page, services.TransactionFilter{})
		if err != nil {
			return nil, err
		}
		all = append(all, result.Data...)
		if page.Page >= result.TotalPages {
			return all, nil
		}
		page.Page++
	}
}

func writeDownload(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
