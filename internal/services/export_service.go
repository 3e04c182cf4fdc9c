package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/models"
)

// exportService renders portfolio data as CSV downloads and a plain-text
// report. It is stateless; callers pass in already-loaded data.
type exportService struct{}

// NewExportService creates a new ExportServicer.
func NewExportService() ExportServicer {
	return &exportService{}
}

// PortfolioCSV renders the current holdings as CSV with a trailing totals
// row, separated from the data rows by one blank line.
func (s *exportService) PortfolioCSV(view *PortfolioView) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Coin", "Amount", "Current Price (USD)", "Current Value (USD)",
		"Cost Basis (USD)", "Avg Cost Per Coin", "Profit/Loss (USD)",
		"Profit/Loss (%)", "24h Change (%)",
	}
	if err := w.Write(header); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, h := range view.Holdings {
		avgCost := 0.0
		if h.Quantity > 0 {
			avgCost = h.CostBasis / h.Quantity
		}
		row := []string{
			h.Name,
			fmt.Sprintf("%.4f", h.Quantity),
			fmt.Sprintf("%.2f", h.CurrentPrice),
			fmt.Sprintf("%.2f", h.CurrentValue),
			fmt.Sprintf("%.2f", h.CostBasis),
			fmt.Sprintf("%.2f", avgCost),
			fmt.Sprintf("%.2f", h.ProfitLoss),
			fmt.Sprintf("%.2f", h.ProfitLossPct),
			fmt.Sprintf("%.2f", h.Change24h),
		}
		if err := w.Write(row); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	m := view.Metrics
	totals := []string{
		"TOTAL", "", "",
		fmt.Sprintf("%.2f", m.TotalValue),
		fmt.Sprintf("%.2f", m.TotalCost),
		"",
		fmt.Sprintf("%.2f", m.TotalProfitLoss),
		fmt.Sprintf("%.2f", m.TotalProfitLossPct),
		"",
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	buf.WriteString("\n")

	w = csv.NewWriter(&buf)
	if err := w.Write(totals); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return buf.Bytes(), nil
}

// TransactionsCSV renders the transaction ledger as CSV.
func (s *exportService) TransactionsCSV(transactions []models.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"ID", "Date", "Type", "Coin", "Amount",
		"Price Per Coin (USD)", "Total (USD)",
	}
	if err := w.Write(header); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, t := range transactions {
		row := []string{
			fmt.Sprintf("%d", t.ID),
			t.Date.Format("2006-01-02 15:04:05"),
			strings.ToUpper(string(t.Type)),
			t.CoinName,
			fmt.Sprintf("%.4f", t.Quantity),
			fmt.Sprintf("%.2f", t.PricePerCoin),
			fmt.Sprintf("%.2f", t.TotalCost),
		}
		if err := w.Write(row); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return buf.Bytes(), nil
}

// ReportText renders a plain-text summary of the portfolio suitable for
// download or pasting into a message.
func (s *exportService) ReportText(view *PortfolioView, generatedAt time.Time) string {
	m := view.Metrics
	rule := strings.Repeat("=", 50)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("CRYPTO PORTFOLIO REPORT\n")
	b.WriteString("Generated: " + generatedAt.Format("2006-01-02 15:04:05") + "\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "Total Portfolio Value: $%s\n", groupThousands(m.TotalValue))
	fmt.Fprintf(&b, "Total Cost Basis: $%s\n", groupThousands(m.TotalCost))
	fmt.Fprintf(&b, "Total Profit/Loss: $%s\n\n", groupThousands(m.TotalProfitLoss))

	fmt.Fprintf(&b, "Risk Score: %g/100 (%s)\n", m.RiskScore, m.RiskLabel)
	fmt.Fprintf(&b, "Value at Risk (%.0f%%): $%s\n", m.Confidence*100, groupThousands(m.ValueAtRisk))
	fmt.Fprintf(&b, "Diversification Score: %g/100\n\n", m.DiversificationScore)

	b.WriteString("HOLDINGS:\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")

	for _, h := range view.Holdings {
		fmt.Fprintf(&b, "  %s: %.4f coins\n", h.Name, h.Quantity)
		fmt.Fprintf(&b, "    Value: $%s | P/L: $%s\n", groupThousands(h.CurrentValue), groupThousands(h.ProfitLoss))
	}

	return b.String()
}

// groupThousands formats an amount with two decimals and commas between
// thousands groups, e.g. 1234567.8 -> "1,234,567.80".
func groupThousands(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
