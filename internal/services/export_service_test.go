package services

import (
	"strings"
	"testing"
	"time"

	"cryptofolio/internal/analytics"
	"cryptofolio/internal/models"
	"cryptofolio/internal/testutil"
)

func sampleView() *PortfolioView {
	return &PortfolioView{
		Holdings: []analytics.ValuationRecord{
			{
				ID: "bitcoin", Name: "Bitcoin", Quantity: 0.2,
				CurrentPrice: 60000, CurrentValue: 12000,
				CostBasis: 10000, ProfitLoss: 2000, ProfitLossPct: 20,
				Change24h: -3.5,
			},
			{
				ID: "ethereum", Name: "Ethereum", Quantity: 2,
				CurrentPrice: 2500, CurrentValue: 5000,
				CostBasis: 6000, ProfitLoss: -1000, ProfitLossPct: -16.666667,
				Change24h: 1.2,
			},
		},
		Metrics: analytics.PortfolioMetrics{
			TotalValue:           17000,
			TotalCost:            16000,
			TotalProfitLoss:      1000,
			TotalProfitLossPct:   6.25,
			RiskScore:            21.4,
			RiskLabel:            "Low",
			ValueAtRisk:          500.25,
			Confidence:           0.95,
			DiversificationScore: 81.1,
		},
	}
}

func TestPortfolioCSV(t *testing.T) {
	svc := NewExportService()

	out, err := svc.PortfolioCSV(sampleView())
	testutil.AssertNoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, 2 rows, blank line and totals, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Coin,Amount,Current Price (USD)") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "Bitcoin,0.2000,60000.00,12000.00,10000.00,50000.00,2000.00,20.00,-3.50" {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if lines[2] != "Ethereum,2.0000,2500.00,5000.00,6000.00,3000.00,-1000.00,-16.67,1.20" {
		t.Errorf("unexpected second row %q", lines[2])
	}
	if lines[3] != "" {
		t.Errorf("expected blank separator before totals, got %q", lines[3])
	}
	if lines[4] != "TOTAL,,,17000.00,16000.00,,1000.00,6.25," {
		t.Errorf("unexpected totals row %q", lines[4])
	}
}

func TestTransactionsCSV(t *testing.T) {
	svc := NewExportService()

	tx := models.Transaction{
		UserID:       1,
		CoinID:       "bitcoin",
		CoinName:     "Bitcoin",
		Type:         models.TransactionTypeBuy,
		Quantity:     0.5,
		PricePerCoin: 40000,
		TotalCost:    20000,
		Date:         time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
	}
	tx.ID = 42

	out, err := svc.TransactionsCSV([]models.Transaction{tx})
	testutil.AssertNoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and 1 row, got %d lines", len(lines))
	}
	if lines[0] != "ID,Date,Type,Coin,Amount,Price Per Coin (USD),Total (USD)" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "42,2026-03-15 09:30:00,BUY,Bitcoin,0.5000,40000.00,20000.00" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestReportText(t *testing.T) {
	svc := NewExportService()
	generated := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

	report := svc.ReportText(sampleView(), generated)

	for _, want := range []string{
		"CRYPTO PORTFOLIO REPORT",
		"Generated: 2026-03-15 09:30:00",
		"Total Portfolio Value: $17,000.00",
		"Total Cost Basis: $16,000.00",
		"Total Profit/Loss: $1,000.00",
		"Risk Score: 21.4/100 (Low)",
		"Value at Risk (95%): $500.25",
		"Diversification Score: 81.1/100",
		"  Bitcoin: 0.2000 coins",
		"    Value: $12,000.00 | P/L: $2,000.00",
		"    Value: $5,000.00 | P/L: $-1,000.00",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	for _, tt := range []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999.999, "1,000.00"},
		{1234567.8, "1,234,567.80"},
		{-12345.678, "-12,345.68"},
		{100, "100.00"},
	} {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%f) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
