// Package analytics implements the portfolio valuation and risk engine.
//
// Every function is a pure mapping from an in-memory holdings list and a
// price snapshot to plain output values: no I/O, no shared state, safe to
// call concurrently. Callers supply an already-fetched snapshot; caching
// and retries are their concern.
package analytics

// Holding is the engine's input position: a quantity of one coin and the
// cumulative amount spent acquiring it. Zero-quantity positions are
// filtered out upstream and must not be passed in.
type Holding struct {
	ID        string
	Name      string
	Quantity  float64
	CostBasis float64
}

// Quote is a price snapshot entry for one coin.
type Quote struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
}

// ValuationRecord is the per-holding valuation output.
type ValuationRecord struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	CurrentPrice  float64 `json:"current_price"`
	CurrentValue  float64 `json:"current_value"`
	CostBasis     float64 `json:"cost_basis"`
	ProfitLoss    float64 `json:"profit_loss"`
	ProfitLossPct float64 `json:"profit_loss_pct"`
	Change24h     float64 `json:"change_24h"`
	RiskLabel     string  `json:"risk_label"`
	RiskScore     float64 `json:"risk_score"`
}

// PortfolioMetrics aggregates the portfolio-level outputs.
type PortfolioMetrics struct {
	TotalValue           float64  `json:"total_value"`
	TotalCost            float64  `json:"total_cost"`
	TotalProfitLoss      float64  `json:"total_profit_loss"`
	TotalProfitLossPct   float64  `json:"total_profit_loss_pct"`
	RiskScore            float64  `json:"risk_score"`
	RiskLabel            string   `json:"risk_label"`
	ValueAtRisk          float64  `json:"value_at_risk"`
	Confidence           float64  `json:"confidence"`
	DiversificationScore float64  `json:"diversification_score"`
	DiversificationNote  string   `json:"diversification_note"`
	Recommendations      []string `json:"recommendations"`
}

// Valuate produces one ValuationRecord per holding whose coin ID has a
// quote. Holdings without a quote are silently excluded from the output
// and from every aggregate built on it; callers that need stale-price
// warnings must diff input against output IDs.
func Valuate(holdings []Holding, quotes map[string]Quote) []ValuationRecord {
	records := make([]ValuationRecord, 0, len(holdings))
	for _, h := range holdings {
		q, ok := quotes[h.ID]
		if !ok {
			continue
		}

		value := h.Quantity * q.Price
		pl := value - h.CostBasis
		plPct := 0.0
		if h.CostBasis > 0 {
			plPct = pl / h.CostBasis * 100
		}

		records = append(records, ValuationRecord{
			ID:            h.ID,
			Name:          h.Name,
			Quantity:      h.Quantity,
			CurrentPrice:  q.Price,
			CurrentValue:  value,
			CostBasis:     h.CostBasis,
			ProfitLoss:    pl,
			ProfitLossPct: plPct,
			Change24h:     q.Change24h,
			RiskLabel:     RiskLevel(q.Change24h),
			RiskScore:     RiskScore(q.Change24h),
		})
	}
	return records
}

// Totals sums the per-holding fields across all records. The profit/loss
// percentage is 0 when total cost is 0.
func Totals(records []ValuationRecord) (totalValue, totalCost, profitLoss, profitLossPct float64) {
	for _, r := range records {
		totalValue += r.CurrentValue
		totalCost += r.CostBasis
	}
	profitLoss = totalValue - totalCost
	if totalCost > 0 {
		profitLossPct = profitLoss / totalCost * 100
	}
	return totalValue, totalCost, profitLoss, profitLossPct
}

// Analyze runs the full pipeline: valuation plus every portfolio metric.
// Confidence selects the VaR z-score; pass DefaultConfidence for the
// standard 95% estimate.
func Analyze(holdings []Holding, quotes map[string]Quote, confidence float64) ([]ValuationRecord, PortfolioMetrics) {
	records := Valuate(holdings, quotes)
	totalValue, totalCost, pl, plPct := Totals(records)
	riskScore, riskLabel := PortfolioRisk(records)
	divScore, divNote := DiversificationScore(records)

	metrics := PortfolioMetrics{
		TotalValue:           totalValue,
		TotalCost:            totalCost,
		TotalProfitLoss:      pl,
		TotalProfitLossPct:   plPct,
		RiskScore:            riskScore,
		RiskLabel:            riskLabel,
		ValueAtRisk:          ValueAtRisk(records, confidence),
		Confidence:           confidence,
		DiversificationScore: divScore,
		DiversificationNote:  divNote,
		Recommendations:      Recommendations(records, riskScore, divScore),
	}
	return records, metrics
}
