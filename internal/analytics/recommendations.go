package analytics

import "fmt"

// Recommendation texts. The risk trio is mutually exclusive; the rest are
// independent rules that may all fire.
const (
	msgEmptyPortfolio = "Start by adding some cryptocurrencies to your portfolio"
	msgHighRisk       = "Your portfolio has high risk. Consider adding stablecoins or lower-volatility assets."
	msgModerateRisk   = "Moderate risk level. Your portfolio has a balanced risk profile."
	msgLowRisk        = "Low risk level. Your portfolio is relatively stable."
	msgFewAssets      = "Consider adding more assets (at least 3-5) for better diversification."
	msgMostlyLosing   = "Most of your assets are currently at a loss. Consider reviewing your strategy."
)

// Recommendations builds an ordered list of advice strings by evaluating
// a fixed rule sequence. Emission order is part of the contract:
// risk level, asset count, rebalancing, then performance.
func Recommendations(records []ValuationRecord, riskScore, divScore float64) []string {
	if len(records) == 0 {
		return []string{msgEmptyPortfolio}
	}

	var recs []string

	switch {
	case riskScore > 70:
		recs = append(recs, msgHighRisk)
	case riskScore > 40:
		recs = append(recs, msgModerateRisk)
	default:
		recs = append(recs, msgLowRisk)
	}

	if len(records) < 3 {
		recs = append(recs, msgFewAssets)
	}

	if divScore < 40 {
		totalValue := 0.0
		for _, r := range records {
			totalValue += r.CurrentValue
		}
		// One message per dominant holding, not just the first found.
		for _, r := range records {
			pct := 0.0
			if totalValue > 0 {
				pct = r.CurrentValue / totalValue * 100
			}
			if pct > 60 {
				recs = append(recs, fmt.Sprintf("%s makes up %.0f%% of your portfolio. Consider rebalancing.", r.Name, pct))
			}
		}
	}

	losing := 0
	for _, r := range records {
		if r.ProfitLoss < 0 {
			losing++
		}
	}
	if losing > len(records)/2 {
		recs = append(recs, msgMostlyLosing)
	}

	return recs
}
