package analytics

import "math"

// Risk labels shared by per-asset and portfolio classification.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
	RiskNA     = "N/A"
)

// DefaultConfidence is the VaR confidence level used when the caller does
// not specify one.
const DefaultConfidence = 0.95

// The constants below are ad hoc heuristics, not statistically derived
// thresholds. They are part of the output contract and must not change.
const (
	// A 15% absolute daily move saturates the 0-100 risk score.
	saturationPct = 15.0

	// Per-asset label breakpoints, on raw absolute 24h percent change.
	assetMediumPct = 3.0
	assetHighPct   = 7.0

	// Portfolio label breakpoints, on the 0-100 score. Intentionally a
	// separate set from the per-asset breakpoints.
	portfolioMediumScore = 30.0
	portfolioHighScore   = 60.0

	// One-tailed normal z-scores for the VaR approximation.
	zScore99 = 2.326
	zScore95 = 1.645
)

// RiskLevel classifies one asset's risk from its 24h percent change. The
// sign does not matter: a +8% swing is as risky as a -8% swing.
func RiskLevel(change24h float64) string {
	abs := math.Abs(change24h)
	switch {
	case abs < assetMediumPct:
		return RiskLow
	case abs < assetHighPct:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// RiskScore maps a 24h percent change onto a 0-100 score: a linear ramp
// on absolute change, saturating at a 15% daily move.
func RiskScore(change24h float64) float64 {
	return round1(math.Min(math.Abs(change24h)/saturationPct*100, 100))
}

// PortfolioRisk aggregates per-asset volatility into one 0-100 score,
// weighting each holding by its share of total current value. A zero-value
// portfolio has undefined risk and yields (0, "N/A").
func PortfolioRisk(records []ValuationRecord) (float64, string) {
	if len(records) == 0 {
		return 0, RiskNA
	}

	totalValue := 0.0
	for _, r := range records {
		totalValue += r.CurrentValue
	}
	if totalValue == 0 {
		return 0, RiskNA
	}

	weightedVolatility := 0.0
	for _, r := range records {
		weight := r.CurrentValue / totalValue
		weightedVolatility += weight * math.Abs(r.Change24h)
	}

	score := round1(math.Min(weightedVolatility/saturationPct*100, 100))

	label := RiskHigh
	switch {
	case score < portfolioMediumScore:
		label = RiskLow
	case score < portfolioHighScore:
		label = RiskMedium
	}
	return score, label
}

// ValueAtRisk estimates the 1-day currency loss exceeded with only
// (1 - confidence) probability, via a normal-distribution parametric
// approximation: totalValue x z x value-weighted |24h change| as a
// fraction. This conflates a single day's realized move with a volatility
// estimate; it is a deliberately simplified proxy, not textbook VaR.
func ValueAtRisk(records []ValuationRecord, confidence float64) float64 {
	if len(records) == 0 {
		return 0
	}

	totalValue := 0.0
	for _, r := range records {
		totalValue += r.CurrentValue
	}
	if totalValue == 0 {
		return 0
	}

	z := zScore95
	if confidence >= 0.99 {
		z = zScore99
	}

	weightedVol := 0.0
	for _, r := range records {
		weight := r.CurrentValue / totalValue
		weightedVol += weight * math.Abs(r.Change24h) / 100
	}

	return round2(totalValue * z * weightedVol)
}

// DiversificationScore measures concentration with the Herfindahl-
// Hirschman Index over value-weighted shares, rescaled to a 0-100
// higher-is-better score, plus a recommendation message.
func DiversificationScore(records []ValuationRecord) (float64, string) {
	if len(records) == 0 {
		return 0, "No holdings"
	}

	// HHI of a single asset is 1 regardless of n, so the formula below
	// would divide by zero; a one-asset portfolio is pinned to 10.
	if len(records) == 1 {
		return 10, "Very Low - Only 1 asset"
	}

	totalValue := 0.0
	for _, r := range records {
		totalValue += r.CurrentValue
	}
	if totalValue == 0 {
		return 0, "No value"
	}

	hhi := 0.0
	for _, r := range records {
		weight := r.CurrentValue / totalValue
		hhi += weight * weight
	}

	minHHI := 1 / float64(len(records)) // perfectly even split
	maxHHI := 1.0                       // all in one coin
	score := round1((1 - (hhi-minHHI)/(maxHHI-minHHI)) * 100)

	switch {
	case score >= 70:
		return score, "Good diversification"
	case score >= 40:
		return score, "Moderate - consider adding more assets"
	default:
		return score, "Low - portfolio is too concentrated"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
