package calculator

import (
	"alphadesk/internal/domain"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// ApplyScenario applies a flat market shock to the portfolio value.
// At the whole-portfolio level the percent flows through unchanged;
// sector-level detail comes from HoldingImpacts.
func ApplyScenario(scenario domain.StressScenario, portfolioValue decimal.Decimal) (impact decimal.Decimal, impactPercent float64) {
	impactPercent = scenario.MarketChange
	impact = portfolioValue.Mul(decimal.NewFromFloat(scenario.MarketChange)).Div(decimal.NewFromInt(100))
	return impact, impactPercent
}

// RiskLevelFor buckets a signed percent change into the risk levels the
// dashboard color-codes on. Boundaries are inclusive on the upper bound
// of each bucket: exactly -10 is still low, exactly -25 still medium.
func RiskLevelFor(impactPercent float64) domain.RiskLevel {
	switch {
	case impactPercent >= -10:
		return domain.RiskLevelLow
	case impactPercent >= -25:
		return domain.RiskLevelMedium
	case impactPercent >= -40:
		return domain.RiskLevelHigh
	default:
		return domain.RiskLevelCritical
	}
}

// ImpactBandFor is the visual-coding classifier. Separate thresholds
// from RiskLevelFor; the two are not interchangeable.
func ImpactBandFor(impactPercent float64) domain.ImpactBand {
	switch {
	case impactPercent >= -5:
		return domain.ImpactBandGreen
	case impactPercent >= -15:
		return domain.ImpactBandYellow
	case impactPercent >= -30:
		return domain.ImpactBandOrange
	default:
		return domain.ImpactBandRed
	}
}

// HoldingImpacts breaks a scenario down per position, using the sector
// override when one exists. Input order is preserved.
func HoldingImpacts(scenario domain.StressScenario, holdings []domain.Holding) []domain.HoldingImpact {
	impacts := make([]domain.HoldingImpact, 0, len(holdings))
	for _, h := range holdings {
		shock := scenario.ShockFor(h.Sector)
		impacts = append(impacts, domain.HoldingImpact{
			Symbol:       h.Symbol,
			Sector:       h.Sector,
			ShockPercent: shock,
			ValueChange:  h.CurrentValue().Mul(decimal.NewFromFloat(shock)).Div(decimal.NewFromInt(100)),
		})
	}
	return impacts
}

// SelectLeveragedPositions picks the positions flagged "at risk" for a
// stress result: worst absolute shock first, dropping anything under
// the materiality threshold, capped at limit. The threshold and limit
// are policy, so they come from the caller's config.
func SelectLeveragedPositions(impacts []domain.HoldingImpact, materialityThreshold float64, limit int) []string {
	material := make([]domain.HoldingImpact, 0, len(impacts))
	for _, impact := range impacts {
		if math.Abs(impact.ShockPercent) >= materialityThreshold {
			material = append(material, impact)
		}
	}

	sort.SliceStable(material, func(i, j int) bool {
		return math.Abs(material[i].ShockPercent) > math.Abs(material[j].ShockPercent)
	})

	if limit >= 0 && len(material) > limit {
		material = material[:limit]
	}

	symbols := make([]string, 0, len(material))
	for _, impact := range material {
		symbols = append(symbols, impact.Symbol)
	}
	return symbols
}
