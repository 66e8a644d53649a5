package calculator

import (
	"alphadesk/internal/domain"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ComputeTrades converts (current weight, target weight) pairs into the
// whole-share trade list that moves the portfolio toward targets.
// targetWeights maps symbol -> percent (0-100); symbols missing from
// the map fall back to the holding's own target, which itself defaults
// to the current weight (i.e. no trade).
//
// Degenerate inputs never error: a zero portfolio value returns an
// empty list, zero-price holdings are skipped, and nothing checks that
// targets sum to 100 - run ValidateTargetWeights for that.
func ComputeTrades(holdings []domain.Holding, targetWeights map[string]float64, totalPortfolioValue decimal.Decimal) []domain.Trade {
	trades := []domain.Trade{}
	if totalPortfolioValue.LessThanOrEqual(decimal.Zero) {
		return trades
	}

	for _, h := range holdings {
		if h.CurrentPrice.LessThanOrEqual(decimal.Zero) {
			continue
		}

		targetPct := h.EffectiveTargetWeight()
		if pct, ok := targetWeights[h.Symbol]; ok {
			targetPct = pct
		}

		targetValue := totalPortfolioValue.Mul(decimal.NewFromFloat(targetPct)).Div(decimal.NewFromInt(100))
		valueDiff := targetValue.Sub(h.CurrentValue())

		// zero diff lands on the buy branch and produces a zero-share
		// buy, which gets dropped below. Not a tri-state on purpose.
		action := domain.TradeActionBuy
		if valueDiff.IsNegative() {
			action = domain.TradeActionSell
		}

		// always floor: whole-share execution leaves small residual
		// drift rather than overshooting the target
		quantity := valueDiff.Abs().Div(h.CurrentPrice).Floor().IntPart()
		if quantity <= 0 {
			continue
		}

		trades = append(trades, domain.Trade{
			Symbol:   h.Symbol,
			Action:   action,
			Quantity: quantity,
			Price:    h.CurrentPrice,
		})
	}

	return trades
}

// SummarizeTrades reduces a trade list to the aggregate stats the
// summary views show.
func SummarizeTrades(trades []domain.Trade, totalPortfolioValue decimal.Decimal) domain.RebalanceSummary {
	totalBuy := decimal.Zero
	totalSell := decimal.Zero
	for _, t := range trades {
		if t.Action == domain.TradeActionBuy {
			totalBuy = totalBuy.Add(t.TotalValue())
		} else {
			totalSell = totalSell.Add(t.TotalValue())
		}
	}

	turnover := 0.0
	if totalPortfolioValue.IsPositive() {
		turnover = totalBuy.Add(totalSell).
			Div(decimal.NewFromInt(2)).
			Div(totalPortfolioValue).
			InexactFloat64() * 100
	}

	return domain.RebalanceSummary{
		TotalBuy:        totalBuy,
		TotalSell:       totalSell,
		TurnoverPercent: turnover,
	}
}

// tolerance for "weights sum to 100" - generous enough to absorb
// float noise from slider inputs
const targetWeightSumTolerance = 0.01

// ValidateTargetWeights reports warnings (not errors) when the
// effective targets don't describe a fully-allocated portfolio.
// ComputeTrades happily computes against unnormalized targets, so
// callers should surface these alongside the trade list.
func ValidateTargetWeights(holdings []domain.Holding, targetWeights map[string]float64) []string {
	warnings := []string{}

	sum := 0.0
	for _, h := range holdings {
		pct := h.EffectiveTargetWeight()
		if override, ok := targetWeights[h.Symbol]; ok {
			pct = override
		}
		if pct < 0 || pct > 100 {
			warnings = append(warnings, fmt.Sprintf("target weight for %s is %.2f, outside [0, 100]", h.Symbol, pct))
		}
		sum += pct
	}

	for symbol := range targetWeights {
		found := false
		for _, h := range holdings {
			if h.Symbol == symbol {
				found = true
				break
			}
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf("target weight set for %s, which is not held", symbol))
		}
	}

	if len(holdings) > 0 && math.Abs(sum-100) > targetWeightSumTolerance {
		warnings = append(warnings, fmt.Sprintf("target weights sum to %.2f, not 100 - trades will not fully rebalance", sum))
	}

	return warnings
}
