package calculator

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// MaxDrawdown returns the largest peak-to-trough decline in a value
// series, as a signed percent (0 or negative). Series shorter than two
// points have no drawdown.
func MaxDrawdown(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	peak := values[0]
	maxDrawdown := 0.0
	for _, v := range values[1:] {
		if v > peak {
			peak = v
			continue
		}
		if peak <= 0 {
			continue
		}
		drawdown := (v - peak) / peak * 100
		if drawdown < maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	return maxDrawdown
}

// HistoricalVaR estimates value-at-risk from a daily return series
// (percents, signed) at the given confidence level. Loss is reported
// as a positive percent, e.g. VaR95 of 3.2 means "5% of days lost more
// than 3.2%".
func HistoricalVaR(returns []float64, confidence float64) (float64, error) {
	if confidence <= 0 || confidence >= 1 {
		return 0, fmt.Errorf("confidence must be in (0, 1), got %f", confidence)
	}

	percentile, err := stats.Percentile(returns, (1-confidence)*100)
	if err != nil {
		return 0, fmt.Errorf("failed to compute return percentile: %w", err)
	}

	if percentile >= 0 {
		return 0, nil
	}
	return -percentile, nil
}

// DailyReturns converts a value series to day-over-day percent changes.
func DailyReturns(values []float64) []float64 {
	returns := []float64{}
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		returns = append(returns, (values[i]-values[i-1])/values[i-1]*100)
	}
	return returns
}
