package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MaxDrawdown(t *testing.T) {
	t.Run("single peak to trough", func(t *testing.T) {
		// peak 200, trough 120 -> -40%
		values := []float64{100, 200, 150, 120, 180}
		require.InDelta(t, -40, MaxDrawdown(values), 1e-9)
	})

	t.Run("monotonic rise has no drawdown", func(t *testing.T) {
		require.Zero(t, MaxDrawdown([]float64{100, 110, 120, 130}))
	})

	t.Run("short series", func(t *testing.T) {
		require.Zero(t, MaxDrawdown(nil))
		require.Zero(t, MaxDrawdown([]float64{100}))
	})

	t.Run("later deeper drawdown wins", func(t *testing.T) {
		// first drawdown -10%, second (from peak 300) -50%
		values := []float64{100, 90, 300, 150}
		require.InDelta(t, -50, MaxDrawdown(values), 1e-9)
	})
}

func Test_HistoricalVaR(t *testing.T) {
	t.Run("95th percentile loss", func(t *testing.T) {
		// worst decile all at -8% -> the 5th percentile sits inside it
		returns := make([]float64, 0, 100)
		for i := 0; i < 90; i++ {
			returns = append(returns, 0.1)
		}
		for i := 0; i < 10; i++ {
			returns = append(returns, -8)
		}

		varResult, err := HistoricalVaR(returns, 0.95)
		require.NoError(t, err)
		require.InDelta(t, 8, varResult, 1e-9)
	})

	t.Run("all-positive returns mean zero VaR", func(t *testing.T) {
		returns := make([]float64, 40)
		for i := range returns {
			returns[i] = 1 + float64(i)*0.1
		}
		varResult, err := HistoricalVaR(returns, 0.95)
		require.NoError(t, err)
		require.Zero(t, varResult)
	})

	t.Run("invalid confidence", func(t *testing.T) {
		_, err := HistoricalVaR([]float64{1, 2}, 1.5)
		require.Error(t, err)
	})

	t.Run("empty returns", func(t *testing.T) {
		_, err := HistoricalVaR(nil, 0.95)
		require.Error(t, err)
	})
}

func Test_DailyReturns(t *testing.T) {
	returns := DailyReturns([]float64{100, 110, 99})
	require.Len(t, returns, 2)
	require.InDelta(t, 10, returns[0], 1e-9)
	require.InDelta(t, -10, returns[1], 1e-9)

	t.Run("zero values skipped", func(t *testing.T) {
		returns := DailyReturns([]float64{0, 100, 110})
		require.Len(t, returns, 1)
		require.InDelta(t, 10, returns[0], 1e-9)
	})
}
