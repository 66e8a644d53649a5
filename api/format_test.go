package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_formatCurrency(t *testing.T) {
	require.Equal(t, "$0.00", formatCurrency(0))
	require.Equal(t, "$1,234.50", formatCurrency(1234.5))
	require.Equal(t, "$1,000,000.00", formatCurrency(1e6))
	require.Equal(t, "-$50,000.00", formatCurrency(-50000))
	require.Equal(t, "$2.00", formatCurrency(1.999))
}

func Test_formatPercent(t *testing.T) {
	require.Equal(t, "12.34%", formatPercent(12.336))
	require.Equal(t, "-50.00%", formatPercent(-50))
}
