package api

import (
	"fmt"
	"math"
	"strings"
)

// display-string helpers for the dashboard. Presentation only - all
// real math stays in decimals upstream.

func formatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole := int64(math.Floor(v))
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), cents)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func groupThousands(v int64) string {
	s := fmt.Sprintf("%d", v)
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return strings.Join(groups, ",")
}
