package domain

import (
	"github.com/shopspring/decimal"
)

// Holding is one position in a portfolio snapshot. Weights are percents
// (0-100), not fractions - keep it consistent everywhere.
type Holding struct {
	Symbol          string
	Sector          string
	CurrentQuantity decimal.Decimal
	CurrentPrice    decimal.Decimal

	// CurrentWeight is this holding's share of total portfolio value.
	// The snapshot should sum to ~100 but we don't enforce that here.
	CurrentWeight float64

	// TargetWeight is the user's desired weight. nil means "no edit",
	// which defaults to CurrentWeight.
	TargetWeight *float64
}

func (h Holding) CurrentValue() decimal.Decimal {
	return h.CurrentQuantity.Mul(h.CurrentPrice)
}

// EffectiveTargetWeight resolves the nil default.
func (h Holding) EffectiveTargetWeight() float64 {
	if h.TargetWeight != nil {
		return *h.TargetWeight
	}
	return h.CurrentWeight
}

func (h Holding) DeepCopy() Holding {
	out := h
	if h.TargetWeight != nil {
		w := *h.TargetWeight
		out.TargetWeight = &w
	}
	return out
}

// TotalValue sums position values. Callers that already know the
// portfolio value should pass it through instead of recomputing.
func TotalValue(holdings []Holding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.CurrentValue())
	}
	return total
}
