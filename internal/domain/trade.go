package domain

import (
	"github.com/shopspring/decimal"
)

type TradeAction string

const (
	TradeActionBuy  TradeAction = "buy"
	TradeActionSell TradeAction = "sell"
)

// Trade is a whole-share order that moves a holding toward its target
// weight. Quantity is always positive; direction lives in Action.
// A zero-diff holding resolves to a buy of zero shares and is dropped
// before it ever becomes a Trade.
type Trade struct {
	Symbol   string
	Action   TradeAction
	Quantity int64
	Price    decimal.Decimal
}

func (t Trade) TotalValue() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(t.Quantity))
}

// RebalanceSummary aggregates a proposed trade list for the summary
// views. Turnover is (buy+sell)/2 as a percent of portfolio value.
type RebalanceSummary struct {
	TotalBuy        decimal.Decimal
	TotalSell       decimal.Decimal
	TurnoverPercent float64
}
