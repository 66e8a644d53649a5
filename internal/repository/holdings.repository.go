package repository

import (
	"alphadesk/internal/domain"
	"math"

	"github.com/shopspring/decimal"
)

type HoldingsRepository interface {
	GetHoldings() ([]domain.Holding, error)
	GetPortfolioValue() (decimal.Decimal, error)
	GetHistoricalValues() ([]float64, error)
}

type holdingsRepositoryHandler struct {
	holdings   []domain.Holding
	historical []float64
}

// NewHoldingsRepository seeds a deterministic sample portfolio, the
// same role the dashboard's mock data generators played. A real
// deployment would swap this for the holdings feed.
func NewHoldingsRepository() HoldingsRepository {
	return &holdingsRepositoryHandler{
		holdings:   seedHoldings(),
		historical: seedHistoricalValues(),
	}
}

type seedPosition struct {
	symbol   string
	sector   string
	quantity int64
	price    float64
}

func seedHoldings() []domain.Holding {
	seeds := []seedPosition{
		{"AAPL", "Technology", 50, 180},
		{"MSFT", "Technology", 20, 410},
		{"GOOG", "Technology", 45, 150},
		{"JPM", "Financials", 60, 195},
		{"XOM", "Energy", 70, 110},
		{"PLD", "Real Estate", 55, 120},
		{"NEE", "Utilities", 90, 75},
		{"CAT", "Industrials", 30, 330},
	}

	total := 0.0
	for _, s := range seeds {
		total += float64(s.quantity) * s.price
	}

	holdings := make([]domain.Holding, 0, len(seeds))
	for _, s := range seeds {
		holdings = append(holdings, domain.Holding{
			Symbol:          s.symbol,
			Sector:          s.sector,
			CurrentQuantity: decimal.NewFromInt(s.quantity),
			CurrentPrice:    decimal.NewFromFloat(s.price),
			CurrentWeight:   float64(s.quantity) * s.price / total * 100,
		})
	}
	return holdings
}

// seedHistoricalValues fakes ~3 months of daily portfolio marks with a
// mild uptrend and some wobble. Deterministic so tests and repeated
// loads agree.
func seedHistoricalValues() []float64 {
	values := make([]float64, 0, 63)
	for i := 0; i < 63; i++ {
		day := float64(i)
		values = append(values, 60000*(1+0.002*day+0.03*math.Sin(day/5)))
	}
	return values
}

func (h *holdingsRepositoryHandler) GetHoldings() ([]domain.Holding, error) {
	out := make([]domain.Holding, 0, len(h.holdings))
	for _, holding := range h.holdings {
		out = append(out, holding.DeepCopy())
	}
	return out, nil
}

func (h *holdingsRepositoryHandler) GetPortfolioValue() (decimal.Decimal, error) {
	return domain.TotalValue(h.holdings), nil
}

func (h *holdingsRepositoryHandler) GetHistoricalValues() ([]float64, error) {
	out := make([]float64, len(h.historical))
	copy(out, h.historical)
	return out, nil
}
