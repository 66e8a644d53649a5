package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type holdingResponse struct {
	Symbol        string  `json:"symbol"`
	Sector        string  `json:"sector"`
	Quantity      float64 `json:"quantity"`
	Price         float64 `json:"price"`
	Value         float64 `json:"value"`
	ValueDisplay  string  `json:"valueDisplay"`
	CurrentWeight float64 `json:"currentWeight"`
	WeightDisplay string  `json:"weightDisplay"`
}

type holdingsResponse struct {
	Holdings            []holdingResponse `json:"holdings"`
	TotalPortfolioValue float64           `json:"totalPortfolioValue"`
	TotalValueDisplay   string            `json:"totalValueDisplay"`
}

func (m ApiHandler) holdings(c *gin.Context) {
	holdings, err := m.HoldingsRepository.GetHoldings()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get holdings: %w", err), c)
		return
	}
	totalValue, err := m.HoldingsRepository.GetPortfolioValue()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get portfolio value: %w", err), c)
		return
	}

	out := holdingsResponse{
		Holdings:            []holdingResponse{},
		TotalPortfolioValue: totalValue.InexactFloat64(),
		TotalValueDisplay:   formatCurrency(totalValue.InexactFloat64()),
	}
	for _, h := range holdings {
		value := h.CurrentValue().InexactFloat64()
		out.Holdings = append(out.Holdings, holdingResponse{
			Symbol:        h.Symbol,
			Sector:        h.Sector,
			Quantity:      h.CurrentQuantity.InexactFloat64(),
			Price:         h.CurrentPrice.InexactFloat64(),
			Value:         value,
			ValueDisplay:  formatCurrency(value),
			CurrentWeight: h.CurrentWeight,
			WeightDisplay: formatPercent(h.CurrentWeight),
		})
	}

	c.JSON(200, out)
}
