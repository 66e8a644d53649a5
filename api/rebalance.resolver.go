package api

import (
	"alphadesk/internal/domain"
	"alphadesk/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type rebalanceRequest struct {
	// Holdings is optional - omit it to rebalance the stored snapshot.
	Holdings []rebalanceRequestHolding `json:"holdings"`

	// TargetWeights maps symbol -> percent (0-100).
	TargetWeights map[string]float64 `json:"targetWeights"`

	// TotalPortfolioValue is optional; derived from holdings when omitted.
	TotalPortfolioValue *float64 `json:"totalPortfolioValue"`
}

type rebalanceRequestHolding struct {
	Symbol        string   `json:"symbol"`
	Sector        string   `json:"sector"`
	Quantity      float64  `json:"quantity"`
	Price         float64  `json:"price"`
	CurrentWeight float64  `json:"currentWeight"`
	TargetWeight  *float64 `json:"targetWeight"`
}

type rebalanceResponseTrade struct {
	Symbol     string  `json:"symbol"`
	Action     string  `json:"action"`
	Quantity   int64   `json:"quantity"`
	Price      float64 `json:"price"`
	TotalValue float64 `json:"totalValue"`
}

type rebalanceResponse struct {
	Trades              []rebalanceResponseTrade `json:"trades"`
	TotalBuy            float64                  `json:"totalBuy"`
	TotalSell           float64                  `json:"totalSell"`
	TurnoverPercent     float64                  `json:"turnoverPercent"`
	TotalPortfolioValue float64                  `json:"totalPortfolioValue"`
	Warnings            []string                 `json:"warnings"`
}

func (m ApiHandler) rebalance(c *gin.Context) {
	var requestBody rebalanceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse rebalance request: %w", err), c, 400)
		return
	}

	in := service.RebalancePreviewInput{
		TargetWeights: requestBody.TargetWeights,
	}
	if requestBody.Holdings != nil {
		in.Holdings = []domain.Holding{}
		for _, h := range requestBody.Holdings {
			in.Holdings = append(in.Holdings, domain.Holding{
				Symbol:          h.Symbol,
				Sector:          h.Sector,
				CurrentQuantity: decimal.NewFromFloat(h.Quantity),
				CurrentPrice:    decimal.NewFromFloat(h.Price),
				CurrentWeight:   h.CurrentWeight,
				TargetWeight:    h.TargetWeight,
			})
		}
	}
	if requestBody.TotalPortfolioValue != nil {
		v := decimal.NewFromFloat(*requestBody.TotalPortfolioValue)
		in.TotalPortfolioValue = &v
	}

	result, err := m.RebalanceService.Preview(in)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute rebalance preview: %w", err), c)
		return
	}

	out := rebalanceResponse{
		Trades:              []rebalanceResponseTrade{},
		TotalBuy:            result.Summary.TotalBuy.InexactFloat64(),
		TotalSell:           result.Summary.TotalSell.InexactFloat64(),
		TurnoverPercent:     result.Summary.TurnoverPercent,
		TotalPortfolioValue: result.TotalPortfolioValue.InexactFloat64(),
		Warnings:            result.Warnings,
	}
	for _, t := range result.Trades {
		out.Trades = append(out.Trades, rebalanceResponseTrade{
			Symbol:     t.Symbol,
			Action:     string(t.Action),
			Quantity:   t.Quantity,
			Price:      t.Price.InexactFloat64(),
			TotalValue: t.TotalValue().InexactFloat64(),
		})
	}

	c.JSON(200, out)
}
