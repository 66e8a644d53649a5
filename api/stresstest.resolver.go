package api

import (
	"alphadesk/internal/calculator"
	"alphadesk/internal/domain"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

type stressTestRequest struct {
	ScenarioID string `json:"scenarioId"`
}

type stressTestResponse struct {
	ScenarioID             string   `json:"scenarioId"`
	PortfolioValue         float64  `json:"portfolioValue"`
	PortfolioChange        float64  `json:"portfolioChange"`
	PortfolioChangePercent float64  `json:"portfolioChangePercent"`
	RiskLevel              string   `json:"riskLevel"`
	ImpactBand             string   `json:"impactBand"`
	VarBreach              bool     `json:"varBreach"`
	MaxDrawdown            float64  `json:"maxDrawdown"`
	LeveragedPositions     []string `json:"leveragedPositions"`
}

func (m ApiHandler) stressTest(c *gin.Context) {
	var requestBody stressTestRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse stress test request: %w", err), c, 400)
		return
	}
	if requestBody.ScenarioID == "" {
		returnErrorJsonCode(fmt.Errorf("scenarioId is required"), c, 400)
		return
	}

	result, err := m.StressTestService.Run(requestBody.ScenarioID)
	if err != nil {
		if errors.Is(err, domain.ErrScenarioNotFound) {
			returnErrorJsonCode(err, c, 404)
			return
		}
		returnErrorJson(fmt.Errorf("failed to run stress test: %w", err), c)
		return
	}

	c.JSON(200, stressTestResponse{
		ScenarioID:             result.ScenarioID,
		PortfolioValue:         result.PortfolioValue.InexactFloat64(),
		PortfolioChange:        result.PortfolioChange.InexactFloat64(),
		PortfolioChangePercent: result.PortfolioChangePercent,
		RiskLevel:              string(calculator.RiskLevelFor(result.PortfolioChangePercent)),
		ImpactBand:             string(calculator.ImpactBandFor(result.PortfolioChangePercent)),
		VarBreach:              result.VarBreach,
		MaxDrawdown:            result.MaxDrawdown,
		LeveragedPositions:     result.LeveragedPositions,
	})
}
