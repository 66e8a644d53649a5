package api

import (
	"alphadesk/internal/domain"
	"fmt"
	"sort"

	"github.com/gin-gonic/gin"
)

type scenarioResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	MarketChange  float64            `json:"marketChange"`
	SectorChanges map[string]float64 `json:"sectorChanges,omitempty"`
	Custom        bool               `json:"custom"`
}

func newScenarioResponse(s domain.StressScenario) scenarioResponse {
	return scenarioResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		MarketChange:  s.MarketChange,
		SectorChanges: s.SectorChanges,
		Custom:        s.Custom,
	}
}

// presets first, then customs, each block alphabetical
func sortScenarios(scenarios []scenarioResponse) {
	sort.SliceStable(scenarios, func(i, j int) bool {
		if scenarios[i].Custom != scenarios[j].Custom {
			return !scenarios[i].Custom
		}
		return scenarios[i].Name < scenarios[j].Name
	})
}

func (m ApiHandler) listScenarios(c *gin.Context) {
	scenarios, err := m.StressTestService.ListScenarios()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list scenarios: %w", err), c)
		return
	}

	out := []scenarioResponse{}
	for _, s := range scenarios {
		out = append(out, newScenarioResponse(s))
	}
	sortScenarios(out)

	c.JSON(200, out)
}

type createScenarioRequest struct {
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	MarketChange  float64            `json:"marketChange"`
	SectorChanges map[string]float64 `json:"sectorChanges"`
}

func (m ApiHandler) createScenario(c *gin.Context) {
	var requestBody createScenarioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse scenario request: %w", err), c, 400)
		return
	}

	created, err := m.StressTestService.CreateScenario(domain.StressScenario{
		Name:          requestBody.Name,
		Description:   requestBody.Description,
		MarketChange:  requestBody.MarketChange,
		SectorChanges: requestBody.SectorChanges,
	})
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to create scenario: %w", err), c, 400)
		return
	}

	c.JSON(200, newScenarioResponse(*created))
}
