package service

import (
	"alphadesk/internal/calculator"
	"alphadesk/internal/domain"
	"alphadesk/internal/repository"
	"fmt"
	"math"
)

type StressTestService interface {
	Run(scenarioID string) (*domain.StressTestResult, error)
	ListScenarios() ([]domain.StressScenario, error)
	CreateScenario(s domain.StressScenario) (*domain.StressScenario, error)
}

// StressTestConfig holds the policy knobs the core deliberately does
// not own: the VaR threshold (normally fed by the risk API) and how
// "leveraged positions at risk" get selected.
type StressTestConfig struct {
	// VarConfidence for the historical VaR estimate, e.g. 0.95.
	VarConfidence float64

	// VarLimitPercent is the pre-defined breach threshold (positive
	// percent). Zero means derive one from the historical series.
	VarLimitPercent float64

	// MaterialityThresholdPercent filters per-holding shocks before
	// ranking them for the at-risk list.
	MaterialityThresholdPercent float64

	// MaxLeveragedPositions caps the at-risk list (top-N by |shock|).
	MaxLeveragedPositions int
}

func DefaultStressTestConfig() StressTestConfig {
	return StressTestConfig{
		VarConfidence:               0.95,
		MaterialityThresholdPercent: 20,
		MaxLeveragedPositions:       3,
	}
}

type stressTestServiceHandler struct {
	ScenarioRepository repository.ScenarioRepository
	HoldingsRepository repository.HoldingsRepository
	Config             StressTestConfig
}

func NewStressTestService(
	scenarioRepository repository.ScenarioRepository,
	holdingsRepository repository.HoldingsRepository,
	config StressTestConfig,
) StressTestService {
	return stressTestServiceHandler{
		ScenarioRepository: scenarioRepository,
		HoldingsRepository: holdingsRepository,
		Config:             config,
	}
}

func (h stressTestServiceHandler) ListScenarios() ([]domain.StressScenario, error) {
	return h.ScenarioRepository.List()
}

func (h stressTestServiceHandler) CreateScenario(s domain.StressScenario) (*domain.StressScenario, error) {
	return h.ScenarioRepository.Add(s)
}

// Run applies one scenario to the current portfolio and returns a
// fresh result. Re-running the same scenario just produces a new
// result; the service retains nothing between calls.
func (h stressTestServiceHandler) Run(scenarioID string) (*domain.StressTestResult, error) {
	scenario, err := h.ScenarioRepository.Get(scenarioID)
	if err != nil {
		return nil, err
	}

	holdings, err := h.HoldingsRepository.GetHoldings()
	if err != nil {
		return nil, fmt.Errorf("failed to get holdings: %w", err)
	}

	portfolioValue, err := h.HoldingsRepository.GetPortfolioValue()
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio value: %w", err)
	}

	// headline numbers always use the flat market change; sector
	// overrides only refine the per-holding breakdown
	impact, impactPercent := calculator.ApplyScenario(*scenario, portfolioValue)

	historical, err := h.HoldingsRepository.GetHistoricalValues()
	if err != nil {
		return nil, fmt.Errorf("failed to get historical values: %w", err)
	}

	varBreach, err := h.checkVarBreach(impactPercent, historical)
	if err != nil {
		return nil, err
	}

	var leveragedPositions []string
	if len(scenario.SectorChanges) > 0 {
		impacts := calculator.HoldingImpacts(*scenario, holdings)
		leveragedPositions = calculator.SelectLeveragedPositions(
			impacts,
			h.Config.MaterialityThresholdPercent,
			h.Config.MaxLeveragedPositions,
		)
	}

	return &domain.StressTestResult{
		ScenarioID:             scenario.ID,
		PortfolioValue:         portfolioValue.Add(impact),
		PortfolioChange:        impact,
		PortfolioChangePercent: impactPercent,
		VarBreach:              varBreach,
		MaxDrawdown:            shockedMaxDrawdown(historical, impactPercent),
		LeveragedPositions:     leveragedPositions,
	}, nil
}

// checkVarBreach compares the scenario loss against the VaR limit.
// When no limit is configured we fall back to a one-month scaling of
// the portfolio's own historical daily VaR.
func (h stressTestServiceHandler) checkVarBreach(impactPercent float64, historical []float64) (bool, error) {
	if impactPercent >= 0 {
		return false, nil
	}

	limit := h.Config.VarLimitPercent
	if limit == 0 {
		dailyVar, err := calculator.HistoricalVaR(calculator.DailyReturns(historical), h.Config.VarConfidence)
		if err != nil {
			return false, fmt.Errorf("failed to compute historical VaR: %w", err)
		}
		limit = dailyVar * math.Sqrt(21)
	}

	return -impactPercent > limit, nil
}

// shockedMaxDrawdown appends the post-shock mark to the historical
// series so the scenario itself can become the worst drawdown.
func shockedMaxDrawdown(historical []float64, impactPercent float64) float64 {
	if len(historical) == 0 {
		return 0
	}
	shocked := make([]float64, len(historical), len(historical)+1)
	copy(shocked, historical)
	shocked = append(shocked, historical[len(historical)-1]*(1+impactPercent/100))
	return calculator.MaxDrawdown(shocked)
}
