package cmd

import (
	"alphadesk/api"
	"alphadesk/internal/logger"
	"alphadesk/internal/repository"
	"alphadesk/internal/service"
	"os"
	"strconv"
)

// InitializeDependencies wires repositories -> services -> api. No
// external resources to open or close - everything is in-memory for
// the session.
func InitializeDependencies() (*api.ApiHandler, error) {
	scenarioRepository := repository.NewScenarioRepository()
	holdingsRepository := repository.NewHoldingsRepository()

	stressTestConfig := service.DefaultStressTestConfig()
	if limit := os.Getenv("ALPHADESK_VAR_LIMIT_PCT"); limit != "" {
		parsed, err := strconv.ParseFloat(limit, 64)
		if err == nil {
			stressTestConfig.VarLimitPercent = parsed
		}
	}

	rebalanceService := service.NewRebalanceService(holdingsRepository)
	stressTestService := service.NewStressTestService(
		scenarioRepository,
		holdingsRepository,
		stressTestConfig,
	)

	return &api.ApiHandler{
		RebalanceService:   rebalanceService,
		StressTestService:  stressTestService,
		HoldingsRepository: holdingsRepository,
		Logger:             logger.New(),
	}, nil
}
