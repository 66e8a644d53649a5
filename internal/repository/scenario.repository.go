package repository

import (
	"alphadesk/internal/domain"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

const (
	// slider bounds for user-authored scenarios
	MinMarketChange = -80.0
	MaxMarketChange = 80.0
)

type ScenarioRepository interface {
	Get(id string) (*domain.StressScenario, error)
	List() ([]domain.StressScenario, error)
	Add(s domain.StressScenario) (*domain.StressScenario, error)
}

type scenarioRepositoryHandler struct {
	mu      sync.RWMutex
	presets []domain.StressScenario
	custom  []domain.StressScenario
}

// NewScenarioRepository builds the fixed preset catalogue plus an empty
// session-scoped store for user scenarios. Nothing persists - presets
// are regenerated identically on every construction.
func NewScenarioRepository() ScenarioRepository {
	return &scenarioRepositoryHandler{
		presets: presetScenarios(),
	}
}

func presetScenarios() []domain.StressScenario {
	return []domain.StressScenario{
		{
			ID:           "financial-crisis-2008",
			Name:         "2008 Financial Crisis",
			Description:  "Global credit crunch with banks hit hardest",
			MarketChange: -50,
			SectorChanges: map[string]float64{
				"Financials":  -65,
				"Real Estate": -60,
				"Energy":      -45,
			},
		},
		{
			ID:           "covid-crash",
			Name:         "COVID-19 Crash",
			Description:  "Pandemic shutdown selloff of March 2020",
			MarketChange: -30,
			SectorChanges: map[string]float64{
				"Energy":      -50,
				"Industrials": -40,
				"Technology":  -20,
			},
		},
		{
			ID:           "dotcom-bust",
			Name:         "Dot-Com Bust",
			Description:  "Tech valuation collapse of 2000-2002",
			MarketChange: -45,
			SectorChanges: map[string]float64{
				"Technology": -70,
				"Utilities":  -15,
			},
		},
		{
			ID:           "rate-shock",
			Name:         "Rate Shock",
			Description:  "Rapid 300bps hike compressing multiples",
			MarketChange: -15,
			SectorChanges: map[string]float64{
				"Real Estate": -25,
				"Utilities":   -20,
				"Financials":  -5,
			},
		},
		{
			ID:           "bull-run",
			Name:         "Bull Run",
			Description:  "Broad risk-on rally",
			MarketChange: 30,
		},
	}
}

func (h *scenarioRepositoryHandler) Get(id string) (*domain.StressScenario, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.presets {
		if s.ID == id {
			out := s.DeepCopy()
			return &out, nil
		}
	}
	for _, s := range h.custom {
		if s.ID == id {
			out := s.DeepCopy()
			return &out, nil
		}
	}

	return nil, fmt.Errorf("failed to get scenario %s: %w", id, domain.ErrScenarioNotFound)
}

func (h *scenarioRepositoryHandler) List() ([]domain.StressScenario, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.StressScenario, 0, len(h.presets)+len(h.custom))
	for _, s := range h.presets {
		out = append(out, s.DeepCopy())
	}
	for _, s := range h.custom {
		out = append(out, s.DeepCopy())
	}
	return out, nil
}

// Add stores a user-authored scenario for the session. Validation is
// deliberately thin: non-empty name/description and a market change
// within the slider bounds.
func (h *scenarioRepositoryHandler) Add(s domain.StressScenario) (*domain.StressScenario, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("scenario name is required")
	}
	if s.Description == "" {
		return nil, fmt.Errorf("scenario description is required")
	}
	if s.MarketChange < MinMarketChange || s.MarketChange > MaxMarketChange {
		return nil, fmt.Errorf("market change %.2f outside [%.0f, %.0f]", s.MarketChange, MinMarketChange, MaxMarketChange)
	}

	s.ID = uuid.NewString()
	s.Custom = true

	h.mu.Lock()
	defer h.mu.Unlock()
	h.custom = append(h.custom, s.DeepCopy())

	return &s, nil
}
