package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrScenarioNotFound = errors.New("scenario not found")

// StressScenario is a named market shock. MarketChange is a signed
// percent applied to the whole portfolio; SectorChanges overrides it
// per sector when the caller knows sector exposure.
type StressScenario struct {
	ID            string
	Name          string
	Description   string
	MarketChange  float64
	SectorChanges map[string]float64

	// Custom marks user-authored scenarios. Presets are read-only
	// reference data rebuilt identically on every load.
	Custom bool
}

// ShockFor returns the percent change that applies to a holding in the
// given sector.
func (s StressScenario) ShockFor(sector string) float64 {
	if s.SectorChanges != nil {
		if shock, ok := s.SectorChanges[sector]; ok {
			return shock
		}
	}
	return s.MarketChange
}

func (s StressScenario) DeepCopy() StressScenario {
	out := s
	if s.SectorChanges != nil {
		out.SectorChanges = map[string]float64{}
		for sector, shock := range s.SectorChanges {
			out.SectorChanges[sector] = shock
		}
	}
	return out
}

// StressTestResult is one run of one scenario against the portfolio.
// The service returns a fresh result per invocation and keeps nothing;
// retention is the caller's problem.
type StressTestResult struct {
	ScenarioID             string
	PortfolioValue         decimal.Decimal
	PortfolioChange        decimal.Decimal
	PortfolioChangePercent float64
	VarBreach              bool
	MaxDrawdown            float64
	LeveragedPositions     []string
}

// HoldingImpact is the per-position breakdown behind a stress result.
type HoldingImpact struct {
	Symbol       string
	Sector       string
	ShockPercent float64
	ValueChange  decimal.Decimal
}

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// ImpactBand is the finer-grained bucketing the dashboard uses for
// color coding. Different thresholds than RiskLevel - don't merge them.
type ImpactBand string

const (
	ImpactBandGreen  ImpactBand = "green"
	ImpactBandYellow ImpactBand = "yellow"
	ImpactBandOrange ImpactBand = "orange"
	ImpactBandRed    ImpactBand = "red"
)
