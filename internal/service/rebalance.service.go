package service

import (
	"alphadesk/internal/calculator"
	"alphadesk/internal/domain"
	"alphadesk/internal/repository"
	"fmt"

	"github.com/shopspring/decimal"
)

type RebalanceService interface {
	Preview(in RebalancePreviewInput) (*RebalancePreviewResult, error)
}

type rebalanceServiceHandler struct {
	HoldingsRepository repository.HoldingsRepository
}

func NewRebalanceService(holdingsRepository repository.HoldingsRepository) RebalanceService {
	return rebalanceServiceHandler{
		HoldingsRepository: holdingsRepository,
	}
}

type RebalancePreviewInput struct {
	// Holdings overrides the stored snapshot when the caller brings its
	// own positions. nil means "use the repository snapshot".
	Holdings []domain.Holding

	// TargetWeights maps symbol -> percent (0-100). Symbols missing
	// from the map keep their current weight.
	TargetWeights map[string]float64

	// TotalPortfolioValue overrides the derived value. nil means
	// "derive from holdings".
	TotalPortfolioValue *decimal.Decimal
}

type RebalancePreviewResult struct {
	Trades              []domain.Trade
	Summary             domain.RebalanceSummary
	Warnings            []string
	TotalPortfolioValue decimal.Decimal
}

// Preview computes the trade list for a set of target-weight edits.
// Purely a preview: nothing is executed or stored, and a later call
// fully replaces the result.
func (h rebalanceServiceHandler) Preview(in RebalancePreviewInput) (*RebalancePreviewResult, error) {
	holdings := in.Holdings
	if holdings == nil {
		var err error
		holdings, err = h.HoldingsRepository.GetHoldings()
		if err != nil {
			return nil, fmt.Errorf("failed to get holdings: %w", err)
		}
	}

	totalValue := domain.TotalValue(holdings)
	if in.TotalPortfolioValue != nil {
		totalValue = *in.TotalPortfolioValue
	}

	trades := calculator.ComputeTrades(holdings, in.TargetWeights, totalValue)

	return &RebalancePreviewResult{
		Trades:              trades,
		Summary:             calculator.SummarizeTrades(trades, totalValue),
		Warnings:            calculator.ValidateTargetWeights(holdings, in.TargetWeights),
		TotalPortfolioValue: totalValue,
	}, nil
}
