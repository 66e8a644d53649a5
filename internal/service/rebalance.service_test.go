package service

import (
	"alphadesk/internal/domain"
	mock_repository "alphadesk/internal/repository/mocks"
	"alphadesk/internal/util"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_RebalanceService_Preview(t *testing.T) {
	t.Run("caller-supplied holdings skip the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingsRepository := mock_repository.NewMockHoldingsRepository(ctrl)

		handler := NewRebalanceService(holdingsRepository)
		result, err := handler.Preview(RebalancePreviewInput{
			Holdings: []domain.Holding{
				{Symbol: "AAA", CurrentQuantity: decimal.NewFromInt(100), CurrentPrice: decimal.NewFromInt(10), CurrentWeight: 50},
				{Symbol: "BBB", CurrentQuantity: decimal.NewFromInt(50), CurrentPrice: decimal.NewFromInt(20), CurrentWeight: 50},
			},
			TargetWeights: map[string]float64{"AAA": 70, "BBB": 30},
		})
		require.NoError(t, err)

		require.Equal(t, "2000", result.TotalPortfolioValue.String())
		require.Len(t, result.Trades, 2)
		require.Empty(t, result.Warnings)

		require.Equal(t, domain.TradeActionBuy, result.Trades[0].Action)
		require.EqualValues(t, 40, result.Trades[0].Quantity)
		require.Equal(t, domain.TradeActionSell, result.Trades[1].Action)
		require.EqualValues(t, 20, result.Trades[1].Quantity)

		require.Equal(t, "400", result.Summary.TotalBuy.String())
		require.Equal(t, "400", result.Summary.TotalSell.String())
		require.InDelta(t, 20, result.Summary.TurnoverPercent, 1e-9)
	})

	t.Run("falls back to stored snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingsRepository := mock_repository.NewMockHoldingsRepository(ctrl)

		holdingsRepository.EXPECT().
			GetHoldings().
			Return([]domain.Holding{
				{Symbol: "AAA", CurrentQuantity: decimal.NewFromInt(10), CurrentPrice: decimal.NewFromInt(100), CurrentWeight: 100},
			}, nil)

		handler := NewRebalanceService(holdingsRepository)
		result, err := handler.Preview(RebalancePreviewInput{
			TargetWeights: map[string]float64{"AAA": 50},
		})
		require.NoError(t, err)

		require.Equal(t, "1000", result.TotalPortfolioValue.String())
		require.Len(t, result.Trades, 1)
		require.Equal(t, domain.TradeActionSell, result.Trades[0].Action)
		require.EqualValues(t, 5, result.Trades[0].Quantity)
	})

	t.Run("explicit portfolio value override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingsRepository := mock_repository.NewMockHoldingsRepository(ctrl)

		handler := NewRebalanceService(holdingsRepository)
		result, err := handler.Preview(RebalancePreviewInput{
			Holdings: []domain.Holding{
				{Symbol: "AAA", CurrentQuantity: decimal.NewFromInt(10), CurrentPrice: decimal.NewFromInt(100), CurrentWeight: 100},
			},
			TargetWeights:       map[string]float64{"AAA": 50},
			TotalPortfolioValue: util.DecimalPointer(decimal.Zero),
		})
		require.NoError(t, err)
		require.Empty(t, result.Trades)
	})

	t.Run("unnormalized targets surface a warning but still compute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingsRepository := mock_repository.NewMockHoldingsRepository(ctrl)

		handler := NewRebalanceService(holdingsRepository)
		result, err := handler.Preview(RebalancePreviewInput{
			Holdings: []domain.Holding{
				{Symbol: "AAA", CurrentQuantity: decimal.NewFromInt(100), CurrentPrice: decimal.NewFromInt(10), CurrentWeight: 100},
			},
			TargetWeights: map[string]float64{"AAA": 150},
		})
		require.NoError(t, err)
		require.NotEmpty(t, result.Warnings)
		require.Len(t, result.Trades, 1)
		require.Equal(t, domain.TradeActionBuy, result.Trades[0].Action)
	})
}
