package repository

import (
	"alphadesk/internal/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ScenarioRepository(t *testing.T) {
	t.Run("presets are always present", func(t *testing.T) {
		repo := NewScenarioRepository()
		scenarios, err := repo.List()
		require.NoError(t, err)
		require.Len(t, scenarios, 5)

		crisis, err := repo.Get("financial-crisis-2008")
		require.NoError(t, err)
		require.Equal(t, "2008 Financial Crisis", crisis.Name)
		require.Equal(t, -50.0, crisis.MarketChange)
		require.False(t, crisis.Custom)
	})

	t.Run("presets regenerate identically", func(t *testing.T) {
		first, err := NewScenarioRepository().List()
		require.NoError(t, err)
		second, err := NewScenarioRepository().List()
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("mutating a returned preset does not stick", func(t *testing.T) {
		repo := NewScenarioRepository()
		crash, err := repo.Get("covid-crash")
		require.NoError(t, err)

		crash.MarketChange = -99
		crash.SectorChanges["Energy"] = -99

		again, err := repo.Get("covid-crash")
		require.NoError(t, err)
		require.Equal(t, -30.0, again.MarketChange)
		require.Equal(t, -50.0, again.SectorChanges["Energy"])
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := NewScenarioRepository()
		_, err := repo.Get("nope")
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrScenarioNotFound))
	})

	t.Run("add custom scenario", func(t *testing.T) {
		repo := NewScenarioRepository()
		created, err := repo.Add(domain.StressScenario{
			Name:         "My Shock",
			Description:  "what if everything drops 12%",
			MarketChange: -12,
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.True(t, created.Custom)

		fetched, err := repo.Get(created.ID)
		require.NoError(t, err)
		require.Equal(t, "My Shock", fetched.Name)

		scenarios, err := repo.List()
		require.NoError(t, err)
		require.Len(t, scenarios, 6)
	})

	t.Run("custom scenario validation", func(t *testing.T) {
		repo := NewScenarioRepository()

		_, err := repo.Add(domain.StressScenario{Description: "d", MarketChange: -10})
		require.ErrorContains(t, err, "name is required")

		_, err = repo.Add(domain.StressScenario{Name: "n", MarketChange: -10})
		require.ErrorContains(t, err, "description is required")

		_, err = repo.Add(domain.StressScenario{Name: "n", Description: "d", MarketChange: -81})
		require.ErrorContains(t, err, "outside")

		_, err = repo.Add(domain.StressScenario{Name: "n", Description: "d", MarketChange: 81})
		require.ErrorContains(t, err, "outside")

		// bounds themselves are allowed
		_, err = repo.Add(domain.StressScenario{Name: "n", Description: "d", MarketChange: -80})
		require.NoError(t, err)
	})
}
