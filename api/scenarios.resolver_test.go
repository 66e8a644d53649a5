package api

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_sortScenarios(t *testing.T) {
	t.Run("presets before customs, alphabetical within", func(t *testing.T) {
		input := []scenarioResponse{
			{Name: "My Shock", Custom: true},
			{Name: "COVID-19 Crash"},
			{Name: "Another Custom", Custom: true},
			{Name: "Bull Run"},
		}
		sortScenarios(input)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]scenarioResponse{
					{Name: "Bull Run"},
					{Name: "COVID-19 Crash"},
					{Name: "Another Custom", Custom: true},
					{Name: "My Shock", Custom: true},
				},
				input,
			),
		)
	})
}
