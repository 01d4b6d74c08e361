package cli_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/input"
)

func TestCalculate_JSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "", "calculate",
		"--org", "Acme",
		"--electricity-bill", "100",
		"--gas-bill", "50",
		"--waste-kg", "200",
		"--recycle-percent", "50",
		"--travel-km-per-year", "10000",
		"--fuel-efficiency-l-per-100km", "8",
		"--output", "json",
	)
	require.NoError(t, err)

	var got struct {
		Organization string `json:"organization"`
		Breakdown    struct {
			EnergyCO2 float64 `json:"energy_co2"`
			WasteCO2  float64 `json:"waste_co2"`
			TravelCO2 float64 `json:"travel_co2"`
			TotalCO2  float64 `json:"total_co2"`
		} `json:"breakdown"`
		AdviceBranch  string   `json:"advice_branch"`
		Advice        []string `json:"advice"`
		Equivalencies *struct {
			DisplayText string `json:"display_text"`
		} `json:"equivalencies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "Acme", got.Organization)
	assert.InDelta(t, 3.78, got.Breakdown.EnergyCO2, 1e-9)
	assert.InDelta(t, 168.0, got.Breakdown.WasteCO2, 1e-9)
	assert.InDelta(t, 1848.0, got.Breakdown.TravelCO2, 1e-9)
	assert.InDelta(t, 2019.78, got.Breakdown.TotalCO2, 1e-9)
	assert.Equal(t, "travel", got.AdviceBranch)
	assert.Len(t, got.Advice, 3)
	require.NotNil(t, got.Equivalencies)
	assert.Contains(t, got.Equivalencies.DisplayText, "10,520 miles")
}

func TestCalculate_Table(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "", "calculate", "--org", "Beta", "--waste-kg", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "Beta Carbon Footprint Report")
	assert.Contains(t, out, "Waste Production")
	assert.Contains(t, out, "68.40")
	assert.Contains(t, out, "1. Implement a comprehensive recycling program to reduce waste production.")
}

func TestCalculate_TieGivesGenericAdvice(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "", "calculate", "--org", "Zero", "--gas-bill", "0", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"advice_branch": "generic"`)
	assert.Contains(t, out, "Continue to monitor and optimize")
}

func TestCalculate_BadOutput(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "", "calculate", "--org", "Acme", "--gas-bill", "1", "--output", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestCalculate_OverflowIsInvalidInput(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "", "calculate", "--org", "Acme", "--fuel-bill", "1e308", "--output", "json")
	require.ErrorIs(t, err, input.ErrInvalidInput)
	assert.ErrorIs(t, err, emissions.ErrNonFinite)
	assert.NotContains(t, out, "total_co2")
}
