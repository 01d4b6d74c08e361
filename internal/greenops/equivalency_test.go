package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		totalKg     float64
		wantMiles   float64
		wantPhones  float64
		wantIsEmpty bool
		wantErr     error
	}{
		{
			name:       "150kg reference value",
			totalKg:    150.0,
			wantMiles:  781.25, // 150 / 0.192
			wantPhones: 18248.18,
		},
		{
			name:       "exactly at threshold",
			totalKg:    1.0,
			wantMiles:  5.208333,
			wantPhones: 121.65,
		},
		{
			name:        "below threshold returns empty",
			totalKg:     0.5,
			wantIsEmpty: true,
		},
		{
			name:        "zero returns empty",
			totalKg:     0,
			wantIsEmpty: true,
		},
		{
			name:        "negative total returns error",
			totalKg:     -100,
			wantIsEmpty: true,
			wantErr:     ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.totalKg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIsEmpty, got.IsEmpty)
			if tt.wantIsEmpty {
				assert.Empty(t, got.Results)
				return
			}

			require.Len(t, got.Results, 4)
			assert.Equal(t, EquivalencyMilesDriven, got.Results[0].Type)
			assert.InEpsilon(t, tt.wantMiles, got.Results[0].Value, 0.01)
			assert.Equal(t, EquivalencySmartphonesCharged, got.Results[1].Type)
			assert.InEpsilon(t, tt.wantPhones, got.Results[1].Value, 0.01)
			assert.Contains(t, got.DisplayText, "Equivalent to driving")
			assert.Contains(t, got.CompactText, "phones")
		})
	}
}

func TestCalculate_ReportTotal(t *testing.T) {
	got, err := Calculate(2019.78)
	require.NoError(t, err)

	assert.Equal(t, "Equivalent to driving ~10,520 miles or charging ~245,715 smartphones", got.DisplayText)
	assert.Equal(t, "(≈ 10,520 mi, 245,715 phones)", got.CompactText)

	lines := got.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "~10,520 miles driven", lines[0])
	assert.Equal(t, "~34 tree seedlings grown for 10 years", lines[2])
	assert.Equal(t, "~110 days of home electricity", lines[3])
}

func TestCalculate_LargeTotalIsAbbreviated(t *testing.T) {
	got, err := Calculate(1_000_000)
	require.NoError(t, err)

	assert.Equal(t, "~5.2 million", got.Results[0].FormattedValue)
	assert.Equal(t, "~121.7 million", got.Results[1].FormattedValue)
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "MilesDriven", EquivalencyMilesDriven.String())
	assert.Equal(t, "HomeDays", EquivalencyHomeDays.String())
	assert.Equal(t, "EquivalencyType(42)", EquivalencyType(42).String())
}
