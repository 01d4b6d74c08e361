package input

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
)

func TestStaticProvider(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		p := StaticProvider{Org: "  Acme ", Values: emissions.InputRecord{WasteKg: 10}}

		sub, err := Collect(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, "Acme", sub.Organization)
		assert.InDelta(t, 10.0, sub.Record.WasteKg, 0)
	})

	t.Run("non-finite value", func(t *testing.T) {
		p := StaticProvider{Org: "Acme", Values: emissions.InputRecord{TravelKmPerYear: math.Inf(1)}}

		_, err := p.Record(context.Background())
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, emissions.ErrNonFinite)

		var inputErr *InvalidInputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "travel_km_per_year", inputErr.Field)
		assert.Equal(t, "+Inf", inputErr.Value)
	})

	t.Run("blank organization", func(t *testing.T) {
		_, err := StaticProvider{}.Organization(context.Background())
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, ErrEmptyOrganization)
	})
}

func TestWithOrganization(t *testing.T) {
	base := StaticProvider{Org: "From File"}

	got, err := WithOrganization(base, "From Flag").Organization(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "From Flag", got)

	got, err = WithOrganization(base, "  ").Organization(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "From File", got)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr error
	}{
		{raw: "0", want: 0},
		{raw: " 12.75 ", want: 12.75},
		{raw: "1e3", want: 1000},
		{raw: "", wantErr: ErrNotANumber},
		{raw: "ten", wantErr: ErrNotANumber},
		{raw: "-1", wantErr: emissions.ErrNegativeValue},
		{raw: "Inf", wantErr: emissions.ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseValue(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0)
		})
	}
}

func TestFields_RoundTrip(t *testing.T) {
	fields := Fields()
	require.Len(t, fields, 7)

	var rec emissions.InputRecord
	for i, f := range fields {
		f.Set(&rec, float64(i+1))
	}
	for i, f := range fields {
		assert.InDelta(t, float64(i+1), f.Get(rec), 0, f.Key)
	}
	assert.InDelta(t, 7.0, rec.FuelEfficiencyLPer100Km, 0)
}

func TestInvalidInputError_Message(t *testing.T) {
	err := &InvalidInputError{Field: "waste_kg", Value: "-2", Err: emissions.ErrNegativeValue}
	assert.Equal(t, `invalid input for waste_kg ("-2"): value cannot be negative`, err.Error())

	err = &InvalidInputError{Field: "organization", Err: ErrEmptyOrganization}
	assert.Equal(t, "invalid input for organization: organization name cannot be empty", err.Error())
}
