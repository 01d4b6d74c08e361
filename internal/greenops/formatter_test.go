package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "small number no separators", n: 123, want: "123"},
		{name: "four digits with separator", n: 1234, want: "1,234"},
		{name: "thousands", n: 18248, want: "18,248"},
		{name: "millions", n: 1234567, want: "1,234,567"},
		{name: "zero", n: 0, want: "0"},
		{name: "negative number", n: -1234, want: "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.n))
		})
	}
}

func TestFormatKg(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{name: "report total", v: 2019.78, want: "2,019.78"},
		{name: "small value", v: 3.78, want: "3.78"},
		{name: "zero", v: 0, want: "0.00"},
		{name: "rounds half cents", v: 1234.5678, want: "1,234.57"},
		{name: "negative waste", v: -1234.5, want: "-1,234.50"},
		{name: "carry into thousands", v: 999.999, want: "1,000.00"},
		{name: "beyond int64 range", v: 1e19, want: "10,000,000,000,000,000,000.00"},
		{name: "large negative", v: -2.5e19, want: "-25,000,000,000,000,000,000.00"},
		{name: "positive infinity", v: math.Inf(1), want: "+Inf"},
		{name: "negative infinity", v: math.Inf(-1), want: "-Inf"},
		{name: "not a number", v: math.NaN(), want: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatKg(tt.v))
		})
	}
}

func TestFormatLarge(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want string
	}{
		{name: "below threshold uses comma format", n: 999999, want: "999,999"},
		{name: "exactly one million", n: 1000000, want: "~1.0 million"},
		{name: "millions with decimal", n: 5200000, want: "~5.2 million"},
		{name: "billions", n: 1500000000, want: "~1.5 billion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLarge(tt.n))
		})
	}
}
