package greenops

import (
	"fmt"
	"math"
)

// Calculate computes equivalencies for an annual total in kg CO2.
//
// Totals below MinEquivalencyThresholdKg produce an empty output without
// error. A negative total returns ErrNegativeValue and a NaN or infinite
// total returns ErrCalculationOverflow; the caller is expected to skip the
// equivalency display in both cases.
func Calculate(totalKg float64) (EquivalencyOutput, error) {
	if math.IsInf(totalKg, 0) || math.IsNaN(totalKg) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if totalKg < 0 {
		return EquivalencyOutput{IsEmpty: true}, ErrNegativeValue
	}
	if totalKg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: totalKg, IsEmpty: true}, nil
	}

	types := []EquivalencyType{
		EquivalencyMilesDriven,
		EquivalencySmartphonesCharged,
		EquivalencyTreeSeedlings,
		EquivalencyHomeDays,
	}

	results := make([]EquivalencyResult, 0, len(types))
	for _, typ := range types {
		factor, label := typ.factor()
		v := totalKg / factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           typ,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          label,
		})
	}

	miles := results[0].FormattedValue
	phones := results[1].FormattedValue

	return EquivalencyOutput{
		InputKg:     totalKg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", miles, phones),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", miles, phones),
	}, nil
}

// Lines returns one "~N label" line per result, for report sections.
func (o EquivalencyOutput) Lines() []string {
	lines := make([]string, 0, len(o.Results))
	for _, r := range o.Results {
		lines = append(lines, fmt.Sprintf("~%s %s", r.FormattedValue, r.Label))
	}
	return lines
}

// formatEquivalencyValue uses million/billion scaling for large values and a
// rounded, comma-separated integer otherwise.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
