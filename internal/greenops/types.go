// Package greenops turns an annual kg CO2 total into relatable equivalencies
// such as miles driven or smartphones charged, using EPA-published factors.
//
// Equivalencies are presentation only. They never feed back into the
// emissions calculation.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged is full smartphone charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings is tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays is days of average home electricity use.
	EquivalencyHomeDays
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// factor returns the kg CO2e divisor and display label for the type.
func (e EquivalencyType) factor() (float64, string) {
	switch e {
	case EquivalencyMilesDriven:
		return EPAMilesDrivenFactor, "miles driven"
	case EquivalencySmartphonesCharged:
		return EPASmartphoneChargeFactor, "smartphones charged"
	case EquivalencyTreeSeedlings:
		return EPATreeSeedlingFactor, "tree seedlings grown for 10 years"
	case EquivalencyHomeDays:
		return EPAHomeDayFactor, "days of home electricity"
	default:
		return 0, ""
	}
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds every equivalency for one total.
type EquivalencyOutput struct {
	// InputKg is the annual total the equivalencies were derived from.
	InputKg float64 `json:"input_kg"`

	// Results are in priority order: miles, smartphones, trees, home days.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose sentence used in reports.
	// Example: "Equivalent to driving ~781 miles or charging ~18,248 smartphones"
	DisplayText string `json:"display_text"`

	// CompactText is the short form used in terminal summaries.
	// Example: "(≈ 781 mi, 18,248 phones)"
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}
