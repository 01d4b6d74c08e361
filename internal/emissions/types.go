// Package emissions converts an organization's self-reported energy, waste and
// travel figures into annual kg CO2 quantities.
//
// The package is a pure arithmetic layer: Compute trusts its input and never
// fails. Validation of raw values happens at the input boundary through
// ValidateValue and InputRecord.Validate.
package emissions

import "fmt"

// Category identifies one of the three emission sources in a Breakdown.
type Category int

const (
	// CategoryEnergy covers electricity, natural gas and transport fuel bills.
	CategoryEnergy Category = iota

	// CategoryWaste covers landfilled waste net of the recycled share.
	CategoryWaste

	// CategoryTravel covers business travel by vehicle.
	CategoryTravel
)

// String returns a machine-friendly name for the Category.
func (c Category) String() string {
	switch c {
	case CategoryEnergy:
		return "energy"
	case CategoryWaste:
		return "waste"
	case CategoryTravel:
		return "travel"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// Label returns the display label used in report tables.
func (c Category) Label() string {
	switch c {
	case CategoryEnergy:
		return "Energy Usage"
	case CategoryWaste:
		return "Waste Production"
	case CategoryTravel:
		return "Business Travel"
	default:
		return c.String()
	}
}

// Categories returns every Category in report order.
func Categories() []Category {
	return []Category{CategoryEnergy, CategoryWaste, CategoryTravel}
}

// InputRecord holds one reporting cycle's raw figures.
// Bills and waste are monthly; travel distance is yearly.
type InputRecord struct {
	// ElectricityBill is the average monthly electricity bill in currency units.
	ElectricityBill float64 `json:"electricity_bill" yaml:"electricity_bill"`

	// GasBill is the average monthly natural gas bill in currency units.
	GasBill float64 `json:"gas_bill" yaml:"gas_bill"`

	// FuelBill is the average monthly transportation fuel bill in currency units.
	FuelBill float64 `json:"fuel_bill" yaml:"fuel_bill"`

	// WasteKg is the waste generated per month in kilograms.
	WasteKg float64 `json:"waste_kg" yaml:"waste_kg"`

	// RecyclePercent is the share of waste recycled or composted, 0-100.
	RecyclePercent float64 `json:"recycle_percent" yaml:"recycle_percent"`

	// TravelKmPerYear is the business travel distance per year.
	TravelKmPerYear float64 `json:"travel_km_per_year" yaml:"travel_km_per_year"`

	// FuelEfficiencyLPer100Km is the average vehicle consumption in liters per 100 km.
	FuelEfficiencyLPer100Km float64 `json:"fuel_efficiency_l_per_100km" yaml:"fuel_efficiency_l_per_100km"`
}

// Breakdown is the annual emission result in kg CO2.
type Breakdown struct {
	EnergyCO2 float64 `json:"energy_co2"`
	WasteCO2  float64 `json:"waste_co2"`
	TravelCO2 float64 `json:"travel_co2"`
	TotalCO2  float64 `json:"total_co2"`
}

// Value returns the emission for a single category.
// Unknown categories return 0.
func (b Breakdown) Value(c Category) float64 {
	switch c {
	case CategoryEnergy:
		return b.EnergyCO2
	case CategoryWaste:
		return b.WasteCO2
	case CategoryTravel:
		return b.TravelCO2
	default:
		return 0
	}
}
