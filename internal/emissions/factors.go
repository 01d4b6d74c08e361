package emissions

import (
	"errors"
	"fmt"
)

// Factors holds the conversion factors applied by Compute.
// A Factors value is built once at startup and passed by value, so a
// calculation can never observe a change mid-run.
type Factors struct {
	// Electricity is kg CO2 per currency unit of electricity bill.
	Electricity float64 `json:"electricity" yaml:"electricity"`

	// Gas is kg CO2 per currency unit of natural gas bill.
	Gas float64 `json:"gas" yaml:"gas"`

	// FuelBill is kg CO2 per currency unit of transportation fuel bill.
	FuelBill float64 `json:"fuel_bill" yaml:"fuel_bill"`

	// Waste is kg CO2 per kg of waste before the recycling offset.
	Waste float64 `json:"waste" yaml:"waste"`

	// Travel is kg CO2 per liter of vehicle fuel.
	Travel float64 `json:"travel" yaml:"travel"`
}

// DefaultFactors returns the standard factor set.
func DefaultFactors() Factors {
	return Factors{
		Electricity: DefaultElectricityFactor,
		Gas:         DefaultGasFactor,
		FuelBill:    DefaultFuelBillFactor,
		Waste:       DefaultWasteFactor,
		Travel:      DefaultTravelFactor,
	}
}

// Validate checks that every factor is finite and non-negative.
// All offending factors are reported together.
func (f Factors) Validate() error {
	var errs []error
	for _, nv := range []struct {
		name  string
		value float64
	}{
		{"electricity", f.Electricity},
		{"gas", f.Gas},
		{"fuel_bill", f.FuelBill},
		{"waste", f.Waste},
		{"travel", f.Travel},
	} {
		if err := ValidateValue(nv.value); err != nil {
			errs = append(errs, fmt.Errorf("factor %s: %w", nv.name, err))
		}
	}
	return errors.Join(errs...)
}
