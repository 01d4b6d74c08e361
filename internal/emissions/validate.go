package emissions

import (
	"errors"
	"fmt"
	"math"
)

// ValidateValue reports whether v is acceptable as an input or factor.
// It returns ErrNonFinite for NaN or infinite values and ErrNegativeValue for
// values below zero.
func ValidateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFinite
	}
	if v < 0 {
		return ErrNegativeValue
	}
	return nil
}

// Validate checks every field of the record and joins the failures.
// Each failure names the field by its YAML key. RecyclePercent above 100 is
// accepted; Compute handles it like any other value.
func (r InputRecord) Validate() error {
	var errs []error
	for _, fv := range r.fieldValues() {
		if err := ValidateValue(fv.value); err != nil {
			errs = append(errs, &FieldError{Field: fv.key, Err: err})
		}
	}
	return errors.Join(errs...)
}

// CheckFinite reports every Breakdown component that overflowed to an
// infinity or NaN. Finite inputs can still produce one when they are close to
// the float64 limit. Negative components are valid and pass.
func (b Breakdown) CheckFinite() error {
	var errs []error
	for _, fv := range []fieldValue{
		{"energy_co2", b.EnergyCO2},
		{"waste_co2", b.WasteCO2},
		{"travel_co2", b.TravelCO2},
		{"total_co2", b.TotalCO2},
	} {
		if math.IsNaN(fv.value) || math.IsInf(fv.value, 0) {
			errs = append(errs, &FieldError{Field: fv.key, Err: ErrNonFinite})
		}
	}
	return errors.Join(errs...)
}

// FieldError ties a validation failure to an InputRecord field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

type fieldValue struct {
	key   string
	value float64
}

func (r InputRecord) fieldValues() []fieldValue {
	return []fieldValue{
		{"electricity_bill", r.ElectricityBill},
		{"gas_bill", r.GasBill},
		{"fuel_bill", r.FuelBill},
		{"waste_kg", r.WasteKg},
		{"recycle_percent", r.RecyclePercent},
		{"travel_km_per_year", r.TravelKmPerYear},
		{"fuel_efficiency_l_per_100km", r.FuelEfficiencyLPer100Km},
	}
}
