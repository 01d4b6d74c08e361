package emissions

// Compute converts an InputRecord into an annual Breakdown using the given factors.
//
// Monthly figures (bills, waste) are multiplied by 12; travel is already yearly.
// The recycling share is subtracted from the per-kg waste factor rather than
// from the waste product, so a recycle percent above 100*Waste yields a
// negative WasteCO2. That result is valid output, not an error.
//
// Compute performs no rounding and no validation.
func Compute(record InputRecord, factors Factors) Breakdown {
	energy := EnergyCO2(record, factors)
	waste := WasteCO2(record, factors)
	travel := TravelCO2(record, factors)

	return Breakdown{
		EnergyCO2: energy,
		WasteCO2:  waste,
		TravelCO2: travel,
		TotalCO2:  energy + waste + travel,
	}
}

// EnergyCO2 returns the annual emission from electricity, gas and fuel bills.
func EnergyCO2(record InputRecord, factors Factors) float64 {
	monthly := record.ElectricityBill*factors.Electricity +
		record.GasBill*factors.Gas +
		record.FuelBill*factors.FuelBill
	return monthly * MonthsPerYear
}

// WasteCO2 returns the annual emission from waste net of the recycling offset.
func WasteCO2(record InputRecord, factors Factors) float64 {
	return record.WasteKg * (factors.Waste - record.RecyclePercent/PercentScale) * MonthsPerYear
}

// TravelCO2 returns the annual emission from business travel.
func TravelCO2(record InputRecord, factors Factors) float64 {
	return record.TravelKmPerYear / KmPerEfficiencyUnit * record.FuelEfficiencyLPer100Km * factors.Travel
}
