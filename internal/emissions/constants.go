package emissions

// Default emission factors. They are rough proxies; bill-based factors assume
// a fixed price per unit of energy.
const (
	// DefaultElectricityFactor is kg CO2 per currency unit spent on electricity.
	DefaultElectricityFactor = 0.0005

	// DefaultGasFactor is kg CO2 per currency unit spent on natural gas.
	DefaultGasFactor = 0.0053

	// DefaultFuelBillFactor is kg CO2 per currency unit spent on transportation fuel.
	DefaultFuelBillFactor = 2.32

	// DefaultWasteFactor is kg CO2 per kg of waste.
	DefaultWasteFactor = 0.57

	// DefaultTravelFactor is kg CO2 per liter of vehicle fuel.
	DefaultTravelFactor = 2.31
)

// Scaling constants used by the formulas.
const (
	// MonthsPerYear annualizes monthly figures.
	MonthsPerYear = 12

	// PercentScale converts a 0-100 percentage to a fraction.
	PercentScale = 100.0

	// KmPerEfficiencyUnit is the distance basis of a liters-per-100-km rating.
	KmPerEfficiencyUnit = 100.0
)
