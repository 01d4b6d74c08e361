package greenops

// EPA greenhouse gas equivalency factors (2024 edition), in kg CO2e per unit.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile of an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed by one tree seedling grown for 10 years.
	EPATreeSeedlingFactor = 60.0

	// EPAHomeDayFactor is kg CO2e per day of average US home electricity use.
	EPAHomeDayFactor = 18.3
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest total that gets equivalencies.
	// Below it the numbers round to nothing useful.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches display to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches display to "~X.X billion".
	BillionThreshold = 1_000_000_000
)
