package input

import (
	"github.com/gulievsadigg/carbon-emission/internal/emissions"
)

// OrganizationPrompt is the question asked before any figures.
const OrganizationPrompt = "Enter the name of your organization: "

// Field describes one numeric input: its key, the question shown to the
// operator and how to store the answer.
type Field struct {
	Key    string
	Prompt string
	// Placeholder is a short hint for form-style input.
	Placeholder string

	set func(*emissions.InputRecord, float64)
	get func(emissions.InputRecord) float64
}

// Set stores v in the record field this Field describes.
func (f Field) Set(r *emissions.InputRecord, v float64) { f.set(r, v) }

// Get reads the record field this Field describes.
func (f Field) Get(r emissions.InputRecord) float64 { return f.get(r) }

// Fields returns the numeric inputs in the order they are collected.
func Fields() []Field {
	return []Field{
		{
			Key:         "electricity_bill",
			Prompt:      "Enter your average monthly electricity bill in euros: ",
			Placeholder: "monthly electricity bill (EUR)",
			set:         func(r *emissions.InputRecord, v float64) { r.ElectricityBill = v },
			get:         func(r emissions.InputRecord) float64 { return r.ElectricityBill },
		},
		{
			Key:         "gas_bill",
			Prompt:      "Enter your average monthly natural gas bill in euros: ",
			Placeholder: "monthly natural gas bill (EUR)",
			set:         func(r *emissions.InputRecord, v float64) { r.GasBill = v },
			get:         func(r emissions.InputRecord) float64 { return r.GasBill },
		},
		{
			Key:         "fuel_bill",
			Prompt:      "Enter your average monthly fuel bill for transportation in euros: ",
			Placeholder: "monthly transportation fuel bill (EUR)",
			set:         func(r *emissions.InputRecord, v float64) { r.FuelBill = v },
			get:         func(r emissions.InputRecord) float64 { return r.FuelBill },
		},
		{
			Key:         "waste_kg",
			Prompt:      "Enter how much waste you generate per month in kilograms: ",
			Placeholder: "monthly waste (kg)",
			set:         func(r *emissions.InputRecord, v float64) { r.WasteKg = v },
			get:         func(r emissions.InputRecord) float64 { return r.WasteKg },
		},
		{
			Key:         "recycle_percent",
			Prompt:      "Enter how much of that waste is recycled or composted (in percentage): ",
			Placeholder: "recycled or composted (%)",
			set:         func(r *emissions.InputRecord, v float64) { r.RecyclePercent = v },
			get:         func(r emissions.InputRecord) float64 { return r.RecyclePercent },
		},
		{
			Key:         "travel_km_per_year",
			Prompt:      "Enter how many kilometers your employees travel per year for business purposes: ",
			Placeholder: "business travel per year (km)",
			set:         func(r *emissions.InputRecord, v float64) { r.TravelKmPerYear = v },
			get:         func(r emissions.InputRecord) float64 { return r.TravelKmPerYear },
		},
		{
			Key: "fuel_efficiency_l_per_100km",
			Prompt: "Enter the average fuel efficiency of the vehicles used for business travel " +
				"in liters per 100 kilometers: ",
			Placeholder: "fuel efficiency (L/100km)",
			set:         func(r *emissions.InputRecord, v float64) { r.FuelEfficiencyLPer100Km = v },
			get:         func(r emissions.InputRecord) float64 { return r.FuelEfficiencyLPer100Km },
		},
	}
}
