package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands with English separators regardless of the host locale.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatKg formats a kg value with two decimals and thousand separators.
// Example: FormatKg(2019.78) returns "2,019.78". Non-finite values render as
// "NaN", "+Inf" or "-Inf".
func FormatKg(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return printer.Sprintf("%.2f", v)
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values below LargeNumberThreshold use comma-separated integers, values at or
// above it use "~X.X million", and values at or above BillionThreshold use
// "~X.X billion".
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}
