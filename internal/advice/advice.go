// Package advice picks reduction recommendations for an emissions breakdown.
//
// A category earns its own recommendations only when its emission is
// strictly greater than both other categories. When no category stands out,
// including any tie at the top, a generic list is returned instead.
package advice

import (
	"fmt"
	"strings"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
)

// Branch identifies which recommendation list was selected.
type Branch int

const (
	// BranchGeneric is the fallback when no category strictly dominates.
	BranchGeneric Branch = iota
	// BranchEnergy is selected when energy dominates.
	BranchEnergy
	// BranchWaste is selected when waste dominates.
	BranchWaste
	// BranchTravel is selected when travel dominates.
	BranchTravel
)

// String returns the branch name.
func (b Branch) String() string {
	switch b {
	case BranchGeneric:
		return "generic"
	case BranchEnergy:
		return "energy"
	case BranchWaste:
		return "waste"
	case BranchTravel:
		return "travel"
	default:
		return fmt.Sprintf("Branch(%d)", b)
	}
}

// MarshalText encodes the branch by name.
func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

//nolint:gochecknoglobals // Fixed recommendation text, never mutated.
var categoryAdvice = map[emissions.Category][]string{
	emissions.CategoryEnergy: {
		"1. Reduce energy consumption by implementing energy-efficient practices and using renewable energy sources.",
		"2. Encourage the use of energy-saving devices and appliances.",
		"3. Conduct energy audits to identify areas for improvement.",
	},
	emissions.CategoryWaste: {
		"1. Implement a comprehensive recycling program to reduce waste production.",
		"2. Educate employees about waste reduction and proper recycling techniques.",
		"3. Explore opportunities to compost organic waste.",
	},
	emissions.CategoryTravel: {
		"1. Promote remote work and virtual meetings to reduce business travel.",
		"2. Encourage the use of public transportation, carpooling, and biking.",
		"3. Invest in fuel-efficient or electric vehicles for business travel.",
	},
}

//nolint:gochecknoglobals // Fixed recommendation text, never mutated.
var genericAdvice = []string{
	"1. Continue to monitor and optimize energy usage, waste production, and business travel.",
	"2. Engage employees in sustainability initiatives and create a culture of environmental responsibility.",
}

// Select returns the ordered recommendations for b.
//
// Every category is tested on its own against both others; strict comparison
// means at most one can pass. If none passes the generic list is returned.
// The returned slice is a fresh copy and may be modified by the caller.
func Select(b emissions.Breakdown) []string {
	var out []string
	for _, c := range emissions.Categories() {
		if dominates(b, c) {
			out = append(out, categoryAdvice[c]...)
		}
	}
	if len(out) == 0 {
		out = append(out, genericAdvice...)
	}
	return out
}

// Text returns the recommendations joined by newlines.
func Text(b emissions.Breakdown) string {
	return strings.Join(Select(b), "\n")
}

// SelectBranch reports which recommendation list Select uses for b.
func SelectBranch(b emissions.Breakdown) Branch {
	c, ok := Dominant(b)
	if !ok {
		return BranchGeneric
	}
	switch c {
	case emissions.CategoryEnergy:
		return BranchEnergy
	case emissions.CategoryWaste:
		return BranchWaste
	case emissions.CategoryTravel:
		return BranchTravel
	default:
		return BranchGeneric
	}
}

// Dominant returns the category that is strictly greater than both others.
// The boolean is false when there is no such category.
func Dominant(b emissions.Breakdown) (emissions.Category, bool) {
	for _, c := range emissions.Categories() {
		if dominates(b, c) {
			return c, true
		}
	}
	return 0, false
}

// dominates reports whether c is strictly greater than every other category.
// NaN never dominates because every comparison with it is false.
func dominates(b emissions.Breakdown, c emissions.Category) bool {
	v := b.Value(c)
	for _, other := range emissions.Categories() {
		if other == c {
			continue
		}
		if !(v > b.Value(other)) {
			return false
		}
	}
	return true
}
