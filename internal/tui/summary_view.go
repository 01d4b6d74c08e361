package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/engine"
	"github.com/gulievsadigg/carbon-emission/internal/greenops"
)

// Layout constants.
const (
	borderPadding = 2
	labelWidth    = 18
	minBoxWidth   = 40
)

// RenderEmissionSummary renders a boxed summary of res: one line per
// category, the total itself, the equivalency line when present, and the
// selected advice. Category shares of the total are shown only when no
// category is negative.
func RenderEmissionSummary(res *engine.Result, width int) string {
	if res == nil {
		return InfoStyle.Render("No results to display.")
	}
	if width < minBoxWidth {
		width = minBoxWidth
	}

	b := res.Breakdown
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("CARBON FOOTPRINT: " + strings.ToUpper(res.Organization)))
	content.WriteString("\n")

	shares := showShares(b)
	for _, c := range emissions.Categories() {
		content.WriteString(summaryLine(c.Label(), b.Value(c), b.TotalCO2, shares))
		content.WriteString("\n")
	}
	content.WriteString(LabelStyle.Render(padRight("Total", labelWidth)))
	content.WriteString(HighlightStyle.Render(greenops.FormatKg(b.TotalCO2) + " kg CO2/yr"))

	if res.Equivalencies != nil && !res.Equivalencies.IsEmpty {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render(res.Equivalencies.CompactText))
	}

	if len(res.Advice) > 0 {
		content.WriteString("\n\n")
		content.WriteString(HeaderStyle.Render("Advice (" + res.Branch.String() + ")"))
		wrap := lipgloss.NewStyle().Width(width - borderPadding*2)
		for _, line := range res.Advice {
			content.WriteString("\n")
			content.WriteString(wrap.Render(line))
		}
	}

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// showShares reports whether every category is a non-negative part of a
// positive total, so the percentages add up to 100.
func showShares(b emissions.Breakdown) bool {
	if !(b.TotalCO2 > 0) {
		return false
	}
	for _, c := range emissions.Categories() {
		if b.Value(c) < 0 {
			return false
		}
	}
	return true
}

func summaryLine(label string, v, total float64, shares bool) string {
	line := LabelStyle.Render(padRight(label, labelWidth)) +
		ValueStyle.Render(greenops.FormatKg(v)+" kg")
	if shares {
		pct := v / total * 100 //nolint:mnd // Percentage calculation.
		line += SubtleStyle.Render(" (" + formatPercent(pct) + ")")
	}
	return line
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}

func formatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
