package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/gulievsadigg/carbon-emission/internal/advice"
	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/report"
)

// Section titles, in report order.
const (
	SectionProblem       = "Problem Statement"
	SectionSummary       = "Summaries of the Analysis"
	SectionConclusions   = "Conclusions and Suggestions"
	SectionEquivalencies = "Equivalencies"
)

const (
	problemStatementFormat = "The carbon footprint of %s directly impacts climate change. " +
		"Reducing it is vital for environmental sustainability. " +
		"This report analyzes the carbon footprint based on energy usage, waste production, and business travel."

	conclusionsText = "Conclusions and suggestions for future work will involve optimization of resource usage, " +
		"investment in renewable energy, and promoting recycling and waste management programs " +
		"to reduce the overall carbon footprint.\n\nSpecific Advice to Reduce CO2 Emissions:\n"

	totalRowLabel = "Total"
)

// SummaryHeaders are the column headers of the analysis table.
//
//nolint:gochecknoglobals // Fixed table header, copied before use.
var SummaryHeaders = []string{"Category", "CO2 Emission (kg)"}

// ReportTitle returns the document title for org.
func ReportTitle(org string) string {
	return org + " Carbon Footprint Report"
}

// ProblemStatement returns the opening section text for org.
func ProblemStatement(org string) string {
	return fmt.Sprintf(problemStatementFormat, org)
}

// Conclusions returns the closing section text followed by the advice
// block selected for b.
func Conclusions(b emissions.Breakdown) string {
	return conclusionsText + advice.Text(b)
}

// SummaryTable returns the per-category table with values to two decimals.
func SummaryTable(b emissions.Breakdown) *report.Table {
	rows := make([][]string, 0, len(emissions.Categories())+1)
	for _, c := range emissions.Categories() {
		rows = append(rows, []string{c.Label(), formatKg(b.Value(c))})
	}
	rows = append(rows, []string{totalRowLabel, formatKg(b.TotalCO2)})

	return &report.Table{
		Headers: append([]string(nil), SummaryHeaders...),
		Rows:    rows,
	}
}

// BuildReport assembles the report payload for res.
func BuildReport(res *Result, id string, generatedAt time.Time) report.Report {
	sections := []report.Section{
		{Title: SectionProblem, Body: ProblemStatement(res.Organization)},
		{Title: SectionSummary, Table: SummaryTable(res.Breakdown)},
		{Title: SectionConclusions, Body: Conclusions(res.Breakdown)},
	}

	if res.Equivalencies != nil && !res.Equivalencies.IsEmpty {
		body := res.Equivalencies.DisplayText + ".\n\n" + strings.Join(res.Equivalencies.Lines(), "\n")
		sections = append(sections, report.Section{Title: SectionEquivalencies, Body: body})
	}

	return report.Report{
		ID:           id,
		Title:        ReportTitle(res.Organization),
		Organization: res.Organization,
		GeneratedAt:  generatedAt,
		Sections:     sections,
	}
}

func formatKg(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
