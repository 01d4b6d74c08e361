package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulievsadigg/carbon-emission/internal/advice"
	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/greenops"
)

func TestBuildReport_Sections(t *testing.T) {
	b := emissions.Breakdown{EnergyCO2: 3.78, WasteCO2: 168, TravelCO2: 1848, TotalCO2: 2019.78}
	res := &Result{Organization: "Acme", Breakdown: b, Advice: advice.Select(b)}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rep := BuildReport(res, "01HXYZ", at)

	assert.Equal(t, "01HXYZ", rep.ID)
	assert.Equal(t, "Acme Carbon Footprint Report", rep.Title)
	assert.Equal(t, "Acme", rep.Organization)
	assert.Equal(t, at, rep.GeneratedAt)

	require.Len(t, rep.Sections, 3)
	assert.Equal(t, SectionProblem, rep.Sections[0].Title)
	assert.Equal(t, SectionSummary, rep.Sections[1].Title)
	assert.Equal(t, SectionConclusions, rep.Sections[2].Title)

	assert.Equal(t,
		"The carbon footprint of Acme directly impacts climate change. Reducing it is vital for "+
			"environmental sustainability. This report analyzes the carbon footprint based on energy usage, "+
			"waste production, and business travel.",
		rep.Sections[0].Body)

	assert.Empty(t, rep.Sections[1].Body)
	require.NotNil(t, rep.Sections[1].Table)
	assert.Equal(t, []string{"Category", "CO2 Emission (kg)"}, rep.Sections[1].Table.Headers)
	assert.Equal(t, [][]string{
		{"Energy Usage", "3.78"},
		{"Waste Production", "168.00"},
		{"Business Travel", "1848.00"},
		{"Total", "2019.78"},
	}, rep.Sections[1].Table.Rows)

	conclusions := rep.Sections[2].Body
	assert.True(t, strings.HasPrefix(conclusions, "Conclusions and suggestions for future work"))
	assert.Contains(t, conclusions, "\n\nSpecific Advice to Reduce CO2 Emissions:\n1. Promote remote work")
	assert.True(t, strings.HasSuffix(conclusions, "electric vehicles for business travel."))
}

func TestBuildReport_Equivalencies(t *testing.T) {
	b := emissions.Breakdown{TravelCO2: 2019.78, TotalCO2: 2019.78}
	eq, err := greenops.Calculate(b.TotalCO2)
	require.NoError(t, err)
	res := &Result{Organization: "Acme", Breakdown: b, Advice: advice.Select(b), Equivalencies: &eq}

	rep := BuildReport(res, "id", time.Time{})

	require.Len(t, rep.Sections, 4)
	last := rep.Sections[3]
	assert.Equal(t, SectionEquivalencies, last.Title)
	assert.True(t, strings.HasPrefix(last.Body, "Equivalent to driving ~10,520 miles"))
	assert.Contains(t, last.Body, "~110 days of home electricity")
}

func TestSummaryTable_NegativeAndRounding(t *testing.T) {
	table := SummaryTable(emissions.Breakdown{WasteCO2: -516, EnergyCO2: 0.005, TotalCO2: -515.99})

	assert.Equal(t, "0.01", table.Rows[0][1])
	assert.Equal(t, "-516.00", table.Rows[1][1])
	assert.Equal(t, "0.00", table.Rows[2][1])
	assert.Equal(t, "-515.99", table.Rows[3][1])
}

func TestSummaryTable_HeadersAreCopied(t *testing.T) {
	table := SummaryTable(emissions.Breakdown{})
	table.Headers[0] = "changed"
	assert.Equal(t, "Category", SummaryHeaders[0])
}

func TestConclusions_GenericAdvice(t *testing.T) {
	got := Conclusions(emissions.Breakdown{})
	assert.True(t, strings.HasSuffix(got, "culture of environmental responsibility."))
}

func TestConclusions_EndsWithAdviceBlock(t *testing.T) {
	b := emissions.Breakdown{EnergyCO2: 500, WasteCO2: 10, TravelCO2: 10, TotalCO2: 520}
	got := Conclusions(b)
	assert.True(t, strings.HasSuffix(got, "Specific Advice to Reduce CO2 Emissions:\n"+advice.Text(b)))
	assert.Contains(t, got, "\n2. Encourage the use of energy-saving devices and appliances.\n3. ")
}
