package schema

import (
	"strings"

	"github.com/indiaviz/dataserver/internal/core"
	"github.com/indiaviz/dataserver/internal/core/tables"
)

// narrativeColumns is the registration order for the era-keyed long-form
// columns; tables.EraNarratives is a map, so the order must live here.
var narrativeColumns = []string{
	"Cultural Developments",
	"Religious Trends",
	"Economic Systems",
	"Art & Architecture",
	"Territorial Extent",
	"Social Structure",
	"Scientific Advances",
	"Technological Innovations",
	"Military Developments",
	"Foreign Relations",
	"Historical Legacy",
}

func init() {
	specs := []core.ColumnSpec{
		{Name: "Year", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.IntValue(0)},
		{Name: "Era", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("Unknown")},
		{Name: "Event", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("Unknown Event")},
		{Name: "Significance", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("Unknown significance")},
		{Name: "Time Period", Type: core.FieldText, Rule: core.RuleDerived, Derive: timePeriod},
		{Name: "Timeline Year", Type: core.FieldInt, Rule: core.RuleDerived, Derive: timelineYearSeed},
		{Name: "Major Events", Type: core.FieldText, Rule: core.RuleDerived, Derive: majorEvents},
		{Name: "Capital Cities", Type: core.FieldText, Rule: core.RuleLookup, LookupKey: "Era",
			Lookup: textLookup(tables.EraCapitals, "Unknown")},
		{Name: "Key Rulers/Leaders", Type: core.FieldText, Rule: core.RuleMirror,
			MirrorOf: []string{"Key Figures"}, MirrorDefault: core.TextValue("Various")},
		{Name: "Era Category", Type: core.FieldText, Rule: core.RuleDerived, Derive: eraCategory},
	}

	for _, name := range narrativeColumns {
		specs = append(specs, core.ColumnSpec{
			Name: name, Type: core.FieldText, Rule: core.RuleLookup, LookupKey: "Era",
			Lookup: nullableTextLookup(tables.EraNarratives[name]),
		})
	}
	for _, theme := range tables.LegacyThemes {
		specs = append(specs, themeFlagSpec(theme))
	}

	core.Register(core.DatasetDefinition{
		Name:  "historical",
		File:  "historical_timeline.csv",
		Specs: specs,
		Post:  []core.PostPass{recomputeTimelineYears, patchEventNarratives},
	})
}

// timePeriod renders a row's display period: the era's conventional range
// when one is known, otherwise the formatted signed year.
func timePeriod(t *core.Table, row int) core.Value {
	era := t.Cell("Era", row).AsText()
	year := t.Cell("Year", row).AsInt()
	return core.TextValue(tables.TimePeriod(era, year))
}

// timelineYearSeed seeds a missing Timeline Year column from the raw Year;
// recomputeTimelineYears then re-derives every row from the display period
// so BCE ranges sort before CE events.
func timelineYearSeed(t *core.Table, row int) core.Value {
	return core.IntValue(t.Cell("Year", row).AsInt())
}

func majorEvents(t *core.Table, row int) core.Value {
	return tables.MajorEvents(t.Cell("Event", row), t.Cell("Significance", row))
}

func eraCategory(t *core.Table, row int) core.Value {
	return core.TextValue(tables.EraCategory(t.Cell("Era", row).AsText()))
}

func themeFlagSpec(theme string) core.ColumnSpec {
	return core.ColumnSpec{
		Name: theme, Type: core.FieldInt, Rule: core.RuleDerived,
		Derive: func(t *core.Table, row int) core.Value {
			return tables.ThemeFlag(t.Cell("Historical Legacy", row), theme)
		},
	}
}

// recomputeTimelineYears overwrites Timeline Year from the display period
// on every row: the first run of digits, negated when the period mentions
// BCE. Rows without digits keep their seeded value.
func recomputeTimelineYears(t *core.Table) *core.Table {
	for row := 0; row < t.NumRows(); row++ {
		if y := tables.TimelineYear(t.Cell("Time Period", row)); !y.IsNull() {
			t.SetCell("Timeline Year", row, y)
		}
	}
	return t
}

// patchEventNarratives fills narrative cells left null by the era mapping
// for landmark events that have event-specific text.
func patchEventNarratives(t *core.Table) *core.Table {
	for column, patches := range tables.EventNarratives {
		for row := 0; row < t.NumRows(); row++ {
			if !t.Cell(column, row).IsNull() {
				continue
			}
			event := t.Cell("Event", row).AsText()
			for needle, text := range patches {
				if strings.Contains(event, needle) {
					t.SetCell(column, row, core.TextValue(text))
					break
				}
			}
		}
	}
	return t
}
