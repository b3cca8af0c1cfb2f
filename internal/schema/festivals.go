package schema

import (
	"github.com/indiaviz/dataserver/internal/core"
	"github.com/indiaviz/dataserver/internal/core/tables"
)

func init() {
	core.Register(core.DatasetDefinition{
		Name: "festivals",
		File: "festivals.csv",
		Specs: []core.ColumnSpec{
			{Name: "Festival", Type: core.FieldText, Rule: core.RuleSequential, SeqLabel: "Festival"},
			// Sheet revisions renamed these; mirror the older headers.
			{Name: "Religion", Type: core.FieldText, Rule: core.RuleMirror,
				MirrorOf: []string{"Religion/Type"}, MirrorDefault: core.TextValue("Unknown")},
			{Name: "Region", Type: core.FieldText, Rule: core.RuleMirror,
				MirrorOf: []string{"Primary States"}, MirrorDefault: core.TextValue("All India")},
			{Name: "Month", Type: core.FieldText, Rule: core.RuleMirror,
				MirrorOf: []string{"Season"}, MirrorDefault: core.TextValue("January")},

			{Name: "Environmental Impact", Type: core.FieldText, Rule: core.RuleLookup, LookupKey: "Festival",
				Lookup: textLookup(tables.EnvironmentalImpact, tables.DefaultEnvironmentalImpact)},
			{Name: "Economic Impact (Millions USD)", Type: core.FieldInt, Rule: core.RuleDerived, Derive: economicImpact},
			{Name: "Participants (millions)", Type: core.FieldFloat, Rule: core.RuleLookup, LookupKey: "Festival",
				Lookup: floatLookup(tables.Participants, tables.DefaultParticipants)},
			{Name: "Tourist Attraction Level", Type: core.FieldInt, Rule: core.RuleLookup, LookupKey: "Festival",
				Lookup: intLookup(tables.TouristLevel, tables.DefaultTouristLevel)},
			{Name: "Global Celebrations", Type: core.FieldText, Rule: core.RuleLookup, LookupKey: "Festival",
				Lookup: textLookup(tables.GlobalCelebrations, tables.DefaultGlobalCelebrations)},
		},
		Post: []core.PostPass{monthFromSeason},
	})
}

// economicImpact prefers the sheet's own figures under the alternate
// header before falling back to the reference table.
func economicImpact(t *core.Table, row int) core.Value {
	if alt := t.Cell("Economic Impact (USD millions)", row); !alt.IsNull() {
		return alt
	}
	return intLookup(tables.EconomicImpact, tables.DefaultEconomicImpact)(t.Cell("Festival", row).AsText())
}

// monthFromSeason collapses Season ranges like "October-November" into the
// opening month, overwriting the mirrored Month column. Sheets without a
// Season column keep Month as-is.
func monthFromSeason(t *core.Table) *core.Table {
	if !t.HasColumn("Season") {
		return t
	}
	for row := 0; row < t.NumRows(); row++ {
		t.SetCell("Month", row, tables.FirstMonth(t.Cell("Season", row)))
	}
	return t
}
