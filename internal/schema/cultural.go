package schema

import "github.com/indiaviz/dataserver/internal/core"

func init() {
	core.Register(core.DatasetDefinition{
		Name: "cultural",
		File: "cultural_heritage.csv",
		Specs: []core.ColumnSpec{
			{Name: "Cultural Element", Type: core.FieldText, Rule: core.RuleSequential, SeqLabel: "Element"},
			{Name: "Count", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.IntValue(0)},
			{Name: "Description", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("No description available")},
			{Name: "Historical Period", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("Unknown period")},
			{Name: "Region of Origin", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("All India")},

			// Aliases kept for chapters written against the older sheet
			// layout.
			{Name: "Heritage_Type", Type: core.FieldText, Rule: core.RuleMirror,
				MirrorOf: []string{"Cultural Element"}, MirrorDefault: core.NullValue(core.KindText)},
			{Name: "Name", Type: core.FieldText, Rule: core.RuleSequential, SeqLabel: "Heritage"},
			{Name: "State", Type: core.FieldText, Rule: core.RuleMirror,
				MirrorOf: []string{"Associated States", "Region of Origin"}, MirrorDefault: core.TextValue("Unknown")},
			{Name: "Year", Type: core.FieldInt, Rule: core.RuleDerived, Derive: yearFromPeriod},
		},
	})
}

// yearFromPeriod extracts the earliest year mentioned in a historical
// period string ("1500-600 BCE" yields 1500); periods without digits
// yield 0.
func yearFromPeriod(t *core.Table, row int) core.Value {
	v := core.LeadingInt(t.Cell("Historical Period", row))
	if v.IsNull() {
		return core.IntValue(0)
	}
	return v
}
