package schema

import "github.com/indiaviz/dataserver/internal/core"

func init() {
	core.Register(core.DatasetDefinition{
		Name: "linguistic",
		File: "languages.csv",
		Specs: []core.ColumnSpec{
			{Name: "Language", Type: core.FieldText, Rule: core.RuleSequential, SeqLabel: "Language"},
			{Name: "Speakers", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.IntValue(0)},
			{Name: "Percentage", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
		},
	})
}
