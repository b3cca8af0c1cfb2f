package schema

import "github.com/indiaviz/dataserver/internal/core"

func init() {
	core.Register(core.DatasetDefinition{
		Name: "religious",
		File: "religions.csv",
		Specs: []core.ColumnSpec{
			{Name: "Religion", Type: core.FieldText, Rule: core.RuleSequential, SeqLabel: "Religion"},
			{Name: "Percentage", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
			{Name: "Population", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.IntValue(0)},
		},
	})
}
