package schema

import "github.com/indiaviz/dataserver/internal/core"

func init() {
	core.Register(core.DatasetDefinition{
		Name: "economic",
		File: "economic_sectors.csv",
		Specs: []core.ColumnSpec{
			{Name: "Year", Type: core.FieldInt, Rule: core.RuleDerived, Derive: censusYear},
			{Name: "Agriculture", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
			{Name: "Industry", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
			{Name: "Services", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
		},
	})
}
