package schema

import (
	"time"

	"github.com/indiaviz/dataserver/internal/core"
)

func init() {
	core.Register(core.DatasetDefinition{
		Name: "population",
		File: "population_growth.csv",
		Specs: []core.ColumnSpec{
			{Name: "Year", Type: core.FieldInt, Rule: core.RuleDerived, Derive: censusYear},
			{Name: "Population (millions)", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
			{Name: "Urban Population (%)", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
			{Name: "Rural Population (%)", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
		},
		Post: []core.PostPass{dropProjections},
	})
}

// censusYear numbers rows from the first census-series year when the sheet
// carries no Year column.
func censusYear(t *core.Table, row int) core.Value {
	return core.IntValue(int64(1950 + row))
}

// dropProjections removes projection rows: the series should end at the
// current year. Rows whose Year failed numeric coercion are dropped with
// them.
func dropProjections(t *core.Table) *core.Table {
	currentYear := int64(time.Now().Year())
	return t.Filter(func(row int) bool {
		y := t.Cell("Year", row)
		return !y.IsNull() && y.AsInt() <= currentYear
	})
}
