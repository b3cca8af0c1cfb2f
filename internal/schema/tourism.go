package schema

import (
	"fmt"

	"github.com/indiaviz/dataserver/internal/core"
)

func init() {
	core.Register(core.DatasetDefinition{
		Name: "tourism",
		File: "tourism.csv",
		Specs: []core.ColumnSpec{
			// The source sheet stores comma-separated destination and state
			// lists; the dashboard wants one headline entry per row.
			{Name: "Destination", Type: core.FieldText, Rule: core.RuleDerived, Derive: headlineDestination},
			{Name: "State", Type: core.FieldText, Rule: core.RuleDerived, Derive: headlineState},
			{Name: "Type", Type: core.FieldText, Rule: core.RuleMirror,
				MirrorOf: []string{"Tourism Type"}, MirrorDefault: core.TextValue("Monument")},
			{Name: "Visitors_Annual", Type: core.FieldFloat, Rule: core.RuleMirror,
				MirrorOf: []string{"Annual Visitors (millions)"}, MirrorDefault: core.FloatValue(0)},
		},
	})
}

// headlineDestination takes the first entry of the Popular Destinations
// list, or a numbered placeholder when the cell is absent or empty.
func headlineDestination(t *core.Table, row int) core.Value {
	if parts := core.StringListDelim(t.Cell("Popular Destinations", row), ","); len(parts) > 0 {
		return core.TextValue(parts[0])
	}
	return core.TextValue(fmt.Sprintf("Destination %d", row+1))
}

// headlineState takes the first entry of the Key States list.
func headlineState(t *core.Table, row int) core.Value {
	if parts := core.StringListDelim(t.Cell("Key States", row), ","); len(parts) > 0 {
		return core.TextValue(parts[0])
	}
	return core.TextValue("Unknown")
}
