package core

// derive.go builds secondary views over normalized tables: frames that zip
// row-aligned composite columns into per-entity rows.

import "sort"

// GenderLiteracyView zips the education sheet's aligned composite columns
// into a per-state table with the male-female literacy gap. The three
// source lists are truncated to their common length before zipping; rows
// come back sorted by gap, widest first. Returns nil when the source table
// is nil or no state survives alignment.
func GenderLiteracyView(t *Table) *Table {
	if t == nil {
		return nil
	}

	states := StringList(t.First("State Names"))
	female := FloatList(t.First("State Female Literacy (%)"))
	male := FloatList(t.First("State Male Literacy (%)"))

	n := AlignLength(len(states), len(female), len(male))
	if n == 0 {
		return nil
	}

	type row struct {
		state        string
		female, male float64
	}
	rows := make([]row, n)
	for i := 0; i < n; i++ {
		rows[i] = row{state: states[i], female: female[i], male: male[i]}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].male-rows[i].female > rows[j].male-rows[j].female
	})

	out := NewTable(n)
	stateCol := make([]Value, n)
	maleCol := make([]Value, n)
	femaleCol := make([]Value, n)
	gapCol := make([]Value, n)
	for i, r := range rows {
		stateCol[i] = TextValue(r.state)
		maleCol[i] = FloatValue(r.male)
		femaleCol[i] = FloatValue(r.female)
		gapCol[i] = FloatValue(r.male - r.female)
	}
	out.AddColumn("State", stateCol)
	out.AddColumn("Male Literacy", maleCol)
	out.AddColumn("Female Literacy", femaleCol)
	out.AddColumn("Literacy Gap", gapCol)
	return out
}
