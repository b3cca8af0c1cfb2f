package core

// reconcile.go brings a raw table up to full schema compliance.
//
// Reconciliation is idempotent: running it over an already-normalized table
// changes nothing, because every rule fires only for absent columns.
// Synthesis never raises; a coercion problem degrades to the column's
// neutral value.

import (
	"fmt"
	"log/slog"
)

// Reconcile ensures every column declared in specs exists in t, synthesizing
// absent ones according to their rules, then coerces numeric-typed columns.
// The table is modified in place and returned. A nil table stays nil.
//
// Derived rules run after all non-derived columns are resolved, so they may
// depend on synthesized values. Synthesized column names are reported as a
// non-fatal warning.
func Reconcile(t *Table, dataset string, specs []ColumnSpec) *Table {
	if t == nil {
		return nil
	}

	// A table with no columns at all still needs one row so constant
	// defaults materialize into a usable single-row frame.
	if t.NumColumns() == 0 && t.NumRows() == 0 {
		t.rows = 1
	}

	var synthesized []string

	for _, spec := range specs {
		if spec.Rule == RuleDerived || t.HasColumn(spec.Name) {
			continue
		}
		synthesizeColumn(t, spec)
		synthesized = append(synthesized, spec.Name)
	}

	for _, spec := range specs {
		if spec.Rule != RuleDerived || t.HasColumn(spec.Name) {
			continue
		}
		col := make([]Value, t.NumRows())
		for i := range col {
			col[i] = spec.Derive(t, i)
		}
		t.AddColumn(spec.Name, col)
		synthesized = append(synthesized, spec.Name)
	}

	for _, spec := range specs {
		coerceColumn(t, spec)
	}

	if len(synthesized) > 0 {
		slog.Warn("synthesized missing columns",
			"dataset", dataset,
			"columns", synthesized,
		)
	}
	return t
}

// synthesizeColumn appends the column described by a non-derived spec.
func synthesizeColumn(t *Table, spec ColumnSpec) {
	switch spec.Rule {
	case RuleSequential:
		col := make([]Value, t.NumRows())
		for i := range col {
			col[i] = TextValue(fmt.Sprintf("%s %d", spec.SeqLabel, i+1))
		}
		t.AddColumn(spec.Name, col)

	case RuleLookup:
		col := make([]Value, t.NumRows())
		for i := range col {
			col[i] = spec.Lookup(t.Cell(spec.LookupKey, i).AsText())
		}
		t.AddColumn(spec.Name, col)

	case RuleMirror:
		for _, src := range spec.MirrorOf {
			if t.HasColumn(src) {
				col := make([]Value, t.NumRows())
				copy(col, t.Column(src))
				t.AddColumn(spec.Name, col)
				return
			}
		}
		t.FillColumn(spec.Name, spec.MirrorDefault)

	default: // RuleConstant
		t.FillColumn(spec.Name, spec.Constant)
	}
}

// coerceColumn converts a numeric-typed column's cells in place. Text that
// does not parse becomes the neutral 0/0.0 rather than propagating an
// error; cells that carry no data at all stay null.
func coerceColumn(t *Table, spec ColumnSpec) {
	if spec.Type == FieldText {
		return
	}
	col := t.Column(spec.Name)
	if col == nil {
		return
	}
	for i, v := range col {
		if v.IsNull() {
			col[i] = NullValue(kindFor(spec.Type))
			continue
		}
		switch spec.Type {
		case FieldInt:
			col[i] = IntValue(parseGroupedInt(v.AsText()))
		case FieldFloat:
			col[i] = FloatValue(v.AsFloat())
		}
	}
}

func kindFor(ft FieldType) Kind {
	switch ft {
	case FieldInt:
		return KindInt
	case FieldFloat:
		return KindFloat
	default:
		return KindText
	}
}
