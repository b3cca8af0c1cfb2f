package core

// spec.go declares the per-dataset column contracts.
//
// A DatasetDefinition is compiled once at init time and never mutated at
// runtime. Reference tables passed into ColumnSpec lookups are read-only
// package-level maps (see internal/core/tables).

// FieldType is the expected primitive type for a column after
// reconciliation.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInt
	FieldFloat
)

// RuleKind selects how a missing column is synthesized.
type RuleKind int

const (
	// RuleConstant fills every row with Constant.
	RuleConstant RuleKind = iota
	// RuleSequential fills row i with "<SeqLabel> <i+1>".
	RuleSequential
	// RuleLookup fills each row by calling Lookup with the LookupKey
	// column's value in the same row.
	RuleLookup
	// RuleMirror copies the first present column named in MirrorOf,
	// falling back to MirrorDefault when none exist.
	RuleMirror
	// RuleDerived computes each row with Derive after all non-derived
	// columns have been resolved.
	RuleDerived
)

// ColumnSpec declares one required column and the rule for synthesizing it
// when the raw table lacks it.
type ColumnSpec struct {
	Name string
	Type FieldType
	Rule RuleKind

	Constant Value // RuleConstant

	SeqLabel string // RuleSequential

	// RuleLookup: column holding the key, and the reference-table closure.
	// Lookup owns its fallback: it must return a usable Value (possibly
	// null) for keys missing from the underlying table.
	LookupKey string
	Lookup    func(key string) Value

	MirrorOf      []string // RuleMirror: candidate source columns, in order
	MirrorDefault Value    // RuleMirror: value when no candidate exists

	Derive func(t *Table, row int) Value // RuleDerived
}

// PostPass is a whole-table derivation applied after reconciliation, in
// registration order. It may rewrite computed alias columns or replace the
// table (e.g. row filtering); it must return a non-nil table.
type PostPass func(t *Table) *Table

// DatasetDefinition binds a domain name to its source file, column specs,
// and derivation passes.
type DatasetDefinition struct {
	Name  string  // dataset key: "education", "festivals", ...
	File  string  // file name under the data directory
	Delim rune    // field delimiter; 0 means ','
	Specs []ColumnSpec
	Post  []PostPass
}

// Delimiter returns the configured delimiter, defaulting to a comma.
func (d DatasetDefinition) Delimiter() rune {
	if d.Delim == 0 {
		return ','
	}
	return d.Delim
}
