package core

// table.go defines the column-oriented table passed through the pipeline.
//
// A Table fresh from ReadTable is a RawTable: columns may be missing
// entirely and present cells may be malformed. After Reconcile it is a
// normalized table guaranteed to contain every column of its dataset's
// specs. The presentation layer consumes tables read-only.

import (
	"encoding/json"
	"slices"
)

// Table is a rectangular collection of named columns with positional rows.
type Table struct {
	names []string
	cols  map[string][]Value
	rows  int
}

// NewTable returns an empty table with the given row count and no columns.
func NewTable(rows int) *Table {
	return &Table{cols: make(map[string][]Value), rows: rows}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.rows }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.names) }

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	return slices.Clone(t.names)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the named column's cells, or nil if absent.
// The returned slice is the table's backing storage; callers must not
// mutate it.
func (t *Table) Column(name string) []Value {
	return t.cols[name]
}

// Cell returns the value at the given column and row, or an invalid Value
// when the column is absent or the row out of range.
func (t *Table) Cell(name string, row int) Value {
	col, ok := t.cols[name]
	if !ok || row < 0 || row >= len(col) {
		return Value{}
	}
	return col[row]
}

// First returns the first row's value for the named column. Single-value
// datasets (education metrics and the like) store their payload in row 0,
// so this is the common consumption path for scalar columns.
func (t *Table) First(name string) Value {
	return t.Cell(name, 0)
}

// SetCell overwrites a single cell. No-op when the column is absent or the
// row out of range.
func (t *Table) SetCell(name string, row int, v Value) {
	col, ok := t.cols[name]
	if !ok || row < 0 || row >= len(col) {
		return
	}
	col[row] = v
}

// AddColumn appends a column. Shorter slices are padded with invalid
// values, longer ones truncated, so the table stays rectangular. Adding to
// a table with no columns adopts the slice's length as the row count.
// Existing columns are left untouched.
func (t *Table) AddColumn(name string, vals []Value) {
	if t.HasColumn(name) {
		return
	}
	if len(t.names) == 0 && t.rows == 0 {
		t.rows = len(vals)
	}
	col := make([]Value, t.rows)
	copy(col, vals)
	t.names = append(t.names, name)
	t.cols[name] = col
}

// FillColumn appends a column where every row holds the same value.
func (t *Table) FillColumn(name string, v Value) {
	col := make([]Value, t.rows)
	for i := range col {
		col[i] = v
	}
	t.AddColumn(name, col)
}

// Filter returns a new table containing only the rows for which keep
// returns true. Column order is preserved.
func (t *Table) Filter(keep func(row int) bool) *Table {
	var idx []int
	for i := 0; i < t.rows; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	out := NewTable(len(idx))
	for _, name := range t.names {
		src := t.cols[name]
		col := make([]Value, len(idx))
		for j, i := range idx {
			col[j] = src[i]
		}
		out.names = append(out.names, name)
		out.cols[name] = col
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := NewTable(t.rows)
	for _, name := range t.names {
		out.names = append(out.names, name)
		out.cols[name] = slices.Clone(t.cols[name])
	}
	return out
}

// Equal reports whether two tables have the same columns in the same order
// with cell-wise equal values.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.rows != o.rows || !slices.Equal(t.names, o.names) {
		return false
	}
	for _, name := range t.names {
		a, b := t.cols[name], o.cols[name]
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
	}
	return true
}

// MarshalJSON renders the table column-oriented: ordered column names plus
// a name-to-cells mapping.
func (t *Table) MarshalJSON() ([]byte, error) {
	type payload struct {
		Rows    int                `json:"rows"`
		Columns []string           `json:"columns"`
		Data    map[string][]Value `json:"data"`
	}
	cols := t.names
	if cols == nil {
		cols = []string{}
	}
	return json.Marshal(payload{Rows: t.rows, Columns: cols, Data: t.cols})
}
