package core

import "testing"

func TestAddColumn(t *testing.T) {
	tbl := NewTable(0)
	tbl.AddColumn("A", textCol("1", "2", "3"))
	if tbl.NumRows() != 3 {
		t.Fatalf("first column should set row count, got %d", tbl.NumRows())
	}

	// Short columns pad with nulls, long ones truncate.
	tbl.AddColumn("B", textCol("x"))
	if !tbl.Cell("B", 2).IsNull() {
		t.Error("short column should pad with nulls")
	}
	tbl.AddColumn("C", textCol("p", "q", "r", "s", "t"))
	if tbl.Cell("C", 2).AsText() != "r" || len(tbl.Column("C")) != 3 {
		t.Error("long column should truncate to the row count")
	}

	// Re-adding an existing column is a no-op.
	tbl.AddColumn("A", textCol("9"))
	if tbl.Cell("A", 0).AsText() != "1" {
		t.Error("existing column was overwritten")
	}
}

func TestFilter(t *testing.T) {
	tbl := NewTable(0)
	tbl.AddColumn("Year", []Value{IntValue(1951), IntValue(2011), IntValue(2101)})
	tbl.AddColumn("Pop", []Value{FloatValue(361.1), FloatValue(1210.9), FloatValue(1700)})

	got := tbl.Filter(func(row int) bool {
		return tbl.Cell("Year", row).Int <= 2026
	})

	if got.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", got.NumRows())
	}
	if got.Cell("Pop", 1).AsFloat() != 1210.9 {
		t.Error("filtered rows misaligned across columns")
	}
	// Source table is untouched.
	if tbl.NumRows() != 3 {
		t.Error("Filter mutated the source table")
	}
}

func TestCloneEqual(t *testing.T) {
	tbl := NewTable(0)
	tbl.AddColumn("A", textCol("x", "y"))

	cp := tbl.Clone()
	if !tbl.Equal(cp) {
		t.Fatal("clone should equal the original")
	}
	cp.SetCell("A", 0, TextValue("z"))
	if tbl.Equal(cp) {
		t.Error("mutating the clone should not affect equality via shared storage")
	}
	if tbl.Cell("A", 0).AsText() != "x" {
		t.Error("clone shares backing storage with the original")
	}
}

func TestCellOutOfRange(t *testing.T) {
	tbl := NewTable(0)
	tbl.AddColumn("A", textCol("x"))

	if !tbl.Cell("A", 5).IsNull() {
		t.Error("out-of-range row should be null")
	}
	if !tbl.Cell("Missing", 0).IsNull() {
		t.Error("absent column should be null")
	}
}
