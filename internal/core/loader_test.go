package core

import (
	"os"
	"testing"
	"time"
)

// Test fixtures registered once for the whole package.
func init() {
	Register(DatasetDefinition{
		Name: "capitals",
		File: "capitals.csv",
		Specs: []ColumnSpec{
			{Name: "State", Type: FieldText, Rule: RuleSequential, SeqLabel: "State"},
			{Name: "Capital", Type: FieldText, Rule: RuleConstant, Constant: TextValue("Unknown")},
		},
	})
	Register(DatasetDefinition{
		Name: "indicators",
		File: "indicators.csv",
		Specs: []ColumnSpec{
			{Name: "Name", Type: FieldText, Rule: RuleSequential, SeqLabel: "Indicator"},
			{Name: "Value", Type: FieldFloat, Rule: RuleConstant, Constant: FloatValue(0)},
		},
	})
	Register(DatasetDefinition{
		Name: "explosive",
		File: "explosive.csv",
		Post: []PostPass{func(t *Table) *Table {
			panic("derivation bug")
		}},
	})
}

func newTestLoader(t *testing.T) (*Loader, string) {
	t.Helper()
	dir := t.TempDir()
	l, err := NewLoader(dir)
	if err != nil {
		t.Fatal(err)
	}
	return l, dir
}

func TestLoader_UnknownDataset(t *testing.T) {
	l, _ := newTestLoader(t)
	if l.Load("no-such-dataset") != nil {
		t.Error("unknown dataset should load as nil")
	}
}

func TestLoader_MissingFileNotCached(t *testing.T) {
	l, dir := newTestLoader(t)

	if l.Load("capitals") != nil {
		t.Fatal("missing file should load as nil")
	}

	// File appears later; the failure must not have been memoized.
	writeFile(t, dir, "capitals.csv", []byte("State,Capital\nKerala,Thiruvananthapuram\n"))
	tbl := l.Load("capitals")
	if tbl == nil {
		t.Fatal("dataset should load once the file exists")
	}
	if got := tbl.Cell("Capital", 0).AsText(); got != "Thiruvananthapuram" {
		t.Errorf("Capital = %q", got)
	}
}

func TestLoader_CachesByModTime(t *testing.T) {
	l, dir := newTestLoader(t)
	path := writeFile(t, dir, "indicators.csv", []byte("Name,Value\nHDI,0.65\n"))

	first := l.Load("indicators")
	if first == nil {
		t.Fatal("load failed")
	}
	info1, ok := l.Info("indicators")
	if !ok {
		t.Fatal("no load info after load")
	}

	if second := l.Load("indicators"); second != first {
		t.Error("unchanged file should return the cached table")
	}

	// Replace the file and force a distinct mtime.
	if err := os.WriteFile(path, []byte("Name,Value\nHDI,0.70\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	newTime := info1.ModTime.Add(2 * time.Second)
	if err := os.Chtimes(path, newTime, newTime); err != nil {
		t.Fatal(err)
	}

	third := l.Load("indicators")
	if third == nil {
		t.Fatal("reload failed")
	}
	if got := third.Cell("Value", 0).AsFloat(); got != 0.70 {
		t.Errorf("reloaded Value = %v, want 0.70", got)
	}
	info2, _ := l.Info("indicators")
	if info2.LoadID == info1.LoadID {
		t.Error("reload should mint a new load ID")
	}
}

func TestLoader_Invalidate(t *testing.T) {
	l, dir := newTestLoader(t)
	writeFile(t, dir, "indicators.csv", []byte("Name,Value\nHDI,0.65\n"))

	first := l.Load("indicators")
	l.Invalidate("indicators")
	if _, ok := l.Info("indicators"); ok {
		t.Error("Info should report nothing after Invalidate")
	}
	second := l.Load("indicators")
	if second == nil || second == first {
		t.Error("Load after Invalidate should rebuild")
	}
}

func TestLoader_PanicInPipelineDegradesToNil(t *testing.T) {
	l, dir := newTestLoader(t)
	writeFile(t, dir, "explosive.csv", []byte("A\n1\n"))

	if l.Load("explosive") != nil {
		t.Error("panicking pipeline should degrade to nil, not crash")
	}
}

func TestLoader_PreloadIsolation(t *testing.T) {
	l, dir := newTestLoader(t)
	// capitals present, indicators missing
	writeFile(t, dir, "capitals.csv", []byte("State,Capital\nGoa,Panaji\n"))

	got := l.Preload([]string{"capitals", "indicators"})
	if got["capitals"] == nil {
		t.Error("present dataset should have loaded")
	}
	if tbl, ok := got["indicators"]; !ok || tbl != nil {
		t.Error("missing dataset should be present in the map with a nil table")
	}
}

func TestLoader_ManifestOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "manifest.yaml", []byte(
		"datasets:\n  indicators:\n    file: alt.csv\n    delimiter: \";\"\n"))
	writeFile(t, dir, "alt.csv", []byte("Name;Value\nHDI;0.72\n"))

	l, err := NewLoader(dir)
	if err != nil {
		t.Fatal(err)
	}
	tbl := l.Load("indicators")
	if tbl == nil {
		t.Fatal("manifest-overridden dataset failed to load")
	}
	if got := tbl.Cell("Value", 0).AsFloat(); got != 0.72 {
		t.Errorf("Value = %v, want 0.72", got)
	}
}

func TestLoader_BrokenManifestFailsFast(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "manifest.yaml", []byte(":\tnot yaml"))

	if _, err := NewLoader(dir); err == nil {
		t.Error("NewLoader should fail on an unparseable manifest")
	}
}

func TestRegistry(t *testing.T) {
	if _, ok := Get("capitals"); !ok {
		t.Error("Get should find the registered fixture")
	}
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %v", names)
		}
	}
	if DatasetCount() != len(names) {
		t.Errorf("DatasetCount = %d, want %d", DatasetCount(), len(names))
	}
}
