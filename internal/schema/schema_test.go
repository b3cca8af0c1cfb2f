package schema

import (
	"strconv"
	"testing"
	"time"

	"github.com/indiaviz/dataserver/internal/core"
)

// runPipeline applies a registered dataset's rules and post passes to a raw
// table, the same sequence the loader runs after reading a source file.
func runPipeline(t *testing.T, name string, tbl *core.Table) *core.Table {
	t.Helper()
	def, ok := core.Get(name)
	if !ok {
		t.Fatalf("dataset %q not registered", name)
	}
	out := core.Reconcile(tbl, name, def.Specs)
	for _, pass := range def.Post {
		out = pass(out)
	}
	return out
}

func textCol(vals ...string) []core.Value {
	out := make([]core.Value, len(vals))
	for i, s := range vals {
		out[i] = core.TextValue(s)
	}
	return out
}

func TestAllDatasetsRegistered(t *testing.T) {
	want := []string{
		"cultural", "economic", "education", "festivals", "geography",
		"historical", "linguistic", "population", "religious", "state",
		"tourism",
	}
	for _, name := range want {
		if _, ok := core.Get(name); !ok {
			t.Errorf("dataset %q not registered", name)
		}
	}
	if got := core.DatasetCount(); got != len(want) {
		t.Errorf("DatasetCount = %d, want %d", got, len(want))
	}
}

func TestEducation_EmptySheetDefaults(t *testing.T) {
	got := runPipeline(t, "education", core.NewTable(0))

	if got.NumRows() != 1 {
		t.Fatalf("NumRows = %d, want 1", got.NumRows())
	}
	if v := got.First("National Literacy Rate (%)"); v.AsFloat() != 78.7 {
		t.Errorf("national literacy = %v, want 78.7", v)
	}
	states := core.StringList(got.First("State Names"))
	if len(states) != 5 || states[0] != "Kerala" || states[4] != "Maharashtra" {
		t.Errorf("state names = %v", states)
	}
	// Grouped-digit constants land as plain integers.
	if v := got.First("Number of Universities"); v.Kind != core.KindInt || v.Int != 1047 {
		t.Errorf("universities = %+v, want int 1047", v)
	}
	if v := core.Ratio(got.First("Teacher-Student Ratio Primary")); v != 26.0 {
		t.Errorf("primary ratio = %v, want 26", v)
	}
	if v := core.Fraction(got.First("Global Innovation Index")); v != 37.2 {
		t.Errorf("innovation index = %v, want 37.2", v)
	}
}

func TestEducation_LiteracyGapView(t *testing.T) {
	edu := runPipeline(t, "education", core.NewTable(0))

	view := core.GenderLiteracyView(edu)
	if view == nil {
		t.Fatal("literacy gap view unavailable from defaults")
	}
	if view.NumRows() != 5 {
		t.Fatalf("NumRows = %d, want 5", view.NumRows())
	}
	// Himachal Pradesh has the widest gap in the default lists (93.6-83.7).
	if s := view.Cell("State", 0).AsText(); s != "Himachal Pradesh" {
		t.Errorf("widest gap state = %q, want Himachal Pradesh", s)
	}
}

func TestHistorical_EraEnrichment(t *testing.T) {
	tbl := core.NewTable(0)
	tbl.AddColumn("Year", textCol("1526", "-2600"))
	tbl.AddColumn("Era", textCol("Mughal Empire", "Indus Valley Civilization"))
	tbl.AddColumn("Event", textCol("First Battle of Panipat", "Urban planning emerges"))
	tbl.AddColumn("Significance", textCol("Foundation of Mughal rule", "Planned cities with drainage"))

	got := runPipeline(t, "historical", tbl)

	if v := got.Cell("Time Period", 0).AsText(); v != "1526-1857 CE" {
		t.Errorf("Mughal time period = %q", v)
	}
	// Timeline Year re-derives from the display period, so a BCE era range
	// sorts by its opening bound.
	if v := got.Cell("Timeline Year", 0); v.Int != 1526 {
		t.Errorf("Mughal timeline year = %d, want 1526", v.Int)
	}
	if v := got.Cell("Timeline Year", 1); v.Int != -2600 {
		t.Errorf("Indus timeline year = %d, want -2600", v.Int)
	}
	if v := got.Cell("Era Category", 1).AsText(); v != "Ancient" {
		t.Errorf("Indus era category = %q, want Ancient", v)
	}
	if v := got.Cell("Capital Cities", 0).AsText(); v != "Agra, Delhi, Fatehpur Sikri" {
		t.Errorf("Mughal capitals = %q", v)
	}
	if v := got.Cell("Major Events", 0).AsText(); v != "**First Battle of Panipat**: Foundation of Mughal rule" {
		t.Errorf("major events = %q", v)
	}
	// Era-keyed narratives resolve per row; theme flags follow the legacy
	// narrative text.
	if got.Cell("Military Developments", 0).IsNull() {
		t.Error("Mughal military narrative should resolve")
	}
	for _, theme := range []string{"Cultural", "Economic"} {
		v := got.Cell(theme, 0)
		if v.IsNull() || (v.Int != 0 && v.Int != 1) {
			t.Errorf("theme flag %q = %+v, want 0 or 1", theme, v)
		}
	}
}

func TestHistorical_EventNarrativePatch(t *testing.T) {
	tbl := core.NewTable(0)
	tbl.AddColumn("Year", textCol("1757"))
	tbl.AddColumn("Era", textCol("British Raj"))
	tbl.AddColumn("Event", textCol("Battle of Plassey"))

	got := runPipeline(t, "historical", tbl)

	// British Raj has no military narrative of its own; the landmark-event
	// patch supplies one.
	if got.Cell("Military Developments", 0).IsNull() {
		t.Error("event-specific narrative should fill the null cell")
	}
}

func TestFestivals_MonthAndLookups(t *testing.T) {
	tbl := core.NewTable(0)
	tbl.AddColumn("Festival", textCol("Diwali", "Hornbill Festival", "Baisakhi"))
	tbl.AddColumn("Season", textCol("October-November", "December", "Spring harvest"))
	tbl.AddColumn("Religion/Type", textCol("Hindu", "Cultural", "Sikh"))

	got := runPipeline(t, "festivals", tbl)

	if v := got.Cell("Month", 0).AsText(); v != "October" {
		t.Errorf("Diwali month = %q, want October", v)
	}
	if v := got.Cell("Month", 2); !v.IsNull() {
		t.Errorf("non-month season should standardize to null, got %+v", v)
	}
	if v := got.Cell("Religion", 0).AsText(); v != "Hindu" {
		t.Errorf("mirrored religion = %q", v)
	}
	if v := got.Cell("Economic Impact (Millions USD)", 0); v.Int != 7200 {
		t.Errorf("Diwali economic impact = %d, want 7200", v.Int)
	}
	// Unknown festival columns fall back to defaults.
	tbl2 := core.NewTable(0)
	tbl2.AddColumn("Festival", textCol("Atlantis Carnival"))
	got2 := runPipeline(t, "festivals", tbl2)
	if v := got2.Cell("Economic Impact (Millions USD)", 0); v.Int != 250 {
		t.Errorf("fallback economic impact = %d, want 250", v.Int)
	}
	if v := got2.Cell("Month", 0).AsText(); v != "January" {
		t.Errorf("month without Season = %q, want January", v)
	}
}

func TestFestivals_SheetEconomicFigurePreferred(t *testing.T) {
	tbl := core.NewTable(0)
	tbl.AddColumn("Festival", textCol("Diwali"))
	tbl.AddColumn("Economic Impact (USD millions)", textCol("8000"))

	got := runPipeline(t, "festivals", tbl)

	if v := got.Cell("Economic Impact (Millions USD)", 0); v.Int != 8000 {
		t.Errorf("sheet figure = %d, want 8000 over the reference 7200", v.Int)
	}
}

func TestPopulation_DropsProjections(t *testing.T) {
	future := time.Now().Year() + 10
	tbl := core.NewTable(0)
	tbl.AddColumn("Year", textCol("1951", "2011", strconv.Itoa(future)))
	tbl.AddColumn("Population (millions)", textCol("361.1", "1210.9", "1700.0"))

	got := runPipeline(t, "population", tbl)

	if got.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2 after dropping projections", got.NumRows())
	}
	if v := got.Cell("Year", 1); v.Int != 2011 {
		t.Errorf("last year = %d, want 2011", v.Int)
	}
}

func TestGeography_TerrainFallback(t *testing.T) {
	got := runPipeline(t, "geography", core.NewTable(0))

	if got.NumRows() != 6 {
		t.Fatalf("NumRows = %d, want 6 terrain rows", got.NumRows())
	}
	if v := got.Cell("Terrain_Type", 1).AsText(); v != "Plains" {
		t.Errorf("terrain row 1 = %q, want Plains", v)
	}
	if v := got.Cell("Percentage", 1).AsFloat(); v != 43.2 {
		t.Errorf("plains percentage = %v, want 43.2", v)
	}
}

func TestGeography_KeepsCompleteSheet(t *testing.T) {
	tbl := core.NewTable(0)
	tbl.AddColumn("Terrain_Type", textCol("Islands"))
	tbl.AddColumn("Percentage", textCol("0.2"))

	got := runPipeline(t, "geography", tbl)

	if got.NumRows() != 1 || got.Cell("Terrain_Type", 0).AsText() != "Islands" {
		t.Error("complete sheet should pass through unchanged")
	}
}

func TestTourism_HeadlineExtraction(t *testing.T) {
	tbl := core.NewTable(0)
	tbl.AddColumn("Popular Destinations", textCol("Jaipur, Udaipur, Jaisalmer"))
	tbl.AddColumn("Key States", textCol("Rajasthan"))
	tbl.AddColumn("Annual Visitors (millions)", textCol("52.3"))

	got := runPipeline(t, "tourism", tbl)

	if v := got.Cell("Destination", 0).AsText(); v != "Jaipur" {
		t.Errorf("headline destination = %q, want Jaipur", v)
	}
	if v := got.Cell("State", 0).AsText(); v != "Rajasthan" {
		t.Errorf("headline state = %q", v)
	}
	if v := got.Cell("Visitors_Annual", 0).AsFloat(); v != 52.3 {
		t.Errorf("visitors = %v, want 52.3", v)
	}
	if v := got.Cell("Type", 0).AsText(); v != "Monument" {
		t.Errorf("default type = %q, want Monument", v)
	}
}

func TestCultural_AliasesAndYear(t *testing.T) {
	tbl := core.NewTable(0)
	tbl.AddColumn("Cultural Element", textCol("Classical Dance"))
	tbl.AddColumn("Historical Period", textCol("2nd century BCE onwards"))
	tbl.AddColumn("Region of Origin", textCol("Tamil Nadu"))

	got := runPipeline(t, "cultural", tbl)

	if v := got.Cell("Heritage_Type", 0).AsText(); v != "Classical Dance" {
		t.Errorf("Heritage_Type alias = %q", v)
	}
	if v := got.Cell("State", 0).AsText(); v != "Tamil Nadu" {
		t.Errorf("State should mirror Region of Origin, got %q", v)
	}
	if v := got.Cell("Year", 0); v.Int != 2 {
		t.Errorf("Year = %d, want 2 from the period string", v.Int)
	}
	if v := got.Cell("Name", 0).AsText(); v != "Heritage 1" {
		t.Errorf("Name placeholder = %q", v)
	}
}

func TestState_ReferenceEnrichment(t *testing.T) {
	tbl := core.NewTable(0)
	tbl.AddColumn("State", textCol("Kerala", "Atlantis"))

	got := runPipeline(t, "state", tbl)

	if v := got.Cell("HDI", 0).AsFloat(); v != 0.782 {
		t.Errorf("Kerala HDI = %v, want 0.782", v)
	}
	if v := got.Cell("HDI", 1).AsFloat(); v != 0.65 {
		t.Errorf("unknown state HDI = %v, want 0.65 fallback", v)
	}
	if v := got.Cell("Capital", 0).AsText(); v != "Thiruvananthapuram" {
		t.Errorf("Kerala capital = %q", v)
	}
	if v := got.Cell("Capital", 1).AsText(); v != "Unknown" {
		t.Errorf("unknown state capital = %q, want Unknown", v)
	}
}

func TestLinguistic_Placeholders(t *testing.T) {
	tbl := core.NewTable(0)
	tbl.AddColumn("Speakers", textCol("528000000", "97000000"))

	got := runPipeline(t, "linguistic", tbl)

	if v := got.Cell("Language", 1).AsText(); v != "Language 2" {
		t.Errorf("placeholder = %q, want Language 2", v)
	}
	if v := got.Cell("Speakers", 0); v.Kind != core.KindInt || v.Int != 528000000 {
		t.Errorf("speakers = %+v", v)
	}
}
