package tables

import (
	"testing"

	"github.com/indiaviz/dataserver/internal/core"
)

func TestFirstMonth(t *testing.T) {
	tests := []struct {
		name    string
		in      core.Value
		want    string
		wantNul bool
	}{
		{"month range", core.TextValue("October-November"), "October", false},
		{"slash range", core.TextValue("March/April"), "March", false},
		{"variable season", core.TextValue("Variable"), "Variable", false},
		{"single month", core.TextValue("August"), "August", false},
		{"non-month word", core.TextValue("Spring season"), "", true},
		{"non-month range", core.TextValue("Harvest-time"), "", true},
		{"digits only", core.TextValue("2024"), "", true},
		{"null", core.NullValue(core.KindText), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstMonth(tt.in)
			if got.IsNull() != tt.wantNul {
				t.Fatalf("FirstMonth(%v).IsNull() = %v, want %v", tt.in, got.IsNull(), tt.wantNul)
			}
			if !tt.wantNul && got.AsText() != tt.want {
				t.Errorf("FirstMonth(%v) = %q, want %q", tt.in, got.AsText(), tt.want)
			}
		})
	}
}

func TestFestivalReferenceTables(t *testing.T) {
	if EconomicImpact["Diwali"] != 7200 {
		t.Errorf("Diwali economic impact = %d, want 7200", EconomicImpact["Diwali"])
	}
	if _, ok := EnvironmentalImpact["Kumbh Mela"]; !ok {
		t.Error("Kumbh Mela missing from environmental impact table")
	}
	// The qualitative and quantitative tables cover the same festivals.
	for name := range EconomicImpact {
		if _, ok := EnvironmentalImpact[name]; !ok {
			t.Errorf("festival %q has economic impact but no environmental entry", name)
		}
	}
}

func TestStateReferenceTables(t *testing.T) {
	if HDIByState["Kerala"] != 0.782 {
		t.Errorf("Kerala HDI = %v, want 0.782", HDIByState["Kerala"])
	}
	// Every state with an HDI entry should have a capital.
	for state := range HDIByState {
		if _, ok := CapitalByState[state]; !ok {
			t.Errorf("state %q has HDI but no capital", state)
		}
	}
}
