package schema

import (
	"github.com/indiaviz/dataserver/internal/core"
	"github.com/indiaviz/dataserver/internal/core/tables"
)

func init() {
	core.Register(core.DatasetDefinition{
		Name: "state",
		File: "states.csv",
		Specs: []core.ColumnSpec{
			{Name: "State", Type: core.FieldText, Rule: core.RuleSequential, SeqLabel: "State"},
			{Name: "Population (millions)", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
			{Name: "Area (sq km)", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.IntValue(0)},
			{Name: "Literacy Rate (%)", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
			{Name: "Region", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("Unknown")},
			{Name: "HDI", Type: core.FieldFloat, Rule: core.RuleLookup, LookupKey: "State",
				Lookup: floatLookup(tables.HDIByState, tables.DefaultHDI)},
			{Name: "Urbanization (%)", Type: core.FieldFloat, Rule: core.RuleLookup, LookupKey: "State",
				Lookup: floatLookup(tables.UrbanizationByState, tables.DefaultUrbanization)},
			{Name: "Capital", Type: core.FieldText, Rule: core.RuleLookup, LookupKey: "State",
				Lookup: textLookup(tables.CapitalByState, "Unknown")},
			{Name: "Official Languages", Type: core.FieldText, Rule: core.RuleLookup, LookupKey: "State",
				Lookup: textLookup(tables.LanguagesByState, "Unknown")},
			{Name: "Major Crops", Type: core.FieldText, Rule: core.RuleLookup, LookupKey: "State",
				Lookup: textLookup(tables.CropsByState, tables.DefaultMajorCrops)},
			{Name: "Key Industries", Type: core.FieldText, Rule: core.RuleLookup, LookupKey: "State",
				Lookup: textLookup(tables.IndustriesByState, tables.DefaultKeyIndustries)},
			{Name: "Famous Destinations", Type: core.FieldText, Rule: core.RuleLookup, LookupKey: "State",
				Lookup: textLookup(tables.DestinationsByState, tables.DefaultDestinations)},
		},
	})
}
