// Package schema declares the column contracts for every dataset served by
// the dashboard. Each file registers one DatasetDefinition at init time;
// importing the package for side effects populates the core registry.
package schema

import "github.com/indiaviz/dataserver/internal/core"

// textLookup adapts a string reference table into a ColumnSpec lookup with
// a fixed fallback for unknown keys.
func textLookup(m map[string]string, fallback string) func(string) core.Value {
	return func(key string) core.Value {
		if v, ok := m[key]; ok {
			return core.TextValue(v)
		}
		return core.TextValue(fallback)
	}
}

// nullableTextLookup is textLookup with a null fallback, for narrative
// columns where absence means "no data", not a placeholder.
func nullableTextLookup(m map[string]string) func(string) core.Value {
	return func(key string) core.Value {
		if v, ok := m[key]; ok {
			return core.TextValue(v)
		}
		return core.NullValue(core.KindText)
	}
}

// floatLookup adapts a float reference table into a ColumnSpec lookup.
func floatLookup(m map[string]float64, fallback float64) func(string) core.Value {
	return func(key string) core.Value {
		if v, ok := m[key]; ok {
			return core.FloatValue(v)
		}
		return core.FloatValue(fallback)
	}
}

// intLookup adapts an integer reference table into a ColumnSpec lookup.
func intLookup(m map[string]int64, fallback int64) func(string) core.Value {
	return func(key string) core.Value {
		if v, ok := m[key]; ok {
			return core.IntValue(v)
		}
		return core.IntValue(fallback)
	}
}
