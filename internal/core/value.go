package core

// value.go defines the tagged cell value used throughout the pipeline.
//
// Raw CSV cells arrive as text of unknown quality: empty, whitespace-only,
// or encoding structured sub-data ("1:26", "A, B, C"). Every cell is carried
// as a Value with an explicit Valid flag so consumers branch on presence
// instead of sniffing types. Invalid Values render as null in JSON output.

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind is the primitive type of a cell value.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
)

// Value is a single table cell. Valid=false means "no data" regardless of
// kind; all accessors return neutral zero values in that case.
type Value struct {
	Kind  Kind
	Text  string
	Int   int64
	Float float64
	Valid bool
}

// TextValue returns a text Value.
// Returns invalid if the string is empty or only whitespace.
func TextValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{Kind: KindText}
	}
	return Value{Kind: KindText, Text: s, Valid: true}
}

// IntValue returns a valid integer Value.
func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i, Valid: true}
}

// FloatValue returns a valid floating-point Value.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f, Valid: true}
}

// NullValue returns an invalid Value of the given kind.
func NullValue(k Kind) Value {
	return Value{Kind: k}
}

// IsNull reports whether the value carries no data.
func (v Value) IsNull() bool { return !v.Valid }

// AsText returns the cell as a string. Numeric kinds are formatted; invalid
// values yield "".
func (v Value) AsText() string {
	if !v.Valid {
		return ""
	}
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return v.Text
	}
}

// AsFloat returns the cell as a float64, coercing text if possible.
// Invalid or unparseable values yield 0.
func (v Value) AsFloat() float64 {
	if !v.Valid {
		return 0
	}
	switch v.Kind {
	case KindFloat:
		return v.Float
	case KindInt:
		return float64(v.Int)
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err != nil {
			return 0
		}
		return f
	}
}

// AsInt returns the cell as an int64, coercing text if possible.
// Invalid or unparseable values yield 0. Float kinds truncate.
func (v Value) AsInt() int64 {
	if !v.Valid {
		return 0
	}
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return int64(v.Float)
	default:
		i, err := strconv.ParseInt(strings.TrimSpace(v.Text), 10, 64)
		if err != nil {
			return 0
		}
		return i
	}
}

// Equal reports whether two values hold the same data. Two invalid values
// are equal regardless of kind.
func (v Value) Equal(o Value) bool {
	if !v.Valid && !o.Valid {
		return true
	}
	if v.Valid != o.Valid || v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	default:
		return v.Text == o.Text
	}
}

// MarshalJSON renders invalid values as null and valid ones as their
// primitive JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	switch v.Kind {
	case KindInt:
		return json.Marshal(v.Int)
	case KindFloat:
		return json.Marshal(v.Float)
	default:
		return json.Marshal(v.Text)
	}
}
