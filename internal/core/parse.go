package core

// parse.go converts delimiter-encoded composite cells into typed values.
//
// Every parser is total: nil data, empty strings, and malformed tokens
// produce the kind-appropriate neutral value (empty list, zero, invalid
// Value) instead of an error. Degradations are logged at debug level.

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// ListDelim is the delimiter for comma-separated composite lists.
const ListDelim = ", "

var leadingIntPattern = regexp.MustCompile(`-?\d+`)

// StringList splits a composite cell on ", " and trims each element.
// Null cells yield an empty list.
func StringList(v Value) []string {
	return StringListDelim(v, ListDelim)
}

// StringListDelim splits on an explicit delimiter (";" or ". " for
// sentence-like content). Empty elements are dropped.
func StringListDelim(v Value, delim string) []string {
	if v.IsNull() || v.Kind != KindText {
		return nil
	}
	parts := strings.Split(v.Text, delim)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FloatList parses a ", "-separated cell into floats. Any unparseable
// element degrades the whole cell to an empty list; the source lists are
// row-aligned, so a partial parse would silently shift alignment.
func FloatList(v Value) []float64 {
	parts := StringList(v)
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			slog.Debug("composite float list degraded", "token", p)
			return nil
		}
		out = append(out, f)
	}
	return out
}

// IntList parses a ", "-separated cell into ints. Elements may carry digit
// grouping ("196,000"); the grouping comma has no trailing space, so it
// survives the split and is stripped before conversion. Any unparseable
// element degrades the whole cell to an empty list.
func IntList(v Value) []int64 {
	parts := StringList(v)
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.ParseInt(strings.ReplaceAll(p, ",", ""), 10, 64)
		if err != nil {
			slog.Debug("composite int list degraded", "token", p)
			return nil
		}
		out = append(out, i)
	}
	return out
}

// Ratio parses a "1:N" teacher-student style ratio and returns N as a
// float. Malformed or null input yields 0.
func Ratio(v Value) float64 {
	if v.IsNull() {
		return 0
	}
	s := strings.TrimSpace(strings.TrimPrefix(v.AsText(), "1:"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// Fraction parses a "score/max" cell ("37.2/100") and returns the
// numerator. Malformed or null input yields 0.
func Fraction(v Value) float64 {
	if v.IsNull() {
		return 0
	}
	num, _, _ := strings.Cut(v.AsText(), "/")
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0
	}
	return f
}

// LeadingInt extracts the first signed integer token from free text
// ("2600-1900 BCE" yields 2600). Returns an invalid Value when the text
// contains no digits.
func LeadingInt(v Value) Value {
	if v.IsNull() {
		return NullValue(KindInt)
	}
	m := leadingIntPattern.FindString(v.AsText())
	if m == "" {
		return NullValue(KindInt)
	}
	i, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return NullValue(KindInt)
	}
	return IntValue(i)
}

// parseGroupedInt converts a single token with optional digit grouping
// ("848,712") to an int64; invalid tokens yield 0.
func parseGroupedInt(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return i
}

// AlignLength returns the minimum of the given list lengths, the common
// length to which row-aligned parsed lists must be truncated before
// zipping. Source lists may legitimately differ in length due to upstream
// data-entry inconsistency; when truncation actually discards elements a
// diagnostic is logged, since a mismatch can also hide a data-entry error.
func AlignLength(sizes ...int) int {
	if len(sizes) == 0 {
		return 0
	}
	minLen, maxLen := sizes[0], sizes[0]
	for _, n := range sizes[1:] {
		if n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	}
	if minLen < maxLen {
		slog.Debug("row-aligned lists truncated", "kept", minLen, "longest", maxLen)
	}
	return minLen
}
