package core

// reader.go reads delimited source files with encoding fallbacks.
//
// The dashboard's CSVs come from many hands; some carry Latin-1 or
// Windows-1252 bytes. Decoding is attempted with a fixed priority list and
// the first encoding that yields valid text wins. Delimiter problems are
// not an encoding issue and fail immediately.

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// fallbackEncodings is the fixed decode priority order. Latin-1 accepts any
// byte sequence, so in practice the chain terminates there; the later
// entries keep the list aligned with the source convention.
var fallbackEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", unicode.UTF8},
	{"latin-1", charmap.ISO8859_1},
	{"cp1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

// ReadTable reads the delimited file at path into a raw table of text
// cells. The first row is the header. Returns *NotFoundError when the path
// does not exist and *UnreadableError when no fallback encoding decodes the
// bytes or the delimited format is malformed.
func ReadTable(path string, delim rune) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &UnreadableError{Path: path, Err: err}
	}

	text, err := decodeWithFallbacks(data)
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return NewTable(0), nil
	}
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed rows are a format problem, not an encoding one;
			// retrying other encodings would not help.
			return nil, &UnreadableError{Path: path, Err: err}
		}
		records = append(records, rec)
	}

	t := NewTable(len(records))
	for i, name := range header {
		name = cleanCell(name)
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}
		col := make([]Value, len(records))
		for j, rec := range records {
			if i < len(rec) {
				col[j] = TextValue(cleanCell(rec[i]))
			}
		}
		t.AddColumn(name, col)
	}
	return t, nil
}

// decodeWithFallbacks tries each fallback encoding in order and returns the
// first successful decode.
func decodeWithFallbacks(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

	var lastErr error
	for _, fe := range fallbackEncodings {
		if fe.enc == unicode.UTF8 {
			if utf8.Valid(data) {
				return string(data), nil
			}
			lastErr = fmt.Errorf("invalid utf-8 byte sequence")
			continue
		}
		out, _, err := transform.Bytes(fe.enc.NewDecoder(), data)
		if err != nil {
			lastErr = fmt.Errorf("decode %s: %w", fe.name, err)
			continue
		}
		return string(out), nil
	}
	return "", lastErr
}

// cleanCell removes common CSV artifacts from a cell value: surrounding
// whitespace, an Excel formula prefix (="..."), and stray quotes.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}
	return strings.Trim(s, `"'`)
}
