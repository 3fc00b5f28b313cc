package pdfoutline

import (
	"bytes"
	"encoding/json"

	"github.com/tsawler/pdfoutline/heading"
	"github.com/tsawler/pdfoutline/shape"
)

// Result is the outcome of one extraction
type Result struct {
	// Strategy is the pipeline that produced the result
	Strategy shape.Strategy

	// Document holds the title and outline. It is empty for
	// shape.LegacySpecialCase.
	Document heading.Document

	// Spans holds the bold-span listing of shape.LegacySpecialCase
	Spans []heading.SpanHeading
}

// Headings returns the number of outline entries, or of bold spans for the
// legacy listing
func (r *Result) Headings() int {
	if r.Strategy == shape.LegacySpecialCase {
		return len(r.Spans)
	}
	return len(r.Document.Outline)
}

// JSON renders the result as written to disk: two-space indentation,
// non-ASCII (line and paragraph separators included) and HTML characters
// kept as is, no trailing newline. The legacy listing is a flat array.
func (r *Result) JSON() ([]byte, error) {
	var v any = heading.NewDocument(r.Document.Title, r.Document.Outline)
	if r.Strategy == shape.LegacySpecialCase {
		spans := r.Spans
		if spans == nil {
			spans = []heading.SpanHeading{}
		}
		v = spans
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeSeparators writes U+2028 and U+2029 back as raw runes.
// encoding/json escapes them even with HTML escaping off. An escape that
// follows an escaped backslash is literal text and stays.
func unescapeSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if data[i+1] == 'u' && i+6 <= len(data) {
			switch string(data[i : i+6]) {
			case `\u2028`:
				out = append(out, "\u2028"...)
				i += 5
				continue
			case `\u2029`:
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		// keep any other escape pair intact
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}
