package heading

import (
	"reflect"
	"testing"

	"github.com/tsawler/pdfoutline/lines"
)

func TestIsValidStructured(t *testing.T) {
	config := DefaultStructuredConfig()

	tests := []struct {
		text string
		want bool
	}{
		{"1. Introduction", true},
		{"Revision History", true},
		{"Ab", false},
		{"   ", false},
		{"1.1", false},
		{"1.2.", false},
		{"1.1 University Policy", false},
		{"1.2.3.", false},
		{"*****", false},
		{"12345", false},
		{"a!!!!!!!!!", false},
		{"2.1 Board of Directors", false},
		{"Version 1.0", false},
		{"3. Team Dates", false},
	}

	for _, tc := range tests {
		if got := IsValidStructured(tc.text, config); got != tc.want {
			t.Errorf("IsValidStructured(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestIsPotentialStructured(t *testing.T) {
	config := DefaultStructuredConfig()

	tests := []struct {
		text string
		size float64
		want bool
	}{
		{"1. Introduction", 14, true},
		{"2.1 Scope", 14, true},
		{"2.1.3 Details", 14, true},
		{"Acknowledgements", 14, true},
		{"TABLE OF CONTENTS", 14, true},
		{"1. Introduction", 11, false},
		{"Introduction", 14, false},
		{"1.Introduction", 14, false},
	}

	for _, tc := range tests {
		if got := IsPotentialStructured(tc.text, tc.size, 12, config); got != tc.want {
			t.Errorf("IsPotentialStructured(%q, %v) = %v, want %v", tc.text, tc.size, got, tc.want)
		}
	}
}

func TestStructuredLevel(t *testing.T) {
	tests := []struct {
		text string
		want Level
	}{
		{"2.1.3 Details", H3},
		{"2.1 Scope", H2},
		{"2. Background", H1},
		{"Acknowledgements", H1},
	}

	for _, tc := range tests {
		if got := StructuredLevel(tc.text); got != tc.want {
			t.Errorf("StructuredLevel(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestStructuredThreshold(t *testing.T) {
	config := DefaultStructuredConfig()

	t.Run("known labels", func(t *testing.T) {
		idx := lines.IndexOf([]lines.Line{
			{Text: "Revision History", Size: 16, Page: 0},
			{Text: "body", Size: 10, Page: 0},
			{Text: "Table of Contents", Size: 14, Page: 1},
		})
		if got := StructuredThreshold(idx, config); got != 14 {
			t.Errorf("threshold = %v, want 14", got)
		}
	})

	t.Run("median fallback", func(t *testing.T) {
		idx := lines.IndexOf([]lines.Line{
			{Text: "a", Size: 16, Page: 0},
			{Text: "b", Size: 10, Page: 0},
			{Text: "c", Size: 14, Page: 1},
			{Text: "d", Size: 12, Page: 1},
		})
		if got := StructuredThreshold(idx, config); !approx(got, 12.6) {
			t.Errorf("threshold = %v, want 12.6", got)
		}
	})

	t.Run("no lines", func(t *testing.T) {
		if got := StructuredThreshold(lines.NewIndex(), config); got != 0 {
			t.Errorf("threshold = %v, want 0", got)
		}
	})
}

func TestStructured(t *testing.T) {
	idx := lines.IndexOf([]lines.Line{
		{Text: "Overview Document", Size: 20, Page: 0},
		{Text: "Revision History", Size: 14, Page: 0},
		{Text: "1. Introduction", Size: 14, Page: 0},
		{Text: "1. Introduction", Size: 14, Page: 0},
		{Text: "1. Running Header", Size: 14, Page: 0},
		{Text: "Body text that is long", Size: 10, Page: 0},
		{Text: "Table of Contents", Size: 14, Page: 1},
		{Text: "1. Introduction", Size: 14, Page: 1},
		{Text: "2.1 Scope", Size: 14, Page: 1},
		{Text: "1. Introduction", Size: 14, Page: 2},
		{Text: "2.1 Scope", Size: 14, Page: 2},
		{Text: "2.1.1 Detail", Size: 14, Page: 2},
		{Text: "3. Board Members", Size: 14, Page: 2},
		{Text: "2.2 Small", Size: 9, Page: 2},
	})

	state := NewRunState()
	state.TitleLines.Add("Overview Document")
	state.Repeated.Add("1. Running Header")
	state.IndexPages[1] = true

	got := Structured(idx, state, DefaultStructuredConfig())
	want := []Heading{
		{Level: H1, Text: "Revision History", Page: 0},
		{Level: H1, Text: "1. Introduction", Page: 0},
		{Level: H1, Text: "Table of Contents", Page: 1},
		{Level: H1, Text: "1. Introduction", Page: 2},
		{Level: H2, Text: "2.1 Scope", Page: 2},
		{Level: H3, Text: "2.1.1 Detail", Page: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Structured() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestStructured_RejectsNoise(t *testing.T) {
	idx := lines.IndexOf([]lines.Line{
		{Text: "1.1", Size: 14},
		{Text: ".....banned?!", Size: 14},
		{Text: "1.1 University Policy", Size: 14},
		{Text: "Acknowledgements", Size: 14},
	})

	got := Structured(idx, NewRunState(), DefaultStructuredConfig())
	want := []Heading{{Level: H1, Text: "Acknowledgements", Page: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Structured() = %+v, want %+v", got, want)
	}
}

func TestStructured_SkipPrefixes(t *testing.T) {
	config := DefaultStructuredConfig()
	config.KnownLabels = append(config.KnownLabels, "chapter summary")

	idx := lines.IndexOf([]lines.Line{
		{Text: "Chapter Summary", Size: 14, Page: 0},
		{Text: "1. Start", Size: 14, Page: 0},
	})

	got := Structured(idx, NewRunState(), config)
	if len(got) != 1 || got[0].Text != "1. Start" {
		t.Errorf("expected only the numbered heading, got %+v", got)
	}
}

func TestStructured_Empty(t *testing.T) {
	got := Structured(lines.NewIndex(), NewRunState(), DefaultStructuredConfig())
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil outline, got %#v", got)
	}
}
