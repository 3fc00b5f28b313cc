package shape

import (
	"fmt"
	"strings"
)

// Strategy identifies an extraction pipeline
type Strategy int

const (
	// Structured handles multi-page reports with numbered sections
	Structured Strategy = iota

	// ApplicationForm titles a form by its first line and emits no outline
	ApplicationForm

	// Poster handles dense one-page documents
	Poster

	// SparsePoster handles one-page documents with few lines
	SparsePoster

	// LegacySpecialCase lists the bold spans of a known file
	LegacySpecialCase

	// Generic classifies by size thresholds. Classify never returns it.
	Generic
)

var strategyNames = map[Strategy]string{
	Structured:        "structured",
	ApplicationForm:   "application-form",
	Poster:            "poster",
	SparsePoster:      "sparse-poster",
	LegacySpecialCase: "legacy",
	Generic:           "generic",
}

// String returns the strategy name
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Strategies returns every strategy in declaration order
func Strategies() []Strategy {
	return []Strategy{Structured, ApplicationForm, Poster, SparsePoster, LegacySpecialCase, Generic}
}

// ParseStrategy converts a name such as "poster" into a Strategy
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return Structured, fmt.Errorf("unknown strategy %q", name)
}

// Stats are the document features the classifier looks at
type Stats struct {
	// FileName is the base name of the input file
	FileName string

	// PageCount is the number of pages in the document
	PageCount int

	// LineCount is the number of collected lines across all pages
	LineCount int

	// FirstLine is the text of the first collected line
	FirstLine string
}

// Config holds the classification rules
type Config struct {
	// LegacyMarkers select the bold-span listing when the lowercase file
	// name contains any of them
	// Default: "file03"
	LegacyMarkers []string `yaml:"legacy_markers"`

	// FormMarkers identify application forms by their first line (lowercase)
	// Default: "application form", "grant of"
	FormMarkers []string `yaml:"form_markers"`

	// PosterPages is the page count of posters
	// Default: 1
	PosterPages int `yaml:"poster_pages"`

	// DenseLines is the line count above which a poster is dense
	// Default: 20
	DenseLines int `yaml:"dense_lines"`
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		LegacyMarkers: []string{"file03"},
		FormMarkers:   []string{"application form", "grant of"},
		PosterPages:   1,
		DenseLines:    20,
	}
}

// Classify picks the strategy for a document. Rules are checked in order:
// legacy file name, application form first line, dense poster, sparse
// poster, and Structured for everything else.
func Classify(stats Stats, config Config) Strategy {
	if containsAny(strings.ToLower(stats.FileName), config.LegacyMarkers) {
		return LegacySpecialCase
	}
	if stats.LineCount > 0 && containsAny(strings.ToLower(stats.FirstLine), config.FormMarkers) {
		return ApplicationForm
	}
	if stats.PageCount == config.PosterPages {
		if stats.LineCount > config.DenseLines {
			return Poster
		}
		return SparsePoster
	}
	return Structured
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(s, m) {
			return true
		}
	}
	return false
}
