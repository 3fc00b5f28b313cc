// Package title isolates a document title from the largest, topmost lines
// of its first page.
//
// Three variants serve the different extraction pipelines: [Generic] takes
// every first-page line close to the largest size, [Structured] bounds the
// title block by vertical proximity and skips administrative boilerplate,
// and [Largest] picks the single largest line of a poster. Each returns the
// title text together with the set of line texts that formed it, so the
// heading classifiers can exclude them.
package title

import (
	"math"
	"strings"

	"github.com/tsawler/pdfoutline/internal/textset"
	"github.com/tsawler/pdfoutline/lines"
)

// Config holds configuration for title extraction
type Config struct {
	// SizeTolerance is how far, in points, a line's size may be from the
	// largest size and still belong to the title
	// Default: 1.0
	SizeTolerance float64 `yaml:"size_tolerance"`

	// MaxLines is the number of topmost lines considered by Structured
	// Default: 6
	MaxLines int `yaml:"max_lines"`

	// MaxGap is the largest vertical distance between consecutive title
	// lines accepted by Structured
	// Default: 60 points
	MaxGap float64 `yaml:"max_gap"`

	// SkipKeywords drop title lines naming an organization (lowercase)
	// Default: "board", "committee", "association", "department", "university"
	SkipKeywords []string `yaml:"skip_keywords"`
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		SizeTolerance: 1.0,
		MaxLines:      6,
		MaxGap:        60,
		SkipKeywords:  []string{"board", "committee", "association", "department", "university"},
	}
}

// Result is an extracted title
type Result struct {
	// Text is the title string, empty when none was found
	Text string

	// Lines holds the texts of the lines that make up the title
	Lines textset.Set
}

// Generic builds the title from every page-0 line whose size is within
// SizeTolerance of the largest page-0 size, top to bottom, deduplicated by
// text. Whitespace runs in the joined title are collapsed.
func Generic(idx *lines.Index, config Config) Result {
	result := Result{Lines: textset.New()}

	first := lines.SortByY(idx.Lines(0))
	if len(first) == 0 {
		return result
	}

	maxSize := 0.0
	for _, l := range first {
		maxSize = math.Max(maxSize, l.Size)
	}

	var parts []string
	for _, l := range first {
		if math.Abs(l.Size-maxSize) > config.SizeTolerance || result.Lines.Has(l.Text) {
			continue
		}
		result.Lines.Add(l.Text)
		parts = append(parts, l.Text)
	}

	result.Text = strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	return result
}

// Structured builds the title from the topmost MaxLines lines of a page.
// The primary size is the largest in that prefix. Walking the prefix top
// to bottom, a line within SizeTolerance of the primary size joins the
// title when it is the first such line or lies no more than MaxGap below
// the previous title line; the walk stops at the first line that is too
// far. Lines naming an organization are then dropped.
func Structured(pageLines []lines.Line, config Config) Result {
	result := Result{Lines: textset.New()}

	sorted := lines.SortByY(pageLines)
	if len(sorted) == 0 {
		return result
	}
	if config.MaxLines > 0 && len(sorted) > config.MaxLines {
		sorted = sorted[:config.MaxLines]
	}

	primary := 0.0
	for _, l := range sorted {
		primary = math.Max(primary, l.Size)
	}

	var group []lines.Line
	for _, l := range sorted {
		if math.Abs(l.Size-primary) > config.SizeTolerance {
			continue
		}
		if len(group) > 0 && math.Abs(l.Y-group[len(group)-1].Y) > config.MaxGap {
			break
		}
		group = append(group, l)
	}

	skip := textset.New(config.SkipKeywords...)
	var parts []string
	for _, l := range group {
		if skip.ContainsAnyIn(strings.ToLower(l.Text)) {
			continue
		}
		parts = append(parts, l.Text)
		result.Lines.Add(l.Text)
	}

	result.Text = strings.Join(parts, " ")
	return result
}

// Largest returns the text of the largest line; among equally large lines
// the first in reading order wins
func Largest(all []lines.Line) Result {
	result := Result{Lines: textset.New()}
	sorted := lines.SortBySizeDesc(all)
	if len(sorted) == 0 {
		return result
	}
	result.Text = sorted[0].Text
	result.Lines.Add(sorted[0].Text)
	return result
}
