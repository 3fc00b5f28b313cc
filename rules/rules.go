// Package rules gathers every threshold and keyword table of the extractor
// into one value that can be overridden from a YAML file.
//
// Only the keys present in the file change; everything else keeps the
// package defaults:
//
//	heading:
//	  structured:
//	    banned_keywords: [board, committee]
//	  patches: []
//	noise:
//	  min_repeat_pages: 4
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/pdfoutline/heading"
	"github.com/tsawler/pdfoutline/lines"
	"github.com/tsawler/pdfoutline/noise"
	"github.com/tsawler/pdfoutline/pdfsource"
	"github.com/tsawler/pdfoutline/shape"
	"github.com/tsawler/pdfoutline/title"
)

// Rules is the complete extractor configuration
type Rules struct {
	// Source controls glyph grouping in the PDF decoder
	Source pdfsource.Config `yaml:"source"`

	// Lines is the collector used by the generic, poster and form pipelines
	Lines lines.CollectorConfig `yaml:"lines"`

	// StructuredLines is the collector used by the structured pipeline
	StructuredLines lines.CollectorConfig `yaml:"structured_lines"`

	Noise   noise.Config   `yaml:"noise"`
	Title   title.Config   `yaml:"title"`
	Heading heading.Config `yaml:"heading"`
	Shape   shape.Config   `yaml:"shape"`
}

// Default returns the built-in rules
func Default() *Rules {
	generic := lines.DefaultCollectorConfig()
	generic.BoldMarkers = []string{"bold", "black"}

	return &Rules{
		Source:          pdfsource.DefaultConfig(),
		Lines:           generic,
		StructuredLines: lines.DefaultCollectorConfig(),
		Noise:           noise.DefaultConfig(),
		Title:           title.DefaultConfig(),
		Heading:         heading.DefaultConfig(),
		Shape:           shape.DefaultConfig(),
	}
}

// Load reads a YAML file and overlays it onto the defaults
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return r, nil
}

// Parse overlays YAML data onto the defaults and validates the result
func Parse(data []byte) (*Rules, error) {
	r := Default()
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks that numeric thresholds are usable
func (r *Rules) Validate() error {
	if r.Source.LineTolerance <= 0 {
		return fmt.Errorf("source.line_tolerance must be > 0")
	}
	if r.Source.DefaultWidth <= 0 || r.Source.DefaultHeight <= 0 {
		return fmt.Errorf("source default page size must be > 0")
	}
	if r.Noise.MinRepeatPages < 1 {
		return fmt.Errorf("noise.min_repeat_pages must be >= 1")
	}
	if r.Noise.MarginRatio < 0 || r.Noise.MarginRatio >= 0.5 {
		return fmt.Errorf("noise.margin_ratio must be in [0, 0.5)")
	}
	if r.Title.MaxLines < 1 {
		return fmt.Errorf("title.max_lines must be >= 1")
	}
	p := r.Heading.Poster
	if p.MinUpperLength > p.MaxUpperLength {
		return fmt.Errorf("heading.poster: min_upper_length %d exceeds max_upper_length %d",
			p.MinUpperLength, p.MaxUpperLength)
	}
	for i, patch := range r.Heading.Patches {
		if patch.Prefix == "" {
			return fmt.Errorf("heading.patches[%d]: prefix is required", i)
		}
	}
	return nil
}
