package pdfoutline

import (
	"github.com/tsawler/pdfoutline/geometry"
	"github.com/tsawler/pdfoutline/rules"
	"github.com/tsawler/pdfoutline/shape"
)

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// Thresholds and keyword tables; never modified after construction
	rules *rules.Rules

	// Decoder used for file input; nil means pdfsource with rules.Source
	source geometry.Source

	// Pipeline selection
	strategy shape.Strategy
	forced   bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		rules:  rules.Default(),
		source: nil,
		forced: false,
	}
}

// clone creates a copy of ExtractOptions. The rules are shared because no
// extraction step writes to them.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		rules:    o.rules,
		source:   o.source,
		strategy: o.strategy,
		forced:   o.forced,
	}
}
