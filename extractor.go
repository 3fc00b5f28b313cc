package pdfoutline

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tsawler/pdfoutline/geometry"
	"github.com/tsawler/pdfoutline/lines"
	"github.com/tsawler/pdfoutline/pdfsource"
	"github.com/tsawler/pdfoutline/rules"
	"github.com/tsawler/pdfoutline/shape"
)

// ErrNoSource is returned when an Extractor has neither a file name nor a
// document to work on
var ErrNoSource = errors.New("no filename or document specified")

// Extractor provides a fluent interface for extracting outlines.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	doc      *geometry.Document

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithRules replaces the default thresholds and keyword tables.
//
// Example:
//
//	r, _ := rules.Load("rules.yaml")
//	res, err := pdfoutline.Open("doc.pdf").WithRules(r).Extract()
func (e *Extractor) WithRules(r *rules.Rules) *Extractor {
	newExt := e.clone()
	if r == nil {
		newExt.err = errors.New("rules must not be nil")
		return newExt
	}
	newExt.options.rules = r
	return newExt
}

// WithSource sets the decoder used to read the file. It has no effect on
// an Extractor created with FromDocument.
func (e *Extractor) WithSource(src geometry.Source) *Extractor {
	newExt := e.clone()
	newExt.options.source = src
	return newExt
}

// ForceStrategy bypasses shape classification and runs the given pipeline.
// It is the only way to select shape.Generic.
//
// Example:
//
//	res, err := pdfoutline.Open("doc.pdf").ForceStrategy(shape.Generic).Extract()
func (e *Extractor) ForceStrategy(s shape.Strategy) *Extractor {
	newExt := e.clone()
	if _, ok := pipelines[s]; !ok {
		newExt.err = fmt.Errorf("unsupported strategy: %s", s)
		return newExt
	}
	newExt.options.strategy = s
	newExt.options.forced = true
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Strategy reports which pipeline Extract would run.
func (e *Extractor) Strategy() (shape.Strategy, error) {
	if e.err != nil {
		return shape.Structured, e.err
	}
	if e.options.forced {
		return e.options.strategy, nil
	}

	doc, err := e.document()
	if err != nil {
		return shape.Structured, err
	}
	return e.classify(doc, e.collect(doc)), nil
}

// Extract decodes the document, selects a pipeline and returns its title
// and outline. Heuristics never fail; errors come only from reading the
// input.
//
// Example:
//
//	res, err := pdfoutline.Open("document.pdf").Extract()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(res.Document.Title)
func (e *Extractor) Extract() (*Result, error) {
	if e.err != nil {
		return nil, e.err
	}

	doc, err := e.document()
	if err != nil {
		return nil, err
	}

	in := input{
		doc:   doc,
		rules: e.options.rules,
		lines: e.collect(doc),
	}

	strategy := e.options.strategy
	if !e.options.forced {
		strategy = e.classify(doc, in.lines)
	}

	res := pipelines[strategy](in)
	res.Strategy = strategy
	return res, nil
}

// ============================================================================
// Helpers
// ============================================================================

// document returns the configured document, decoding the file if needed.
func (e *Extractor) document() (*geometry.Document, error) {
	if e.doc != nil {
		return e.doc, nil
	}
	if e.filename == "" {
		return nil, ErrNoSource
	}

	src := e.options.source
	if src == nil {
		src = pdfsource.NewWithConfig(e.options.rules.Source)
	}
	doc, err := src.Load(e.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", e.filename, err)
	}
	return doc, nil
}

// collect runs the unfiltered line collector shared by classification and
// the non-structured pipelines.
func (e *Extractor) collect(doc *geometry.Document) *lines.Index {
	return lines.NewCollectorWithConfig(e.options.rules.Lines).Collect(doc)
}

func (e *Extractor) classify(doc *geometry.Document, idx *lines.Index) shape.Strategy {
	stats := shape.Stats{
		FileName:  filepath.Base(e.filename),
		PageCount: doc.PageCount(),
		LineCount: idx.Len(),
	}
	if first, ok := idx.First(); ok {
		stats.FirstLine = first.Text
	}
	return shape.Classify(stats, e.options.rules.Shape)
}
