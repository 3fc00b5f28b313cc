// Package pdfoutline provides a fluent API for extracting the title and
// heading outline of PDF files from their typography alone.
//
// Basic usage:
//
//	res, err := pdfoutline.Open("report.pdf").Extract()
//	if err != nil {
//	    // handle error
//	}
//	data, err := res.JSON()
//
// With options:
//
//	r, err := rules.Load("rules.yaml")
//	if err != nil {
//	    // handle error
//	}
//	res, err := pdfoutline.Open("report.pdf").
//	    WithRules(r).
//	    ForceStrategy(shape.Generic).
//	    Extract()
//
// The document's shape (page count, line density, first line) selects one
// of several pipelines; see the shape package. Lower-level building blocks
// live in the lines, title, noise and heading packages.
package pdfoutline

import (
	"github.com/tsawler/pdfoutline/geometry"
)

// Open returns an Extractor for the PDF file at path. The file is read by a
// terminal operation such as Extract.
//
// Example:
//
//	res, err := pdfoutline.Open("document.pdf").Extract()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from already-decoded page geometry.
// This is useful when the geometry comes from another decoder or is built
// by hand.
//
// Example:
//
//	doc, err := pdfsource.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	res, err := pdfoutline.FromDocument(doc).Extract()
func FromDocument(doc *geometry.Document) *Extractor {
	e := &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
	if doc != nil {
		e.filename = doc.Path
	}
	return e
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := pdfoutline.Must(pdfoutline.Open("document.pdf").Extract())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
