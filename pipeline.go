package pdfoutline

import (
	"github.com/tsawler/pdfoutline/geometry"
	"github.com/tsawler/pdfoutline/heading"
	"github.com/tsawler/pdfoutline/lines"
	"github.com/tsawler/pdfoutline/noise"
	"github.com/tsawler/pdfoutline/rules"
	"github.com/tsawler/pdfoutline/shape"
	"github.com/tsawler/pdfoutline/title"
)

// input is what every pipeline receives
type input struct {
	doc   *geometry.Document
	rules *rules.Rules

	// lines from the unfiltered collector
	lines *lines.Index
}

type pipeline func(in input) *Result

var pipelines = map[shape.Strategy]pipeline{
	shape.ApplicationForm:   applicationForm,
	shape.Poster:            poster,
	shape.SparsePoster:      sparsePoster,
	shape.Structured:        structured,
	shape.Generic:           generic,
	shape.LegacySpecialCase: legacy,
}

func applicationForm(in input) *Result {
	first, _ := in.lines.First()
	return outlineResult(first.Text, nil)
}

func poster(in input) *Result {
	all := in.lines.All()
	t := title.Largest(all)

	state := heading.NewRunState()
	state.TitleLines = t.Lines

	return outlineResult(t.Text, heading.Poster(all, state, in.rules.Heading.Poster))
}

func sparsePoster(in input) *Result {
	return outlineResult("", heading.SparsePoster(in.lines.All(), in.rules.Heading.Poster))
}

func generic(in input) *Result {
	t := title.Generic(in.lines, in.rules.Title)

	state := heading.NewRunState()
	state.TitleLines = t.Lines

	return outlineResult(t.Text, heading.Generic(in.lines.All(), state, in.rules.Heading))
}

// structured recollects lines without table rows and page margins, then
// classifies numbered sections
func structured(in input) *Result {
	r := in.rules
	idx := lines.NewCollectorWithConfig(r.StructuredLines).
		WithSkip(noise.StructuredSkip(r.Noise)).
		Collect(in.doc)

	t := title.Structured(idx.Lines(0), r.Title)

	state := heading.NewRunState()
	state.TitleLines = t.Lines
	state.Repeated = noise.RepeatedLines(idx, r.Noise.MinRepeatPages)
	state.IndexPages = noise.IndexPages(idx, r.Noise.IndexKeywords)

	outline := heading.Structured(idx, state, r.Heading.Structured)
	heading.ApplyPatches(outline, r.Heading.Patches)

	return outlineResult(t.Text, outline)
}

func legacy(in input) *Result {
	return &Result{Spans: heading.BoldSpans(in.doc, in.rules.Heading.BoldMarkers)}
}

func outlineResult(t string, outline []heading.Heading) *Result {
	return &Result{Document: heading.NewDocument(t, outline)}
}
