// Package geometry defines the decoded page geometry that the outline
// heuristics operate on.
//
// A [Document] is an ordered list of [Page] values. Each page holds blocks,
// each block holds lines and each line holds the [Span] runs that make it up.
// Coordinates use a top-left origin: Y grows down the page, so a line's top
// edge is [BBox.Y0] and a smaller value means higher on the page.
//
// Geometry is produced by a [Source]. The pdfsource package decodes real PDF
// files; tests build documents by hand:
//
//	doc := &geometry.Document{Pages: []geometry.Page{{
//	    Height: 792,
//	    Blocks: []geometry.Block{{Lines: []geometry.Line{
//	        geometry.NewLine(geometry.Span{Text: "Title", Font: "Arial-Bold", Size: 20,
//	            BBox: geometry.BBox{X0: 72, Y0: 72, X1: 140, Y1: 92}}),
//	    }}},
//	}}}
package geometry
