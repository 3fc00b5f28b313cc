// Package shape decides which extraction pipeline suits a document.
//
// [Classify] is a pure function of a few gross statistics (file name, page
// count, line count and the first line's text), so every decision can be
// tested without a PDF. The root package maps each [Strategy] to a
// pipeline.
package shape
