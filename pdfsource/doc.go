// Package pdfsource decodes PDF files into [geometry.Document] values.
//
// Glyph runs come from github.com/ledongthuc/pdf in content-stream order and
// are grouped into spans (same font, size and baseline, no visible gap),
// lines (same baseline) and blocks (vertically adjacent lines). Page sizes
// come from pdfcpu, which resolves inherited and rotated media boxes, with
// the page's own /MediaBox as a fallback.
//
// Basic usage:
//
//	doc, err := pdfsource.Open("report.pdf")
//	if err != nil {
//	    // handle error
//	}
//	for _, page := range doc.Pages {
//	    fmt.Println(page.Index, page.LineCount())
//	}
package pdfsource
