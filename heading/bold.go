package heading

import (
	"strings"

	"github.com/tsawler/pdfoutline/geometry"
	"github.com/tsawler/pdfoutline/lines"
)

// BoldSpans lists every span set in a bold font, page by page. Texts are
// trimmed and blank spans dropped; nothing is merged or deduplicated.
func BoldSpans(doc *geometry.Document, markers []string) []SpanHeading {
	out := []SpanHeading{}
	if doc == nil {
		return out
	}

	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				for _, span := range line.Spans {
					if !lines.IsBoldFont(span.Font, markers) {
						continue
					}
					text := strings.TrimSpace(span.Text)
					if text == "" {
						continue
					}
					out = append(out, SpanHeading{Text: text, Page: page.Index})
				}
			}
		}
	}

	return out
}
