// Package lines turns decoded page geometry into logical text lines.
//
// [MergeSpans] joins the spans of one visual line, inserting a space where
// the horizontal gap between spans is wider than an estimated space width.
// A [Collector] walks every page, block and line of a [geometry.Document]
// and records one [Line] per non-empty merged line, with its representative
// size, font, boldness and vertical position. The result is an [Index]
// keyed by 0-based page number.
//
//	idx := lines.NewCollector().Collect(doc)
//	for _, page := range idx.Pages() {
//	    for _, l := range idx.Lines(page) {
//	        fmt.Printf("%d %.1f %s\n", page, l.Size, l.Text)
//	    }
//	}
package lines
