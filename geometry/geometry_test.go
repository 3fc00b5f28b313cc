package geometry

import "testing"

func TestBBoxUnion(t *testing.T) {
	a := BBox{X0: 10, Y0: 20, X1: 30, Y1: 40}
	b := BBox{X0: 5, Y0: 25, X1: 50, Y1: 35}

	got := a.Union(b)
	want := BBox{X0: 5, Y0: 20, X1: 50, Y1: 40}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	if got := (BBox{}).Union(a); got != a {
		t.Errorf("zero Union = %+v, want %+v", got, a)
	}
}

func TestBBoxDimensions(t *testing.T) {
	b := BBox{X0: 10, Y0: 20, X1: 40, Y1: 30}
	if b.Width() != 30 {
		t.Errorf("Width = %v, want 30", b.Width())
	}
	if b.Height() != 10 {
		t.Errorf("Height = %v, want 10", b.Height())
	}
	if b.IsEmpty() {
		t.Error("expected non-empty box")
	}
	if !(BBox{X0: 1, Y0: 1, X1: 1, Y1: 5}).IsEmpty() {
		t.Error("expected zero-width box to be empty")
	}
}

func TestNewLineAndBlock(t *testing.T) {
	line := NewLine(
		Span{Text: "Hello", BBox: BBox{X0: 10, Y0: 100, X1: 40, Y1: 112}},
		Span{Text: "World", BBox: BBox{X0: 45, Y0: 98, X1: 80, Y1: 112}},
	)
	if line.BBox != (BBox{X0: 10, Y0: 98, X1: 80, Y1: 112}) {
		t.Errorf("line box = %+v", line.BBox)
	}

	block := NewBlock(line, NewLine(Span{Text: "Next", BBox: BBox{X0: 10, Y0: 120, X1: 30, Y1: 132}}))
	if block.BBox != (BBox{X0: 10, Y0: 98, X1: 80, Y1: 132}) {
		t.Errorf("block box = %+v", block.BBox)
	}

	page := Page{Blocks: []Block{block}}
	if page.LineCount() != 2 {
		t.Errorf("LineCount = %d, want 2", page.LineCount())
	}
}

func TestSpanIsBlank(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" a ", false},
	}
	for _, tt := range tests {
		if got := (Span{Text: tt.text}).IsBlank(); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDocumentPageCount(t *testing.T) {
	var nilDoc *Document
	if nilDoc.PageCount() != 0 {
		t.Error("expected 0 pages for nil document")
	}
	doc := &Document{Pages: make([]Page, 3)}
	if doc.PageCount() != 3 {
		t.Errorf("PageCount = %d, want 3", doc.PageCount())
	}
}

func TestSourceFunc(t *testing.T) {
	called := ""
	var src Source = SourceFunc(func(path string) (*Document, error) {
		called = path
		return &Document{Path: path}, nil
	})
	doc, err := src.Load("a.pdf")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if called != "a.pdf" || doc.Path != "a.pdf" {
		t.Errorf("unexpected load result: called=%q path=%q", called, doc.Path)
	}
}
