package pdfoutline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/pdfoutline/geometry"
	"github.com/tsawler/pdfoutline/heading"
	"github.com/tsawler/pdfoutline/rules"
	"github.com/tsawler/pdfoutline/shape"
)

// testPDFPath returns the path to a test PDF file
func testPDFPath(filename string) string {
	return filepath.Join("testdata", filename)
}

// makeLine builds a line of spans at top y, each span placed at its x
func makeLine(y float64, spans ...geometry.Span) geometry.Line {
	for i := range spans {
		s := &spans[i]
		w := float64(len([]rune(s.Text))) * s.Size * 0.5
		s.BBox = geometry.BBox{X0: s.BBox.X0, Y0: y, X1: s.BBox.X0 + w, Y1: y + s.Size}
	}
	return geometry.NewLine(spans...)
}

// text builds a one-span line at x 72
func text(y float64, size float64, s string) geometry.Line {
	return makeLine(y, geometry.Span{Text: s, Font: "Helvetica", Size: size, BBox: geometry.BBox{X0: 72}})
}

func bold(y float64, size float64, s string) geometry.Line {
	return makeLine(y, geometry.Span{Text: s, Font: "Helvetica-Bold", Size: size, BBox: geometry.BBox{X0: 72}})
}

func makeDoc(path string, pages ...[]geometry.Line) *geometry.Document {
	doc := &geometry.Document{Path: path}
	for i, ls := range pages {
		doc.Pages = append(doc.Pages, geometry.Page{
			Index:  i,
			Width:  612,
			Height: 792,
			Blocks: []geometry.Block{geometry.NewBlock(ls...)},
		})
	}
	return doc
}

// structuredDoc is a four-page report with a running header, a table of
// contents page, a table row and a footer line in the page margin
func structuredDoc() *geometry.Document {
	header := func() geometry.Line { return text(60, 16, "1. Copyright Notice") }
	return makeDoc("report.pdf",
		[]geometry.Line{
			header(),
			text(100, 24, "Overview"),
			text(140, 24, "Foundation Level Extensions"),
			text(200, 12, "Version 1.0"),
			text(300, 16, "Revision History"),
		},
		[]geometry.Line{
			header(),
			text(100, 16, "Table of Contents"),
			text(140, 12, "1. Introduction ..... 4"),
			text(180, 16, "2. Scope"),
		},
		[]geometry.Line{
			header(),
			text(100, 16, "1. Introduction"),
			text(130, 11, "Body text paragraph of ordinary prose."),
			text(200, 16, "1.1 Purpose & Audience"),
			makeLine(260,
				geometry.Span{Text: "2.1 Alpha", Font: "Helvetica", Size: 16, BBox: geometry.BBox{X0: 72}},
				geometry.Span{Text: "Beta", Font: "Helvetica", Size: 16, BBox: geometry.BBox{X0: 300}},
			),
			text(770, 16, "3. Footer Heading"),
		},
		[]geometry.Line{
			header(),
			text(100, 16, "3. Overview of the Foundation Level Extension - Agile Tester Syllabus"),
			text(150, 16, "3.1.2 Details"),
		},
	)
}

func TestOpen(t *testing.T) {
	_, err := Open("nonexistent.pdf").Extract()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestFromDocument_Nil(t *testing.T) {
	_, err := FromDocument(nil).Extract()
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("err = %v, want ErrNoSource", err)
	}
}

func TestExtract_Structured(t *testing.T) {
	res, err := FromDocument(structuredDoc()).Extract()
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if res.Strategy != shape.Structured {
		t.Errorf("Strategy = %v, want structured", res.Strategy)
	}
	if res.Document.Title != "Overview Foundation Level Extensions" {
		t.Errorf("Title = %q", res.Document.Title)
	}

	want := []heading.Heading{
		{Level: heading.H1, Text: "Revision History", Page: 0},
		{Level: heading.H1, Text: "Table of Contents", Page: 1},
		{Level: heading.H1, Text: "1. Introduction", Page: 2},
		{Level: heading.H2, Text: "1.1 Purpose & Audience", Page: 2},
		{Level: heading.H1, Text: "3. Overview of the Foundation Level Extension – Agile TesterSyllabus", Page: 3},
		{Level: heading.H3, Text: "3.1.2 Details", Page: 3},
	}
	if !reflect.DeepEqual(res.Document.Outline, want) {
		t.Errorf("Outline =\n%+v\nwant\n%+v", res.Document.Outline, want)
	}
}

func TestExtract_TitleNeverInOutline(t *testing.T) {
	for _, s := range []shape.Strategy{shape.Structured, shape.Generic} {
		res := Must(FromDocument(structuredDoc()).ForceStrategy(s).Extract())
		for _, h := range res.Document.Outline {
			if strings.Contains(res.Document.Title, h.Text) {
				t.Errorf("%v: title line %q emitted as heading", s, h.Text)
			}
		}
	}
}

func TestExtract_Poster(t *testing.T) {
	ls := []geometry.Line{
		text(50, 30, "Parsippany Event"),
		text(90, 14, "Join the neighbours"),
		text(120, 20, "HOPE TO SEE YOU THERE!"),
		text(150, 20, "ADDRESS:"),
	}
	for i := 0; i < 20; i++ {
		ls = append(ls, text(200+float64(i)*20, 10, "Details about the party"))
	}

	res, err := FromDocument(makeDoc("flyer.pdf", ls)).Extract()
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if res.Strategy != shape.Poster {
		t.Fatalf("Strategy = %v, want poster", res.Strategy)
	}
	if res.Document.Title != "Parsippany Event" {
		t.Errorf("Title = %q", res.Document.Title)
	}
	want := []heading.Heading{{Level: heading.H1, Text: "HOPE TO SEE YOU THERE!", Page: 0}}
	if !reflect.DeepEqual(res.Document.Outline, want) {
		t.Errorf("Outline = %+v, want %+v", res.Document.Outline, want)
	}
}

func TestExtract_PosterTitleNotRepeated(t *testing.T) {
	ls := []geometry.Line{text(40, 28, "COMPANY REPORT")}
	for i := 0; i < 23; i++ {
		ls = append(ls, text(100+float64(i)*25, 11, "Quarterly figures and notes"))
	}
	ls = append(ls, text(700, 14, "EXECUTIVE SUMMARY"))

	res := Must(FromDocument(makeDoc("company.pdf", ls)).Extract())
	if res.Strategy != shape.Poster {
		t.Fatalf("Strategy = %v, want poster", res.Strategy)
	}

	data, err := res.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	want := "{\n  \"title\": \"COMPANY REPORT\",\n  \"outline\": [\n    {\n      \"level\": \"H1\",\n      \"text\": \"EXECUTIVE SUMMARY\",\n      \"page\": 0\n    }\n  ]\n}"
	if string(data) != want {
		t.Errorf("JSON =\n%s\nwant\n%s", data, want)
	}
}

func TestExtract_SparsePoster(t *testing.T) {
	doc := makeDoc("invite.pdf", []geometry.Line{
		text(50, 30, "RSVP"),
		text(100, 20, "You are invited to a party"),
		text(140, 12, "Call now please"),
	})

	res := Must(FromDocument(doc).Extract())
	if res.Strategy != shape.SparsePoster {
		t.Fatalf("Strategy = %v, want sparse-poster", res.Strategy)
	}
	if res.Document.Title != "" {
		t.Errorf("Title = %q, want empty", res.Document.Title)
	}
	want := []heading.Heading{{Level: heading.H1, Text: "You are invited to a party", Page: 0}}
	if !reflect.DeepEqual(res.Document.Outline, want) {
		t.Errorf("Outline = %+v, want %+v", res.Document.Outline, want)
	}
}

func TestExtract_ApplicationForm(t *testing.T) {
	doc := makeDoc("form.pdf",
		[]geometry.Line{text(50, 14, "Application form for grant of LTC advance"), text(100, 10, "1. Name")},
		[]geometry.Line{text(50, 10, "Signature")},
	)

	res := Must(FromDocument(doc).Extract())
	if res.Strategy != shape.ApplicationForm {
		t.Fatalf("Strategy = %v, want application-form", res.Strategy)
	}
	if res.Document.Title != "Application form for grant of LTC advance" {
		t.Errorf("Title = %q", res.Document.Title)
	}
	if res.Document.Outline == nil || len(res.Document.Outline) != 0 {
		t.Errorf("Outline = %#v, want empty", res.Document.Outline)
	}
}

func TestExtract_Legacy(t *testing.T) {
	doc := makeDoc("input/file03.pdf",
		[]geometry.Line{bold(50, 14, "Ontario’s Libraries"), text(80, 10, "body")},
		[]geometry.Line{bold(50, 12, "Summary")},
	)

	res := Must(FromDocument(doc).Extract())
	if res.Strategy != shape.LegacySpecialCase {
		t.Fatalf("Strategy = %v, want legacy", res.Strategy)
	}

	data, err := res.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	want := "[\n  {\n    \"text\": \"Ontario’s Libraries\",\n    \"page\": 0\n  },\n  {\n    \"text\": \"Summary\",\n    \"page\": 1\n  }\n]"
	if string(data) != want {
		t.Errorf("JSON =\n%s\nwant\n%s", data, want)
	}
	if res.Headings() != 2 {
		t.Errorf("Headings() = %d, want 2", res.Headings())
	}
}

func TestExtract_LegacyMarkerOnlyInFileName(t *testing.T) {
	doc := makeDoc(filepath.Join("data", "file03s", "invite.pdf"), []geometry.Line{
		bold(50, 30, "RSVP"),
		text(100, 20, "You are invited to a party"),
	})

	res := Must(FromDocument(doc).Extract())
	if res.Strategy != shape.SparsePoster {
		t.Errorf("Strategy = %v, want sparse-poster for a marker in the folder name", res.Strategy)
	}

	doc.Path = filepath.Join("data", "reports", "FILE03.pdf")
	if res := Must(FromDocument(doc).Extract()); res.Strategy != shape.LegacySpecialCase {
		t.Errorf("Strategy = %v, want legacy", res.Strategy)
	}
}

func TestExtract_ForcedGeneric(t *testing.T) {
	doc := makeDoc("generic.pdf",
		[]geometry.Line{
			text(50, 24, "Annual Report"),
			text(100, 18, "Introduction"),
			bold(150, 14, "Bold subsection"),
			text(200, 10, "Body text of the report"),
		},
		[]geometry.Line{text(50, 18, "Introduction"), bold(100, 12, "Minor point")},
	)

	res := Must(FromDocument(doc).ForceStrategy(shape.Generic).Extract())
	if res.Document.Title != "Annual Report" {
		t.Errorf("Title = %q", res.Document.Title)
	}
	want := []heading.Heading{
		{Level: heading.H2, Text: "Introduction", Page: 0},
		{Level: heading.H3, Text: "Bold subsection", Page: 0},
		{Level: heading.H4, Text: "Minor point", Page: 1},
	}
	if !reflect.DeepEqual(res.Document.Outline, want) {
		t.Errorf("Outline = %+v, want %+v", res.Document.Outline, want)
	}

	s, err := FromDocument(doc).Strategy()
	if err != nil || s != shape.Structured {
		t.Errorf("unforced Strategy() = %v, %v", s, err)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	res := Must(FromDocument(&geometry.Document{Path: "empty.pdf"}).Extract())

	data, err := res.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	want := "{\n  \"title\": \"\",\n  \"outline\": []\n}"
	if string(data) != want {
		t.Errorf("JSON = %q, want %q", data, want)
	}
}

func TestResult_JSONIdempotent(t *testing.T) {
	first, err := Must(FromDocument(structuredDoc()).Extract()).JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	second, err := Must(FromDocument(structuredDoc()).Extract()).JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("two runs produced different bytes")
	}
	if bytes.HasSuffix(first, []byte("\n")) {
		t.Error("output must not end with a newline")
	}
	if !bytes.HasPrefix(first, []byte("{\n  \"title\": ")) {
		t.Errorf("unexpected layout: %s", first)
	}
	if !bytes.Contains(first, []byte("Purpose & Audience")) {
		t.Error("HTML characters must not be escaped")
	}
	if !bytes.Contains(first, []byte("Extension – Agile")) {
		t.Error("non-ASCII characters must be kept")
	}
}

func TestResult_JSONLineSeparators(t *testing.T) {
	res := &Result{
		Strategy: shape.Structured,
		Document: heading.NewDocument("A\u2028B", []heading.Heading{
			{Level: heading.H1, Text: "P\u2029Q x\\u2028y", Page: 0},
		}),
	}

	data, err := res.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	want := "{\n  \"title\": \"A\u2028B\",\n  \"outline\": [\n    {\n      \"level\": \"H1\",\n      \"text\": \"P\u2029Q x\\\\u2028y\",\n      \"page\": 0\n    }\n  ]\n}"
	if string(data) != want {
		t.Errorf("JSON = %q, want %q", data, want)
	}
}

func TestWithRules(t *testing.T) {
	r := rules.Default()
	r.Heading.Patches = nil
	r.Noise.MinRepeatPages = 5

	res := Must(FromDocument(structuredDoc()).WithRules(r).Extract())

	var texts []string
	for _, h := range res.Document.Outline {
		texts = append(texts, h.Text)
	}
	joined := strings.Join(texts, "|")
	if !strings.Contains(joined, "Extension - Agile Tester Syllabus") {
		t.Errorf("patch applied although patches were removed: %v", texts)
	}
	if !strings.Contains(joined, "1. Copyright Notice") {
		t.Errorf("running header suppressed below the repeat threshold: %v", texts)
	}

	if _, err := FromDocument(structuredDoc()).WithRules(nil).Extract(); err == nil {
		t.Error("expected error for nil rules")
	}
}

func TestForceStrategy_Unknown(t *testing.T) {
	if _, err := FromDocument(structuredDoc()).ForceStrategy(shape.Strategy(99)).Extract(); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestWithSource(t *testing.T) {
	calls := 0
	src := geometry.SourceFunc(func(path string) (*geometry.Document, error) {
		calls++
		doc := structuredDoc()
		doc.Path = path
		return doc, nil
	})

	res, err := Open("virtual.pdf").WithSource(src).Extract()
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("source called %d times, want 1", calls)
	}
	if res.Strategy != shape.Structured {
		t.Errorf("Strategy = %v", res.Strategy)
	}

	failing := geometry.SourceFunc(func(string) (*geometry.Document, error) {
		return nil, os.ErrPermission
	})
	if _, err := Open("locked.pdf").WithSource(failing).Extract(); !errors.Is(err, os.ErrPermission) {
		t.Errorf("err = %v, want wrapped ErrPermission", err)
	}
}

func TestExtract_SamplePDF(t *testing.T) {
	pdfPath := testPDFPath("sample.pdf")
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		t.Skip("test PDF not found:", pdfPath)
	}

	res, err := Open(pdfPath).Extract()
	if err != nil {
		t.Fatalf("failed to extract outline: %v", err)
	}
	if _, err := res.JSON(); err != nil {
		t.Errorf("JSON failed: %v", err)
	}
}
