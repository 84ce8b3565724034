package source

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/pdfact/model"
)

const sampleJSON = `{
  "metadata": {"title": "Sample"},
  "pages": [
    {
      "number": 1,
      "width": 612,
      "height": 792,
      "blocks": [
        {"lines": [
          {"words": [
            {"characters": [
              {"text": "H", "x": 72, "y": 700, "width": 6, "height": 10, "font": {"name": "Times-Bold", "bold": true}, "font_size": 12},
              {"text": "i", "x": 78, "y": 700, "width": 3, "height": 10, "font": {"name": "Times-Bold", "bold": true}, "font_size": 12}
            ]},
            {"hyphenated": true, "characters": [
              {"text": "a", "x": 90, "y": 700, "width": 5, "height": 10, "font": {"name": "Times-Roman"}, "font_size": 10, "color": [255, 0, 0]},
              {"text": "-", "x": 95, "y": 700, "width": 3, "height": 10, "font": {"name": "Times-Roman"}, "font_size": 10}
            ]}
          ]}
        ]}
      ]
    },
    {"width": 612, "height": 792}
  ]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if doc.Metadata.Title != "Sample" {
		t.Errorf("Title = %q", doc.Metadata.Title)
	}
	if doc.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", doc.PageCount())
	}
	if len(doc.Pages[1].Blocks) != 0 {
		t.Error("expected second page to be empty")
	}

	blocks := doc.Pages[0].Blocks
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if got := blocks[0].Text(); got != "Hi a-" {
		t.Errorf("block text = %q, want %q", got, "Hi a-")
	}

	words := blocks[0].Words()
	if words[0].IsHyphenated || !words[1].IsHyphenated {
		t.Error("unexpected hyphenation flags")
	}

	first := words[0].FirstCharacter()
	if !first.Font.Bold || first.FontSize != 12 || first.Position.Page != 1 {
		t.Errorf("unexpected first character %+v", first)
	}
	if first.Color != model.Black {
		t.Errorf("expected default color, got %+v", first.Color)
	}
	if c := words[1].FirstCharacter().Color; c != (model.Color{R: 255}) {
		t.Errorf("Color = %+v, want red", c)
	}

	rect := blocks[0].Position.Rect
	if rect.Left() != 72 || rect.Right() != 98 || rect.Top() != 710 {
		t.Errorf("block rect = %+v", rect)
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{pages`},
		{"missing pages", `{}`},
		{"page without size", `{"pages": [{"blocks": []}]}`},
		{"negative font size", `{"pages": [{"width": 1, "height": 1, "blocks": [{"lines": [{"words": [{"characters": [
			{"text": "a", "x": 0, "y": 0, "width": 1, "height": 1, "font_size": -2}]}]}]}]}]}`},
		{"empty word", `{"pages": [{"width": 1, "height": 1, "blocks": [{"lines": [{"words": [{"characters": []}]}]}]}]}`},
		{"color out of range", `{"pages": [{"width": 1, "height": 1, "blocks": [{"lines": [{"words": [{"characters": [
			{"text": "a", "x": 0, "y": 0, "width": 1, "height": 1, "font_size": 1, "color": [0, 0, 300]}]}]}]}]}]}`},
		{"page out of sequence", `{"pages": [{"number": 2, "width": 1, "height": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("expected ErrInvalidDocument, got %v", err)
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	again, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode(Encode()) error: %v", err)
	}
	if again.PageCount() != doc.PageCount() {
		t.Fatalf("page count %d, want %d", again.PageCount(), doc.PageCount())
	}

	a, b := doc.Blocks(), again.Blocks()
	if len(a) != len(b) {
		t.Fatalf("block count %d, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i].Text() != b[i].Text() || a[i].Position != b[i].Position {
			t.Errorf("block %d differs: %q %+v vs %q %+v", i, a[i].Text(), a[i].Position, b[i].Text(), b[i].Position)
		}
	}
	if !b[0].Words()[1].IsHyphenated {
		t.Error("hyphenation flag lost")
	}
}

func TestEncode_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil); err != nil {
		t.Fatalf("Encode(nil) error: %v", err)
	}
	doc, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if doc.PageCount() != 0 {
		t.Errorf("expected no pages, got %d", doc.PageCount())
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if doc.Metadata.Source != path {
		t.Errorf("Source = %q, want %q", doc.Metadata.Source, path)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestSchema(t *testing.T) {
	s := Schema()
	if !bytes.Contains(s, []byte(`"pages"`)) {
		t.Error("expected schema to describe pages")
	}
	s[0] = 'x'
	if Schema()[0] == 'x' {
		t.Error("Schema() must return a copy")
	}
}
