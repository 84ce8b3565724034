// Package source loads positioned-glyph documents into the document model.
//
// The upstream page-content interpreter dumps every page as nested blocks,
// lines, words and characters in reading order:
//
//	{"pages": [{"width": 612, "height": 792, "blocks": [{"lines": [{"words": [
//	    {"hyphenated": false, "characters": [{"text": "A", "x": 72, "y": 700,
//	     "width": 6, "height": 10, "font": {"name": "Times-Roman"},
//	     "font_size": 10, "color": [0, 0, 0]}]}]}]}]}]}
//
// Coordinates are in points with the origin at the bottom left of the page.
// Input is validated against an embedded JSON schema before it is decoded.
package source

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tsawler/pdfact/model"
)

// ErrInvalidDocument is returned when the input does not match the schema.
var ErrInvalidDocument = errors.New("invalid document")

//go:embed schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to load document schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile document schema: %w", err)
	}
	return schema, nil
})

// Schema returns the embedded JSON schema.
func Schema() []byte {
	return bytes.Clone(schemaJSON)
}

type documentJSON struct {
	Metadata *metadataJSON `json:"metadata,omitempty"`
	Pages    []pageJSON    `json:"pages"`
}

type metadataJSON struct {
	Title  string `json:"title,omitempty"`
	Source string `json:"source,omitempty"`
}

type pageJSON struct {
	Number int         `json:"number,omitempty"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Blocks []blockJSON `json:"blocks"`
}

type blockJSON struct {
	Lines []lineJSON `json:"lines"`
}

type lineJSON struct {
	Words []wordJSON `json:"words"`
}

type wordJSON struct {
	Hyphenated bool            `json:"hyphenated,omitempty"`
	Characters []characterJSON `json:"characters"`
}

type characterJSON struct {
	Text     string     `json:"text"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Font     model.Font `json:"font"`
	FontSize float64    `json:"font_size"`
	Color    []int      `json:"color,omitempty"`
}

// Decode reads a document from r.
func Decode(r io.Reader) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	var in documentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return buildDocument(in)
}

// ReadFile reads a document from the file at path. The path is recorded as
// the document source unless the file names one.
func ReadFile(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Metadata.Source == "" {
		doc.Metadata.Source = path
	}
	return doc, nil
}

func validate(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

func buildDocument(in documentJSON) (*model.Document, error) {
	doc := model.NewDocument()
	if in.Metadata != nil {
		doc.Metadata.Title = in.Metadata.Title
		doc.Metadata.Source = in.Metadata.Source
	}

	for i, p := range in.Pages {
		page := model.NewPage(p.Width, p.Height)
		doc.AddPage(page)
		if p.Number != 0 && p.Number != page.Number {
			return nil, fmt.Errorf("%w: page %d is numbered %d", ErrInvalidDocument, i+1, p.Number)
		}

		for _, b := range p.Blocks {
			lines := make([]*model.TextLine, 0, len(b.Lines))
			for _, l := range b.Lines {
				words := make([]*model.Word, 0, len(l.Words))
				for _, w := range l.Words {
					words = append(words, buildWord(page.Number, w))
				}
				lines = append(lines, model.NewTextLine(words...))
			}
			page.AddBlock(model.NewTextBlock(lines...))
		}
	}
	return doc, nil
}

func buildWord(page int, w wordJSON) *model.Word {
	chars := make([]*model.Character, 0, len(w.Characters))
	for _, c := range w.Characters {
		rect := model.NewBBox(c.X, c.Y, c.Width, c.Height)
		char := model.NewCharacter(c.Text, page, rect, c.Font, c.FontSize)
		if len(c.Color) == 3 {
			char.Color = model.Color{R: uint8(c.Color[0]), G: uint8(c.Color[1]), B: uint8(c.Color[2])}
		}
		chars = append(chars, char)
	}
	word := model.NewWord(chars...)
	word.IsHyphenated = w.Hyphenated
	return word
}

// Encode writes doc to w in the format Decode reads. Roles, statistics
// and paragraphs are not part of the format.
func Encode(w io.Writer, doc *model.Document) error {
	out := documentJSON{Pages: make([]pageJSON, 0)}
	if doc != nil {
		if doc.Metadata.Title != "" || doc.Metadata.Source != "" {
			out.Metadata = &metadataJSON{Title: doc.Metadata.Title, Source: doc.Metadata.Source}
		}
		for _, p := range doc.Pages {
			if p == nil {
				continue
			}
			out.Pages = append(out.Pages, encodePage(p))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}

func encodePage(p *model.Page) pageJSON {
	page := pageJSON{Number: p.Number, Width: p.Width, Height: p.Height, Blocks: make([]blockJSON, 0, len(p.Blocks))}
	for _, b := range p.Blocks {
		if b == nil {
			continue
		}
		block := blockJSON{Lines: make([]lineJSON, 0, len(b.Lines))}
		for _, l := range b.Lines {
			if l == nil {
				continue
			}
			line := lineJSON{Words: make([]wordJSON, 0, len(l.Words))}
			for _, w := range l.Words {
				if w.IsEmpty() {
					continue
				}
				word := wordJSON{Hyphenated: w.IsHyphenated}
				for _, c := range w.Characters {
					if c == nil {
						continue
					}
					r := c.Position.Rect
					word.Characters = append(word.Characters, characterJSON{
						Text:     c.Text,
						X:        r.X,
						Y:        r.Y,
						Width:    r.Width,
						Height:   r.Height,
						Font:     c.Font,
						FontSize: c.FontSize,
						Color:    []int{int(c.Color.R), int(c.Color.G), int(c.Color.B)},
					})
				}
				line.Words = append(line.Words, word)
			}
			block.Lines = append(block.Lines, line)
		}
		page.Blocks = append(page.Blocks, block)
	}
	return page
}
