// Package export serializes processed documents.
//
// A document is written as a flat sequence of elements, its paragraphs or
// the blocks, lines, words or characters of its pages, each carrying its
// semantic role:
//
//	err := export.Write(os.Stdout, doc, export.FormatMarkdown, export.DefaultOptions())
//
// Supported formats are plain text, JSON, XML, YAML, Markdown and HTML.
package export

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/text"
)

// Options holds configuration options for export.
type Options struct {
	// Unit selects the granularity of the output elements. Lines, words
	// and characters take the role and level of their block.
	Unit Unit

	// Roles limits the output to elements with one of these roles.
	// Nil means all roles; an empty slice selects nothing.
	Roles []model.SemanticRole

	// IncludePositions adds the page rectangles of each element to the
	// structured formats (JSON, XML, YAML).
	IncludePositions bool
}

// DefaultOptions returns the default export options: all paragraphs
// without positions.
func DefaultOptions() Options {
	return Options{Unit: UnitParagraphs}
}

// Element is one exported paragraph, block, line, word or character.
type Element struct {
	Role      model.SemanticRole `json:"role" yaml:"role" xml:"role,attr"`
	Level     int                `json:"level,omitempty" yaml:"level,omitempty" xml:"level,attr,omitempty"`
	Pages     []int              `json:"pages" yaml:"pages,flow" xml:"pages>page"`
	Text      string             `json:"text" yaml:"text" xml:"text"`
	Positions []model.Position   `json:"positions,omitempty" yaml:"positions,omitempty" xml:"positions>position,omitempty"`
}

// Output is the structured form of an exported document.
type Output struct {
	XMLName  xml.Name  `json:"-" yaml:"-" xml:"document"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty" xml:"title,attr,omitempty"`
	Source   string    `json:"source,omitempty" yaml:"source,omitempty" xml:"source,attr,omitempty"`
	Pages    int       `json:"pages" yaml:"pages" xml:"pages,attr"`
	Unit     string    `json:"unit" yaml:"unit" xml:"unit,attr"`
	Elements []Element `json:"elements" yaml:"elements" xml:"element"`
}

// Exporter writes documents in the configured shape.
type Exporter struct {
	options Options
	roles   map[model.SemanticRole]bool // nil selects all roles
}

// NewExporter creates an exporter with default options.
func NewExporter() *Exporter {
	return NewExporterWithConfig(DefaultOptions())
}

// NewExporterWithConfig creates an exporter with custom options.
func NewExporterWithConfig(options Options) *Exporter {
	var roles map[model.SemanticRole]bool
	if options.Roles != nil {
		roles = make(map[model.SemanticRole]bool, len(options.Roles))
		for _, r := range options.Roles {
			roles[r] = true
		}
	}
	return &Exporter{options: options, roles: roles}
}

// Write exports doc to w in format using opts.
func Write(w io.Writer, doc *model.Document, format Format, opts Options) error {
	return NewExporterWithConfig(opts).Export(w, doc, format)
}

// Export writes doc to w in format.
func (e *Exporter) Export(w io.Writer, doc *model.Document, format Format) error {
	elements := e.Elements(doc)

	switch format {
	case FormatText:
		return exportText(w, elements)
	case FormatJSON:
		return exportJSON(w, e.output(doc, elements))
	case FormatXML:
		return exportXML(w, e.output(doc, elements))
	case FormatYAML:
		return exportYAML(w, e.output(doc, elements))
	case FormatMarkdown:
		return exportMarkdown(w, elements)
	case FormatHTML:
		var title string
		if doc != nil {
			title = doc.Metadata.Title
		}
		return exportHTML(w, title, elements)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}

// ExportToFile writes doc to filename in the format its extension names.
func (e *Exporter) ExportToFile(doc *model.Document, filename string) error {
	format, err := DetectFormat(filename)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := e.Export(f, doc, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportToString returns doc in format as a string.
func (e *Exporter) ExportToString(doc *model.Document, format Format) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(&buf, doc, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Elements returns the elements of doc selected by the options, in
// document order. Empty elements are skipped.
func (e *Exporter) Elements(doc *model.Document) []Element {
	if doc == nil {
		return nil
	}

	var elements []Element
	switch e.options.Unit {
	case UnitBlocks, UnitLines, UnitWords, UnitCharacters:
		for _, b := range doc.Blocks() {
			if b.IsEmpty() || !e.selected(b.Role) {
				continue
			}
			elements = e.appendBlock(elements, b)
		}
	default:
		for _, p := range doc.Paragraphs {
			if p == nil || p.Text == "" || !e.selected(p.Role) {
				continue
			}
			elements = append(elements, e.element(p.Role, p.Level, p.Text, p.Positions))
		}
	}
	return elements
}

// appendBlock appends the elements of b at the configured unit.
func (e *Exporter) appendBlock(elements []Element, b *model.TextBlock) []Element {
	switch e.options.Unit {
	case UnitLines:
		for _, l := range b.Lines {
			if !l.IsEmpty() {
				elements = append(elements, e.element(b.Role, b.Level, l.Text(), []model.Position{l.Position}))
			}
		}
	case UnitWords:
		for _, w := range b.Words() {
			if !w.IsEmpty() {
				elements = append(elements, e.element(b.Role, b.Level, w.Text, w.Positions))
			}
		}
	case UnitCharacters:
		for _, w := range b.Words() {
			for _, c := range w.Characters {
				if c != nil && c.Text != "" {
					elements = append(elements, e.element(b.Role, b.Level, c.Text, []model.Position{c.Position}))
				}
			}
		}
	default:
		elements = append(elements, e.element(b.Role, b.Level, b.Text(), []model.Position{b.Position}))
	}
	return elements
}

func (e *Exporter) selected(role model.SemanticRole) bool {
	return e.roles == nil || e.roles[role]
}

func (e *Exporter) element(role model.SemanticRole, level int, text string, positions []model.Position) Element {
	el := Element{
		Role:  role,
		Level: level,
		Text:  text,
		Pages: pageNumbers(positions),
	}
	if e.options.IncludePositions {
		el.Positions = positions
	}
	return el
}

func (e *Exporter) output(doc *model.Document, elements []Element) Output {
	out := Output{
		Unit:     e.options.Unit.String(),
		Elements: elements,
	}
	if doc != nil {
		out.Title = doc.Metadata.Title
		out.Source = doc.Metadata.Source
		out.Pages = doc.PageCount()
	}
	if out.Elements == nil {
		out.Elements = []Element{}
	}
	return out
}

func pageNumbers(positions []model.Position) []int {
	pages := make([]int, 0, 1)
	seen := make(map[int]bool)
	for _, pos := range positions {
		if !seen[pos.Page] {
			seen[pos.Page] = true
			pages = append(pages, pos.Page)
		}
	}
	return pages
}

func exportText(w io.Writer, elements []Element) error {
	paragraphs := make([]*model.Paragraph, len(elements))
	for i, el := range elements {
		paragraphs[i] = &model.Paragraph{Text: el.Text}
	}
	s := text.JoinParagraphs(paragraphs)
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}

func exportJSON(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func exportXML(w io.Writer, out Output) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode XML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func exportYAML(w io.Writer, out Output) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
