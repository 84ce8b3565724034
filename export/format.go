package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownUnit is returned for an unsupported output unit.
	ErrUnknownUnit = errors.New("unknown output unit")
)

// Format represents a supported output format.
type Format int

const (
	// FormatText writes plain text, one element per paragraph.
	FormatText Format = iota
	// FormatJSON writes a JSON document.
	FormatJSON
	// FormatXML writes an XML document.
	FormatXML
	// FormatYAML writes a YAML document.
	FormatYAML
	// FormatMarkdown writes Markdown.
	FormatMarkdown
	// FormatHTML writes an HTML5 page.
	FormatHTML
)

// String returns the name of the format as accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	case FormatYAML:
		return "yaml"
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	if f < FormatText || f > FormatHTML {
		return ""
	}
	return "." + f.String()
}

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatXML, FormatYAML, FormatMarkdown, FormatHTML}
}

// ParseFormat parses a format name. Common aliases such as "text",
// "markdown" and "yml" are accepted.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "txt", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DetectFormat determines the output format from a filename extension.
func DetectFormat(filename string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return FormatText, fmt.Errorf("%w: no extension in %q", ErrUnknownFormat, filename)
	}
	return ParseFormat(ext)
}

// Unit is the element granularity of the output.
type Unit int

const (
	// UnitParagraphs writes one element per paragraph.
	UnitParagraphs Unit = iota
	// UnitBlocks writes one element per text block.
	UnitBlocks
	// UnitLines writes one element per text line.
	UnitLines
	// UnitWords writes one element per word.
	UnitWords
	// UnitCharacters writes one element per character.
	UnitCharacters
)

// String returns the name of the unit as accepted by ParseUnit.
func (u Unit) String() string {
	switch u {
	case UnitParagraphs:
		return "paragraphs"
	case UnitBlocks:
		return "blocks"
	case UnitLines:
		return "lines"
	case UnitWords:
		return "words"
	case UnitCharacters:
		return "characters"
	default:
		return "unknown"
	}
}

// ParseUnit parses a unit name; singular forms are accepted.
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "paragraphs", "paragraph":
		return UnitParagraphs, nil
	case "blocks", "block":
		return UnitBlocks, nil
	case "lines", "line":
		return UnitLines, nil
	case "words", "word":
		return UnitWords, nil
	case "characters", "character", "chars", "char":
		return UnitCharacters, nil
	default:
		return UnitParagraphs, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
}
