// Package pdfact provides a fluent API for recovering the semantic structure
// of text extracted from PDF files: page headers and footers, headings,
// paragraphs and line-break hyphens.
//
// Basic usage:
//
//	text, err := pdfact.Open("paper.json").Text()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	paras, err := pdfact.Open("paper.json").
//	    ExcludeHeaders().
//	    ExcludeFooters().
//	    Paragraphs()
//
// The input is the JSON dump read by the source package. For advanced use
// cases, the pipeline, layout and text packages are also available.
package pdfact

import (
	"github.com/tsawler/pdfact/model"
)

// Open returns an Extractor for the document dump at filename.
// The file is read when a terminal operation like Text() is called.
//
// Example:
//
//	text, err := pdfact.Open("paper.json").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
		run:      &run{},
	}
}

// FromDocument creates an Extractor for a document built in memory.
// The document is processed in place by the first terminal operation.
//
// Example:
//
//	doc := model.NewDocument()
//	// add pages and blocks
//	text, err := pdfact.FromDocument(doc).Text()
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
		run:     &run{},
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	text := pdfact.Must(pdfact.Open("paper.json").Text())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
