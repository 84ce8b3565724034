package pdfact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/tsawler/pdfact/config"
	"github.com/tsawler/pdfact/export"
	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/pipeline"
	"github.com/tsawler/pdfact/source"
	"github.com/tsawler/pdfact/text"
	"github.com/tsawler/pdfact/visualize"
)

// ErrNoInput is returned when an Extractor has neither a file nor a document.
var ErrNoInput = errors.New("no input document")

// run holds the processed document shared by Extractors that differ only in
// output filtering.
type run struct {
	once sync.Once
	doc  *model.Document
	err  error
}

// Extractor provides a fluent interface for processing documents.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source.
	filename string
	doc      *model.Document

	// Configuration.
	options ExtractOptions

	// Processing result, computed once by the first terminal operation.
	run *run

	// Accumulated error (fail-fast).
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// Clones share the processing result.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		options:  e.options.clone(),
		run:      e.run,
		err:      e.err,
	}
}

// reprocess returns a clone that processes the document again, for options
// that change the pipeline itself.
func (e *Extractor) reprocess() *Extractor {
	newExt := e.clone()
	newExt.run = &run{}
	return newExt
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// ExcludeHeaders configures the extractor to exclude detected page headers.
//
// Example:
//
//	text, err := pdfact.Open("paper.json").ExcludeHeaders().Text()
func (e *Extractor) ExcludeHeaders() *Extractor {
	newExt := e.clone()
	newExt.options.excludeHeaders = true
	return newExt
}

// ExcludeFooters configures the extractor to exclude detected page footers.
func (e *Extractor) ExcludeFooters() *Extractor {
	newExt := e.clone()
	newExt.options.excludeFooters = true
	return newExt
}

// ExcludeHeadersAndFooters is equivalent to calling
// ExcludeHeaders().ExcludeFooters().
func (e *Extractor) ExcludeHeadersAndFooters() *Extractor {
	return e.ExcludeHeaders().ExcludeFooters()
}

// Roles limits the output to paragraphs and blocks with one of the given
// roles. Multiple calls are cumulative.
//
// Example:
//
//	paras, err := pdfact.Open("paper.json").Roles(model.RoleHeading).Paragraphs()
func (e *Extractor) Roles(roles ...model.SemanticRole) *Extractor {
	newExt := e.clone()
	newExt.options.roles = append(newExt.options.roles, roles...)
	return newExt
}

// RoleNames is like Roles but takes role names such as "body" or
// "page-header". An unknown name fails the terminal operation.
func (e *Extractor) RoleNames(names ...string) *Extractor {
	newExt := e.clone()
	for _, name := range names {
		r, err := model.ParseRole(name)
		if err != nil {
			if newExt.err == nil {
				newExt.err = err
			}
			continue
		}
		newExt.options.roles = append(newExt.options.roles, r)
	}
	return newExt
}

// WithConfig configures the pipeline from cfg. An invalid configuration
// fails the terminal operation.
//
// Example:
//
//	cfg, err := config.Load("pdfact.yaml")
//	// handle error
//	text, err := pdfact.Open("paper.json").WithConfig(cfg).Text()
func (e *Extractor) WithConfig(cfg *config.Config) *Extractor {
	newExt := e.reprocess()
	if cfg != nil {
		if err := cfg.Validate(); err != nil && newExt.err == nil {
			newExt.err = fmt.Errorf("invalid config: %w", err)
		}
	}
	newExt.options.config = cfg
	return newExt
}

// WithLogger sets the logger the pipeline stages log to.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	newExt := e.reprocess()
	newExt.options.logger = logger
	return newExt
}

// WithContext sets the context processing runs under. Cancelling it stops
// the pipeline before its next stage.
func (e *Extractor) WithContext(ctx context.Context) *Extractor {
	newExt := e.reprocess()
	newExt.options.ctx = ctx
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document returns the processed document with every pipeline stage
// applied. Output filters do not apply to it.
func (e *Extractor) Document() (*model.Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.run.once.Do(func() {
		e.run.doc, e.run.err = e.process()
	})
	return e.run.doc, e.run.err
}

// PageCount returns the number of pages in the document.
func (e *Extractor) PageCount() (int, error) {
	doc, err := e.Document()
	if err != nil {
		return 0, err
	}
	return doc.PageCount(), nil
}

// Paragraphs returns the paragraphs selected by the output filters, in
// reading order.
//
// Example:
//
//	paras, err := pdfact.Open("paper.json").ExcludeHeadersAndFooters().Paragraphs()
//	for _, p := range paras {
//	    fmt.Printf("[%s] %s\n", p.Role, p.Text)
//	}
func (e *Extractor) Paragraphs() ([]*model.Paragraph, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}

	roles, all := e.options.selectedRoles()
	if all {
		return doc.Paragraphs, nil
	}
	if len(roles) == 0 {
		return nil, nil
	}
	return doc.ParagraphsWithRole(roles...), nil
}

// Blocks returns the text blocks selected by the output filters, in page
// order.
func (e *Extractor) Blocks() ([]*model.TextBlock, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}

	roles, all := e.options.selectedRoles()
	var blocks []*model.TextBlock
	for _, b := range doc.Blocks() {
		if all || containsRole(roles, b.Role) {
			blocks = append(blocks, b)
		}
	}
	return blocks, nil
}

// Text returns the text of the selected paragraphs, separated by blank
// lines.
//
// Example:
//
//	text, err := pdfact.Open("paper.json").ExcludeHeadersAndFooters().Text()
func (e *Extractor) Text() (string, error) {
	paras, err := e.Paragraphs()
	if err != nil {
		return "", err
	}
	return text.JoinParagraphs(paras), nil
}

// Export writes the selected elements to w in format. The unit (paragraphs
// or blocks) comes from the configuration.
//
// Example:
//
//	err := pdfact.Open("paper.json").Export(os.Stdout, export.FormatMarkdown)
func (e *Extractor) Export(w io.Writer, format export.Format) error {
	doc, err := e.Document()
	if err != nil {
		return err
	}

	opts, err := e.config().Options()
	if err != nil {
		return err
	}
	if roles, all := e.options.selectedRoles(); !all {
		opts.Roles = append([]model.SemanticRole{}, roles...)
	}
	return export.Write(w, doc, format, opts)
}

// Visualize renders every page to dir as page-NNN.png. The configured
// output unit and the role filters of the extractor override those of
// opts. It returns the written paths.
func (e *Extractor) Visualize(dir string, opts visualize.Options) ([]string, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}

	exportOpts, err := e.config().Options()
	if err != nil {
		return nil, err
	}
	opts.Unit = exportOpts.Unit
	if roles, all := e.options.selectedRoles(); !all {
		opts.Roles = append([]model.SemanticRole{}, roles...)
	}
	return visualize.WritePNGs(dir, doc, opts)
}

// config returns the configuration in effect.
func (e *Extractor) config() *config.Config {
	if e.options.config != nil {
		return e.options.config
	}
	cfg := config.DefaultConfig()
	return &cfg
}

// process loads the input and runs the pipeline over it.
func (e *Extractor) process() (*model.Document, error) {
	cfg := e.config()
	components, err := cfg.Components()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	doc := e.doc
	if doc == nil {
		if e.filename == "" {
			return nil, ErrNoInput
		}
		doc, err = source.ReadFile(e.filename)
		if err != nil {
			return nil, err
		}
	}

	logger := e.options.logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx := e.options.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	p := pipeline.NewWithConfig(cfg.Pipeline(logger), pipeline.Default(components)...)
	return p.Process(ctx, doc)
}

func containsRole(roles []model.SemanticRole, role model.SemanticRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
