package pdfact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tsawler/pdfact/config"
	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/pipeline"
	"github.com/tsawler/pdfact/source"
)

// ProcessFiles reads the document dumps at paths and runs the pipeline over
// them, up to cfg.Concurrency at a time. Results keep the order of paths.
// A nil cfg uses the defaults.
//
// Example:
//
//	docs, err := pdfact.ProcessFiles(ctx, nil, "a.json", "b.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, doc := range docs {
//	    fmt.Printf("%s: %d paragraphs\n", doc.Metadata.Source, len(doc.Paragraphs))
//	}
func ProcessFiles(ctx context.Context, cfg *config.Config, paths ...string) ([]*model.Document, error) {
	if cfg == nil {
		d := config.DefaultConfig()
		cfg = &d
	}
	components, err := cfg.Components()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	docs := make([]*model.Document, len(paths))
	for i, path := range paths {
		doc, err := source.ReadFile(path)
		if err != nil {
			return nil, err
		}
		docs[i] = doc
	}

	p := pipeline.NewWithConfig(cfg.Pipeline(slog.Default()), pipeline.Default(components)...)
	return p.ProcessAll(ctx, docs)
}
