package pipeline

import (
	"context"

	"github.com/tsawler/pdfact/layout"
	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/stats"
	"github.com/tsawler/pdfact/text"
)

// Stage names.
const (
	StageStatistics  = "statistics"
	StageSemanticize = "semanticize"
	StageParagraphs  = "paragraphs"
	StageDehyphenate = "dehyphenate"
)

// Components holds the configuration of the built-in stages.
type Components struct {
	Statistics    stats.Config
	Semanticizer  layout.SemanticizerConfig
	Paragraphs    layout.ParagraphConfig
	Dehyphenation text.DehyphenationConfig
}

// DefaultComponents returns the default configuration of every built-in stage.
func DefaultComponents() Components {
	return Components{
		Statistics:    stats.DefaultConfig(),
		Semanticizer:  layout.DefaultSemanticizerConfig(),
		Paragraphs:    layout.DefaultParagraphConfig(),
		Dehyphenation: text.DefaultDehyphenationConfig(),
	}
}

// Statistics annotates every element of the document with its statistics.
func Statistics(config stats.Config) Stage {
	s := stats.NewStatisticianWithConfig(config)
	return StageFunc{
		StageName: StageStatistics,
		Fn: func(_ context.Context, doc *model.Document) (*model.Document, error) {
			return doc, s.Annotate(doc)
		},
	}
}

// Semanticize assigns a semantic role to every block.
func Semanticize(config layout.SemanticizerConfig) Stage {
	s := layout.NewSemanticizerWithConfig(config)
	return StageFunc{
		StageName: StageSemanticize,
		Fn: func(_ context.Context, doc *model.Document) (*model.Document, error) {
			_, err := s.Semanticize(doc)
			return doc, err
		},
	}
}

// Paragraphs segments the blocks of the document into paragraphs.
func Paragraphs(config layout.ParagraphConfig) Stage {
	s := layout.NewParagraphSegmenterWithConfig(config)
	return StageFunc{
		StageName: StageParagraphs,
		Fn: func(_ context.Context, doc *model.Document) (*model.Document, error) {
			return doc, s.Apply(doc)
		},
	}
}

// Dehyphenate merges words split by line-break hyphens.
func Dehyphenate(config text.DehyphenationConfig) Stage {
	d := text.NewDehyphenatorWithConfig(config)
	return StageFunc{
		StageName: StageDehyphenate,
		Fn: func(_ context.Context, doc *model.Document) (*model.Document, error) {
			_, err := d.Dehyphenate(doc)
			return doc, err
		},
	}
}

// Default returns the built-in stages in run order:
// statistics, semanticize, paragraphs, dehyphenate.
// Dehyphenation recomputes statistics with c.Statistics.
func Default(c Components) []Stage {
	dehyphenation := c.Dehyphenation
	dehyphenation.Statistics = c.Statistics
	return []Stage{
		Statistics(c.Statistics),
		Semanticize(c.Semanticizer),
		Paragraphs(c.Paragraphs),
		Dehyphenate(dehyphenation),
	}
}
