package config

import "github.com/tsawler/pdfact/pipeline"

// DefaultConfig returns the default configuration, mirroring the defaults
// of the individual components.
func DefaultConfig() Config {
	components := pipeline.DefaultComponents()
	sem := components.Semanticizer

	strategies := make([]string, len(sem.Strategies))
	for i, s := range sem.Strategies {
		strategies[i] = s.String()
	}

	transparent := make([]string, len(components.Paragraphs.TransparentRoles))
	for i, r := range components.Paragraphs.TransparentRoles {
		transparent[i] = r.String()
	}

	return Config{
		LogLevel:    "info",
		Format:      "txt",
		Unit:        "paragraphs",
		Concurrency: pipeline.DefaultConfig().Concurrency,
		Statistics: StatisticsCfg{
			FontSizePrecision: components.Statistics.FontSizePrecision,
			LinePrecision:     components.Statistics.LinePrecision,
		},
		Semantics: SemanticsCfg{
			Strategies:         strategies,
			TitleFontSizeRatio: sem.TitleFontSizeRatio,
			CaptionPattern:     sem.CaptionPattern.String(),
			ReferenceHeadings:  append([]string(nil), sem.ReferenceHeadings...),
			HeaderFooter: HeaderFooterCfg{
				MinOccurrenceRatio: sem.HeaderFooter.MinOccurrenceRatio,
				MinPages:           sem.HeaderFooter.MinPages,
			},
			Heading: HeadingCfg{
				MinFontSizeRatio:     sem.Heading.MinFontSizeRatio,
				MaxLines:             sem.Heading.MaxHeadingLines,
				MaxWords:             sem.Heading.MaxHeadingWords,
				BoldIndicatesHeading: sem.Heading.BoldIndicatesHeading,
			},
		},
		Paragraphs: ParagraphsCfg{
			TransparentRoles: transparent,
		},
		Dehyphenation: DehyphenationCfg{
			LowerCase: components.Dehyphenation.Normalizer.LowerCase,
		},
	}
}
