package config

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/tsawler/pdfact/export"
	"github.com/tsawler/pdfact/layout"
	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/pipeline"
)

// Validate checks that every setting parses.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err := export.ParseUnit(c.Unit); err != nil {
		return fmt.Errorf("unit: %w", err)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if _, err := c.Components(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Options returns the export options for the configured unit.
func (c *Config) Options() (export.Options, error) {
	unit, err := export.ParseUnit(c.Unit)
	if err != nil {
		return export.Options{}, fmt.Errorf("unit: %w", err)
	}
	opts := export.DefaultOptions()
	opts.Unit = unit
	return opts, nil
}

// Pipeline returns the pipeline configuration.
func (c *Config) Pipeline(logger *slog.Logger) pipeline.Config {
	cfg := pipeline.DefaultConfig()
	cfg.Concurrency = c.Concurrency
	cfg.Logger = logger
	return cfg
}

// Components converts the settings into the configuration of the pipeline
// stages.
func (c *Config) Components() (pipeline.Components, error) {
	components := pipeline.DefaultComponents()

	components.Statistics.FontSizePrecision = c.Statistics.FontSizePrecision
	components.Statistics.LinePrecision = c.Statistics.LinePrecision

	sem := &components.Semanticizer
	strategies := make([]layout.RoleStrategy, 0, len(c.Semantics.Strategies))
	for _, name := range c.Semantics.Strategies {
		s, err := layout.ParseStrategy(name)
		if err != nil {
			return components, fmt.Errorf("semantics.strategies: %w", err)
		}
		strategies = append(strategies, s)
	}
	sem.Strategies = strategies
	sem.TitleFontSizeRatio = c.Semantics.TitleFontSizeRatio
	sem.ReferenceHeadings = c.Semantics.ReferenceHeadings
	if c.Semantics.CaptionPattern != "" {
		pattern, err := regexp.Compile(c.Semantics.CaptionPattern)
		if err != nil {
			return components, fmt.Errorf("semantics.caption_pattern: %w", err)
		}
		sem.CaptionPattern = pattern
	}
	sem.HeaderFooter.MinOccurrenceRatio = c.Semantics.HeaderFooter.MinOccurrenceRatio
	sem.HeaderFooter.MinPages = c.Semantics.HeaderFooter.MinPages
	sem.Heading.MinFontSizeRatio = c.Semantics.Heading.MinFontSizeRatio
	sem.Heading.MaxHeadingLines = c.Semantics.Heading.MaxLines
	sem.Heading.MaxHeadingWords = c.Semantics.Heading.MaxWords
	sem.Heading.BoldIndicatesHeading = c.Semantics.Heading.BoldIndicatesHeading

	roles := make([]model.SemanticRole, 0, len(c.Paragraphs.TransparentRoles))
	for _, name := range c.Paragraphs.TransparentRoles {
		r, err := model.ParseRole(name)
		if err != nil {
			return components, fmt.Errorf("paragraphs.transparent_roles: %w", err)
		}
		roles = append(roles, r)
	}
	components.Paragraphs.TransparentRoles = roles

	components.Dehyphenation.Normalizer.LowerCase = c.Dehyphenation.LowerCase
	return components, nil
}
