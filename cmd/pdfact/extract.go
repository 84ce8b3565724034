package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfact"
	"github.com/tsawler/pdfact/config"
	"github.com/tsawler/pdfact/export"
	"github.com/tsawler/pdfact/visualize"
)

var (
	extractFormat         string
	extractUnit           string
	extractRoles          []string
	extractOutput         string
	extractVisualize      string
	extractExcludeHeaders bool
	extractExcludeFooters bool
	extractWatch          bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <input.json>",
	Short: "Classify, segment and dehyphenate an extracted document",
	Long: `Run the pipeline over a document dump and write the result.

The input is a JSON dump of pages, blocks, lines, words and characters.
Output goes to stdout unless --output is given; with --output and no
--format, the format follows the file extension.

Examples:
  pdfact extract paper.json                          # plain text paragraphs
  pdfact extract paper.json --format md              # Markdown
  pdfact extract paper.json -o paper.html            # HTML, detected from the extension
  pdfact extract paper.json --roles heading,body     # only headings and body text
  pdfact extract paper.json --unit blocks -f json    # blocks instead of paragraphs
  pdfact extract paper.json --unit words -f json     # one element per word
  pdfact extract paper.json --visualize out/         # also render page-NNN.png files
  pdfact extract paper.json --config c.yaml --watch  # run again when c.yaml changes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if extractWatch {
			return watchExtract(cmd, args[0])
		}

		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		return runExtract(cmd, args[0], cfg, logger)
	},
}

// runExtract processes input with cfg and the command flags and writes the
// output and page images.
func runExtract(cmd *cobra.Command, input string, base *config.Config, logger *slog.Logger) error {
	cfg := *base
	if cmd.Flags().Changed("format") {
		cfg.Format = extractFormat
	}
	if cmd.Flags().Changed("unit") {
		cfg.Unit = extractUnit
	}

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if extractOutput != "" && !cmd.Flags().Changed("format") {
		if detected, err := export.DetectFormat(extractOutput); err == nil {
			format = detected
		}
	}

	e := pdfact.Open(input).
		WithConfig(&cfg).
		WithLogger(logger).
		WithContext(cmd.Context()).
		RoleNames(extractRoles...)
	if extractExcludeHeaders {
		e = e.ExcludeHeaders()
	}
	if extractExcludeFooters {
		e = e.ExcludeFooters()
	}

	doc, err := e.Document()
	if err != nil {
		return err
	}
	logger.Info("processed document",
		"input", input,
		"pages", doc.PageCount(),
		"paragraphs", len(doc.Paragraphs),
	)

	if err := writeOutput(cmd.OutOrStdout(), e, format); err != nil {
		return err
	}

	if extractVisualize != "" {
		paths, err := e.Visualize(extractVisualize, visualize.DefaultOptions())
		if err != nil {
			return err
		}
		logger.Info("rendered pages", "dir", extractVisualize, "count", len(paths))
	}
	return nil
}

// watchExtract runs the extraction once and again after every change of
// the config file, until the command context is cancelled. Failed runs
// are logged and the watch goes on.
func watchExtract(cmd *cobra.Command, input string) error {
	if cfgFile == "" {
		return errors.New("--watch requires --config")
	}

	mgr, err := config.NewManager(cfgFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(mgr.Get())
	if err != nil {
		return err
	}

	if err := runExtract(cmd, input, mgr.Get(), logger); err != nil {
		return err
	}

	changed := make(chan struct{}, 1)
	mgr.OnChange(func(*config.Config) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	mgr.WatchConfig()
	logger.Info("watching config", "path", cfgFile)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			logger.Info("config changed", "path", cfgFile)
			if err := runExtract(cmd, input, mgr.Get(), logger); err != nil {
				logger.Error("extraction failed", "input", input, "error", err)
			}
		}
	}
}

// writeOutput exports to --output, or to stdout.
func writeOutput(stdout io.Writer, e *pdfact.Extractor, format export.Format) error {
	if extractOutput == "" {
		return e.Export(stdout, format)
	}

	f, err := os.Create(extractOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := e.Export(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "txt", "output format: txt, json, xml, yaml, md or html")
	extractCmd.Flags().StringVar(&extractUnit, "unit", "paragraphs", "output unit: paragraphs, blocks, lines, words or characters")
	extractCmd.Flags().StringSliceVar(&extractRoles, "roles", nil, "only output these roles, e.g. heading,body")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().StringVar(&extractVisualize, "visualize", "", "directory to render page images to")
	extractCmd.Flags().BoolVar(&extractExcludeHeaders, "exclude-headers", false, "drop page headers")
	extractCmd.Flags().BoolVar(&extractExcludeFooters, "exclude-footers", false, "drop page footers")
	extractCmd.Flags().BoolVar(&extractWatch, "watch", false, "run again whenever the --config file changes")
}
