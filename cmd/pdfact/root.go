package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfact/config"
	"github.com/tsawler/pdfact/version"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "pdfact",
	Short: "Recover the semantic structure of text extracted from PDF files",
	Long: `pdfact reads the characters, words, lines and blocks extracted from a PDF
and recovers its structure.

The pipeline includes:
  - Character, line and font statistics per block, page and document
  - Role classification (page headers and footers, title, headings, captions)
  - Paragraph segmentation across columns and pages
  - Removal of line-break hyphens`,
	Version:       version.GitRelease,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./pdfact.yaml or ~/.pdfact/pdfact.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)",
	)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration and installs the logger it asks for.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfgFile != "" {
		logger.Debug("loaded config", "path", cfgFile)
	}
	return cfg, logger, nil
}

// newLogger installs a stderr logger at the level of cfg, or of --log-level
// when given.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger, nil
}
