package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pdfact/lexicon"
	"github.com/tsawler/pdfact/model"
)

// NormalizerConfig holds configuration for word normalization.
type NormalizerConfig struct {
	// LowerCase folds words to lower case
	// Default: true
	LowerCase bool

	// Keep reports whether a leading or trailing rune is kept. Runes are
	// stripped from both ends until one is kept.
	// Default: letters and hyphens
	Keep func(r rune) bool
}

// DefaultNormalizerConfig returns the configuration used to key the
// dehyphenation frequency indices.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		LowerCase: true,
		Keep: func(r rune) bool {
			return lexicon.IsLetter(r) || lexicon.IsHyphen(r)
		},
	}
}

// WordNormalizer turns words into frequency-index keys.
// A WordNormalizer is not safe for concurrent use.
type WordNormalizer struct {
	config NormalizerConfig
	caser  cases.Caser
}

// NewWordNormalizer creates a normalizer with default configuration.
func NewWordNormalizer() *WordNormalizer {
	return NewWordNormalizerWithConfig(DefaultNormalizerConfig())
}

// NewWordNormalizerWithConfig creates a normalizer with custom configuration.
func NewWordNormalizerWithConfig(config NormalizerConfig) *WordNormalizer {
	if config.Keep == nil {
		config.Keep = DefaultNormalizerConfig().Keep
	}
	return &WordNormalizer{
		config: config,
		caser:  cases.Lower(language.Und),
	}
}

// Normalize returns the normalized text of w, "" for nil words.
func (n *WordNormalizer) Normalize(w *model.Word) string {
	if w == nil {
		return ""
	}
	return n.NormalizeString(w.Text)
}

// NormalizeString composes s to NFC, optionally folds it to lower case and
// strips leading and trailing runes that are not kept.
func (n *WordNormalizer) NormalizeString(s string) string {
	s = norm.NFC.String(s)
	if n.config.LowerCase {
		s = n.caser.String(s)
	}
	return strings.TrimFunc(s, func(r rune) bool {
		return !n.config.Keep(r)
	})
}
