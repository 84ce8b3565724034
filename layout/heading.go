package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/pdfact/model"
)

// HeadingLevel represents the hierarchical level of a heading (1-6).
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1
	HeadingLevel2
	HeadingLevel3
	HeadingLevel4
	HeadingLevel5
	HeadingLevel6
)

// String returns a string representation of the heading level.
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "H1"
	case HeadingLevel2:
		return "H2"
	case HeadingLevel3:
		return "H3"
	case HeadingLevel4:
		return "H4"
	case HeadingLevel5:
		return "H5"
	case HeadingLevel6:
		return "H6"
	default:
		return "unknown"
	}
}

// HTMLTag returns the HTML tag for this heading level.
func (l HeadingLevel) HTMLTag() string {
	if l >= HeadingLevel1 && l <= HeadingLevel6 {
		return strings.ToLower(l.String())
	}
	return "p"
}

// HeadingConfig holds configuration for heading detection.
type HeadingConfig struct {
	// FontSizeRatios maps heading levels to minimum font size ratios relative to body text
	// Default: H1=1.8, H2=1.5, H3=1.3, H4=1.15, H5=1.1, H6=1.05
	FontSizeRatios map[HeadingLevel]float64

	// MinFontSizeRatio is the font size ratio (vs body) from which a short
	// block is a heading on size alone
	// Default: 1.1
	MinFontSizeRatio float64

	// MaxHeadingLines is the maximum number of lines for a heading
	// Default: 3
	MaxHeadingLines int

	// MaxHeadingWords is the maximum number of words for a heading
	// Default: 20
	MaxHeadingWords int

	// BoldIndicatesHeading when true, a short bold block in a document whose
	// body text is not bold is a heading
	// Default: true
	BoldIndicatesHeading bool

	// NumberedPatterns are regex patterns for numbered headings; the number
	// of dots in the match hints the level
	// Default: "1.", "1.1", "1.1.1", "Chapter 1", etc
	NumberedPatterns []*regexp.Regexp
}

// DefaultHeadingConfig returns sensible default configuration.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		FontSizeRatios: map[HeadingLevel]float64{
			HeadingLevel1: 1.8,  // 80% larger than body
			HeadingLevel2: 1.5,  // 50% larger
			HeadingLevel3: 1.3,  // 30% larger
			HeadingLevel4: 1.15, // 15% larger
			HeadingLevel5: 1.1,  // 10% larger
			HeadingLevel6: 1.05, // 5% larger
		},
		MinFontSizeRatio:     1.1,
		MaxHeadingLines:      3,
		MaxHeadingWords:      20,
		BoldIndicatesHeading: true,
		NumberedPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^(?i)(chapter|section|part)\s+\d+`),
			regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s`),
			regexp.MustCompile(`^\d+\.\d+\.?\s`),
			regexp.MustCompile(`^\d+\.?\s`),
			regexp.MustCompile(`^[IVXLCDM]+\.\s`), // Roman numerals
			regexp.MustCompile(`^[A-Z]\.\s`),      // Letter prefixes
		},
	}
}

// HeadingDetector decides whether a block is a heading and at which level.
type HeadingDetector struct {
	config HeadingConfig
}

// NewHeadingDetector creates a new heading detector with default configuration.
func NewHeadingDetector() *HeadingDetector {
	return &HeadingDetector{
		config: DefaultHeadingConfig(),
	}
}

// NewHeadingDetectorWithConfig creates a heading detector with custom configuration.
func NewHeadingDetectorWithConfig(config HeadingConfig) *HeadingDetector {
	return &HeadingDetector{
		config: config,
	}
}

// Detect reports whether block is a heading relative to the body statistic
// of its document, and its level.
func (d *HeadingDetector) Detect(block *model.TextBlock, body *model.CharacterStatistic) (HeadingLevel, bool) {
	if block.IsEmpty() || block.Statistic == nil || body == nil {
		return HeadingLevelUnknown, false
	}
	if len(block.Lines) > d.config.MaxHeadingLines {
		return HeadingLevelUnknown, false
	}

	text := block.Text()
	if len(strings.Fields(text)) > d.config.MaxHeadingWords {
		return HeadingLevelUnknown, false
	}

	bodySize := body.MostCommonFontSize()
	size := block.Statistic.MostCommonFontSize()
	larger := bodySize > 0 && size/bodySize >= d.config.MinFontSizeRatio
	bold := d.config.BoldIndicatesHeading &&
		detectBold(block.Statistic.MostCommonFont()) &&
		!detectBold(body.MostCommonFont()) &&
		size >= bodySize

	if !larger && !bold {
		return HeadingLevelUnknown, false
	}

	numbered, prefix := d.detectNumbered(text)
	return d.determineLevel(size, bodySize, numbered, prefix), true
}

// detectBold checks the font flag and the usual weight suffixes of font names.
func detectBold(font model.Font) bool {
	if font.Bold {
		return true
	}
	fontLower := strings.ToLower(font.Name)
	return strings.Contains(fontLower, "bold") ||
		strings.Contains(fontLower, "black") ||
		strings.Contains(fontLower, "heavy") ||
		strings.Contains(fontLower, "semibold") ||
		strings.Contains(fontLower, "demibold")
}

// detectNumbered checks if text starts with a numbering pattern.
func (d *HeadingDetector) detectNumbered(text string) (bool, string) {
	text = strings.TrimSpace(text)

	for _, pattern := range d.config.NumberedPatterns {
		if match := pattern.FindString(text); match != "" {
			return true, strings.TrimSpace(match)
		}
	}

	return false, ""
}

// determineLevel determines the heading level based on numbering and font size.
func (d *HeadingDetector) determineLevel(fontSize, bodyFontSize float64, numbered bool, prefix string) HeadingLevel {
	if numbered {
		lower := strings.ToLower(prefix)
		if strings.Contains(lower, "chapter") || strings.Contains(lower, "part") {
			return HeadingLevel1
		}
		// "1" = level 1, "1.2" = level 2, "1.2.3" = level 3
		dots := strings.Count(strings.TrimSuffix(prefix, "."), ".")
		if prefix[0] >= '0' && prefix[0] <= '9' {
			level := HeadingLevel(dots + 1)
			if level > HeadingLevel6 {
				level = HeadingLevel6
			}
			return level
		}
	}

	if bodyFontSize <= 0 {
		return HeadingLevel6
	}
	fontRatio := fontSize / bodyFontSize
	for level := HeadingLevel1; level <= HeadingLevel6; level++ {
		ratio, ok := d.config.FontSizeRatios[level]
		if ok && fontRatio >= ratio {
			return level
		}
	}

	// Bold text at body size.
	return HeadingLevel6
}
