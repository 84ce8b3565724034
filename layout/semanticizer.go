package layout

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/stats"
)

// ErrUnknownStrategy is returned for a strategy outside the closed set.
var ErrUnknownStrategy = errors.New("unknown role strategy")

// RoleStrategy is one role classifier of the semanticizer. The set is
// closed; strategies run in the order they are configured and only label
// blocks that have no role yet.
type RoleStrategy int

const (
	StrategyPageHeaderFooter RoleStrategy = iota
	StrategyTitle
	StrategyHeading
	StrategyCaption
	StrategyReference
	StrategyBodyText
)

var strategyNames = [...]string{
	StrategyPageHeaderFooter: "page-header-footer",
	StrategyTitle:            "title",
	StrategyHeading:          "heading",
	StrategyCaption:          "caption",
	StrategyReference:        "reference",
	StrategyBodyText:         "body-text",
}

// String returns the name of the strategy.
func (s RoleStrategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy parses a strategy name as produced by String.
func ParseStrategy(name string) (RoleStrategy, error) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range strategyNames {
		if n == name {
			return RoleStrategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// DefaultStrategies returns every strategy in precedence order.
func DefaultStrategies() []RoleStrategy {
	return []RoleStrategy{
		StrategyPageHeaderFooter,
		StrategyTitle,
		StrategyHeading,
		StrategyCaption,
		StrategyReference,
		StrategyBodyText,
	}
}

// SemanticizerConfig holds configuration for role classification.
type SemanticizerConfig struct {
	// Strategies are applied in order
	// Default: DefaultStrategies()
	Strategies []RoleStrategy

	HeaderFooter HeaderFooterConfig
	Heading      HeadingConfig

	// TitleFontSizeRatio is the font size ratio (vs body) a block on the
	// first page must exceed to be the title
	// Default: 1.5
	TitleFontSizeRatio float64

	// CaptionPattern matches the start of caption blocks
	// Default: "Figure 1", "Fig. 1", "Table 1"
	CaptionPattern *regexp.Regexp

	// ReferenceHeadings are the heading texts (case-insensitive, numbering
	// and trailing colon ignored) that open a bibliography section.
	ReferenceHeadings []string
}

// DefaultSemanticizerConfig returns sensible default configuration.
func DefaultSemanticizerConfig() SemanticizerConfig {
	return SemanticizerConfig{
		Strategies:         DefaultStrategies(),
		HeaderFooter:       DefaultHeaderFooterConfig(),
		Heading:            DefaultHeadingConfig(),
		TitleFontSizeRatio: 1.5,
		CaptionPattern:     regexp.MustCompile(`^(?i)(figure|fig\.|table|tab\.)\s*\d+`),
		ReferenceHeadings:  []string{"references", "bibliography", "literature", "works cited"},
	}
}

// Semanticizer assigns a semantic role to every block of a document.
type Semanticizer struct {
	config       SemanticizerConfig
	headerFooter *HeaderFooterDetector
	heading      *HeadingDetector
	statistician *stats.Statistician
}

// NewSemanticizer creates a semanticizer with default configuration.
func NewSemanticizer() *Semanticizer {
	return NewSemanticizerWithConfig(DefaultSemanticizerConfig())
}

// NewSemanticizerWithConfig creates a semanticizer with custom configuration.
func NewSemanticizerWithConfig(config SemanticizerConfig) *Semanticizer {
	return &Semanticizer{
		config:       config,
		headerFooter: NewHeaderFooterDetectorWithConfig(config.HeaderFooter),
		heading:      NewHeadingDetectorWithConfig(config.Heading),
		statistician: stats.NewStatistician(),
	}
}

// SemanticizeResult summarizes a classification run.
type SemanticizeResult struct {
	// HeaderFooter is the result of header/footer detection, nil if the
	// strategy did not run.
	HeaderFooter *HeaderFooterResult

	// Labelled counts the blocks each strategy labelled.
	Labelled map[RoleStrategy]int
}

// Semanticize runs the configured strategies over doc. Statistics are
// computed first if the document has none. A nil document is a no-op.
func (s *Semanticizer) Semanticize(doc *model.Document) (*SemanticizeResult, error) {
	result := &SemanticizeResult{Labelled: make(map[RoleStrategy]int)}
	if doc == nil {
		return result, nil
	}
	if doc.Statistic == nil {
		if err := s.statistician.Annotate(doc); err != nil {
			return nil, fmt.Errorf("compute statistics: %w", err)
		}
	}

	for _, strategy := range s.config.Strategies {
		var n int
		switch strategy {
		case StrategyPageHeaderFooter:
			result.HeaderFooter = s.headerFooter.Detect(doc.Pages)
			n = s.headerFooter.Apply(result.HeaderFooter)
		case StrategyTitle:
			n = s.classifyTitle(doc)
		case StrategyHeading:
			n = s.classifyHeadings(doc)
		case StrategyCaption:
			n = s.classifyCaptions(doc)
		case StrategyReference:
			n = s.classifyReferences(doc)
		case StrategyBodyText:
			n = classifyBodyText(doc)
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
		}
		result.Labelled[strategy] += n
	}
	return result, nil
}

// classifyTitle labels the block of the first page with the largest font,
// if that font is large enough compared to the body text.
func (s *Semanticizer) classifyTitle(doc *model.Document) int {
	page := doc.GetPage(1)
	bodySize := doc.Statistic.MostCommonFontSize()
	if page == nil || bodySize <= 0 {
		return 0
	}

	var title *model.TextBlock
	var titleSize float64
	for _, b := range page.NonEmptyBlocks() {
		if b.Role.IsSet() {
			continue
		}
		size := b.Statistic.MostCommonFontSize()
		if size > titleSize {
			title, titleSize = b, size
		}
	}

	if title == nil || titleSize <= bodySize*s.config.TitleFontSizeRatio {
		return 0
	}
	title.Level = int(HeadingLevel1)
	if title.AssignRole(model.RoleTitle) {
		return 1
	}
	return 0
}

func (s *Semanticizer) classifyHeadings(doc *model.Document) int {
	n := 0
	for _, b := range doc.Blocks() {
		if b.Role.IsSet() {
			continue
		}
		level, ok := s.heading.Detect(b, doc.Statistic)
		if !ok {
			continue
		}
		b.Level = int(level)
		b.AssignRole(model.RoleHeading)
		n++
	}
	return n
}

func (s *Semanticizer) classifyCaptions(doc *model.Document) int {
	if s.config.CaptionPattern == nil {
		return 0
	}
	n := 0
	for _, b := range doc.Blocks() {
		if b.Role.IsSet() || b.IsEmpty() {
			continue
		}
		if s.config.CaptionPattern.MatchString(b.Text()) && b.AssignRole(model.RoleCaption) {
			n++
		}
	}
	return n
}

// classifyReferences labels the unlabelled blocks between a bibliography
// heading and the next heading.
func (s *Semanticizer) classifyReferences(doc *model.Document) int {
	n := 0
	inReferences := false
	for _, b := range doc.Blocks() {
		if b.Role == model.RoleHeading || b.Role == model.RoleTitle {
			inReferences = s.isReferenceHeading(b.Text())
			continue
		}
		if inReferences && !b.Role.IsSet() && !b.IsEmpty() && b.AssignRole(model.RoleReference) {
			n++
		}
	}
	return n
}

var headingNumberPrefix = regexp.MustCompile(`^[\dIVXivx.]+\s+`)

func (s *Semanticizer) isReferenceHeading(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	text = headingNumberPrefix.ReplaceAllString(text, "")
	text = strings.TrimSuffix(text, ":")
	for _, h := range s.config.ReferenceHeadings {
		if text == strings.ToLower(h) {
			return true
		}
	}
	return false
}

// classifyBodyText labels every block that is still unlabelled.
func classifyBodyText(doc *model.Document) int {
	n := 0
	for _, b := range doc.Blocks() {
		if b.AssignRole(model.RoleBodyText) {
			n++
		}
	}
	return n
}
