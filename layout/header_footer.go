package layout

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/pdfact/internal/counter"
	"github.com/tsawler/pdfact/model"
)

// RegionType indicates whether a region is a header or footer.
type RegionType int

const (
	Header RegionType = iota
	Footer
)

func (r RegionType) String() string {
	if r == Header {
		return "header"
	}
	return "footer"
}

// Role returns the semantic role blocks of this region receive.
func (r RegionType) Role() model.SemanticRole {
	if r == Header {
		return model.RolePageHeader
	}
	return model.RolePageFooter
}

// HeaderFooterRegion is an elected header or footer text together with the
// blocks carrying it.
type HeaderFooterRegion struct {
	// Type indicates if this is a header or footer.
	Type RegionType

	// Text is the normalized text shared by all blocks (digits removed).
	Text string

	// Frequency is the number of candidate blocks carrying Text.
	Frequency int

	// Candidates is the number of candidate blocks considered, one per page.
	Candidates int

	// Blocks are the blocks carrying Text, in page order.
	Blocks []*model.TextBlock

	// PageNumbers lists the pages Blocks are on.
	PageNumbers []int
}

// HeaderFooterConfig holds configuration for header/footer detection.
type HeaderFooterConfig struct {
	// MinOccurrenceRatio is the fraction of candidate blocks the most common
	// text must reach. The threshold is truncated to an integer.
	// Default: 0.5 (half the pages, integer division)
	MinOccurrenceRatio float64

	// MinPages is the minimum number of pages with content required for
	// header/footer detection. Values below 2 let a single page elect its
	// topmost and bottommost blocks.
	// Default: 1
	MinPages int
}

// DefaultHeaderFooterConfig returns sensible default configuration.
func DefaultHeaderFooterConfig() HeaderFooterConfig {
	return HeaderFooterConfig{
		MinOccurrenceRatio: 0.5,
		MinPages:           1,
	}
}

// HeaderFooterDetector detects headers and footers across pages by a
// majority vote over the topmost and bottommost block of every page.
type HeaderFooterDetector struct {
	config HeaderFooterConfig
}

// NewHeaderFooterDetector creates a new detector with default configuration.
func NewHeaderFooterDetector() *HeaderFooterDetector {
	return &HeaderFooterDetector{
		config: DefaultHeaderFooterConfig(),
	}
}

// NewHeaderFooterDetectorWithConfig creates a detector with custom configuration.
func NewHeaderFooterDetectorWithConfig(config HeaderFooterConfig) *HeaderFooterDetector {
	return &HeaderFooterDetector{
		config: config,
	}
}

// HeaderFooterResult contains the detection results.
type HeaderFooterResult struct {
	// Headers contains the elected header region, if any.
	Headers []HeaderFooterRegion

	// Footers contains the elected footer region, if any.
	Footers []HeaderFooterRegion

	// Config used for detection.
	Config HeaderFooterConfig
}

// Detect elects the header and footer texts of pages. It does not modify
// the blocks; see Apply.
func (d *HeaderFooterDetector) Detect(pages []*model.Page) *HeaderFooterResult {
	result := &HeaderFooterResult{Config: d.config}

	headerCandidates, footerCandidates := d.extractCandidates(pages)
	if len(headerCandidates) < d.config.MinPages {
		return result
	}

	if region, ok := d.elect(headerCandidates, Header); ok {
		result.Headers = append(result.Headers, region)
	}
	if region, ok := d.elect(footerCandidates, Footer); ok {
		result.Footers = append(result.Footers, region)
	}
	return result
}

// Apply assigns the page-header and page-footer roles to the blocks of
// result. Headers are applied before footers; blocks that already carry a
// role keep it. It returns the number of blocks labelled.
func (d *HeaderFooterDetector) Apply(result *HeaderFooterResult) int {
	if result == nil {
		return 0
	}
	labelled := 0
	for _, regions := range [][]HeaderFooterRegion{result.Headers, result.Footers} {
		for _, region := range regions {
			for _, b := range region.Blocks {
				if b.AssignRole(region.Type.Role()) {
					labelled++
				}
			}
		}
	}
	return labelled
}

// Classify detects headers and footers in doc and labels their blocks.
func (d *HeaderFooterDetector) Classify(doc *model.Document) *HeaderFooterResult {
	if doc == nil {
		return &HeaderFooterResult{Config: d.config}
	}
	result := d.Detect(doc.Pages)
	d.Apply(result)
	return result
}

// extractCandidates returns the topmost and bottommost non-empty block of
// every page. Ties go to the block that comes first on the page.
func (d *HeaderFooterDetector) extractCandidates(pages []*model.Page) (headers, footers []*model.TextBlock) {
	for _, page := range pages {
		blocks := page.NonEmptyBlocks()
		if len(blocks) == 0 {
			continue
		}

		byTop := make([]*model.TextBlock, len(blocks))
		copy(byTop, blocks)
		sort.SliceStable(byTop, func(i, j int) bool {
			return byTop[i].Position.Rect.Top() > byTop[j].Position.Rect.Top()
		})

		byBottom := make([]*model.TextBlock, len(blocks))
		copy(byBottom, blocks)
		sort.SliceStable(byBottom, func(i, j int) bool {
			return byBottom[i].Position.Rect.Bottom() < byBottom[j].Position.Rect.Bottom()
		})

		headers = append(headers, byTop[0])
		footers = append(footers, byBottom[0])
	}
	return headers, footers
}

// elect returns the region of the most common normalized text if it occurs
// in at least the configured share of the candidates.
func (d *HeaderFooterDetector) elect(candidates []*model.TextBlock, regionType RegionType) (HeaderFooterRegion, bool) {
	if len(candidates) == 0 {
		return HeaderFooterRegion{}, false
	}

	texts := make([]string, len(candidates))
	freq := counter.New[string]()
	for i, b := range candidates {
		texts[i] = normalizeForComparison(b.Text())
		freq.Add(texts[i])
	}

	text, frequency, _ := freq.MostCommon()
	threshold := int(float64(len(candidates)) * d.config.MinOccurrenceRatio)
	if frequency < threshold {
		return HeaderFooterRegion{}, false
	}

	region := HeaderFooterRegion{
		Type:       regionType,
		Text:       text,
		Frequency:  frequency,
		Candidates: len(candidates),
	}
	for i, b := range candidates {
		if texts[i] == text {
			region.Blocks = append(region.Blocks, b)
			region.PageNumbers = append(region.PageNumbers, b.Position.Page)
		}
	}
	return region, true
}

var digitPattern = regexp.MustCompile(`\d`)

// normalizeForComparison removes digits so that running page numbers do
// not split otherwise identical texts.
func normalizeForComparison(text string) string {
	return digitPattern.ReplaceAllString(text, "")
}

// HasHeaders returns true if a header was elected.
func (r *HeaderFooterResult) HasHeaders() bool {
	return r != nil && len(r.Headers) > 0
}

// HasFooters returns true if a footer was elected.
func (r *HeaderFooterResult) HasFooters() bool {
	return r != nil && len(r.Footers) > 0
}

// HasHeadersOrFooters returns true if a header or footer was elected.
func (r *HeaderFooterResult) HasHeadersOrFooters() bool {
	return r.HasHeaders() || r.HasFooters()
}

// GetHeaderTexts returns the elected header texts.
func (r *HeaderFooterResult) GetHeaderTexts() []string {
	if r == nil {
		return nil
	}
	texts := make([]string, len(r.Headers))
	for i, h := range r.Headers {
		texts[i] = h.Text
	}
	return texts
}

// GetFooterTexts returns the elected footer texts.
func (r *HeaderFooterResult) GetFooterTexts() []string {
	if r == nil {
		return nil
	}
	texts := make([]string, len(r.Footers))
	for i, f := range r.Footers {
		texts[i] = f.Text
	}
	return texts
}

// Summary returns a human-readable summary of the detection.
func (r *HeaderFooterResult) Summary() string {
	if !r.HasHeadersOrFooters() {
		return "No headers or footers detected"
	}

	var sb strings.Builder
	for _, regions := range [][]HeaderFooterRegion{r.Headers, r.Footers} {
		for _, region := range regions {
			fmt.Fprintf(&sb, "%s: %q on %d of %d pages %v\n",
				region.Type, region.Text, region.Frequency, region.Candidates, region.PageNumbers)
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
