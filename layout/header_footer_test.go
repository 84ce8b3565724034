package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tsawler/pdfact/model"
)

var (
	bodyFont = model.Font{Name: "Times-Roman"}
	boldFont = model.Font{Name: "Times-Bold", Bold: true}
)

// makeTextBlock creates a block on page with one line per text. The first
// line's bottom edge is at y, following lines are 12 points lower.
func makeTextBlock(page int, y, fontSize float64, font model.Font, texts ...string) *model.TextBlock {
	var lines []*model.TextLine
	for i, t := range texts {
		lineY := y - float64(i)*12
		var words []*model.Word
		x := 72.0
		for _, w := range strings.Fields(t) {
			var chars []*model.Character
			for _, r := range w {
				rect := model.NewBBox(x, lineY, 5, fontSize)
				chars = append(chars, model.NewCharacter(string(r), page, rect, font, fontSize))
				x += 5
			}
			words = append(words, model.NewWord(chars...))
			x += 3
		}
		lines = append(lines, model.NewTextLine(words...))
	}
	return model.NewTextBlock(lines...)
}

// makeDocument creates a document with one page per block list.
func makeDocument(pages ...[]*model.TextBlock) *model.Document {
	doc := model.NewDocument()
	for _, blocks := range pages {
		page := model.NewPage(612, 792)
		doc.AddPage(page)
		for _, b := range blocks {
			page.AddBlock(b)
		}
	}
	return doc
}

// makeHeaderPages creates pages with a header, a body block and a footer
// carrying the page number.
func makeHeaderPages(headers []string) *model.Document {
	var pages [][]*model.TextBlock
	for i, h := range headers {
		n := i + 1
		pages = append(pages, []*model.TextBlock{
			makeTextBlock(n, 760, 10, bodyFont, h),
			makeTextBlock(n, 600, 10, bodyFont, fmt.Sprintf("Body text of page %d.", n)),
			makeTextBlock(n, 40, 10, bodyFont, fmt.Sprintf("- %d -", n)),
		})
	}
	return makeDocument(pages...)
}

func TestHeaderFooterDetector_NoPages(t *testing.T) {
	detector := NewHeaderFooterDetector()

	result := detector.Detect(nil)

	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if result.HasHeadersOrFooters() {
		t.Error("expected no headers or footers for empty input")
	}
}

func TestHeaderFooterDetector_SinglePage(t *testing.T) {
	tests := []struct {
		name     string
		minPages int
		header   string
		footer   string
	}{
		{"default", DefaultHeaderFooterConfig().MinPages, "Document Title", "- 1 -"},
		{"min pages 2", 2, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultHeaderFooterConfig()
			config.MinPages = tt.minPages
			doc := makeHeaderPages([]string{"Document Title"})

			NewHeaderFooterDetectorWithConfig(config).Classify(doc)

			for _, b := range doc.Blocks() {
				want := model.RoleUnset
				switch b.Text() {
				case tt.header:
					want = model.RolePageHeader
				case tt.footer:
					want = model.RolePageFooter
				}
				if b.Role != want {
					t.Errorf("block %q role = %v, want %v", b.Text(), b.Role, want)
				}
			}
		})
	}
}

func TestHeaderFooterDetector_SinglePageThreeBlocks(t *testing.T) {
	doc := makeDocument([]*model.TextBlock{
		makeTextBlock(1, 760, 10, bodyFont, "Running head"),
		makeTextBlock(1, 600, 10, bodyFont, "Body."),
		makeTextBlock(1, 40, 10, bodyFont, "Footer"),
	})

	result := NewHeaderFooterDetector().Classify(doc)

	if !result.HasHeaders() || !result.HasFooters() {
		t.Fatalf("expected a header and a footer, got %+v", result)
	}
	want := []model.SemanticRole{model.RolePageHeader, model.RoleUnset, model.RolePageFooter}
	for i, b := range doc.Pages[0].Blocks {
		if b.Role != want[i] {
			t.Errorf("block %q role = %v, want %v", b.Text(), b.Role, want[i])
		}
	}
}

func TestHeaderFooterDetector_MajorityRule(t *testing.T) {
	tests := []struct {
		name        string
		identical   int
		total       int
		wantLabeled int
	}{
		{"six of ten", 6, 10, 6},
		{"five of ten", 5, 10, 5},
		{"four of ten", 4, 10, 0},
		{"two of three", 2, 3, 2},
		{"one of three reaches truncated threshold", 1, 3, 1},
		{"three of eight", 3, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := make([]string, tt.total)
			for i := range headers {
				if i < tt.identical {
					headers[i] = "Chapter 3"
				} else {
					headers[i] = fmt.Sprintf("Distinct header %c", 'A'+i)
				}
			}
			doc := makeHeaderPages(headers)

			NewHeaderFooterDetector().Classify(doc)

			labeled := 0
			for _, page := range doc.Pages {
				for _, b := range page.BlocksWithRole(model.RolePageHeader) {
					labeled++
					if b.Text() != "Chapter 3" {
						t.Errorf("unexpected header %q", b.Text())
					}
				}
			}
			if labeled != tt.wantLabeled {
				t.Errorf("labeled %d headers, want %d", labeled, tt.wantLabeled)
			}
		})
	}
}

func TestHeaderFooterDetector_DigitsIgnored(t *testing.T) {
	doc := makeHeaderPages([]string{"Report 2024", "Intro", "Report 2024", "Summary"})

	result := NewHeaderFooterDetector().Classify(doc)

	if !result.HasFooters() {
		t.Fatal("expected page numbers to be detected as footer")
	}
	footer := result.Footers[0]
	if footer.Text != "-  -" {
		t.Errorf("footer text = %q, want %q", footer.Text, "-  -")
	}
	if len(footer.Blocks) != 4 || footer.Frequency != 4 {
		t.Errorf("expected 4 footer blocks, got %d (freq %d)", len(footer.Blocks), footer.Frequency)
	}
	if got := footer.PageNumbers; len(got) != 4 || got[0] != 1 || got[3] != 4 {
		t.Errorf("PageNumbers = %v", got)
	}

	// 2 of 4 reaches the threshold of 4/2.
	if !result.HasHeaders() {
		t.Fatal("expected header to be detected")
	}
	if got := result.GetHeaderTexts(); got[0] != "Report " {
		t.Errorf("header texts = %q", got)
	}
	if doc.Pages[1].Blocks[0].Role.IsSet() {
		t.Error("non-matching header candidate should stay unlabelled")
	}
}

func TestHeaderFooterDetector_SingleBlockPageIsHeader(t *testing.T) {
	doc := makeDocument(
		[]*model.TextBlock{makeTextBlock(1, 400, 10, bodyFont, "Only block")},
		[]*model.TextBlock{makeTextBlock(2, 400, 10, bodyFont, "Only block")},
	)

	result := NewHeaderFooterDetector().Classify(doc)

	if !result.HasHeaders() || !result.HasFooters() {
		t.Fatal("expected both regions to be elected")
	}
	for _, b := range doc.Blocks() {
		if b.Role != model.RolePageHeader {
			t.Errorf("Role = %v, want page-header", b.Role)
		}
	}
}

func TestHeaderFooterDetector_KeepsExistingRoles(t *testing.T) {
	doc := makeHeaderPages([]string{"Journal", "Journal", "Journal"})
	doc.Pages[0].Blocks[0].AssignRole(model.RoleTitle)

	detector := NewHeaderFooterDetector()
	result := detector.Detect(doc.Pages)
	labelled := detector.Apply(result)

	if doc.Pages[0].Blocks[0].Role != model.RoleTitle {
		t.Error("existing role was overwritten")
	}
	// 2 headers + 3 footers
	if labelled != 5 {
		t.Errorf("labelled = %d, want 5", labelled)
	}
}

func TestHeaderFooterDetector_TieUsesDocumentOrder(t *testing.T) {
	first := makeTextBlock(1, 700, 10, bodyFont, "Left")
	second := makeTextBlock(1, 700, 10, bodyFont, "Right")
	doc := makeDocument(
		[]*model.TextBlock{first, second},
		[]*model.TextBlock{makeTextBlock(2, 700, 10, bodyFont, "Left")},
	)

	result := NewHeaderFooterDetector().Detect(doc.Pages)

	if !result.HasHeaders() || result.Headers[0].Blocks[0] != first {
		t.Error("expected first block in document order to be the header candidate")
	}
}

func TestHeaderFooterDetector_SkipsEmptyPages(t *testing.T) {
	doc := makeHeaderPages([]string{"Header", "Header"})
	doc.Pages = append(doc.Pages, nil, model.NewPage(612, 792))

	result := NewHeaderFooterDetector().Classify(doc)

	if !result.HasHeaders() || result.Headers[0].Candidates != 2 {
		t.Errorf("expected 2 candidates, got %+v", result.Headers)
	}
}

func TestHeaderFooterResult_Summary(t *testing.T) {
	var empty *HeaderFooterResult
	if empty.Summary() != "No headers or footers detected" {
		t.Errorf("unexpected summary %q", empty.Summary())
	}

	result := NewHeaderFooterDetector().Classify(makeHeaderPages([]string{"A book", "A book"}))
	summary := result.Summary()
	if !strings.Contains(summary, `header: "A book" on 2 of 2 pages`) {
		t.Errorf("unexpected summary %q", summary)
	}
}
