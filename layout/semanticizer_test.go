package layout

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tsawler/pdfact/model"
)

// makeArticle creates a three-page article with a running header, page
// numbers, a title, headings, a caption and a bibliography.
func makeArticle() *model.Document {
	var pages [][]*model.TextBlock
	for n := 1; n <= 3; n++ {
		blocks := []*model.TextBlock{
			makeTextBlock(n, 770, 9, bodyFont, "Journal of Layout Studies"),
		}
		switch n {
		case 1:
			blocks = append(blocks,
				makeTextBlock(n, 700, 24, boldFont, "A Study of Paragraphs"),
				makeTextBlock(n, 650, 14, boldFont, "1 Introduction"),
				makeTextBlock(n, 600, 10, bodyFont, "Body text starts here and", "runs over two lines."),
			)
		case 2:
			blocks = append(blocks,
				makeTextBlock(n, 600, 10, bodyFont, "More body text on the second page."),
				makeTextBlock(n, 500, 10, bodyFont, "Figure 1: A diagram of blocks."),
				makeTextBlock(n, 450, 10, bodyFont, "Even more body text follows the figure."),
			)
		case 3:
			blocks = append(blocks,
				makeTextBlock(n, 650, 14, boldFont, "References"),
				makeTextBlock(n, 600, 10, bodyFont, "[1] Someone. A paper. 2001."),
				makeTextBlock(n, 560, 10, bodyFont, "[2] Someone else. Another paper. 2002."),
			)
		}
		blocks = append(blocks, makeTextBlock(n, 40, 10, bodyFont, fmt.Sprintf("%d", n)))
		pages = append(pages, blocks)
	}
	return makeDocument(pages...)
}

func TestSemanticizer_Semanticize(t *testing.T) {
	doc := makeArticle()

	result, err := NewSemanticizer().Semanticize(doc)
	if err != nil {
		t.Fatalf("Semanticize() error: %v", err)
	}

	want := map[string]model.SemanticRole{
		"Journal of Layout Studies":                      model.RolePageHeader,
		"A Study of Paragraphs":                          model.RoleTitle,
		"1 Introduction":                                 model.RoleHeading,
		"Body text starts here and runs over two lines.": model.RoleBodyText,
		"More body text on the second page.":             model.RoleBodyText,
		"Figure 1: A diagram of blocks.":                 model.RoleCaption,
		"References":                                     model.RoleHeading,
		"[1] Someone. A paper. 2001.":                    model.RoleReference,
		"[2] Someone else. Another paper. 2002.":         model.RoleReference,
		"1":                                              model.RolePageFooter,
	}

	for _, b := range doc.Blocks() {
		if !b.Role.IsSet() {
			t.Errorf("block %q has no role", b.Text())
			continue
		}
		if role, ok := want[b.Text()]; ok && b.Role != role {
			t.Errorf("block %q role = %v, want %v", b.Text(), b.Role, role)
		}
	}

	if !result.HeaderFooter.HasHeaders() || !result.HeaderFooter.HasFooters() {
		t.Error("expected header and footer to be detected")
	}
	if result.Labelled[StrategyPageHeaderFooter] != 6 {
		t.Errorf("header/footer labelled %d blocks, want 6", result.Labelled[StrategyPageHeaderFooter])
	}
	if result.Labelled[StrategyTitle] != 1 {
		t.Errorf("title labelled %d blocks, want 1", result.Labelled[StrategyTitle])
	}

	heading := doc.Pages[0].Blocks[2]
	if heading.Level != int(HeadingLevel1) {
		t.Errorf("heading level = %d, want 1", heading.Level)
	}
}

func TestSemanticizer_StrategyOrder(t *testing.T) {
	doc := makeArticle()

	config := DefaultSemanticizerConfig()
	config.Strategies = []RoleStrategy{StrategyBodyText, StrategyPageHeaderFooter}
	if _, err := NewSemanticizerWithConfig(config).Semanticize(doc); err != nil {
		t.Fatal(err)
	}

	for _, b := range doc.Blocks() {
		if b.Role != model.RoleBodyText {
			t.Errorf("block %q role = %v, earlier strategy should win", b.Text(), b.Role)
		}
	}
}

func TestSemanticizer_UnknownStrategy(t *testing.T) {
	config := DefaultSemanticizerConfig()
	config.Strategies = []RoleStrategy{RoleStrategy(42)}

	_, err := NewSemanticizerWithConfig(config).Semanticize(makeArticle())
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestSemanticizer_NilDocument(t *testing.T) {
	result, err := NewSemanticizer().Semanticize(nil)
	if err != nil || result == nil {
		t.Errorf("Semanticize(nil) = %v, %v", result, err)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range DefaultStrategies() {
		parsed, err := ParseStrategy(s.String())
		if err != nil || parsed != s {
			t.Errorf("ParseStrategy(%q) = %v, %v", s.String(), parsed, err)
		}
	}
	if s, err := ParseStrategy("PAGE_HEADER_FOOTER"); err != nil || s != StrategyPageHeaderFooter {
		t.Errorf("ParseStrategy(PAGE_HEADER_FOOTER) = %v, %v", s, err)
	}
	if _, err := ParseStrategy("sidebar"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestIsReferenceHeading(t *testing.T) {
	s := NewSemanticizer()
	tests := []struct {
		text string
		want bool
	}{
		{"References", true},
		{"7 References", true},
		{"VI. Bibliography:", true},
		{"REFERENCES", true},
		{"Related work", false},
	}

	for _, tt := range tests {
		if got := s.isReferenceHeading(tt.text); got != tt.want {
			t.Errorf("isReferenceHeading(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
