package text

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/stats"
)

// makeWord creates a word with one 5x10 character per rune on page at y.
func makeWord(text string, page int, y float64) *model.Word {
	var chars []*model.Character
	for i, r := range text {
		rect := model.NewBBox(72+float64(i)*5, y, 5, 10)
		chars = append(chars, model.NewCharacter(string(r), page, rect, model.Font{Name: "Times"}, 10))
	}
	return model.NewWord(chars...)
}

// makeParagraph creates a paragraph from space-separated words. Words
// ending in "-" at a line break are written as "inter-|" and flagged as
// hyphenated.
func makeParagraph(text string) *model.Paragraph {
	var words []*model.Word
	y := 700.0
	for _, token := range strings.Fields(text) {
		hyphenated := strings.HasSuffix(token, "|")
		w := makeWord(strings.TrimSuffix(token, "|"), 1, y)
		w.IsHyphenated = hyphenated
		if hyphenated {
			y -= 12
		}
		words = append(words, w)
	}
	return model.NewParagraph(words, nil, model.RoleBodyText)
}

// makeLine creates a line on page 1 at y using the token syntax of
// makeParagraph.
func makeLine(text string, y float64) *model.TextLine {
	var words []*model.Word
	for _, token := range strings.Fields(text) {
		w := makeWord(strings.TrimSuffix(token, "|"), 1, y)
		w.IsHyphenated = strings.HasSuffix(token, "|")
		words = append(words, w)
	}
	return model.NewTextLine(words...)
}

func makeCorpus(paragraphs ...string) *model.Document {
	doc := model.NewDocument()
	for _, p := range paragraphs {
		doc.Paragraphs = append(doc.Paragraphs, makeParagraph(p))
	}
	return doc
}

func quietDehyphenator() *Dehyphenator {
	config := DefaultDehyphenationConfig()
	config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDehyphenatorWithConfig(config)
}

func TestDehyphenate_DropsLineBreakHyphen(t *testing.T) {
	doc := makeCorpus(
		"An inter-| national conference.",
		strings.Repeat("international ", 5),
	)

	result, err := quietDehyphenator().Dehyphenate(doc)
	if err != nil {
		t.Fatal(err)
	}

	p := doc.Paragraphs[0]
	if p.Text != "An international conference." {
		t.Errorf("Text = %q", p.Text)
	}
	if len(p.Words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(p.Words))
	}

	merged := p.Words[1]
	if !merged.IsDehyphenated || merged.IsHyphenated {
		t.Errorf("flags = hyphenated %v, dehyphenated %v", merged.IsHyphenated, merged.IsDehyphenated)
	}
	if len(merged.Positions) != 2 {
		t.Errorf("expected positions of both lines, got %d", len(merged.Positions))
	}
	if len(merged.Characters) != len("international") {
		t.Errorf("expected %d characters, got %d", len("international"), len(merged.Characters))
	}
	if merged.Statistic == nil || merged.Statistic.NumCharacters != 13 {
		t.Error("expected recomputed word statistic")
	}
	if result.ToNormalWords != 1 || result.ToCompoundWords != 0 || result.DehyphenatedWords != 1 {
		t.Errorf("unexpected stats %+v", result)
	}
}

func TestDehyphenate_UpdatesBlocks(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		want      string
		wantLines int
		wantFirst int
	}{
		{"word shares its line", []string{"the inter-|", "national law."}, "the international law.", 2, 3},
		{"word alone on its line", []string{"inter-|", "national law."}, "international law.", 1, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines []*model.TextLine
			for i, l := range tt.lines {
				lines = append(lines, makeLine(l, 700-float64(i)*12))
			}
			block := model.NewTextBlock(lines...)
			block.Role = model.RoleBodyText

			doc := model.NewDocument()
			page := model.NewPage(612, 792)
			doc.AddPage(page)
			page.AddBlock(block)
			doc.Paragraphs = []*model.Paragraph{model.NewParagraph(block.Words(), nil, model.RoleBodyText)}
			if err := stats.NewStatistician().Annotate(doc); err != nil {
				t.Fatal(err)
			}

			if _, err := quietDehyphenator().Dehyphenate(doc); err != nil {
				t.Fatal(err)
			}

			if got := block.Text(); got != tt.want {
				t.Errorf("block text = %q, want %q", got, tt.want)
			}
			if got := doc.Paragraphs[0].Text; got != tt.want {
				t.Errorf("paragraph text = %q, want %q", got, tt.want)
			}
			if len(block.Lines) != tt.wantLines {
				t.Fatalf("expected %d lines, got %d", tt.wantLines, len(block.Lines))
			}
			if n := block.Lines[0].Statistic.NumCharacters; n != tt.wantFirst {
				t.Errorf("first line has %d characters, want %d", n, tt.wantFirst)
			}

			chars := len(strings.ReplaceAll(tt.want, " ", ""))
			for name, stat := range map[string]*model.CharacterStatistic{
				"block":    block.Statistic,
				"page":     page.Statistic,
				"document": doc.Statistic,
			} {
				if stat.NumCharacters != chars {
					t.Errorf("%s has %d characters, want %d", name, stat.NumCharacters, chars)
				}
			}
			if n := block.LineStatistic.NumLines; n != tt.wantLines {
				t.Errorf("block line statistic has %d lines, want %d", n, tt.wantLines)
			}
		})
	}
}

func TestDehyphenate_ShrinksLine(t *testing.T) {
	line := makeLine("the inter-|", 700)
	next := makeLine("national", 688)
	block := model.NewTextBlock(line, next)

	doc := model.NewDocument()
	page := model.NewPage(612, 792)
	doc.AddPage(page)
	page.AddBlock(block)
	doc.Paragraphs = []*model.Paragraph{model.NewParagraph(block.Words(), nil, model.RoleBodyText)}

	if _, err := quietDehyphenator().Dehyphenate(doc); err != nil {
		t.Fatal(err)
	}

	if w := line.Position.Rect.Width; w != 15 {
		t.Errorf("line width = %g, want 15", w)
	}
	if line.Position.Page != 1 {
		t.Errorf("line page = %d, want 1", line.Position.Page)
	}
}

func TestDehyphenate_KeepsMandatoryHyphen(t *testing.T) {
	doc := makeCorpus(
		"A well-| known result.",
		strings.Repeat("well-known ", 5),
	)

	result, err := quietDehyphenator().Dehyphenate(doc)
	if err != nil {
		t.Fatal(err)
	}

	if got := doc.Paragraphs[0].Text; got != "A well-known result." {
		t.Errorf("Text = %q", got)
	}
	if result.ToCompoundWords != 1 {
		t.Errorf("ToCompoundWords = %d, want 1", result.ToCompoundWords)
	}
}

func TestDehyphenate_TieBreak(t *testing.T) {
	tests := []struct {
		name   string
		corpus []string
		want   string
	}{
		{
			name:   "no evidence drops hyphen",
			corpus: []string{"The pro-| gram runs."},
			want:   "The program runs.",
		},
		{
			name:   "known prefix keeps hyphen",
			corpus: []string{"The pro-| gram runs.", "pro-choice"},
			want:   "The pro-gram runs.",
		},
		{
			name:   "equal counts use prefix",
			corpus: []string{"A self-| aware robot.", "selfaware self-aware self-made"},
			want:   "A self-aware robot.",
		},
		{
			name:   "normal word wins over prefix",
			corpus: []string{"A self-| aware robot.", "selfaware selfaware self-aware self-made"},
			want:   "A selfaware robot.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := makeCorpus(tt.corpus...)
			if _, err := quietDehyphenator().Dehyphenate(doc); err != nil {
				t.Fatal(err)
			}
			if got := doc.Paragraphs[0].Text; got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDehyphenate_Idempotent(t *testing.T) {
	doc := makeCorpus(
		"An inter-| national conference.",
		"international",
	)
	d := quietDehyphenator()

	if _, err := d.Dehyphenate(doc); err != nil {
		t.Fatal(err)
	}
	words := append([]*model.Word{}, doc.Paragraphs[0].Words...)
	text := doc.Paragraphs[0].Text

	result, err := d.Dehyphenate(doc)
	if err != nil {
		t.Fatal(err)
	}
	if result.DehyphenatedWords != 0 {
		t.Errorf("second run merged %d words", result.DehyphenatedWords)
	}
	if doc.Paragraphs[0].Text != text || len(doc.Paragraphs[0].Words) != len(words) {
		t.Error("second run changed the paragraph")
	}
	for i, w := range words {
		if doc.Paragraphs[0].Words[i] != w {
			t.Errorf("word %d replaced", i)
		}
	}
}

func TestDehyphenate_LastWordLeftAlone(t *testing.T) {
	doc := makeCorpus("The sentence ends in a hyphen-|")

	result, err := quietDehyphenator().Dehyphenate(doc)
	if err != nil {
		t.Fatal(err)
	}

	p := doc.Paragraphs[0]
	last := p.Words[len(p.Words)-1]
	if last.Text != "hyphen-" || last.IsDehyphenated || !last.IsHyphenated {
		t.Errorf("last word = %q (hyphenated %v, dehyphenated %v)", last.Text, last.IsHyphenated, last.IsDehyphenated)
	}
	if result.DehyphenatedWords != 0 {
		t.Errorf("DehyphenatedWords = %d, want 0", result.DehyphenatedWords)
	}
}

func TestDehyphenate_CountsOnlyInnerHyphens(t *testing.T) {
	doc := makeCorpus("-lead trail- in-between en–dash x")

	result, err := quietDehyphenator().Dehyphenate(doc)
	if err != nil {
		t.Fatal(err)
	}

	if result.Words != 5 {
		t.Errorf("Words = %d, want 5", result.Words)
	}
	if result.UniqueCompoundWords != 2 {
		t.Errorf("UniqueCompoundWords = %d, want 2", result.UniqueCompoundWords)
	}
	if result.UniquePrefixes != 2 {
		t.Errorf("UniquePrefixes = %d, want 2", result.UniquePrefixes)
	}
	if result.UniqueNormalWords != 1 {
		t.Errorf("UniqueNormalWords = %d, want 1", result.UniqueNormalWords)
	}
}

func TestDehyphenate_EmptyInput(t *testing.T) {
	d := quietDehyphenator()

	if _, err := d.Dehyphenate(nil); err != nil {
		t.Errorf("Dehyphenate(nil) error: %v", err)
	}

	doc := model.NewDocument()
	doc.Paragraphs = []*model.Paragraph{nil, model.NewParagraph(nil, nil, model.RoleBodyText)}
	if _, err := d.Dehyphenate(doc); err != nil {
		t.Errorf("Dehyphenate(empty) error: %v", err)
	}
}

func TestDehyphenate_NonHyphenCharacterKept(t *testing.T) {
	// a word flagged hyphenated without a trailing hyphen keeps all characters.
	doc := makeCorpus("co| operate")

	if _, err := quietDehyphenator().Dehyphenate(doc); err != nil {
		t.Fatal(err)
	}
	if got := doc.Paragraphs[0].Text; got != "cooperate" {
		t.Errorf("Text = %q, want cooperate", got)
	}
}

func TestJoinParagraphs(t *testing.T) {
	paragraphs := []*model.Paragraph{
		model.NewParagraph([]*model.Word{makeWord("one", 1, 0)}, nil, model.RoleBodyText),
		nil,
		model.NewParagraph(nil, nil, model.RoleBodyText),
		model.NewParagraph([]*model.Word{makeWord("two", 1, 0)}, nil, model.RoleBodyText),
	}

	if got := JoinParagraphs(paragraphs); got != "one\n\ntwo" {
		t.Errorf("JoinParagraphs = %q", got)
	}
}
