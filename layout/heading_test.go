package layout

import (
	"testing"

	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/stats"
)

// annotated computes the statistics of a block and returns it.
func annotated(b *model.TextBlock) *model.TextBlock {
	doc := makeDocument([]*model.TextBlock{b})
	if err := stats.NewStatistician().Annotate(doc); err != nil {
		panic(err)
	}
	return b
}

func bodyStatistic(size float64, font model.Font) *model.CharacterStatistic {
	return annotated(makeTextBlock(1, 400, size, font, "plain body text for reference")).Statistic
}

func TestHeadingLevel_String(t *testing.T) {
	tests := []struct {
		level HeadingLevel
		str   string
		tag   string
	}{
		{HeadingLevel1, "H1", "h1"},
		{HeadingLevel3, "H3", "h3"},
		{HeadingLevel6, "H6", "h6"},
		{HeadingLevelUnknown, "unknown", "p"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.level.HTMLTag(); got != tt.tag {
			t.Errorf("HTMLTag() = %q, want %q", got, tt.tag)
		}
	}
}

func TestHeadingDetector_Detect(t *testing.T) {
	body := bodyStatistic(10, bodyFont)

	tests := []struct {
		name      string
		block     *model.TextBlock
		wantOK    bool
		wantLevel HeadingLevel
	}{
		{
			name:      "large font",
			block:     makeTextBlock(1, 700, 18, bodyFont, "Introduction"),
			wantOK:    true,
			wantLevel: HeadingLevel1,
		},
		{
			name:      "medium font",
			block:     makeTextBlock(1, 700, 13, bodyFont, "Background"),
			wantOK:    true,
			wantLevel: HeadingLevel3,
		},
		{
			name:      "bold at body size",
			block:     makeTextBlock(1, 700, 10, boldFont, "Method"),
			wantOK:    true,
			wantLevel: HeadingLevel6,
		},
		{
			name:      "numbered subsection",
			block:     makeTextBlock(1, 700, 12, boldFont, "2.1 Data sets"),
			wantOK:    true,
			wantLevel: HeadingLevel2,
		},
		{
			name:      "chapter",
			block:     makeTextBlock(1, 700, 12, bodyFont, "Chapter 4 Results"),
			wantOK:    true,
			wantLevel: HeadingLevel1,
		},
		{
			name:   "body text",
			block:  makeTextBlock(1, 700, 10, bodyFont, "Just another sentence."),
			wantOK: false,
		},
		{
			name:   "too many lines",
			block:  makeTextBlock(1, 700, 14, bodyFont, "one", "two", "three", "four"),
			wantOK: false,
		},
		{
			name: "too many words",
			block: makeTextBlock(1, 700, 14, bodyFont,
				"a b c d e f g h i j k l m n o p q r s t u v"),
			wantOK: false,
		},
	}

	detector := NewHeadingDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := detector.Detect(annotated(tt.block), body)
			if ok != tt.wantOK {
				t.Fatalf("Detect() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && level != tt.wantLevel {
				t.Errorf("Detect() level = %v, want %v", level, tt.wantLevel)
			}
		})
	}
}

func TestHeadingDetector_BoldBody(t *testing.T) {
	body := bodyStatistic(10, boldFont)
	block := annotated(makeTextBlock(1, 700, 10, boldFont, "Method"))

	if _, ok := NewHeadingDetector().Detect(block, body); ok {
		t.Error("bold block should not be a heading when the body is bold too")
	}
}

func TestHeadingDetector_MissingStatistics(t *testing.T) {
	detector := NewHeadingDetector()
	block := makeTextBlock(1, 700, 18, bodyFont, "Introduction")

	if _, ok := detector.Detect(block, nil); ok {
		t.Error("expected no heading without body statistic")
	}
	if _, ok := detector.Detect(nil, bodyStatistic(10, bodyFont)); ok {
		t.Error("expected no heading for nil block")
	}
}

func TestDetectBold(t *testing.T) {
	tests := []struct {
		font model.Font
		want bool
	}{
		{model.Font{Name: "Helvetica"}, false},
		{model.Font{Name: "Helvetica-Bold"}, true},
		{model.Font{Name: "ABCDEF+Arial-Black"}, true},
		{model.Font{Name: "CMR10", Bold: true}, true},
	}

	for _, tt := range tests {
		if got := detectBold(tt.font); got != tt.want {
			t.Errorf("detectBold(%v) = %v, want %v", tt.font, got, tt.want)
		}
	}
}
