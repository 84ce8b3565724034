package layout

import (
	"github.com/tsawler/pdfact/lexicon"
	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/stats"
)

// ParagraphConfig holds configuration for paragraph segmentation.
type ParagraphConfig struct {
	// TransparentRoles are roles the forward scan steps over without ending
	// the open paragraph. Setting {RolePageHeader, RolePageFooter} lets a
	// paragraph continue across a page break.
	// Default: none
	TransparentRoles []model.SemanticRole
}

// DefaultParagraphConfig returns sensible default configuration.
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{}
}

// ParagraphSegmenter groups role-classified blocks into paragraphs.
//
// Blocks are visited in page order. A body-text block opens a paragraph and
// absorbs the body-text blocks that follow it as long as each one continues
// the text of the previous one; a heading, any other role or a failed
// continuation ends the paragraph. Blocks of any other role form a
// paragraph of their own. Every non-empty block ends up in exactly one
// paragraph; empty blocks are skipped.
type ParagraphSegmenter struct {
	config       ParagraphConfig
	transparent  map[model.SemanticRole]bool
	statistician *stats.Statistician
}

// NewParagraphSegmenter creates a segmenter with default configuration.
func NewParagraphSegmenter() *ParagraphSegmenter {
	return NewParagraphSegmenterWithConfig(DefaultParagraphConfig())
}

// NewParagraphSegmenterWithConfig creates a segmenter with custom configuration.
func NewParagraphSegmenterWithConfig(config ParagraphConfig) *ParagraphSegmenter {
	transparent := make(map[model.SemanticRole]bool, len(config.TransparentRoles))
	for _, r := range config.TransparentRoles {
		transparent[r] = true
	}
	return &ParagraphSegmenter{
		config:       config,
		transparent:  transparent,
		statistician: stats.NewStatistician(),
	}
}

// Segment builds the paragraphs of doc in order of their first block.
// The document is not modified.
func (s *ParagraphSegmenter) Segment(doc *model.Document) ([]*model.Paragraph, error) {
	blocks := doc.Blocks()
	consumed := make([]bool, len(blocks))

	var paragraphs []*model.Paragraph
	for i, block := range blocks {
		if consumed[i] || block.IsEmpty() {
			continue
		}
		consumed[i] = true
		members := []*model.TextBlock{block}

		if block.Role == model.RoleBodyText {
			last := block
			for j := i + 1; j < len(blocks); j++ {
				next := blocks[j]
				if consumed[j] || next.IsEmpty() || s.transparent[next.Role] {
					continue
				}
				if next.Role != model.RoleBodyText || !Continues(last, next) {
					break
				}
				consumed[j] = true
				members = append(members, next)
				last = next
			}
		}

		p, err := s.buildParagraph(members)
		if err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs, nil
}

// Apply segments doc and stores the paragraphs on it, replacing any from an
// earlier run.
func (s *ParagraphSegmenter) Apply(doc *model.Document) error {
	if doc == nil {
		return nil
	}
	paragraphs, err := s.Segment(doc)
	if err != nil {
		return err
	}
	doc.Paragraphs = paragraphs
	return nil
}

func (s *ParagraphSegmenter) buildParagraph(blocks []*model.TextBlock) (*model.Paragraph, error) {
	var words []*model.Word
	var positions []model.Position
	for _, b := range blocks {
		words = append(words, b.Words()...)
		positions = model.AppendUniquePositions(positions, b.Position)
	}

	p := model.NewParagraph(words, positions, blocks[0].Role)
	p.Level = blocks[0].Level
	if err := s.statistician.RefreshParagraph(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Continues reports whether next continues the text of prev.
// A block not ending in a punctuation mark is unfinished and continued by
// anything; otherwise next must start with a lower-case letter.
func Continues(prev, next *model.TextBlock) bool {
	lastChar := lexicon.Of(lastCharacter(prev))
	if !lexicon.IsPunctuationMark(lastChar) {
		return true
	}
	return lexicon.IsLowercase(lexicon.Of(firstCharacter(next)))
}

func lastCharacter(b *model.TextBlock) *model.Character {
	words := b.Words()
	for i := len(words) - 1; i >= 0; i-- {
		if c := words[i].LastCharacter(); c != nil {
			return c
		}
	}
	return nil
}

func firstCharacter(b *model.TextBlock) *model.Character {
	for _, w := range b.Words() {
		if c := w.FirstCharacter(); c != nil {
			return c
		}
	}
	return nil
}
