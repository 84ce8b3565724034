package model

// Paragraph is a logical paragraph assembled from one or more text blocks.
// Paragraphs are rebuilt from the pages on every segmentation run.
type Paragraph struct {
	// Words are the words of all contributing blocks, flattened.
	Words []*Word

	// Text is the words joined by single spaces.
	Text string

	// Positions are the positions of the contributing blocks.
	Positions []Position

	// Role is copied from the first contributing block.
	Role SemanticRole

	// Level is the heading level copied from the first contributing block.
	Level int

	Statistic *CharacterStatistic
}

// NewParagraph creates a paragraph from words and computes its text.
func NewParagraph(words []*Word, positions []Position, role SemanticRole) *Paragraph {
	p := &Paragraph{
		Positions: positions,
		Role:      role,
	}
	p.SetWords(words)
	return p
}

// SetWords replaces the words and recomputes the text.
func (p *Paragraph) SetWords(words []*Word) {
	p.Words = words
	p.Text = JoinWords(words)
}

// Pages returns the distinct page numbers the paragraph spans.
func (p *Paragraph) Pages() []int {
	if p == nil {
		return nil
	}
	var pages []int
	seen := make(map[int]bool)
	for _, pos := range p.Positions {
		if !seen[pos.Page] {
			seen[pos.Page] = true
			pages = append(pages, pos.Page)
		}
	}
	return pages
}

// CharacterStatistic implements HasCharacterStatistic.
func (p *Paragraph) CharacterStatistic() *CharacterStatistic {
	if p == nil {
		return nil
	}
	return p.Statistic
}
