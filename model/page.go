package model

// Page holds the text blocks of a single page.
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Blocks []*TextBlock

	Statistic     *CharacterStatistic
	LineStatistic *TextLineStatistic
}

// NewPage creates a new page with given dimensions.
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Blocks: make([]*TextBlock, 0),
	}
}

// AddBlock appends a block to the page.
func (p *Page) AddBlock(block *TextBlock) {
	p.Blocks = append(p.Blocks, block)
}

// NonEmptyBlocks returns the blocks that hold at least one word.
func (p *Page) NonEmptyBlocks() []*TextBlock {
	if p == nil {
		return nil
	}
	var blocks []*TextBlock
	for _, b := range p.Blocks {
		if !b.IsEmpty() {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// BlocksWithRole returns the blocks carrying the given role.
func (p *Page) BlocksWithRole(role SemanticRole) []*TextBlock {
	if p == nil {
		return nil
	}
	var blocks []*TextBlock
	for _, b := range p.Blocks {
		if b != nil && b.Role == role {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// CharacterStatistic implements HasCharacterStatistic.
func (p *Page) CharacterStatistic() *CharacterStatistic {
	if p == nil {
		return nil
	}
	return p.Statistic
}

// TextLineStatistic implements HasTextLineStatistic.
func (p *Page) TextLineStatistic() *TextLineStatistic {
	if p == nil {
		return nil
	}
	return p.LineStatistic
}
