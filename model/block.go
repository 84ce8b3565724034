package model

// TextBlock is an ordered sequence of lines forming one layout block.
type TextBlock struct {
	Lines    []*TextLine
	Position Position

	// Role is the semantic role; RoleUnset until a classifier assigns one.
	Role SemanticRole

	// Level is the heading level (1-6) for blocks with RoleHeading, else 0.
	Level int

	Statistic     *CharacterStatistic
	LineStatistic *TextLineStatistic
}

// NewTextBlock creates a block from lines; its position is the union of the
// line rectangles.
func NewTextBlock(lines ...*TextLine) *TextBlock {
	block := &TextBlock{Lines: lines}
	var rects []BBox
	for _, l := range lines {
		if l == nil {
			continue
		}
		if block.Position.Page == 0 {
			block.Position.Page = l.Position.Page
		}
		rects = append(rects, l.Position.Rect)
	}
	block.Position.Rect = UnionAll(rects)
	return block
}

// RemoveWord deletes w from the line holding it. A line left without words
// is dropped and the block rectangle shrinks to the remaining lines; the
// page of the block is kept. It reports whether w was found.
func (b *TextBlock) RemoveWord(w *Word) bool {
	if b == nil {
		return false
	}
	for i, l := range b.Lines {
		if !l.RemoveWord(w) {
			continue
		}
		if l.IsEmpty() {
			b.Lines = append(b.Lines[:i:i], b.Lines[i+1:]...)
		}
		var rects []BBox
		for _, l := range b.Lines {
			if !l.IsEmpty() {
				rects = append(rects, l.Position.Rect)
			}
		}
		b.Position.Rect = UnionAll(rects)
		return true
	}
	return false
}

// AssignRole sets the role unless one was already assigned.
// It returns true if the role was applied.
func (b *TextBlock) AssignRole(role SemanticRole) bool {
	if b == nil || b.Role.IsSet() {
		return false
	}
	b.Role = role
	return true
}

// FirstLine returns the first line, or nil for an empty block.
func (b *TextBlock) FirstLine() *TextLine {
	if b == nil || len(b.Lines) == 0 {
		return nil
	}
	return b.Lines[0]
}

// LastLine returns the last line, or nil for an empty block.
func (b *TextBlock) LastLine() *TextLine {
	if b == nil || len(b.Lines) == 0 {
		return nil
	}
	return b.Lines[len(b.Lines)-1]
}

// Words returns the words of all lines in reading order.
func (b *TextBlock) Words() []*Word {
	if b == nil {
		return nil
	}
	var words []*Word
	for _, l := range b.Lines {
		if l == nil {
			continue
		}
		for _, w := range l.Words {
			if w != nil {
				words = append(words, w)
			}
		}
	}
	return words
}

// Text returns the text of all lines joined by single spaces.
func (b *TextBlock) Text() string {
	return JoinWords(b.Words())
}

// IsEmpty returns true if the block holds no words.
func (b *TextBlock) IsEmpty() bool {
	if b == nil {
		return true
	}
	for _, l := range b.Lines {
		if !l.IsEmpty() {
			return false
		}
	}
	return true
}

// CharacterStatistic implements HasCharacterStatistic.
func (b *TextBlock) CharacterStatistic() *CharacterStatistic {
	if b == nil {
		return nil
	}
	return b.Statistic
}

// TextLineStatistic implements HasTextLineStatistic.
func (b *TextBlock) TextLineStatistic() *TextLineStatistic {
	if b == nil {
		return nil
	}
	return b.LineStatistic
}
