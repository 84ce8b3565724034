package model

// TextLine is an ordered sequence of words on one baseline.
type TextLine struct {
	Words     []*Word
	Position  Position
	Statistic *CharacterStatistic
}

// NewTextLine creates a line from words; its position is the union of the
// word rectangles on the first word's page.
func NewTextLine(words ...*Word) *TextLine {
	line := &TextLine{Words: words}
	line.Position = wordsPosition(words)
	return line
}

// FirstWord returns the first word, or nil for an empty line.
func (l *TextLine) FirstWord() *Word {
	if l == nil || len(l.Words) == 0 {
		return nil
	}
	return l.Words[0]
}

// LastWord returns the last word, or nil for an empty line.
func (l *TextLine) LastWord() *Word {
	if l == nil || len(l.Words) == 0 {
		return nil
	}
	return l.Words[len(l.Words)-1]
}

// Text returns the words joined by single spaces.
func (l *TextLine) Text() string {
	if l == nil {
		return ""
	}
	return JoinWords(l.Words)
}

// IsEmpty returns true if the line holds no words.
func (l *TextLine) IsEmpty() bool {
	return l == nil || len(l.Words) == 0
}

// RemoveWord deletes w from the line and shrinks the line rectangle to the
// remaining words on the line's page. It reports whether w was found.
func (l *TextLine) RemoveWord(w *Word) bool {
	if l == nil || w == nil {
		return false
	}
	for i, x := range l.Words {
		if x != w {
			continue
		}
		l.Words = append(l.Words[:i:i], l.Words[i+1:]...)
		l.Position.Rect = wordsRect(l.Words, l.Position.Page)
		return true
	}
	return false
}

// CharacterStatistic implements HasCharacterStatistic.
func (l *TextLine) CharacterStatistic() *CharacterStatistic {
	if l == nil {
		return nil
	}
	return l.Statistic
}

func wordsPosition(words []*Word) Position {
	page := 0
	for _, w := range words {
		if w != nil && len(w.Positions) > 0 {
			page = w.Positions[0].Page
			break
		}
	}
	return NewPosition(page, wordsRect(words, page))
}

// wordsRect is the union of the word rectangles on page.
func wordsRect(words []*Word, page int) BBox {
	var rects []BBox
	for _, w := range words {
		if w == nil {
			continue
		}
		for _, p := range w.Positions {
			if p.Page == page {
				rects = append(rects, p.Rect)
			}
		}
	}
	return UnionAll(rects)
}
