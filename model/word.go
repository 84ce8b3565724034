package model

import "strings"

// Word is an ordered sequence of characters in reading order.
type Word struct {
	// Characters are the glyphs of the word.
	Characters []*Character

	// Text is the concatenated character text.
	Text string

	// Positions lists one rectangle per page the word covers. A dehyphenated
	// word carries the positions of both words it was merged from.
	Positions []Position

	// IsHyphenated is set by the upstream layout stage when the word ends a
	// physical line with a hyphen.
	IsHyphenated bool

	// IsDehyphenated is set when the word was merged with its successor.
	IsDehyphenated bool

	// Statistic is the character statistic of the word.
	Statistic *CharacterStatistic
}

// NewWord creates a word from characters, deriving text and positions.
func NewWord(chars ...*Character) *Word {
	w := &Word{}
	w.SetCharacters(chars)
	w.Positions = characterPositions(w.Characters)
	return w
}

// SetCharacters replaces the characters and recomputes the text.
// Positions are left untouched; the statistic is cleared.
func (w *Word) SetCharacters(chars []*Character) {
	w.Characters = chars
	w.Text = joinCharacters(chars)
	w.Statistic = nil
}

// FirstCharacter returns the first character, or nil for an empty word.
func (w *Word) FirstCharacter() *Character {
	if w == nil || len(w.Characters) == 0 {
		return nil
	}
	return w.Characters[0]
}

// LastCharacter returns the last character, or nil for an empty word.
func (w *Word) LastCharacter() *Character {
	if w == nil || len(w.Characters) == 0 {
		return nil
	}
	return w.Characters[len(w.Characters)-1]
}

// IsEmpty returns true if the word has no characters.
func (w *Word) IsEmpty() bool {
	return w == nil || len(w.Characters) == 0
}

// BBox returns the union of the word's rectangles.
func (w *Word) BBox() BBox {
	if w == nil {
		return BBox{}
	}
	rects := make([]BBox, len(w.Positions))
	for i, p := range w.Positions {
		rects[i] = p.Rect
	}
	return UnionAll(rects)
}

// CharacterStatistic implements HasCharacterStatistic.
func (w *Word) CharacterStatistic() *CharacterStatistic {
	if w == nil {
		return nil
	}
	return w.Statistic
}

func (w *Word) String() string {
	if w == nil {
		return ""
	}
	return w.Text
}

// JoinWords joins the text of words with single spaces, skipping nil words.
func JoinWords(words []*Word) string {
	var sb strings.Builder
	for _, w := range words {
		if w == nil {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Text)
	}
	return sb.String()
}

func joinCharacters(chars []*Character) string {
	var sb strings.Builder
	for _, c := range chars {
		if c != nil {
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}

func characterPositions(chars []*Character) []Position {
	positions := make([]Position, 0, 1)
	for _, c := range chars {
		if c != nil {
			positions = append(positions, c.Position)
		}
	}
	return unionPositions(positions)
}
