package model

import "github.com/tsawler/pdfact/internal/counter"

// CharacterStatistic aggregates the characters of an element.
//
// A statistic is built once by the stats package and then treated as
// immutable; elements replace their statistic rather than modify it.
type CharacterStatistic struct {
	// NumCharacters is the number of characters counted.
	NumCharacters int

	// Fonts, FontSizes and Colors hold the frequency of each value.
	// Font sizes are bucketed to a fixed decimal precision.
	Fonts     *counter.Counter[Font]
	FontSizes *counter.Counter[float64]
	Colors    *counter.Counter[Color]

	// WidthSum and HeightSum are the summed character dimensions.
	WidthSum  float64
	HeightSum float64

	// MinFontSize and MaxFontSize are the smallest and largest bucketed sizes.
	MinFontSize float64
	MaxFontSize float64
}

// NewCharacterStatistic creates an empty statistic.
func NewCharacterStatistic() *CharacterStatistic {
	return &CharacterStatistic{
		Fonts:     counter.New[Font](),
		FontSizes: counter.New[float64](),
		Colors:    counter.New[Color](),
	}
}

// MostCommonFont returns the dominant font.
func (s *CharacterStatistic) MostCommonFont() Font {
	if s == nil {
		return Font{}
	}
	font, _, _ := s.Fonts.MostCommon()
	return font
}

// MostCommonFontSize returns the dominant (bucketed) font size.
func (s *CharacterStatistic) MostCommonFontSize() float64 {
	if s == nil {
		return 0
	}
	size, _, _ := s.FontSizes.MostCommon()
	return size
}

// MostCommonColor returns the dominant color.
func (s *CharacterStatistic) MostCommonColor() Color {
	if s == nil {
		return Black
	}
	color, _, _ := s.Colors.MostCommon()
	return color
}

// AverageWidth returns the mean character width.
func (s *CharacterStatistic) AverageWidth() float64 {
	if s == nil || s.NumCharacters == 0 {
		return 0
	}
	return s.WidthSum / float64(s.NumCharacters)
}

// AverageHeight returns the mean character height.
func (s *CharacterStatistic) AverageHeight() float64 {
	if s == nil || s.NumCharacters == 0 {
		return 0
	}
	return s.HeightSum / float64(s.NumCharacters)
}

// HasCharacterStatistic is implemented by every element that carries a
// character statistic.
type HasCharacterStatistic interface {
	CharacterStatistic() *CharacterStatistic
}

// TextLineStatistic aggregates the vertical rhythm of a group of lines.
type TextLineStatistic struct {
	// NumLines is the number of lines counted.
	NumLines int

	// LinePitches counts bucketed distances between consecutive line baselines.
	LinePitches *counter.Counter[float64]

	// LineHeights counts bucketed line heights.
	LineHeights *counter.Counter[float64]
}

// NewTextLineStatistic creates an empty line statistic.
func NewTextLineStatistic() *TextLineStatistic {
	return &TextLineStatistic{
		LinePitches: counter.New[float64](),
		LineHeights: counter.New[float64](),
	}
}

// MostCommonLinePitch returns the dominant baseline distance, 0 if unknown.
func (s *TextLineStatistic) MostCommonLinePitch() float64 {
	if s == nil {
		return 0
	}
	pitch, _, _ := s.LinePitches.MostCommon()
	return pitch
}

// MostCommonLineHeight returns the dominant line height.
func (s *TextLineStatistic) MostCommonLineHeight() float64 {
	if s == nil {
		return 0
	}
	height, _, _ := s.LineHeights.MostCommon()
	return height
}

// HasTextLineStatistic is implemented by elements that carry a line statistic.
type HasTextLineStatistic interface {
	TextLineStatistic() *TextLineStatistic
}
