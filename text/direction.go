package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, white space
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// Attr returns the value of an HTML dir attribute for d, or "" for Neutral.
func (d Direction) Attr() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	default:
		return ""
	}
}

// CharDirection returns the strong direction of r from its Unicode bidi
// class. Weak and neutral classes (digits, separators, marks) are Neutral.
func CharDirection(r rune) Direction {
	props, size := bidi.LookupRune(r)
	if size == 0 {
		return Neutral
	}
	switch props.Class() {
	case bidi.L:
		return LTR
	case bidi.R, bidi.AL:
		return RTL
	default:
		return Neutral
	}
}

// DetectDirection returns the dominant direction of text by counting its
// strong directional characters. Ties go to LTR; text without strong
// characters is Neutral.
func DetectDirection(text string) Direction {
	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		switch CharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}
