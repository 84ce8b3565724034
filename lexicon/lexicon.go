// Package lexicon answers alignment and category questions about single
// characters.
//
// All predicates are pure and backed by compiled-in tables. Input that does
// not denote a character (nil characters, empty text) maps to [Null], for
// which every predicate returns false:
//
//	r := lexicon.Of(word.LastCharacter())
//	if lexicon.IsPunctuationMark(r) {
//	    // sentence probably ends here
//	}
package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/pdfact/model"
)

// Of returns the first rune of the character's text, or Null.
func Of(c *model.Character) rune {
	if c == nil {
		return Null
	}
	return FromText(c.Text)
}

// FromText returns the first rune of s, or Null if s is empty or invalid.
func FromText(s string) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return Null
	}
	return r
}

func in(table string, r rune) bool {
	return r != Null && strings.ContainsRune(table, r)
}

// IsLetter reports whether r is a letter.
func IsLetter(r rune) bool {
	return r != Null && unicode.IsLetter(r)
}

// IsDigit reports whether r is a decimal digit.
func IsDigit(r rune) bool {
	return r != Null && unicode.IsDigit(r)
}

// IsLatinLetter reports whether r is one of A-Z or a-z.
func IsLatinLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// IsLetterOrDigit reports whether r is a letter or a digit.
func IsLetterOrDigit(r rune) bool {
	return IsLetter(r) || IsDigit(r)
}

// IsLatinLetterOrDigit reports whether r is a Latin letter or a digit.
func IsLatinLetterOrDigit(r rune) bool {
	return IsLatinLetter(r) || IsDigit(r)
}

// IsPunctuationMark reports whether r is a baseline or mean-line
// punctuation mark.
func IsPunctuationMark(r rune) bool {
	return IsBaselinePunctuationMark(r) || IsMeanlinePunctuationMark(r)
}

// IsBaselinePunctuationMark reports whether r is a punctuation mark that
// sits on the baseline, like '.' or ','.
func IsBaselinePunctuationMark(r rune) bool {
	return in(baselinePunctuationMarks, r)
}

// IsMeanlinePunctuationMark reports whether r is a punctuation mark that
// hangs from the mean line, like quotes and apostrophes.
func IsMeanlinePunctuationMark(r rune) bool {
	return in(meanlinePunctuationMarks, r)
}

// IsAscender reports whether r extends above the mean line.
// Upper-case letters and digits always do.
func IsAscender(r rune) bool {
	if r == Null {
		return false
	}
	return unicode.IsUpper(r) || unicode.IsDigit(r) || in(ascenders, r)
}

// IsDescender reports whether r extends below the baseline.
func IsDescender(r rune) bool {
	return in(descenders, r)
}

// IsAscenderOrDescender reports whether r is an ascender or a descender.
func IsAscenderOrDescender(r rune) bool {
	return IsAscender(r) || IsDescender(r)
}

// IsBaselineCharacter reports whether r sits on the baseline.
func IsBaselineCharacter(r rune) bool {
	return in(baselineCharacters, r)
}

// IsMeanlineCharacter reports whether the top of r reaches the mean line.
func IsMeanlineCharacter(r rune) bool {
	return in(meanlineCharacters, r)
}

// IsUppercase reports whether r is an upper-case letter.
func IsUppercase(r rune) bool {
	return r != Null && unicode.IsUpper(r)
}

// IsLowercase reports whether r is a lower-case letter.
func IsLowercase(r rune) bool {
	return r != Null && unicode.IsLower(r)
}

// IsHyphen reports whether r is a hyphen-minus or an en dash.
func IsHyphen(r rune) bool {
	return in(hyphens, r)
}

// IsMathSymbol reports whether text is a math symbol or a math operator.
// text may span several characters, e.g. "sin" or "lim sup".
func IsMathSymbol(text string) bool {
	if text == "" {
		return false
	}
	if _, ok := mathSymbols[text]; ok {
		return true
	}
	_, ok := mathOperators[text]
	return ok
}

// IsMathCharacter reports whether the character's text is a math symbol.
func IsMathCharacter(c *model.Character) bool {
	if c == nil {
		return false
	}
	return IsMathSymbol(c.Text)
}
