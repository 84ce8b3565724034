// Package text repairs and inspects the text of assembled paragraphs.
//
// # Dehyphenation
//
// Typesetting splits words at line ends with a hyphen. The [Dehyphenator]
// merges such a word with its successor and decides from word frequencies
// across the whole document whether the hyphen belongs to the word
// ("well-known") or only to the line break ("inter-national"):
//
//	d := text.NewDehyphenator()
//	stats, err := d.Dehyphenate(doc)
//
// Only words flagged [model.Word.IsHyphenated] by the upstream layout stage
// are merged. A hyphenated word that ends its paragraph is left alone.
//
// # Word Normalization
//
// The [WordNormalizer] produces the frequency-index keys: NFC composed, lower
// case, leading and trailing runes other than letters and hyphens removed.
//
// # Text Direction
//
// [DetectDirection] returns the dominant writing direction of a string from
// the Unicode bidi classes of its characters:
//
//   - LTR - left-to-right (Latin, CJK, etc.)
//   - RTL - right-to-left (Arabic, Hebrew, etc.)
//   - Neutral - no strong directional characters (numbers, punctuation)
package text
