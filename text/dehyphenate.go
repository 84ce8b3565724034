package text

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pdfact/internal/counter"
	"github.com/tsawler/pdfact/lexicon"
	"github.com/tsawler/pdfact/model"
	"github.com/tsawler/pdfact/stats"
)

// DehyphenationConfig holds configuration for dehyphenation.
type DehyphenationConfig struct {
	// Normalizer configures how words are keyed in the frequency indices.
	Normalizer NormalizerConfig

	// Statistics configures the statistics recomputed after merges.
	Statistics stats.Config

	// Logger receives the run counters at debug level; nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultDehyphenationConfig returns sensible default configuration.
func DefaultDehyphenationConfig() DehyphenationConfig {
	return DehyphenationConfig{
		Normalizer: DefaultNormalizerConfig(),
		Statistics: stats.DefaultConfig(),
	}
}

// DehyphenationStats reports what a dehyphenation run did.
type DehyphenationStats struct {
	// Words is the number of words counted in the first pass.
	Words int

	// UniqueNormalWords, UniqueCompoundWords and UniquePrefixes are the sizes
	// of the frequency indices.
	UniqueNormalWords   int
	UniqueCompoundWords int
	UniquePrefixes      int

	// ProcessedWords is the number of words visited in the second pass.
	ProcessedWords int

	// DehyphenatedWords is the number of merges; ToNormalWords of them
	// dropped the hyphen, ToCompoundWords kept it.
	DehyphenatedWords int
	ToNormalWords     int
	ToCompoundWords   int
}

// Dehyphenator merges words that were split by a line-break hyphen.
//
// A first pass counts every word of every paragraph: plain words, compound
// words with inner hyphens, and the prefixes before each inner hyphen. The
// second pass merges each hyphenated word with its successor and keeps the
// hyphen if the compound form is more frequent in the document than the
// joined form. On a tie the hyphen is kept if the prefix occurs as the
// prefix of a compound word elsewhere.
//
// Each run builds fresh indices, so a Dehyphenator may process several
// documents concurrently.
type Dehyphenator struct {
	config       DehyphenationConfig
	logger       *slog.Logger
	statistician *stats.Statistician
}

// NewDehyphenator creates a dehyphenator with default configuration.
func NewDehyphenator() *Dehyphenator {
	return NewDehyphenatorWithConfig(DefaultDehyphenationConfig())
}

// NewDehyphenatorWithConfig creates a dehyphenator with custom configuration.
func NewDehyphenatorWithConfig(config DehyphenationConfig) *Dehyphenator {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Dehyphenator{
		config:       config,
		logger:       logger,
		statistician: stats.NewStatisticianWithConfig(config.Statistics),
	}
}

// wordIndex holds the frequency indices of one run and locates every page
// word in its block.
type wordIndex struct {
	normalizer *WordNormalizer
	normal     *counter.Counter[string]
	compound   *counter.Counter[string]
	prefixes   *counter.Counter[string]

	blocks map[*model.Word]*model.TextBlock
	pages  map[*model.TextBlock]*model.Page

	// touched collects the blocks whose words changed.
	touched map[*model.TextBlock]bool
}

// Dehyphenate rewrites the word lists of the paragraphs of doc. The first
// word of each merged pair is also removed from the line that holds it, and
// the statistics of the changed lines, blocks, pages and the document are
// recomputed. A nil document is a no-op. Documents without hyphenated words
// are left as they are, so running it twice is the same as running it once.
func (d *Dehyphenator) Dehyphenate(doc *model.Document) (DehyphenationStats, error) {
	var result DehyphenationStats
	if doc == nil {
		return result, nil
	}

	idx := &wordIndex{
		normalizer: NewWordNormalizerWithConfig(d.config.Normalizer),
		normal:     counter.New[string](),
		compound:   counter.New[string](),
		prefixes:   counter.New[string](),
		blocks:     make(map[*model.Word]*model.TextBlock),
		pages:      make(map[*model.TextBlock]*model.Page),
		touched:    make(map[*model.TextBlock]bool),
	}

	idx.locate(doc)
	d.countWords(doc, idx, &result)
	d.logger.Debug("counted words",
		"words", result.Words,
		"normal_words", result.UniqueNormalWords,
		"compound_words", result.UniqueCompoundWords,
		"prefixes", result.UniquePrefixes)

	for _, p := range doc.Paragraphs {
		if p == nil {
			continue
		}
		changed, err := d.dehyphenateParagraph(p, idx, &result)
		if err != nil {
			return result, err
		}
		if !changed {
			continue
		}
		if err := d.statistician.RefreshParagraph(p); err != nil {
			return result, err
		}
	}

	if err := d.refreshLayout(doc, idx); err != nil {
		return result, err
	}

	d.logger.Debug("dehyphenated words",
		"processed", result.ProcessedWords,
		"dehyphenated", result.DehyphenatedWords,
		"to_normal", result.ToNormalWords,
		"to_compound", result.ToCompoundWords)
	return result, nil
}

// locate records the block and page of every word on the pages of doc.
func (idx *wordIndex) locate(doc *model.Document) {
	for _, page := range doc.Pages {
		if page == nil {
			continue
		}
		for _, b := range page.Blocks {
			if b == nil {
				continue
			}
			idx.pages[b] = page
			for _, w := range b.Words() {
				idx.blocks[w] = b
			}
		}
	}
}

// refreshLayout recomputes the statistics of the blocks changed by merges
// and of everything above them.
func (d *Dehyphenator) refreshLayout(doc *model.Document, idx *wordIndex) error {
	if len(idx.touched) == 0 {
		return nil
	}

	pages := make(map[*model.Page]bool)
	for b := range idx.touched {
		if err := d.statistician.RefreshBlock(b); err != nil {
			return err
		}
		pages[idx.pages[b]] = true
	}
	for _, page := range doc.Pages {
		if pages[page] {
			d.statistician.RefreshPage(page)
		}
	}
	d.statistician.RefreshDocument(doc)
	return nil
}

// countWords fills the frequency indices from every paragraph word.
func (d *Dehyphenator) countWords(doc *model.Document, idx *wordIndex, result *DehyphenationStats) {
	for _, p := range doc.Paragraphs {
		if p == nil {
			continue
		}
		for _, w := range p.Words {
			if w == nil {
				continue
			}
			result.Words++

			text := idx.normalizer.Normalize(w)
			if text == "" {
				continue
			}

			hyphens := hyphenOffsets(text)
			if len(hyphens) == 0 {
				idx.normal.Add(text)
				continue
			}

			// only inner hyphens make a compound word.
			if hyphens[0] == 0 || hyphens[len(hyphens)-1] == lastRuneOffset(text) {
				continue
			}

			idx.compound.Add(text)
			for _, offset := range hyphens {
				idx.prefixes.Add(text[:offset])
			}
		}
	}

	result.UniqueNormalWords = idx.normal.Len()
	result.UniqueCompoundWords = idx.compound.Len()
	result.UniquePrefixes = idx.prefixes.Len()
}

// dehyphenateParagraph merges the hyphenated words of p with their
// successors. It reports whether any word was merged.
func (d *Dehyphenator) dehyphenateParagraph(p *model.Paragraph, idx *wordIndex, result *DehyphenationStats) (bool, error) {
	words := make([]*model.Word, 0, len(p.Words))
	merged := false

	for i := 0; i < len(p.Words); i++ {
		word := p.Words[i]
		result.ProcessedWords++
		if word == nil {
			continue
		}
		if !word.IsHyphenated || i+1 >= len(p.Words) {
			words = append(words, word)
			continue
		}

		i++
		result.ProcessedWords++
		next := p.Words[i]
		if next == nil {
			words = append(words, word)
			continue
		}

		if err := d.merge(word, next, idx, result); err != nil {
			return false, err
		}
		words = append(words, next)
		merged = true
	}

	if merged || len(words) != len(p.Words) {
		p.SetWords(words)
	}
	return merged, nil
}

// merge joins word1 into word2. word2 takes the merged characters and the
// positions of both words.
func (d *Dehyphenator) merge(word1, word2 *model.Word, idx *wordIndex, result *DehyphenationStats) error {
	mandatory := d.isHyphenMandatory(word1, word2, idx)

	chars := make([]*model.Character, 0, len(word1.Characters)+len(word2.Characters))
	chars = append(chars, word1.Characters...)
	if mandatory {
		result.ToCompoundWords++
	} else {
		if lexicon.IsHyphen(lexicon.Of(word1.LastCharacter())) {
			chars = chars[:len(chars)-1]
		}
		result.ToNormalWords++
	}
	chars = append(chars, word2.Characters...)
	result.DehyphenatedWords++

	word2.Positions = model.AppendUniquePositions(word1.Positions, word2.Positions...)
	word2.SetCharacters(chars)
	word2.IsHyphenated = false
	word2.IsDehyphenated = true

	if err := d.statistician.RefreshWord(word2); err != nil {
		return fmt.Errorf("merge %q and %q: %w", word1.Text, word2.Text, err)
	}

	if b, ok := idx.blocks[word1]; ok && b.RemoveWord(word1) {
		delete(idx.blocks, word1)
		idx.touched[b] = true
	}
	if b, ok := idx.blocks[word2]; ok {
		idx.touched[b] = true
	}
	return nil
}

// isHyphenMandatory decides whether the hyphen at the end of word1 belongs
// to the spelling of the merged word.
func (d *Dehyphenator) isHyphenMandatory(word1, word2 *model.Word, idx *wordIndex) bool {
	text1 := idx.normalizer.Normalize(word1)
	text2 := idx.normalizer.Normalize(word2)

	prefix := trimTrailingHyphen(text1)
	withHyphen := text1 + text2
	withoutHyphen := prefix + text2

	compoundFreq := idx.compound.Frequency(withHyphen)
	normalFreq := idx.normal.Frequency(withoutHyphen)
	if compoundFreq != normalFreq {
		return compoundFreq > normalFreq
	}
	return idx.prefixes.Frequency(prefix) > 0
}

// hyphenOffsets returns the byte offsets of the hyphens in s.
func hyphenOffsets(s string) []int {
	var offsets []int
	for i, r := range s {
		if lexicon.IsHyphen(r) {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

func lastRuneOffset(s string) int {
	_, size := utf8.DecodeLastRuneInString(s)
	return len(s) - size
}

func trimTrailingHyphen(s string) string {
	r, size := utf8.DecodeLastRuneInString(s)
	if size > 0 && lexicon.IsHyphen(r) {
		return s[:len(s)-size]
	}
	return s
}

// JoinParagraphs returns the text of paragraphs separated by blank lines.
func JoinParagraphs(paragraphs []*model.Paragraph) string {
	var sb strings.Builder
	for _, p := range paragraphs {
		if p == nil || p.Text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
