// Package stats computes character and line statistics for the document
// model.
//
// Statistics are built bottom-up: a word's statistic is computed from its
// characters, every coarser element's statistic is aggregated from the
// statistics of its children without revisiting characters. Aggregation is
// associative, so
//
//	s.Aggregate(stats.Collect([]*model.Word{a, b}))
//
// equals the statistic computed over the characters of a followed by b.
package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsawler/pdfact/model"
)

// ErrMalformedGeometry is returned when a character carries a non-finite
// coordinate or a negative font size.
var ErrMalformedGeometry = errors.New("malformed character geometry")

// Config holds configuration for statistics computation.
type Config struct {
	// FontSizePrecision is the number of decimals font sizes are bucketed to.
	FontSizePrecision int

	// LinePrecision is the number of decimals line pitches and heights are
	// bucketed to.
	LinePrecision int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		FontSizePrecision: 1,
		LinePrecision:     1,
	}
}

// Statistician computes and aggregates statistics.
type Statistician struct {
	config Config
}

// NewStatistician creates a statistician with default configuration.
func NewStatistician() *Statistician {
	return &Statistician{config: DefaultConfig()}
}

// NewStatisticianWithConfig creates a statistician with custom configuration.
func NewStatisticianWithConfig(config Config) *Statistician {
	return &Statistician{config: config}
}

// Config returns the statistician's configuration.
func (s *Statistician) Config() Config {
	return s.config
}

// Compute builds a character statistic in a single pass over chars.
// Nil characters are skipped.
func (s *Statistician) Compute(chars []*model.Character) *model.CharacterStatistic {
	stat := model.NewCharacterStatistic()
	for _, c := range chars {
		if c == nil {
			continue
		}
		size := round(c.FontSize, s.config.FontSizePrecision)
		if stat.NumCharacters == 0 {
			stat.MinFontSize, stat.MaxFontSize = size, size
		} else {
			stat.MinFontSize = math.Min(stat.MinFontSize, size)
			stat.MaxFontSize = math.Max(stat.MaxFontSize, size)
		}
		stat.NumCharacters++
		stat.Fonts.Add(c.Font)
		stat.FontSizes.Add(size)
		stat.Colors.Add(c.Color)
		stat.WidthSum += c.Position.Rect.Width
		stat.HeightSum += c.Position.Rect.Height
	}
	return stat
}

// Aggregate combines child statistics into a parent statistic. Counts are
// summed in child order; children without a statistic are skipped.
func (s *Statistician) Aggregate(children []model.HasCharacterStatistic) *model.CharacterStatistic {
	stat := model.NewCharacterStatistic()
	for _, child := range children {
		if child == nil {
			continue
		}
		mergeCharacterStatistic(stat, child.CharacterStatistic())
	}
	return stat
}

func mergeCharacterStatistic(dst, src *model.CharacterStatistic) {
	if src == nil || src.NumCharacters == 0 {
		return
	}
	if dst.NumCharacters == 0 {
		dst.MinFontSize, dst.MaxFontSize = src.MinFontSize, src.MaxFontSize
	} else {
		dst.MinFontSize = math.Min(dst.MinFontSize, src.MinFontSize)
		dst.MaxFontSize = math.Max(dst.MaxFontSize, src.MaxFontSize)
	}
	dst.NumCharacters += src.NumCharacters
	dst.Fonts.Merge(src.Fonts)
	dst.FontSizes.Merge(src.FontSizes)
	dst.Colors.Merge(src.Colors)
	dst.WidthSum += src.WidthSum
	dst.HeightSum += src.HeightSum
}

// ComputeLines builds a line statistic from consecutive lines. Line pitch
// is the distance between the bottoms of consecutive non-empty lines on the
// same page.
func (s *Statistician) ComputeLines(lines []*model.TextLine) *model.TextLineStatistic {
	stat := model.NewTextLineStatistic()
	var prev *model.TextLine
	for _, l := range lines {
		if l.IsEmpty() {
			continue
		}
		stat.NumLines++
		stat.LineHeights.Add(round(l.Position.Rect.Height, s.config.LinePrecision))
		if prev != nil && prev.Position.Page == l.Position.Page {
			pitch := math.Abs(prev.Position.Rect.Bottom() - l.Position.Rect.Bottom())
			stat.LinePitches.Add(round(pitch, s.config.LinePrecision))
		}
		prev = l
	}
	return stat
}

// AggregateLines combines child line statistics into a parent statistic.
func (s *Statistician) AggregateLines(children []model.HasTextLineStatistic) *model.TextLineStatistic {
	stat := model.NewTextLineStatistic()
	for _, child := range children {
		if child == nil {
			continue
		}
		src := child.TextLineStatistic()
		if src == nil {
			continue
		}
		stat.NumLines += src.NumLines
		stat.LinePitches.Merge(src.LinePitches)
		stat.LineHeights.Merge(src.LineHeights)
	}
	return stat
}

// Collect converts a slice of elements into the interface slice Aggregate
// accepts.
func Collect[T model.HasCharacterStatistic](items []T) []model.HasCharacterStatistic {
	result := make([]model.HasCharacterStatistic, len(items))
	for i, item := range items {
		result[i] = item
	}
	return result
}

// CollectLines converts a slice of elements into the interface slice
// AggregateLines accepts.
func CollectLines[T model.HasTextLineStatistic](items []T) []model.HasTextLineStatistic {
	result := make([]model.HasTextLineStatistic, len(items))
	for i, item := range items {
		result[i] = item
	}
	return result
}

// Validate checks that a character can take part in statistics.
func Validate(c *model.Character) error {
	if c == nil {
		return nil
	}
	if !c.Position.Rect.IsFinite() {
		return fmt.Errorf("%w: character %q on page %d has non-finite bounds",
			ErrMalformedGeometry, c.Text, c.Position.Page)
	}
	if math.IsNaN(c.FontSize) || math.IsInf(c.FontSize, 0) || c.FontSize < 0 {
		return fmt.Errorf("%w: character %q on page %d has font size %v",
			ErrMalformedGeometry, c.Text, c.Position.Page, c.FontSize)
	}
	return nil
}

// round rounds v to the given number of decimals.
func round(v float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
