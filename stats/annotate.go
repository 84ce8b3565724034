package stats

import (
	"fmt"

	"github.com/tsawler/pdfact/model"
)

// Annotate computes the statistics of every element of doc, bottom-up.
// A nil document is a no-op. The first malformed character aborts with an
// error wrapping ErrMalformedGeometry.
func (s *Statistician) Annotate(doc *model.Document) error {
	if doc == nil {
		return nil
	}

	for _, page := range doc.Pages {
		if page == nil {
			continue
		}
		if err := s.annotatePage(page); err != nil {
			return fmt.Errorf("page %d: %w", page.Number, err)
		}
	}
	s.RefreshDocument(doc)

	for _, p := range doc.Paragraphs {
		if err := s.RefreshParagraph(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statistician) annotatePage(page *model.Page) error {
	for _, block := range page.Blocks {
		if block == nil {
			continue
		}
		for _, word := range block.Words() {
			if err := s.RefreshWord(word); err != nil {
				return err
			}
		}
		if err := s.RefreshBlock(block); err != nil {
			return err
		}
	}
	s.RefreshPage(page)
	return nil
}

// RefreshBlock re-aggregates the line and block statistics of b. Words
// without a statistic are computed first.
func (s *Statistician) RefreshBlock(b *model.TextBlock) error {
	if b == nil {
		return nil
	}
	for _, line := range b.Lines {
		if line == nil {
			continue
		}
		for _, w := range line.Words {
			if w != nil && w.Statistic == nil {
				if err := s.RefreshWord(w); err != nil {
					return err
				}
			}
		}
		line.Statistic = s.Aggregate(Collect(line.Words))
	}
	b.Statistic = s.Aggregate(Collect(b.Lines))
	b.LineStatistic = s.ComputeLines(b.Lines)
	return nil
}

// RefreshPage re-aggregates the page statistics from its blocks.
func (s *Statistician) RefreshPage(page *model.Page) {
	if page == nil {
		return
	}
	page.Statistic = s.Aggregate(Collect(page.Blocks))
	page.LineStatistic = s.AggregateLines(CollectLines(page.Blocks))
}

// RefreshDocument re-aggregates the document statistics from its pages.
func (s *Statistician) RefreshDocument(doc *model.Document) {
	if doc == nil {
		return
	}
	doc.Statistic = s.Aggregate(Collect(doc.Pages))
	doc.LineStatistic = s.AggregateLines(CollectLines(doc.Pages))
}

// RefreshWord replaces the statistic of w with one computed from its
// characters.
func (s *Statistician) RefreshWord(w *model.Word) error {
	if w == nil {
		return nil
	}
	for _, c := range w.Characters {
		if err := Validate(c); err != nil {
			return err
		}
	}
	w.Statistic = s.Compute(w.Characters)
	return nil
}

// RefreshParagraph replaces the statistic of p with one aggregated from its
// words. Words without a statistic are computed first.
func (s *Statistician) RefreshParagraph(p *model.Paragraph) error {
	if p == nil {
		return nil
	}
	for _, w := range p.Words {
		if w != nil && w.Statistic == nil {
			if err := s.RefreshWord(w); err != nil {
				return err
			}
		}
	}
	p.Statistic = s.Aggregate(Collect(p.Words))
	return nil
}
