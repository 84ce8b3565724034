package model

// Document is the shared model the pipeline stages transform.
type Document struct {
	Metadata Metadata
	Pages    []*Page

	// Paragraphs are produced by paragraph segmentation.
	Paragraphs []*Paragraph

	Statistic     *CharacterStatistic
	LineStatistic *TextLineStatistic
}

// Metadata contains document-level information.
type Metadata struct {
	Title  string
	Source string
	Custom map[string]string
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document and numbers it.
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed).
func (d *Document) GetPage(number int) *Page {
	if d == nil || number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Blocks returns all blocks of all pages in page order, skipping nil pages
// and nil blocks.
func (d *Document) Blocks() []*TextBlock {
	if d == nil {
		return nil
	}
	var blocks []*TextBlock
	for _, p := range d.Pages {
		if p == nil {
			continue
		}
		for _, b := range p.Blocks {
			if b != nil {
				blocks = append(blocks, b)
			}
		}
	}
	return blocks
}

// ParagraphsWithRole returns the paragraphs carrying one of the given roles.
// With no roles given, all paragraphs are returned.
func (d *Document) ParagraphsWithRole(roles ...SemanticRole) []*Paragraph {
	if d == nil {
		return nil
	}
	if len(roles) == 0 {
		return d.Paragraphs
	}
	var result []*Paragraph
	for _, p := range d.Paragraphs {
		if p == nil {
			continue
		}
		for _, r := range roles {
			if p.Role == r {
				result = append(result, p)
				break
			}
		}
	}
	return result
}

// CharacterStatistic implements HasCharacterStatistic.
func (d *Document) CharacterStatistic() *CharacterStatistic {
	if d == nil {
		return nil
	}
	return d.Statistic
}

// TextLineStatistic implements HasTextLineStatistic.
func (d *Document) TextLineStatistic() *TextLineStatistic {
	if d == nil {
		return nil
	}
	return d.LineStatistic
}
