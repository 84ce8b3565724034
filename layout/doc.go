// Package layout recovers the logical structure of a document from its
// positioned text blocks.
//
// It assigns a semantic role to every block and groups blocks into
// paragraphs.
//
// # Role Classification
//
// The [Semanticizer] runs a fixed, ordered list of role strategies. Each
// strategy only labels blocks that carry no role yet, so earlier strategies
// take precedence:
//
//	s := layout.NewSemanticizer()
//	result, err := s.Semanticize(doc)
//
// The strategies are:
//
//   - [StrategyPageHeaderFooter] - repeated page headers and footers
//   - [StrategyTitle] - the largest text on the first page
//   - [StrategyHeading] - short blocks in a larger or bold font
//   - [StrategyCaption] - blocks starting with "Figure 1", "Table 2", ...
//   - [StrategyReference] - blocks of a bibliography section
//   - [StrategyBodyText] - everything else
//
// # Header/Footer Detection
//
// The [HeaderFooterDetector] takes the topmost and bottommost block of every
// page, removes digits from their text (running page numbers) and elects the
// most common text if it occurs on at least half of the pages:
//
//	detector := layout.NewHeaderFooterDetector()
//	result := detector.Classify(doc)
//	fmt.Println(result.Summary())
//
// # Paragraphs
//
// The [ParagraphSegmenter] joins consecutive body-text blocks whose text
// continues (see [Continues]) into paragraphs:
//
//	config := layout.DefaultParagraphConfig()
//	config.TransparentRoles = []model.SemanticRole{model.RolePageHeader, model.RolePageFooter}
//	err := layout.NewParagraphSegmenterWithConfig(config).Apply(doc)
package layout
