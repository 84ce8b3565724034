// Package model provides the document model shared by all analysis stages.
//
// The model mirrors the physical structure recovered from a page-description
// format and the logical structure recovered from it:
//
//	Document
//	├── Pages      → TextBlocks → TextLines → Words → Characters
//	└── Paragraphs → Words (flattened across blocks)
//
// # Positions
//
// A [Position] pairs a page number with a [BBox]. Pages are referenced by
// number only, so the model has no reference cycles and positions compare
// with ==.
//
// # Semantic Roles
//
// Every [TextBlock] and [Paragraph] carries a [SemanticRole]. The zero value
// [RoleUnset] is a valid transient state while the pipeline runs; roles are
// assigned once, first assignment wins:
//
//	block.AssignRole(model.RolePageHeader) // true
//	block.AssignRole(model.RoleBodyText)   // false, role already set
//
// # Statistics
//
// Words, lines, blocks, pages, paragraphs and the document carry a
// [CharacterStatistic] (dominant font, font size, color, average glyph size),
// computed by the stats package. Blocks, pages and the document additionally
// carry a [TextLineStatistic] describing line pitch.
package model
