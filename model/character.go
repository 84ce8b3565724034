package model

// Font identifies the font a character was drawn with.
// Fonts are comparable values so they can be counted directly.
type Font struct {
	Name   string `json:"name" yaml:"name" xml:"name,attr"`
	Bold   bool   `json:"bold,omitempty" yaml:"bold,omitempty" xml:"bold,attr,omitempty"`
	Italic bool   `json:"italic,omitempty" yaml:"italic,omitempty" xml:"italic,attr,omitempty"`
}

// Color is an RGB fill color.
type Color struct {
	R, G, B uint8
}

// Black is the default text color.
var Black = Color{}

// Character is a single positioned glyph, normally one grapheme.
type Character struct {
	Text     string
	Position Position
	Font     Font
	FontSize float64
	Color    Color
}

// NewCharacter creates a character on the given page.
func NewCharacter(text string, page int, rect BBox, font Font, fontSize float64) *Character {
	return &Character{
		Text:     text,
		Position: NewPosition(page, rect),
		Font:     font,
		FontSize: fontSize,
		Color:    Black,
	}
}

// BBox returns the character's bounding box.
func (c *Character) BBox() BBox {
	if c == nil {
		return BBox{}
	}
	return c.Position.Rect
}
