package model

// Position locates a rectangle on a page.
//
// The page is referenced by number rather than by pointer, so positions are
// plain comparable values: two positions are equal when their page numbers
// and rectangles are equal.
type Position struct {
	Page int  `json:"page" yaml:"page" xml:"page,attr"`
	Rect BBox `json:"rect" yaml:"rect" xml:"rect"`
}

// NewPosition creates a position on the given page.
func NewPosition(page int, rect BBox) Position {
	return Position{Page: page, Rect: rect}
}

// unionPositions merges the rectangles of positions that share a page.
// Pages appear in the order they are first seen.
func unionPositions(positions []Position) []Position {
	if len(positions) == 0 {
		return nil
	}

	var result []Position
	index := make(map[int]int)
	for _, p := range positions {
		if i, ok := index[p.Page]; ok {
			result[i].Rect = result[i].Rect.Union(p.Rect)
			continue
		}
		index[p.Page] = len(result)
		result = append(result, p)
	}
	return result
}

// AppendUniquePositions appends the positions of extra that are not already
// contained in base.
func AppendUniquePositions(base []Position, extra ...Position) []Position {
	result := make([]Position, 0, len(base)+len(extra))
	result = append(result, base...)
	for _, p := range extra {
		if !containsPosition(result, p) {
			result = append(result, p)
		}
	}
	return result
}

func containsPosition(positions []Position, p Position) bool {
	for _, q := range positions {
		if q == p {
			return true
		}
	}
	return false
}
