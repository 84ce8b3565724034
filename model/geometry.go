package model

import "math"

// BBox represents a bounding box (rectangle).
type BBox struct {
	X      float64 `json:"x" yaml:"x" xml:"x,attr"`           // Left
	Y      float64 `json:"y" yaml:"y" xml:"y,attr"`           // Bottom (PDF coordinate system)
	Width  float64 `json:"width" yaml:"width" xml:"width,attr"`
	Height float64 `json:"height" yaml:"height" xml:"height,attr"`
}

// NewBBox creates a bounding box from coordinates.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 {
	return b.Y
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 {
	return b.Y + b.Height
}

// Union returns the union of two bounding boxes.
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Bottom(), other.Bottom())
	right := math.Max(b.Right(), other.Right())
	top := math.Max(b.Top(), other.Top())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

// IsFinite returns false if any coordinate is NaN or infinite.
func (b BBox) IsFinite() bool {
	for _, v := range [4]float64{b.X, b.Y, b.Width, b.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// UnionAll returns the union of all boxes, or the zero box if none are given.
func UnionAll(boxes []BBox) BBox {
	if len(boxes) == 0 {
		return BBox{}
	}
	union := boxes[0]
	for _, b := range boxes[1:] {
		union = union.Union(b)
	}
	return union
}
