package geometry

import "math"

// BBox is an axis-aligned rectangle given by its corners (X0,Y0) top-left
// and (X1,Y1) bottom-right
type BBox struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// IsEmpty returns true if the box has no area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Union returns the smallest box containing both boxes. An empty receiver
// is treated as absent so that unions can be accumulated from zero values.
func (b BBox) Union(other BBox) BBox {
	if b == (BBox{}) {
		return other
	}
	if other == (BBox{}) {
		return b
	}
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}
