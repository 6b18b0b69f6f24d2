// Package gamemath holds the pure geometry used by the frame systems.
// Coordinates are field coordinates: X grows right, Y grows up from the
// bottom edge of the play field.
package gamemath

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// OverlapsX reports whether the horizontal spans overlap. Touching edges
// do not count.
func (r Rect) OverlapsX(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right()
}

// Overlaps reports whether two rectangles overlap with strict inequality
// on all four sides.
func (r Rect) Overlaps(other Rect) bool {
	return r.OverlapsX(other) &&
		r.Top() > other.Y &&
		r.Y < other.Top()
}

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ToScreen converts the rectangle's bottom-left field position into the
// top-left screen position of a y-down render target of the given height.
func (r Rect) ToScreen(fieldHeight float64) (x, y float64) {
	return r.X, fieldHeight - r.Top()
}
