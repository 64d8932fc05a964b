// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It has no external dependencies
// (especially no Bubble Tea) so game logic stays pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
// Y grows downward, matching terminal rows.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is a footprint in arena pixel space. X is the left edge and Y is the
// bottom edge measured upward from the arena floor.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box from its left/bottom corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y + b.H
}

// Shrink returns the box reduced by margin on every side.
func (b Box) Shrink(margin float64) Box {
	return Box{X: b.X + margin, Y: b.Y + margin, W: b.W - 2*margin, H: b.H - 2*margin}
}

// SpanOverlaps reports whether the horizontal spans of both boxes overlap.
func (b Box) SpanOverlaps(other Box) bool {
	return b.X < other.Right() && other.X < b.Right()
}

// Overlaps reports whether the two boxes overlap after both are shrunk
// inward by margin. Touching edges do not count. The test is symmetric.
func Overlaps(a, b Box, margin float64) bool {
	a, b = a.Shrink(margin), b.Shrink(margin)
	return a.X < b.Right() && a.Right() > b.X && a.Y < b.Top() && a.Top() > b.Y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
