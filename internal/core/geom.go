// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It contains no external dependencies
// (especially no Bubble Tea) to keep simulation logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in world units.
// World units are canvas pixels of the 960x360 play field.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.IntersectsPadded(other, 0)
}

// IntersectsPadded tests overlap against other shrunk inward by pad on every
// side. A positive pad makes other's hit-box more forgiving than its bounds.
func (r Rect) IntersectsPadded(other Rect, pad float64) bool {
	return r.X < other.Right()-pad &&
		r.Right() > other.X+pad &&
		r.Y < other.Bottom()-pad &&
		r.Bottom() > other.Y+pad
}

// Inflate returns the rectangle grown by pad on every side.
func (r Rect) Inflate(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
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
