// Package core holds the types shared by the game and the platform:
// geometry, the screen grid, sprites, input, time and sound. It does not
// import Bubble Tea.
package core

// Vec is a position or offset in playfield units.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rounded returns the vector truncated to integer playfield coordinates.
func (v Vec) Rounded() (int, int) {
	return int(v.X), int(v.Y)
}

// Rect is an axis-aligned box in integer coordinates, used for collisions
// and for sprite placement.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a w×h rectangle whose center is at (cx, cy).
func RectAround(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles overlap. Touching edges
// do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clamp limits val to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
