package geometry

// Rect is an axis-aligned screen rectangle given by its top-left corner and size
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a new rectangle
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Center returns the middle of the rectangle
func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether two rectangles overlap. Touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X+r.W <= other.X || other.X+other.W <= r.X {
		return false
	}
	if r.Y+r.H <= other.Y || other.Y+other.H <= r.Y {
		return false
	}
	return true
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
