package geometry

import "math"

// Vector2 is a point in screen space, pixels with the origin at the top-left
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new screen point
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two points
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two points
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Distance returns the euclidean distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// IsFinite reports whether both coordinates are usable
func (v Vector2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}
