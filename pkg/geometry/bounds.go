package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that any point will extend
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Empty reports whether no point has been added yet
func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	if b.Empty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	if b.Empty() {
		return Vector3{}
	}
	return b.Min.Lerp(b.Max, 0.5)
}

// MaxDimension returns the largest edge of the box
func (b BoundingBox) MaxDimension() float64 {
	size := b.Size()
	return math.Max(size.X, math.Max(size.Y, size.Z))
}
