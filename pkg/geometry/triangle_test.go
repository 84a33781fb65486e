package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewTriangle(NewVector3(0, 0, 1), NewVector3(0, 0, 0), NewVector3(3, 0, 0), NewVector3(0, 4, 0))

	if area := tri.Area(); math.Abs(area-6.0) > 1e-10 {
		t.Errorf("Area failed: expected 6, got %v", area)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	tri := NewTriangle(Vector3{}, NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0))

	expected := NewVector3(0, 0, 1)
	if got := tri.CalculateNormal(); got != expected {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, got)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(Vector3{}, NewVector3(0, 0, 0), NewVector3(3, 0, 0), NewVector3(0, 3, 0))

	center := tri.Center()
	if math.Abs(center.X-1) > 1e-10 || math.Abs(center.Y-1) > 1e-10 || center.Z != 0 {
		t.Errorf("Center failed: expected (1,1,0), got %v", center)
	}
}

func TestBoundingBox(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.Empty() {
		t.Fatal("new bounding box must be empty")
	}

	bbox.Extend(NewVector3(-1, 0, 2))
	bbox.Extend(NewVector3(3, 4, -2))

	if got := bbox.Size(); got != NewVector3(4, 4, 4) {
		t.Errorf("Size failed: expected (4,4,4), got %v", got)
	}
	if got := bbox.Center(); got != NewVector3(1, 2, 0) {
		t.Errorf("Center failed: expected (1,2,0), got %v", got)
	}
	if got := bbox.MaxDimension(); got != 4 {
		t.Errorf("MaxDimension failed: expected 4, got %v", got)
	}
}
