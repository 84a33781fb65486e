package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	result := NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6))

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	result := NewVector3(5, 7, 9).Sub(NewVector3(1, 2, 3))

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Distance(t *testing.T) {
	distance := NewVector3(0, 0, 0).Distance(NewVector3(3, 4, 0))

	if math.Abs(distance-5.0) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	length := NewVector3(3, 4, 0).Normalize().Length()

	if math.Abs(length-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", length)
	}

	if zero := (Vector3{}).Normalize(); zero != (Vector3{}) {
		t.Errorf("Normalize of zero vector: expected zero, got %v", zero)
	}
}

func TestVector3Cross(t *testing.T) {
	result := NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0))

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Lerp(t *testing.T) {
	result := NewVector3(0, 0, 0).Lerp(NewVector3(10, 20, 30), 0.5)

	expected := NewVector3(5, 10, 15)
	if result != expected {
		t.Errorf("Lerp failed: expected %v, got %v", expected, result)
	}
}

func TestVector3IsFinite(t *testing.T) {
	if !NewVector3(1, 2, 3).IsFinite() {
		t.Error("expected finite vector")
	}
	if NewVector3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component must not be finite")
	}
	if NewVector3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf component must not be finite")
	}
}
