package geometry

import (
	"math"
	"testing"
)

func TestLookAtTransformPoint(t *testing.T) {
	view := LookAt(NewVector3(0, 0, 10), NewVector3(0, 0, 0), NewVector3(0, 1, 0))

	got := view.TransformPoint(NewVector3(1, 2, 0))
	expected := NewVector3(1, 2, -10)
	if got.Sub(expected).Length() > 1e-10 {
		t.Errorf("TransformPoint failed: expected %v, got %v", expected, got)
	}
}

func TestLookAtPerspectiveCentre(t *testing.T) {
	view := LookAt(NewVector3(0, 0, 10), NewVector3(0, 0, 0), NewVector3(0, 1, 0))
	proj := Perspective(math.Pi/2, 1, 0.1, 100)
	viewProj := proj.Mul(view)

	ndc, w := viewProj.ProjectPoint(NewVector3(0, 0, 0))
	if w <= 0 {
		t.Fatalf("target must be in front of the camera, w=%v", w)
	}
	if math.Abs(ndc.X) > 1e-10 || math.Abs(ndc.Y) > 1e-10 {
		t.Errorf("target must project to the centre, got %v", ndc)
	}

	ndc, _ = viewProj.ProjectPoint(NewVector3(1, 0, 0))
	if math.Abs(ndc.X-0.1) > 1e-10 {
		t.Errorf("expected ndc x 0.1, got %v", ndc.X)
	}
}

func TestProjectPointBehindCamera(t *testing.T) {
	view := LookAt(NewVector3(0, 0, 10), NewVector3(0, 0, 0), NewVector3(0, 1, 0))
	proj := Perspective(math.Pi/4, 1, 0.1, 100)

	if _, w := proj.Mul(view).ProjectPoint(NewVector3(0, 0, 20)); w > 0 {
		t.Errorf("point behind the camera must have w <= 0, got %v", w)
	}
}
