package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/stl"
)

func TestSummarizeSquare(t *testing.T) {
	model := stl.NewModel("square")
	n := geometry.NewVector3(0, 0, 1)
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(2, 0, 0)
	c := geometry.NewVector3(2, 2, 0)
	d := geometry.NewVector3(0, 2, 0)
	model.AddTriangle(geometry.NewTriangle(n, a, b, c))
	model.AddTriangle(geometry.NewTriangle(n, a, c, d))

	s := Summarize(model)

	if s.TriangleCount != 2 {
		t.Errorf("expected 2 triangles, got %d", s.TriangleCount)
	}
	if s.EdgeCount != 5 {
		t.Errorf("expected 5 unique edges, got %d", s.EdgeCount)
	}
	if math.Abs(s.SurfaceArea-4) > 1e-9 {
		t.Errorf("expected area 4, got %v", s.SurfaceArea)
	}
	if s.Dimensions != geometry.NewVector3(2, 2, 0) {
		t.Errorf("expected dimensions 2x2x0, got %v", s.Dimensions)
	}
	if s.MinEdgeLength != 2 {
		t.Errorf("expected min edge 2, got %v", s.MinEdgeLength)
	}
	if math.Abs(s.MaxEdgeLength-2*math.Sqrt2) > 1e-9 {
		t.Errorf("expected max edge 2.83, got %v", s.MaxEdgeLength)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(stl.NewModel("empty"))
	if s.EdgeCount != 0 || s.MinEdgeLength != 0 || s.SurfaceArea != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}
