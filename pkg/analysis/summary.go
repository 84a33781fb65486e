package analysis

import (
	"math"

	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/stl"
)

// Summary contains the measurements shown next to a model
type Summary struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Summarize measures a model. Shared edges are counted once.
func Summarize(model *stl.Model) Summary {
	s := Summary{
		BoundingBox:   model.BoundingBox(),
		TriangleCount: model.TriangleCount(),
	}
	s.Dimensions = s.BoundingBox.Size()

	for _, triangle := range model.Triangles {
		s.SurfaceArea += triangle.Area()
	}

	edges := model.Edges()
	s.EdgeCount = len(edges)
	if s.EdgeCount == 0 {
		return s
	}

	s.MinEdgeLength = math.MaxFloat64
	total := 0.0
	for _, e := range edges {
		length := e[0].Distance(e[1])
		total += length
		s.MinEdgeLength = math.Min(s.MinEdgeLength, length)
		s.MaxEdgeLength = math.Max(s.MaxEdgeLength, length)
	}
	s.AvgEdgeLength = total / float64(s.EdgeCount)
	return s
}
