package stl

import (
	"github.com/philipparndt/cadoverlay/pkg/geometry"
)

// Model is a triangle soup loaded from an STL file.
//
// Bounds and edges are derived lazily and cached, the viewers ask for them
// every frame. Triangles must only be appended through AddTriangle.
type Model struct {
	Name      string
	Triangles []geometry.Triangle

	bounds *geometry.BoundingBox
	edges  [][2]geometry.Vector3
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// AddTriangle appends a triangle and drops the cached derived data
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
	m.bounds = nil
	m.edges = nil
}

func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox returns the axis aligned bounds of all vertices
func (m *Model) BoundingBox() geometry.BoundingBox {
	if m.bounds == nil {
		bbox := geometry.NewBoundingBox()
		for _, t := range m.Triangles {
			bbox.Extend(t.V1)
			bbox.Extend(t.V2)
			bbox.Extend(t.V3)
		}
		m.bounds = &bbox
	}
	return *m.bounds
}

// Edges returns every unique triangle edge in first-seen order. An edge
// shared by two triangles is reported once regardless of its direction.
func (m *Model) Edges() [][2]geometry.Vector3 {
	if m.edges != nil || len(m.Triangles) == 0 {
		return m.edges
	}

	seen := make(map[[2]geometry.Vector3]struct{}, len(m.Triangles)*3)
	edges := make([][2]geometry.Vector3, 0, len(m.Triangles)*3/2)
	for _, t := range m.Triangles {
		for _, e := range t.Edges() {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			seen[[2]geometry.Vector3{e[1], e[0]}] = struct{}{}
			edges = append(edges, e)
		}
	}
	m.edges = edges
	return edges
}
