package scene

import "github.com/philipparndt/cadoverlay/pkg/geometry"

// Marker is a named anchor point attached to the model. The model is drawn
// untransformed, so model coordinates are world coordinates.
type Marker struct {
	name  string
	local geometry.Vector3
	world geometry.Vector3
}

// NewMarker creates a marker at a position in model coordinates
func NewMarker(name string, local geometry.Vector3) *Marker {
	m := &Marker{name: name, local: local}
	m.UpdateMatrixWorld()
	return m
}

func (m *Marker) Name() string {
	return m.name
}

// Local returns the position in model coordinates
func (m *Marker) Local() geometry.Vector3 {
	return m.local
}

// SetLocal moves the marker within the model. The world position follows on
// the next UpdateMatrixWorld.
func (m *Marker) SetLocal(p geometry.Vector3) {
	m.local = p
}

// UpdateMatrixWorld recomputes the world position
func (m *Marker) UpdateMatrixWorld() {
	m.world = m.local
}

// WorldPosition returns the position computed by the last UpdateMatrixWorld
func (m *Marker) WorldPosition() geometry.Vector3 {
	return m.world
}
