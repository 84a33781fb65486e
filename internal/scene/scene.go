// Package scene binds the loaded model, its camera and its anchor markers
// into the view the positioning engine projects through.
package scene

import (
	"math"

	"github.com/philipparndt/cadoverlay/internal/autoposition"
	"github.com/philipparndt/cadoverlay/internal/config"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/stl"
	"github.com/philipparndt/cadoverlay/pkg/viewer"
)

// Scene is the 3D view an Engine is bound to
type Scene struct {
	camera   *viewer.Camera
	model    *stl.Model
	markers  []*Marker
	viewport autoposition.Size
}

// New creates a scene around a loaded model with a camera fitted to it
func New(model *stl.Model) *Scene {
	s := &Scene{}
	s.SetModel(model)
	return s
}

// FromConfig creates a scene for model with the camera overrides and the
// anchors of cfg
func FromConfig(cfg *config.Config, model *stl.Model) *Scene {
	s := New(model)
	if s.camera != nil {
		if cfg.Camera.Distance > 0 {
			s.camera.Distance = cfg.Camera.Distance
		}
		s.camera.FOV = cfg.Camera.FOV * math.Pi / 180
		s.camera.Rotate(cfg.Camera.AngleX, cfg.Camera.AngleY)
	}
	s.SyncAnchors(cfg.Anchors)
	s.SetViewport(float64(cfg.Viewport.Width), float64(cfg.Viewport.Height))
	return s
}

// SetModel replaces the model and refits the camera. A nil model unloads it.
func (s *Scene) SetModel(model *stl.Model) {
	s.model = model
	if model == nil {
		s.camera = nil
		return
	}
	s.camera = viewer.NewCamera(model.BoundingBox())
	s.camera.SetAspect(s.viewport.Width, s.viewport.Height)
}

// Model returns the loaded model
func (s *Scene) Model() *stl.Model {
	return s.model
}

// ViewCamera returns the orbit camera, nil while no model is loaded
func (s *Scene) ViewCamera() *viewer.Camera {
	return s.camera
}

// SetViewport updates the projection aspect for a panel size
func (s *Scene) SetViewport(width, height float64) {
	s.viewport = autoposition.Size{Width: width, Height: height}
	if s.camera != nil {
		s.camera.SetAspect(width, height)
	}
}

// AddMarker attaches a marker to the model, replacing one with the same name
func (s *Scene) AddMarker(m *Marker) {
	for i, other := range s.markers {
		if other.Name() == m.Name() {
			s.markers[i] = m
			return
		}
	}
	s.markers = append(s.markers, m)
}

// RemoveMarker detaches the marker with the given name
func (s *Scene) RemoveMarker(name string) {
	for i, m := range s.markers {
		if m.Name() == name {
			s.markers = append(s.markers[:i], s.markers[i+1:]...)
			return
		}
	}
}

// Marker returns the marker with the given name
func (s *Scene) Marker(name string) (*Marker, bool) {
	for _, m := range s.markers {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// SyncAnchors brings the markers in line with anchors. Existing markers are
// moved in place, so boxes tracking them keep their state, markers missing
// from anchors are removed.
func (s *Scene) SyncAnchors(anchors []config.Anchor) {
	wanted := make(map[string]bool, len(anchors))
	for _, a := range anchors {
		wanted[a.Name] = true
		local := geometry.NewVector3(a.Position[0], a.Position[1], a.Position[2])
		if m, ok := s.Marker(a.Name); ok {
			m.SetLocal(local)
			continue
		}
		s.AddMarker(NewMarker(a.Name, local))
	}

	for _, m := range append([]*Marker(nil), s.markers...) {
		if !wanted[m.Name()] {
			s.RemoveMarker(m.Name())
		}
	}
}

// Markers returns the attached markers
func (s *Scene) Markers() []*Marker {
	return s.markers
}

// Orbit turns the camera around its target by deg degrees
func (s *Scene) Orbit(deg float64) {
	if s.camera == nil {
		return
	}
	s.camera.Rotate(0, deg*math.Pi/180)
}

// Camera implements autoposition.Scene. It is unavailable until a model is
// loaded and the viewport size is known.
func (s *Scene) Camera() (autoposition.Camera, bool) {
	if s.camera == nil || s.viewport.Width <= 0 || s.viewport.Height <= 0 {
		return nil, false
	}
	return s.camera, true
}

// AnchorMeshes implements autoposition.Scene
func (s *Scene) AnchorMeshes() ([]autoposition.Anchor, bool) {
	if s.model == nil {
		return nil, false
	}
	anchors := make([]autoposition.Anchor, len(s.markers))
	for i, m := range s.markers {
		anchors[i] = m
	}
	return anchors, true
}
