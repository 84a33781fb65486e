package autoposition

import (
	"github.com/philipparndt/cadoverlay/pkg/geometry"
)

// pixelCamera projects world X/Y straight onto pixels of a w x h viewport.
// Points with a negative Z are treated as behind the camera.
type pixelCamera struct {
	w, h    float64
	updates int
}

func (c *pixelCamera) UpdateMatrixWorld() { c.updates++ }

func (c *pixelCamera) ProjectNDC(p geometry.Vector3) (geometry.Vector3, bool) {
	if p.Z < 0 {
		return geometry.Vector3{}, false
	}
	return geometry.Vector3{X: p.X/c.w*2 - 1, Y: 1 - p.Y/c.h*2}, true
}

type fakeAnchor struct {
	name    string
	pos     geometry.Vector3
	updates int
}

func (a *fakeAnchor) Name() string                    { return a.name }
func (a *fakeAnchor) UpdateMatrixWorld()              { a.updates++ }
func (a *fakeAnchor) WorldPosition() geometry.Vector3 { return a.pos }

func anchorAt(name string, x, y float64) *fakeAnchor {
	return &fakeAnchor{name: name, pos: geometry.NewVector3(x, y, 0)}
}

type fakeScene struct {
	camera    Camera
	anchors   []Anchor
	noAnchors bool
}

func (s *fakeScene) Camera() (Camera, bool) {
	return s.camera, s.camera != nil
}

func (s *fakeScene) AnchorMeshes() ([]Anchor, bool) {
	if s.noAnchors {
		return nil, false
	}
	return s.anchors, true
}

func newScene(anchors ...*fakeAnchor) *fakeScene {
	s := &fakeScene{camera: &pixelCamera{w: 800, h: 600}}
	for _, a := range anchors {
		s.anchors = append(s.anchors, a)
	}
	return s
}

type position struct{ x, y float64 }

type line struct{ ax, ay, cx, cy float64 }

// recorder collects the callbacks of one box
type recorder struct {
	positions []position
	lines     []line
}

func (r *recorder) onPosition(x, y float64) {
	r.positions = append(r.positions, position{x, y})
}

func (r *recorder) onLine(ax, ay, cx, cy float64) {
	r.lines = append(r.lines, line{ax, ay, cx, cy})
}

func (r *recorder) reset() {
	r.positions = nil
	r.lines = nil
}
