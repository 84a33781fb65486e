package autoposition

import (
	"math"

	"github.com/philipparndt/cadoverlay/pkg/geometry"
)

// Camera is the scene camera as seen by the projector
type Camera interface {
	// UpdateMatrixWorld refreshes cached view and projection matrices
	UpdateMatrixWorld()
	// ProjectNDC maps a world point to normalized device coordinates,
	// reporting false when the point cannot be projected
	ProjectNDC(point geometry.Vector3) (geometry.Vector3, bool)
}

// Anchor is a named scene object whose screen projection a box tracks
type Anchor interface {
	Name() string
	// UpdateMatrixWorld refreshes the world transform of the object
	UpdateMatrixWorld()
	WorldPosition() geometry.Vector3
}

// Project maps the anchor's world position to pixel coordinates inside a
// viewport of the given size, origin top-left and Y pointing down.
//
// Both the camera and the anchor matrices are refreshed first, a stale matrix
// would place the box where the object was before this frame's scene update.
// It reports false when no projection is available: missing camera, empty
// viewport, a point behind the camera or a non finite result.
func Project(anchor Anchor, camera Camera, viewport Size) (geometry.Vector2, bool) {
	if camera == nil || anchor == nil || viewport.Width <= 0 || viewport.Height <= 0 {
		return geometry.Vector2{}, false
	}

	camera.UpdateMatrixWorld()
	anchor.UpdateMatrixWorld()

	ndc, ok := camera.ProjectNDC(anchor.WorldPosition())
	if !ok {
		return geometry.Vector2{}, false
	}

	p := geometry.Vector2{
		X: math.Round((ndc.X + 1) / 2 * viewport.Width),
		Y: math.Round((1 - ndc.Y) / 2 * viewport.Height),
	}
	if !p.IsFinite() {
		return geometry.Vector2{}, false
	}
	return p, true
}
