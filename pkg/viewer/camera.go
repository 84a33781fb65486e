package viewer

import (
	"math"

	"github.com/philipparndt/cadoverlay/pkg/geometry"
)

const (
	defaultNear = 0.1
	minDistance = 0.1
)

// Camera is an orbit camera around Target. View and projection matrices are
// cached and only rebuilt by UpdateMatrixWorld.
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)
	Aspect    float64

	view     geometry.Matrix4
	viewProj geometry.Matrix4
}

// NewCamera creates a new camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	distance := bbox.MaxDimension() * 2.0
	if distance < minDistance {
		distance = 10
	}

	c := &Camera{
		Target:   bbox.Center(),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4, // 45 degrees
		Distance: distance,
		Aspect:   1,
	}
	c.UpdatePosition()
	c.UpdateMatrixWorld()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX))

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
	c.UpdatePosition()
}

// SetAspect sets the projection aspect ratio from a viewport size
func (c *Camera) SetAspect(width, height float64) {
	if width > 0 && height > 0 {
		c.Aspect = width / height
	}
}

// UpdateMatrixWorld rebuilds the cached view and projection matrices from the
// current position, orientation and aspect
func (c *Camera) UpdateMatrixWorld() {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	far := math.Max(1000, c.Distance*10)

	c.view = geometry.LookAt(c.Position, c.Target, c.Up)
	c.viewProj = geometry.Perspective(c.FOV, aspect, defaultNear, far).Mul(c.view)
}

// ProjectNDC maps a world point to normalized device coordinates using the
// cached matrices. It reports false for points behind the camera.
func (c *Camera) ProjectNDC(point geometry.Vector3) (geometry.Vector3, bool) {
	ndc, w := c.viewProj.ProjectPoint(point)
	if w <= 0 || !ndc.IsFinite() {
		return geometry.Vector3{}, false
	}
	return ndc, true
}

// Project projects a 3D point to 2D screen coordinates and returns the view depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	ndc, _ := c.viewProj.ProjectPoint(point)
	depth := -c.view.TransformPoint(point).Z

	screenX := (ndc.X + 1) / 2 * width
	screenY := (1 - ndc.Y) / 2 * height

	return screenX, screenY, depth
}
