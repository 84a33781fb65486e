package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/viewer"
)

// maxPitch keeps the orbit camera off the poles
const maxPitch = math.Pi/2 - 0.1

// viewCamera returns the session camera, nil while no model is loaded
func (app *App) viewCamera() *viewer.Camera {
	return app.session.Scene.ViewCamera()
}

// setView orients the camera at the given pitch and yaw around the model centre
func (app *App) setView(angleX, angleY float64) {
	cam := app.viewCamera()
	if cam == nil {
		return
	}
	cam.RotationX = math.Max(-maxPitch, math.Min(maxPitch, angleX))
	cam.RotationY = angleY
	cam.Target = app.session.Model().BoundingBox().Center()
	cam.UpdatePosition()
}

// resetCameraView restores the camera of the scene file
func (app *App) resetCameraView() {
	c := app.session.Config.Camera
	if cam := app.viewCamera(); cam != nil {
		cam.Distance = app.defaultDistance
	}
	app.setView(c.AngleX, c.AngleY)
}

func (app *App) setCameraTopView()    { app.setView(math.Pi/2, 0) }
func (app *App) setCameraBottomView() { app.setView(-math.Pi/2, 0) }
func (app *App) setCameraFrontView()  { app.setView(0, 0) }
func (app *App) setCameraBackView()   { app.setView(0, math.Pi) }
func (app *App) setCameraLeftView()   { app.setView(0, -math.Pi/2) }
func (app *App) setCameraRightView()  { app.setView(0, math.Pi/2) }

// syncCamera copies the session camera into the raylib camera so the mesh is
// drawn with the same view the overlay is projected through
func (app *App) syncCamera() {
	cam := app.viewCamera()
	if cam == nil {
		return
	}
	app.Camera.camera = rl.Camera3D{
		Position:   toRL(cam.Position),
		Target:     toRL(cam.Target),
		Up:         toRL(cam.Up),
		Fovy:       float32(cam.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	cam := app.viewCamera()
	if cam == nil {
		return
	}

	forward := cam.Target.Sub(cam.Position).Normalize()
	right := forward.Cross(cam.Up).Normalize()
	up := right.Cross(forward).Normalize()

	// Pan speed based on distance from target
	panSpeed := cam.Distance * 0.001

	move := right.Mul(-float64(delta.X) * panSpeed).Add(up.Mul(float64(delta.Y) * panSpeed))
	cam.Target = cam.Target.Add(move)
	cam.UpdatePosition()
}

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
