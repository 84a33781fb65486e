package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/cadoverlay/pkg/stl"
)

// ModelRenderer renders an STL model as a wireframe and stacks overlay
// objects (labels, leader lines, windows) on top of it
type ModelRenderer struct {
	widget.BaseWidget
	model      *stl.Model
	camera     *Camera
	lines      []*canvas.Line
	dragStart  *fyne.Position
	isDragging bool
	width      float64
	height     float64

	overlay    func() []fyne.CanvasObject
	onRendered func()
	onResize   func(width, height float64)
	onTapped   func(x, y float64)
}

// NewModelRenderer creates a new 3D model renderer viewing model through camera.
// A nil camera is replaced by one framing the model.
func NewModelRenderer(model *stl.Model, camera *Camera) *ModelRenderer {
	if camera == nil {
		camera = NewCamera(model.BoundingBox())
	}
	r := &ModelRenderer{
		model:  model,
		camera: camera,
		lines:  make([]*canvas.Line, 0),
	}
	r.ExtendBaseWidget(r)
	return r
}

// Camera returns the camera the renderer projects through
func (r *ModelRenderer) Camera() *Camera {
	return r.camera
}

// SetModel replaces the model and the camera it is viewed through
func (r *ModelRenderer) SetModel(model *stl.Model, camera *Camera) {
	r.model = model
	if camera != nil {
		r.camera = camera
	}
	r.Redraw()
}

// SetOverlay sets the source of objects drawn above the wireframe
func (r *ModelRenderer) SetOverlay(overlay func() []fyne.CanvasObject) {
	r.overlay = overlay
}

// SetOnRendered sets the callback run after every render
func (r *ModelRenderer) SetOnRendered(callback func()) {
	r.onRendered = callback
}

// SetOnResize sets the callback run when the drawing area changes size
func (r *ModelRenderer) SetOnResize(callback func(width, height float64)) {
	r.onResize = callback
}

// SetOnTapped sets the callback for a tap that was not part of a drag
func (r *ModelRenderer) SetOnTapped(callback func(x, y float64)) {
	r.onTapped = callback
}

// CreateRenderer creates the renderer for the widget
func (r *ModelRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &modelWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render updates the 3D view
func (r *ModelRenderer) Render(width, height float64) {
	resized := width != r.width || height != r.height
	r.width = width
	r.height = height

	r.camera.SetAspect(width, height)
	r.camera.UpdateMatrixWorld()

	r.lines = make([]*canvas.Line, 0)
	for _, edge := range r.model.Edges() {
		x1, y1, z1 := r.camera.Project(edge[0], width, height)
		x2, y2, z2 := r.camera.Project(edge[1], width, height)
		if z1 <= 0 || z2 <= 0 {
			continue
		}

		// Closer edges are brighter
		avgZ := (z1 + z2) / 2
		brightness := uint8(math.Max(50, math.Min(255, 255-avgZ/r.camera.Distance*80)))

		line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))

		r.lines = append(r.lines, line)
	}

	if resized && r.onResize != nil {
		r.onResize(width, height)
	}

	r.Refresh()

	if r.onRendered != nil {
		r.onRendered()
	}
}

// Redraw renders again at the current size
func (r *ModelRenderer) Redraw() {
	if r.width > 0 && r.height > 0 {
		r.Render(r.width, r.height)
	}
}

// Dragged handles mouse drag events for rotation
func (r *ModelRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		r.Redraw()
	}
	r.dragStart = &event.Position
	r.isDragging = true
}

// DragEnd handles the end of a drag event
func (r *ModelRenderer) DragEnd() {
	r.dragStart = nil
	r.isDragging = false
}

// Tapped forwards taps to the tap callback
func (r *ModelRenderer) Tapped(event *fyne.PointEvent) {
	if r.isDragging || r.onTapped == nil {
		return
	}
	r.onTapped(float64(event.Position.X), float64(event.Position.Y))
}

// Scrolled handles scroll events for zooming
func (r *ModelRenderer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Redraw()
}

// modelWidgetRenderer implements fyne.WidgetRenderer
type modelWidgetRenderer struct {
	renderer *ModelRenderer
	objects  []fyne.CanvasObject
}

func (m *modelWidgetRenderer) Layout(size fyne.Size) {
	m.renderer.Render(float64(size.Width), float64(size.Height))
}

func (m *modelWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *modelWidgetRenderer) Refresh() {
	m.objects = make([]fyne.CanvasObject, 0, len(m.renderer.lines))

	for _, line := range m.renderer.lines {
		m.objects = append(m.objects, line)
	}

	if m.renderer.overlay != nil {
		m.objects = append(m.objects, m.renderer.overlay()...)
	}

	canvas.Refresh(m.renderer)
}

func (m *modelWidgetRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *modelWidgetRenderer) Destroy() {}
