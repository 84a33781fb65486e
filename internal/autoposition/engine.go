package autoposition

import (
	"github.com/charmbracelet/log"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/gridlayout"
)

// AnchorOffset is added to an anchor's projection on both axes to get the
// box target, keeping the box from covering the point it annotates.
const AnchorOffset = 30

// Scene is the view collaborator the engine projects anchors through.
// Either accessor may report false while the scene is still loading.
type Scene interface {
	Camera() (Camera, bool)
	AnchorMeshes() ([]Anchor, bool)
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used for callback failures and registry events
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithScene binds the engine to a scene at construction
func WithScene(scene Scene) Option {
	return func(e *Engine) {
		e.scene = scene
	}
}

// Engine is the box registry plus the positioning tick
type Engine struct {
	logger  *log.Logger
	scene   Scene
	panel   Size
	records map[string]*record
	order   []string
}

// NewEngine creates an empty engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:  log.Default(),
		records: make(map[string]*record),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetScene rebinds the engine to another scene. Registered boxes are kept.
func (e *Engine) SetScene(scene Scene) {
	e.scene = scene
}

// Scene returns the bound scene, nil when none is bound
func (e *Engine) Scene() Scene {
	return e.scene
}

// RegisterBox adds a box for id. Static boxes are considered initialized
// right away since their position comes from the pinned grid.
//
// When id is already registered only the position callback is replaced, the
// rest of the record including its learned position survives a re-mount.
func (e *Engine) RegisterBox(id string, static bool, onLineChange LineFunc, onPositionChange PositionFunc) {
	if r, ok := e.records[id]; ok {
		r.onPositionChange = onPositionChange
		return
	}

	e.records[id] = &record{
		item: gridlayout.Item{
			ID:     id,
			W:      PlaceholderWidth,
			H:      PlaceholderHeight,
			Static: static,
		},
		initialized:      static,
		onPositionChange: onPositionChange,
		onLineChange:     onLineChange,
	}
	e.order = append(e.order, id)
	e.logger.Debug("registered box", "id", id, "static", static)
}

// RemoveBox deletes the record for id. Unknown ids are ignored.
func (e *Engine) RemoveBox(id string) {
	if _, ok := e.records[id]; !ok {
		return
	}
	delete(e.records, id)
	for i, other := range e.order {
		if other == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	e.logger.Debug("removed box", "id", id)
}

// OnBoxResize records the rendered size of a box and reports whether it changed
func (e *Engine) OnBoxResize(id string, size Size) bool {
	r, ok := e.records[id]
	if !ok {
		e.logger.Warn("resize of unknown box", "id", id)
		return false
	}
	if r.item.W == size.Width && r.item.H == size.Height {
		return false
	}
	r.item.W = size.Width
	r.item.H = size.Height
	return true
}

// OnBoxMove records the observed position of a box and redraws its leader
// line. Pinned boxes report here after their grid dock positioned them, the
// engine never moves them itself.
func (e *Engine) OnBoxMove(id string, x, y float64) {
	r, ok := e.records[id]
	if !ok {
		e.logger.Warn("move of unknown box", "id", id)
		return
	}
	r.item.X = x
	r.item.Y = y
	e.notifyLine(r)
}

// OnPanelResize records the viewport size used for projection
func (e *Engine) OnPanelResize(size Size) {
	e.panel = size
}

// PanelSize returns the current viewport size
func (e *Engine) PanelSize() Size {
	return e.panel
}

// Box returns a snapshot of the record for id
func (e *Engine) Box(id string) (Box, bool) {
	r, ok := e.records[id]
	if !ok {
		return Box{}, false
	}
	return r.snapshot(), true
}

// Boxes returns snapshots of all records in registration order
func (e *Engine) Boxes() []Box {
	boxes := make([]Box, 0, len(e.order))
	for _, id := range e.order {
		boxes = append(boxes, e.records[id].snapshot())
	}
	return boxes
}

// Len returns the number of registered boxes
func (e *Engine) Len() int {
	return len(e.records)
}

// UpdatePosition runs one positioning tick.
//
// It does nothing until a scene with a camera and an anchor list is bound.
// Boxes are visited in registration order. A box whose anchor is missing or
// cannot be projected is left untouched for this tick. The first successful
// projection initializes a floating box at the first free slot at or below
// its target; after that the solver moves it toward the target each tick.
// Callbacks only fire for boxes whose position or leader line endpoints
// differ from the state at the start of the tick.
func (e *Engine) UpdatePosition() {
	if e.scene == nil {
		return
	}
	camera, ok := e.scene.Camera()
	if !ok || camera == nil {
		return
	}
	anchors, ok := e.scene.AnchorMeshes()
	if !ok {
		return
	}

	byName := make(map[string]Anchor, len(anchors))
	for _, a := range anchors {
		if a == nil {
			continue
		}
		byName[a.Name()] = a
	}

	records := make([]*record, 0, len(e.order))
	before := make(map[*record]Box, len(e.order))
	for _, id := range e.order {
		r := e.records[id]
		records = append(records, r)
		before[r] = r.snapshot()
	}

	for _, r := range records {
		anchor, ok := byName[r.item.ID]
		if !ok {
			continue
		}
		p, ok := Project(anchor, camera, e.panel)
		if !ok {
			continue
		}
		r.anchorX, r.anchorY = p.X, p.Y

		desired := p.Add(geometry.NewVector2(AnchorOffset, AnchorOffset))
		switch {
		case !r.initialized:
			r.item.X, r.item.Y = desired.X, desired.Y
			gridlayout.FirstAvailable(e.layout(r), &r.item)
			r.initialized = true
		case !r.item.Static:
			PlaceTowardTarget(e.layout(r), &r.item, desired.X, desired.Y)
		}

		e.notifyChanges(r, before)
	}

	// boxes pushed aside by another box of this tick
	for _, r := range records {
		e.notifyChanges(r, before)
	}
}

// notifyChanges fires the callbacks of r when it differs from its entry in
// seen, then records the new state so a box is reported once per change.
func (e *Engine) notifyChanges(r *record, seen map[*record]Box) {
	prev := seen[r]
	now := r.snapshot()
	moved := now.X != prev.X || now.Y != prev.Y
	if moved && !now.Static {
		e.notifyPosition(r)
	}
	if moved || now.AnchorX != prev.AnchorX || now.AnchorY != prev.AnchorY {
		e.notifyLine(r)
	}
	seen[r] = now
}

// layout collects the items that take part in collision checks for current.
// Uninitialized boxes have no meaningful position yet and are left out.
func (e *Engine) layout(current *record) gridlayout.Layout {
	layout := make(gridlayout.Layout, 0, len(e.order))
	for _, id := range e.order {
		r := e.records[id]
		if r == current || r.initialized {
			layout = append(layout, &r.item)
		}
	}
	return layout
}

func (e *Engine) notifyPosition(r *record) {
	if r.onPositionChange == nil {
		return
	}
	defer e.recoverCallback(r.item.ID, "position")
	r.onPositionChange(r.item.X, r.item.Y)
}

func (e *Engine) notifyLine(r *record) {
	if r.onLineChange == nil {
		return
	}
	defer e.recoverCallback(r.item.ID, "line")
	cx, cy := r.center()
	r.onLineChange(r.anchorX, r.anchorY, cx, cy)
}

// a failing element must not stop the remaining boxes of the tick
func (e *Engine) recoverCallback(id, kind string) {
	if rec := recover(); rec != nil {
		e.logger.Error("box callback failed", "id", id, "callback", kind, "panic", rec)
	}
}
