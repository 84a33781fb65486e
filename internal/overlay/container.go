// Package overlay holds the 2D elements drawn over the scene: floating
// labels, pinned windows and the leader lines tying them to their anchors.
package overlay

import (
	"github.com/charmbracelet/log"
	"github.com/philipparndt/cadoverlay/internal/annotation"
	"github.com/philipparndt/cadoverlay/internal/pinned"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/gridlayout"
)

// Window is a pinned annotation docked in the grid
type Window struct {
	Settings annotation.Settings
	Cell     *pinned.Cell
	Line     *LeaderLine
}

// UID returns the annotation uid
func (w *Window) UID() string {
	return w.Settings.UID
}

// Title returns the text shown in the window title bar
func (w *Window) Title() string {
	if w.Settings.Title != "" {
		return w.Settings.Title
	}
	return w.Settings.UID
}

// Container mounts one overlay element per visible annotation
type Container struct {
	registry pinned.Registry
	logger   *log.Logger
	grid     *pinned.Grid
	width    float64

	order   []string
	labels  map[string]*Label
	windows map[string]*Window

	// OnLayoutChange receives the dock layout after a window was dragged or resized
	OnLayoutChange func(gridlayout.Layout)
}

// NewContainer creates an empty container reporting into registry
func NewContainer(registry pinned.Registry, logger *log.Logger) *Container {
	if logger == nil {
		logger = log.Default()
	}
	return &Container{
		registry: registry,
		logger:   logger,
		grid:     pinned.NewGrid(nil),
		labels:   make(map[string]*Label),
		windows:  make(map[string]*Window),
	}
}

// Grid returns the window dock
func (c *Container) Grid() *pinned.Grid {
	return c.grid
}

// Reconcile brings the mounted elements in line with settings. Elements
// whose kind did not change stay mounted so they keep their learned
// position.
func (c *Container) Reconcile(settings []annotation.Settings) {
	grid := pinned.NewGrid(settings)
	grid.OnLayoutChange = c.layoutChanged

	wanted := make(map[string]annotation.Settings, len(settings))
	order := make([]string, 0, len(settings))
	for _, an := range settings {
		if !an.Visible() {
			continue
		}
		if _, dup := wanted[an.UID]; dup {
			c.logger.Warn("duplicate annotation", "id", an.UID)
			continue
		}
		wanted[an.UID] = an
		order = append(order, an.UID)
	}

	for _, uid := range c.order {
		an, ok := wanted[uid]
		switch {
		case !ok:
			c.unmount(uid)
		case an.IsPinnedWindow() != c.isWindow(uid):
			c.unmount(uid)
		}
	}

	for _, uid := range order {
		an := wanted[uid]
		if an.IsPinnedWindow() {
			w, ok := c.windows[uid]
			if !ok {
				w = &Window{Line: NewLeaderLine(an.Color)}
				w.Cell = pinned.NewCell(uid, c.registry)
				w.Cell.Mount(w.Line.Update)
				c.windows[uid] = w
				c.logger.Debug("mounted window", "id", uid)
			}
			w.Settings = an.Clone()
			w.Line.Color = an.Color
			grid.Attach(w.Cell)
			continue
		}

		l, ok := c.labels[uid]
		if !ok {
			l = NewLabel(an.Clone(), c.registry)
			l.Mount()
			c.labels[uid] = l
			c.logger.Debug("mounted label", "id", uid)
		}
		l.Settings = an.Clone()
		l.Line.Color = an.Color
	}

	c.order = order
	c.grid = grid
	if c.width > 0 {
		c.grid.Layout(c.width)
	}
}

// Layout lays the window dock out for the panel width
func (c *Container) Layout(width float64) {
	c.width = width
	c.grid.Layout(width)
}

// Tick advances label and line animations by dt seconds
func (c *Container) Tick(dt float32) {
	for _, l := range c.labels {
		l.Tick(dt)
	}
	for _, w := range c.windows {
		w.Line.Tick(dt)
	}
}

// Labels returns the mounted labels in annotation order
func (c *Container) Labels() []*Label {
	var out []*Label
	for _, uid := range c.order {
		if l, ok := c.labels[uid]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Windows returns the mounted windows in annotation order
func (c *Container) Windows() []*Window {
	var out []*Window
	for _, uid := range c.order {
		if w, ok := c.windows[uid]; ok {
			out = append(out, w)
		}
	}
	return out
}

// WindowRect returns the pixel rectangle of a pinned window
func (c *Container) WindowRect(uid string) (geometry.Rect, bool) {
	return c.grid.Rect(uid)
}

// LabelAt returns the topmost label under a pixel position
func (c *Container) LabelAt(x, y float64) (*Label, bool) {
	p := geometry.NewVector2(x, y)
	labels := c.Labels()
	for i := len(labels) - 1; i >= 0; i-- {
		if labels[i].Rect().Contains(p) {
			return labels[i], true
		}
	}
	return nil, false
}

// Close unmounts every element, which removes all boxes from the registry
func (c *Container) Close() {
	for _, uid := range c.order {
		c.unmount(uid)
	}
	c.order = nil
}

func (c *Container) isWindow(uid string) bool {
	_, ok := c.windows[uid]
	return ok
}

func (c *Container) unmount(uid string) {
	if l, ok := c.labels[uid]; ok {
		l.Unmount()
		delete(c.labels, uid)
	}
	if w, ok := c.windows[uid]; ok {
		w.Cell.Unmount()
		c.grid.Detach(uid)
		delete(c.windows, uid)
	}
	c.logger.Debug("unmounted", "id", uid)
}

func (c *Container) layoutChanged(layout gridlayout.Layout) {
	if c.OnLayoutChange != nil {
		c.OnLayoutChange(layout)
	}
}
