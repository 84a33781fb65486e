package pinned

import (
	"fmt"

	"github.com/philipparndt/cadoverlay/internal/annotation"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/gridlayout"
)

// Grid is the window dock. Items are kept in grid units.
type Grid struct {
	cfg    gridlayout.Config
	layout gridlayout.Layout
	cells  map[string]*Cell

	// OnLayoutChange receives the full layout after a drag or resize
	OnLayoutChange func(gridlayout.Layout)
}

// NewGrid builds the dock from the pinned windows among settings
func NewGrid(settings []annotation.Settings) *Grid {
	g := &Grid{
		cfg:   gridlayout.DefaultConfig(0),
		cells: make(map[string]*Cell),
	}
	for _, an := range settings {
		if an.IsPinnedWindow() {
			it := an.GridPos.Item(an.UID)
			g.cfg.Clamp(it)
			g.layout = append(g.layout, it)
		}
	}
	return g
}

// Config returns the grid geometry of the last Layout call
func (g *Grid) Config() gridlayout.Config {
	return g.cfg
}

// Items returns copies of the dock items
func (g *Grid) Items() gridlayout.Layout {
	out := make(gridlayout.Layout, len(g.layout))
	for i, it := range g.layout {
		c := *it
		out[i] = &c
	}
	return out
}

// Item returns a copy of the item for uid
func (g *Grid) Item(uid string) (gridlayout.Item, bool) {
	it := g.layout.Get(uid)
	if it == nil {
		return gridlayout.Item{}, false
	}
	return *it, true
}

// Attach connects the observer of a window, replacing any previous one
func (g *Grid) Attach(c *Cell) {
	g.cells[c.UID()] = c
}

// Detach disconnects the observer of uid
func (g *Grid) Detach(uid string) {
	delete(g.cells, uid)
}

// Drag moves the window to a grid cell. A target overlapping another window
// is rejected and the window keeps its cell.
func (g *Grid) Drag(uid string, col, row float64) error {
	it := g.layout.Get(uid)
	if it == nil {
		return fmt.Errorf("drag %s: not pinned", uid)
	}

	target := *it
	target.X, target.Y = col, row
	g.cfg.Clamp(&target)

	if gridlayout.Move(g.layout, it, target.X, target.Y) {
		g.changed()
	}
	return nil
}

// DragPixels moves the window so its top-left corner snaps to the cell
// nearest the pixel position
func (g *Grid) DragPixels(uid string, left, top float64) error {
	col, row := g.cfg.PixelToCell(left, top)
	return g.Drag(uid, col, row)
}

// Resize changes the span of the window. A span overlapping another window
// is rejected.
func (g *Grid) Resize(uid string, w, h float64) error {
	it := g.layout.Get(uid)
	if it == nil {
		return fmt.Errorf("resize %s: not pinned", uid)
	}

	prev := *it
	it.W, it.H = w, h
	g.cfg.Clamp(it)
	if gridlayout.FirstCollision(g.layout, it) != nil {
		*it = prev
		return nil
	}
	if it.W != prev.W || it.H != prev.H || it.X != prev.X {
		g.changed()
	}
	return nil
}

// HitTest returns the window under a pixel position
func (g *Grid) HitTest(x, y float64) (string, bool) {
	p := geometry.NewVector2(x, y)
	for i := len(g.layout) - 1; i >= 0; i-- {
		it := g.layout[i]
		if g.cfg.ItemRect(it).Contains(p) {
			return it.ID, true
		}
	}
	return "", false
}

// Rect returns the pixel rectangle of uid for the current width
func (g *Grid) Rect(uid string) (geometry.Rect, bool) {
	it := g.layout.Get(uid)
	if it == nil {
		return geometry.Rect{}, false
	}
	return g.cfg.ItemRect(it), true
}

// Layout lays the dock out for a container width and reports every window
// rectangle to its cell
func (g *Grid) Layout(width float64) {
	g.cfg.Width = width
	for _, it := range g.layout {
		if c, ok := g.cells[it.ID]; ok {
			c.Report(g.cfg.ItemRect(it))
		}
	}
}

func (g *Grid) changed() {
	if g.cfg.Width > 0 {
		g.Layout(g.cfg.Width)
	}
	if g.OnLayoutChange != nil {
		g.OnLayoutChange(g.Items())
	}
}
