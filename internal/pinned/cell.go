package pinned

import (
	"fmt"

	"github.com/philipparndt/cadoverlay/internal/autoposition"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
)

// Registry is the part of the positioning engine a cell reports into
type Registry interface {
	RegisterBox(id string, static bool, onLineChange autoposition.LineFunc, onPositionChange autoposition.PositionFunc)
	RemoveBox(id string)
	OnBoxResize(id string, size autoposition.Size) bool
	OnBoxMove(id string, x, y float64)
}

// Cell observes the rendered rectangle of one pinned window
type Cell struct {
	uid      string
	registry Registry
	stamp    string
	size     autoposition.Size
	mounted  bool

	// OnSizeChange is called when the window was resized by the grid
	OnSizeChange func(autoposition.Size)
}

// NewCell creates an unmounted cell for uid
func NewCell(uid string, registry Registry) *Cell {
	return &Cell{uid: uid, registry: registry}
}

// UID returns the annotation uid of the cell
func (c *Cell) UID() string {
	return c.uid
}

// Size returns the last reported window size
func (c *Cell) Size() autoposition.Size {
	return c.size
}

// Mounted reports whether the cell is registered
func (c *Cell) Mounted() bool {
	return c.mounted
}

// Mount registers the window as a static box
func (c *Cell) Mount(onLineChange autoposition.LineFunc) {
	c.registry.RegisterBox(c.uid, true, onLineChange, nil)
	c.mounted = true
}

// Unmount removes the box. The next Mount starts with a fresh stamp.
func (c *Cell) Unmount() {
	if !c.mounted {
		return
	}
	c.registry.RemoveBox(c.uid)
	c.mounted = false
	c.stamp = ""
}

// Report pushes an observed window rectangle into the registry. Repeated
// reports of the same rectangle are dropped.
func (c *Cell) Report(rect geometry.Rect) {
	if !c.mounted {
		return
	}
	stamp := fmt.Sprintf("%g-%g-%g-%g", rect.W, rect.H, rect.X, rect.Y)
	if stamp == c.stamp {
		return
	}
	c.stamp = stamp

	size := autoposition.Size{Width: rect.W, Height: rect.H}
	if c.registry.OnBoxResize(c.uid, size) {
		c.size = size
		if c.OnSizeChange != nil {
			c.OnSizeChange(size)
		}
	}
	c.registry.OnBoxMove(c.uid, rect.X, rect.Y)
}
