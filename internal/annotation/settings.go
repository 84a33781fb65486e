// Package annotation holds the per-anchor overlay settings and their TOML
// sidecar store.
package annotation

import (
	"fmt"

	"github.com/philipparndt/cadoverlay/pkg/gridlayout"
)

// Display selects how an annotation is shown
type Display string

const (
	DisplayHide   Display = "hide"
	DisplayWindow Display = "window"
	DisplayLabel  Display = "label"
)

// UnmarshalText rejects unknown display modes
func (d *Display) UnmarshalText(text []byte) error {
	switch v := Display(text); v {
	case DisplayHide, DisplayWindow, DisplayLabel:
		*d = v
		return nil
	default:
		return fmt.Errorf("invalid display %q", text)
	}
}

// GridPos is the dock cell of a pinned window in grid units
type GridPos struct {
	X    int `toml:"x"`
	Y    int `toml:"y"`
	W    int `toml:"w"`
	H    int `toml:"h"`
	MinW int `toml:"min_w,omitempty"`
	MinH int `toml:"min_h,omitempty"`
}

// Equal compares position and span, the minimum sizes are not part of the layout
func (g GridPos) Equal(other GridPos) bool {
	return g.X == other.X && g.Y == other.Y && g.W == other.W && g.H == other.H
}

// Item converts the cell into a layout item for uid
func (g GridPos) Item(uid string) *gridlayout.Item {
	return &gridlayout.Item{
		ID: uid,
		X:  float64(g.X),
		Y:  float64(g.Y),
		W:  float64(g.W),
		H:  float64(g.H),
	}
}

// GridPosFromItem converts a layout item back into a cell
func GridPosFromItem(it *gridlayout.Item) GridPos {
	return GridPos{X: int(it.X), Y: int(it.Y), W: int(it.W), H: int(it.H)}
}

// Link is an optional external reference shown with the annotation
type Link struct {
	URL          string `toml:"url"`
	OpenInNewTab bool   `toml:"open_in_new_tab,omitempty"`
}

// Settings configures the overlay element of one anchor
type Settings struct {
	UID     string   `toml:"uid"`
	Display Display  `toml:"display"`
	Title   string   `toml:"title,omitempty"`
	Color   string   `toml:"color,omitempty"`
	Link    *Link    `toml:"link,omitempty"`
	GridPos *GridPos `toml:"grid_pos,omitempty"`
}

// IsPinnedWindow reports whether the annotation is docked in the window grid.
// A window without a cell is shown as a floating label.
func (s Settings) IsPinnedWindow() bool {
	return s.Display == DisplayWindow && s.GridPos != nil
}

// Visible reports whether the annotation mounts any overlay element
func (s Settings) Visible() bool {
	return s.Display == DisplayLabel || s.Display == DisplayWindow
}

// Clone returns a deep copy
func (s Settings) Clone() Settings {
	c := s
	if s.Link != nil {
		link := *s.Link
		c.Link = &link
	}
	if s.GridPos != nil {
		pos := *s.GridPos
		c.GridPos = &pos
	}
	return c
}
