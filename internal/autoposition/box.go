package autoposition

import (
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/gridlayout"
)

// Placeholder size of a box until the element reports its rendered size
const (
	PlaceholderWidth  = 127
	PlaceholderHeight = 32
)

// Size is a width and height in pixels
type Size struct {
	Width, Height float64
}

// PositionFunc pushes a new top-left screen position to a rendered element
type PositionFunc func(x, y float64)

// LineFunc redraws a leader line from the anchor to the box centre
type LineFunc func(anchorX, anchorY, boxCenterX, boxCenterY float64)

// Box is a snapshot of the positioning record of one overlay element
type Box struct {
	ID          string
	X, Y        float64
	W, H        float64
	AnchorX     float64
	AnchorY     float64
	Static      bool
	Initialized bool
}

// Rect returns the box bounds in screen space
func (b Box) Rect() geometry.Rect {
	return geometry.NewRect(b.X, b.Y, b.W, b.H)
}

// Center returns the box centre, the far end of its leader line
func (b Box) Center() geometry.Vector2 {
	return b.Rect().Center()
}

// record is the mutable registry entry. The layout item is embedded so the
// solver can move it in place.
type record struct {
	item             gridlayout.Item
	anchorX, anchorY float64
	initialized      bool
	onPositionChange PositionFunc
	onLineChange     LineFunc
}

func (r *record) snapshot() Box {
	return Box{
		ID:          r.item.ID,
		X:           r.item.X,
		Y:           r.item.Y,
		W:           r.item.W,
		H:           r.item.H,
		AnchorX:     r.anchorX,
		AnchorY:     r.anchorY,
		Static:      r.item.Static,
		Initialized: r.initialized,
	}
}

func (r *record) center() (float64, float64) {
	return r.item.X + r.item.W/2, r.item.Y + r.item.H/2
}
