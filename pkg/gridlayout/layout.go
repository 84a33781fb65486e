package gridlayout

import "github.com/philipparndt/cadoverlay/pkg/geometry"

// Item is one rectangle of a layout
type Item struct {
	ID     string
	X, Y   float64
	W, H   float64
	Static bool
}

// Rect returns the item bounds in its own coordinate system
func (it *Item) Rect() geometry.Rect {
	return geometry.NewRect(it.X, it.Y, it.W, it.H)
}

// Layout is a set of items. Items are referenced, moves mutate them in place.
type Layout []*Item

// Get returns the item with the given id, or nil
func (l Layout) Get(id string) *Item {
	for _, it := range l {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Collides reports whether two distinct items overlap
func Collides(a, b *Item) bool {
	if a == b || a.ID == b.ID {
		return false
	}
	return a.Rect().Intersects(b.Rect())
}

// FirstCollision returns the first item in layout overlapping item, or nil
func FirstCollision(layout Layout, item *Item) *Item {
	for _, other := range layout {
		if Collides(other, item) {
			return other
		}
	}
	return nil
}
