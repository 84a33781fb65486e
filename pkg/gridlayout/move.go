package gridlayout

// Move places item at (x, y) and reports whether it moved.
//
// A target overlapping any other item of layout is rejected and the item
// keeps its previous position. Other items are never displaced, and static
// items never move.
func Move(layout Layout, item *Item, x, y float64) bool {
	if item.Static || (item.X == x && item.Y == y) {
		return false
	}

	oldX, oldY := item.X, item.Y
	item.X, item.Y = x, y
	if FirstCollision(layout, item) != nil {
		item.X, item.Y = oldX, oldY
		return false
	}
	return true
}
