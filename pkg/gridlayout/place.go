package gridlayout

// FirstAvailable moves item to the first vertical position at or below its
// current one that overlaps no other item of layout, keeping its column span.
// It always terminates because every step lands below the bottom edge of the
// item it collided with.
func FirstAvailable(layout Layout, item *Item) *Item {
	for {
		collision := FirstCollision(layout, item)
		if collision == nil {
			return item
		}
		item.Y = collision.Y + collision.H
	}
}
