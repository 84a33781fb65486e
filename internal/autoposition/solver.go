package autoposition

import "github.com/philipparndt/cadoverlay/pkg/gridlayout"

// Damping is the share of the remaining distance a blocked box moves per
// tick. Tuned for a ~60Hz tick rate.
const Damping = 0.2

// PlaceTowardTarget moves item as close to (desiredX, desiredY) as the other
// items of layout allow. Other items are obstacles and are never displaced.
//
// The direct move is tried first. When it is blocked the item moves a damped
// step of the remaining distance instead, so a box whose target stays occupied
// creeps towards it rather than jumping back and forth every frame. If the
// item still overlaps something afterwards it drops to the first free slot
// below its current position.
func PlaceTowardTarget(layout gridlayout.Layout, item *gridlayout.Item, desiredX, desiredY float64) {
	if !gridlayout.Move(layout, item, desiredX, desiredY) {
		gridlayout.Move(layout, item,
			item.X+(desiredX-item.X)*Damping,
			item.Y+(desiredY-item.Y)*Damping)
	}

	if gridlayout.FirstCollision(layout, item) != nil {
		gridlayout.FirstAvailable(layout, item)
	}
}
