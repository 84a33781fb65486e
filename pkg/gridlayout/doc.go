// Package gridlayout implements a column grid of rectangles with collision
// detection, collision-driven moves and first-fit placement.
//
// The same item type serves two coordinate systems. The floating label solver
// works directly in pixels, while the pinned window dock works in grid cells
// and converts to pixels with Config. Both share the column count and margins
// so an item keeps its place when it moves between the two.
package gridlayout
