// Package pinned docks annotation windows into a fixed grid.
//
// Pinned windows are positioned by the grid, not by the floating solver. The
// grid reports each window's pixel rectangle through its Cell, and the cell
// pushes it into the positioning registry as a static box so floating labels
// flow around it and its leader line stays attached.
package pinned
