package gridlayout

import (
	"math"

	"github.com/philipparndt/cadoverlay/pkg/geometry"
)

// Layout constants shared by the floating solver and the pinned window dock
const (
	ColumnCount       = 24
	RowHeight         = 30.0
	Margin            = 10.0
	DefaultWindowSpan = 4
)

// Config maps grid cells onto a container of the given pixel width
type Config struct {
	Cols      int
	RowHeight float64
	Margin    float64
	Width     float64
}

// DefaultConfig returns the shared grid geometry for a container width
func DefaultConfig(width float64) Config {
	return Config{Cols: ColumnCount, RowHeight: RowHeight, Margin: Margin, Width: width}
}

// ColWidth returns the pixel width of one column
func (c Config) ColWidth() float64 {
	return (c.Width - c.Margin*float64(c.Cols-1)) / float64(c.Cols)
}

// ItemRect converts an item in grid units into a pixel rectangle
func (c Config) ItemRect(it *Item) geometry.Rect {
	colWidth := c.ColWidth()
	return geometry.Rect{
		X: math.Round((colWidth + c.Margin) * it.X),
		Y: math.Round((c.RowHeight + c.Margin) * it.Y),
		W: math.Round(colWidth*it.W + math.Max(0, it.W-1)*c.Margin),
		H: math.Round(c.RowHeight*it.H + math.Max(0, it.H-1)*c.Margin),
	}
}

// CellAt returns the grid cell that a floating box at pixel (x, y) maps to
// when it gets pinned
func (c Config) CellAt(x, y float64) (col, row float64) {
	if c.Width > 0 {
		col = math.Round(x / c.Width * float64(c.Cols))
	}
	row = math.Round(y / (c.RowHeight + c.Margin))
	return col, row
}

// PixelToCell snaps a dragged pixel position to the nearest grid cell
func (c Config) PixelToCell(left, top float64) (col, row float64) {
	col = math.Round(left / (c.ColWidth() + c.Margin))
	row = math.Round(top / (c.RowHeight + c.Margin))
	return col, row
}

// Clamp keeps an item in grid units inside the column range
func (c Config) Clamp(it *Item) {
	cols := float64(c.Cols)
	it.W = math.Max(1, math.Min(it.W, cols))
	it.H = math.Max(1, it.H)
	it.X = math.Max(0, math.Min(it.X, cols-it.W))
	it.Y = math.Max(0, it.Y)
}
