package pinned

import (
	"testing"

	"github.com/philipparndt/cadoverlay/internal/annotation"
	"github.com/philipparndt/cadoverlay/internal/autoposition"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/gridlayout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windows() []annotation.Settings {
	return []annotation.Settings{
		{UID: "w1", Display: annotation.DisplayWindow, GridPos: &annotation.GridPos{X: 0, Y: 0, W: 4, H: 4}},
		{UID: "w2", Display: annotation.DisplayWindow, GridPos: &annotation.GridPos{X: 8, Y: 0, W: 4, H: 4}},
		{UID: "floating", Display: annotation.DisplayWindow},
		{UID: "label", Display: annotation.DisplayLabel},
		{UID: "hidden", Display: annotation.DisplayHide, GridPos: &annotation.GridPos{W: 4, H: 4}},
	}
}

func TestNewGridTakesPinnedWindows(t *testing.T) {
	g := NewGrid(windows())

	ids := []string{}
	for _, it := range g.Items() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"w1", "w2"}, ids)
}

func TestGridLayoutReportsPixels(t *testing.T) {
	g := NewGrid(windows())
	reg := newFakeRegistry()
	c := NewCell("w2", reg)
	c.Mount(nil)
	g.Attach(c)

	g.Layout(1190)

	// 1190 wide: 40px columns, 10px margins
	require.Len(t, reg.moves, 1)
	assert.Equal(t, geometry.NewVector2(400, 0), reg.moves[0])
	assert.Equal(t, autoposition.Size{Width: 190, Height: 150}, reg.resizes[0])

	rect, ok := g.Rect("w2")
	require.True(t, ok)
	assert.Equal(t, geometry.NewRect(400, 0, 190, 150), rect)
}

func TestGridDrag(t *testing.T) {
	g := NewGrid(windows())
	var changes []gridlayout.Layout
	g.OnLayoutChange = func(l gridlayout.Layout) { changes = append(changes, l) }

	require.NoError(t, g.Drag("w1", 0, 5))
	it, _ := g.Item("w1")
	assert.Equal(t, 5.0, it.Y)
	require.Len(t, changes, 1)
	assert.Equal(t, 5.0, changes[0].Get("w1").Y)

	require.NoError(t, g.Drag("w1", 7, 0), "overlapping w2 is rejected")
	it, _ = g.Item("w1")
	assert.Equal(t, [2]float64{0, 5}, [2]float64{it.X, it.Y})
	assert.Len(t, changes, 1)

	require.NoError(t, g.Drag("w1", 30, 5), "clamped to the last columns")
	it, _ = g.Item("w1")
	assert.Equal(t, float64(gridlayout.ColumnCount-4), it.X)

	assert.Error(t, g.Drag("nope", 0, 0))
}

func TestGridDragPixels(t *testing.T) {
	g := NewGrid(windows())
	g.Layout(1190)

	require.NoError(t, g.DragPixels("w1", 210, 95))
	it, _ := g.Item("w1")
	assert.Equal(t, [2]float64{4, 2}, [2]float64{it.X, it.Y})
}

func TestGridResize(t *testing.T) {
	g := NewGrid(windows())
	changes := 0
	g.OnLayoutChange = func(gridlayout.Layout) { changes++ }

	require.NoError(t, g.Resize("w1", 6, 8))
	it, _ := g.Item("w1")
	assert.Equal(t, [2]float64{6, 8}, [2]float64{it.W, it.H})
	assert.Equal(t, 1, changes)

	require.NoError(t, g.Resize("w1", 10, 8), "would overlap w2")
	it, _ = g.Item("w1")
	assert.Equal(t, 6.0, it.W)
	assert.Equal(t, 1, changes)
}

func TestGridHitTest(t *testing.T) {
	g := NewGrid(windows())
	g.Layout(1190)

	uid, ok := g.HitTest(450, 100)
	assert.True(t, ok)
	assert.Equal(t, "w2", uid)

	_, ok = g.HitTest(300, 100)
	assert.False(t, ok)
}
