package autoposition

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(scene Scene) *Engine {
	e := NewEngine(WithLogger(log.New(io.Discard)), WithScene(scene))
	e.OnPanelResize(Size{Width: 800, Height: 600})
	return e
}

func TestRegisterBoxPlaceholder(t *testing.T) {
	e := newEngine(nil)
	e.RegisterBox("a", false, nil, nil)
	e.RegisterBox("pinned", true, nil, nil)

	a, ok := e.Box("a")
	require.True(t, ok)
	assert.Equal(t, Box{ID: "a", W: PlaceholderWidth, H: PlaceholderHeight}, a)

	pinned, ok := e.Box("pinned")
	require.True(t, ok)
	assert.True(t, pinned.Static)
	assert.True(t, pinned.Initialized, "static boxes need no initial placement")
	assert.Equal(t, 2, e.Len())
}

func TestRegisterBoxTwiceReplacesPositionCallback(t *testing.T) {
	scene := newScene(anchorAt("a", 100, 100))
	e := newEngine(scene)

	first, second := &recorder{}, &recorder{}
	e.RegisterBox("a", false, first.onLine, first.onPosition)
	require.True(t, e.OnBoxResize("a", Size{Width: 50, Height: 20}))
	e.RegisterBox("a", false, second.onLine, second.onPosition)

	box, _ := e.Box("a")
	assert.Equal(t, 50.0, box.W, "re-registering must keep the record")
	assert.Equal(t, 1, e.Len())

	e.UpdatePosition()
	assert.Empty(t, first.positions)
	assert.Len(t, second.positions, 1)
	assert.Len(t, first.lines, 1, "line callback of the original registration is kept")
	assert.Empty(t, second.lines)
}

func TestRemoveBox(t *testing.T) {
	e := newEngine(nil)
	e.RegisterBox("a", false, nil, nil)
	e.RegisterBox("b", false, nil, nil)
	e.RegisterBox("c", false, nil, nil)

	e.RemoveBox("b")
	e.RemoveBox("unknown")

	_, ok := e.Box("b")
	assert.False(t, ok)
	ids := []string{}
	for _, b := range e.Boxes() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestUnknownBoxIsIgnored(t *testing.T) {
	e := newEngine(nil)
	assert.False(t, e.OnBoxResize("nope", Size{Width: 1, Height: 1}))
	assert.NotPanics(t, func() { e.OnBoxMove("nope", 1, 1) })
	assert.Zero(t, e.Len())
}

func TestOnBoxResizeReportsChange(t *testing.T) {
	e := newEngine(nil)
	e.RegisterBox("a", false, nil, nil)

	assert.False(t, e.OnBoxResize("a", Size{Width: PlaceholderWidth, Height: PlaceholderHeight}))
	assert.True(t, e.OnBoxResize("a", Size{Width: 200, Height: 40}))
	assert.False(t, e.OnBoxResize("a", Size{Width: 200, Height: 40}))
}

func TestOnBoxMoveRedrawsLine(t *testing.T) {
	e := newEngine(newScene(anchorAt("w1", 10, 20)))
	rec := &recorder{}
	e.RegisterBox("w1", true, rec.onLine, rec.onPosition)
	e.UpdatePosition()
	rec.reset()

	e.OnBoxMove("w1", 50, 60)

	box, _ := e.Box("w1")
	assert.Equal(t, 50.0, box.X)
	assert.Equal(t, 60.0, box.Y)
	assert.Equal(t, []line{{10, 20, 50 + PlaceholderWidth/2.0, 60 + PlaceholderHeight/2.0}}, rec.lines)
	assert.Empty(t, rec.positions, "solver is not involved")
}

func TestFirstPlacementAtOffsetTarget(t *testing.T) {
	e := newEngine(newScene(anchorAt("a", 100, 100)))
	rec := &recorder{}
	e.RegisterBox("a", false, rec.onLine, rec.onPosition)

	e.UpdatePosition()

	box, _ := e.Box("a")
	assert.True(t, box.Initialized)
	assert.Equal(t, 130.0, box.X)
	assert.Equal(t, 130.0, box.Y)
	assert.Equal(t, []position{{130, 130}}, rec.positions)
	assert.Equal(t, []line{{100, 100, 130 + PlaceholderWidth/2.0, 130 + PlaceholderHeight/2.0}}, rec.lines)
}

func TestStableSceneFiresNoCallbacks(t *testing.T) {
	e := newEngine(newScene(anchorAt("a", 100, 100), anchorAt("b", 300, 100)))
	ra, rb := &recorder{}, &recorder{}
	e.RegisterBox("a", false, ra.onLine, ra.onPosition)
	e.RegisterBox("b", false, rb.onLine, rb.onPosition)

	e.UpdatePosition()
	before := e.Boxes()
	ra.reset()
	rb.reset()

	for range 10 {
		e.UpdatePosition()
	}

	assert.Equal(t, before, e.Boxes())
	assert.Empty(t, ra.positions)
	assert.Empty(t, ra.lines)
	assert.Empty(t, rb.positions)
	assert.Empty(t, rb.lines)
}

func TestFloatingBoxesNeverOverlap(t *testing.T) {
	anchors := []*fakeAnchor{
		anchorAt("a", 100, 100),
		anchorAt("b", 105, 102),
		anchorAt("c", 110, 98),
		anchorAt("d", 100, 110),
		anchorAt("e", 98, 104),
	}
	scene := newScene(anchors...)
	e := newEngine(scene)
	for _, a := range anchors {
		e.RegisterBox(a.name, false, nil, nil)
	}
	require.True(t, e.OnBoxResize("c", Size{Width: 200, Height: 60}))

	for tick := range 60 {
		// drift the anchors so the solver keeps moving boxes around
		for i, a := range anchors {
			a.pos.X += float64((tick+i)%5) - 2
			a.pos.Y += float64((tick*i)%3) - 1
		}
		e.UpdatePosition()

		boxes := e.Boxes()
		for i := range boxes {
			for j := i + 1; j < len(boxes); j++ {
				assert.False(t, boxes[i].Rect().Intersects(boxes[j].Rect()),
					"tick %d: %s overlaps %s", tick, boxes[i].ID, boxes[j].ID)
			}
		}
	}
}

func TestPinnedBoxIsNeverMoved(t *testing.T) {
	scene := newScene(anchorAt("pinned", 400, 400), anchorAt("a", 100, 100))
	e := newEngine(scene)

	pinned := &recorder{}
	e.RegisterBox("pinned", true, pinned.onLine, pinned.onPosition)
	e.OnBoxMove("pinned", 130, 130)
	e.RegisterBox("a", false, nil, nil)

	for range 20 {
		e.UpdatePosition()
	}

	box, _ := e.Box("pinned")
	assert.Equal(t, 130.0, box.X)
	assert.Equal(t, 130.0, box.Y)
	assert.Empty(t, pinned.positions)
	assert.Equal(t, []line{
		{0, 0, 130 + PlaceholderWidth/2.0, 130 + PlaceholderHeight/2.0},
		{400, 400, 130 + PlaceholderWidth/2.0, 130 + PlaceholderHeight/2.0},
	}, pinned.lines, "one redraw from the grid report, one from the first projection")

	a, _ := e.Box("a")
	assert.Equal(t, 130.0, a.X)
	assert.Equal(t, 130.0+PlaceholderHeight, a.Y, "floating box goes below the pinned one")
	assert.False(t, a.Rect().Intersects(box.Rect()))
}

func TestNoReinitializationAfterAnchorDisappears(t *testing.T) {
	anchor := anchorAt("a", 100, 100)
	scene := newScene(anchor)
	e := newEngine(scene)
	rec := &recorder{}
	e.RegisterBox("a", false, rec.onLine, rec.onPosition)
	e.UpdatePosition()
	rec.reset()

	scene.anchors = nil
	e.UpdatePosition()
	assert.Empty(t, rec.positions)
	assert.Empty(t, rec.lines)

	box, _ := e.Box("a")
	assert.True(t, box.Initialized)
	assert.Equal(t, 130.0, box.X)

	anchor.pos.X = 200
	scene.anchors = []Anchor{anchor}
	e.UpdatePosition()

	box, _ = e.Box("a")
	assert.Equal(t, 230.0, box.X, "solver moves the box, no re-initialization")
	assert.Equal(t, []position{{230, 130}}, rec.positions)
}

func TestDampedApproachTowardBlockedTarget(t *testing.T) {
	anchor := anchorAt("a", -30, -30)
	scene := newScene(anchor, anchorAt("wall", 700, 700))
	e := newEngine(scene)

	e.RegisterBox("wall", true, nil, nil)
	e.OnBoxMove("wall", 480, 480)
	require.True(t, e.OnBoxResize("wall", Size{Width: 200, Height: 200}))
	e.RegisterBox("a", false, nil, nil)
	e.UpdatePosition()

	box, _ := e.Box("a")
	require.Equal(t, 0.0, box.X)
	require.Equal(t, 0.0, box.Y)

	// target (500, 500) lies inside the wall
	anchor.pos = anchorAt("a", 470, 470).pos
	e.UpdatePosition()
	box, _ = e.Box("a")
	assert.InDelta(t, 100, box.X, 1e-9, "first blocked tick moves a fifth of the way")
	assert.InDelta(t, 100, box.Y, 1e-9)

	wall, _ := e.Box("wall")
	distance := func(b Box) float64 { return 500 - b.X }
	last := distance(box)
	for range 30 {
		e.UpdatePosition()
		box, _ = e.Box("a")
		d := distance(box)
		assert.LessOrEqual(t, d, last)
		assert.Greater(t, d, 0.0, "box never lands on the occupied target")
		assert.False(t, box.Rect().Intersects(wall.Rect()))
		last = d
	}

	settled := box
	e.UpdatePosition()
	box, _ = e.Box("a")
	assert.Equal(t, settled, box, "box settles once the next step would collide")
}

func TestSecondBoxTakesFirstAvailableSlot(t *testing.T) {
	e := newEngine(newScene(anchorAt("a", 100, 100), anchorAt("b", 100, 100)))
	e.RegisterBox("a", false, nil, nil)
	e.RegisterBox("b", false, nil, nil)

	e.UpdatePosition()

	a, _ := e.Box("a")
	b, _ := e.Box("b")
	assert.Equal(t, [2]float64{130, 130}, [2]float64{a.X, a.Y})
	assert.Equal(t, [2]float64{130, 130 + PlaceholderHeight}, [2]float64{b.X, b.Y})
}

func TestUninitializedBoxesDoNotBlock(t *testing.T) {
	scene := newScene(anchorAt("b", 100, 100))
	e := newEngine(scene)
	e.RegisterBox("a", false, nil, nil)
	e.OnBoxMove("a", 130, 130)
	e.RegisterBox("b", false, nil, nil)

	e.UpdatePosition()

	b, _ := e.Box("b")
	assert.Equal(t, 130.0, b.Y)
	a, _ := e.Box("a")
	assert.False(t, a.Initialized, "box without anchor stays uninitialized")
}

func TestTickWithoutSceneIsNoop(t *testing.T) {
	tests := []struct {
		name  string
		scene Scene
	}{
		{"no scene", nil},
		{"no camera", &fakeScene{anchors: []Anchor{anchorAt("a", 1, 1)}}},
		{"no anchors", &fakeScene{camera: &pixelCamera{w: 800, h: 600}, noAnchors: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(tt.scene)
			rec := &recorder{}
			e.RegisterBox("a", false, rec.onLine, rec.onPosition)

			assert.NotPanics(t, e.UpdatePosition)

			box, _ := e.Box("a")
			assert.False(t, box.Initialized)
			assert.Empty(t, rec.positions)
			assert.Empty(t, rec.lines)
		})
	}
}

func TestTickWithoutPanelSizeIsNoop(t *testing.T) {
	e := NewEngine(WithLogger(log.New(io.Discard)), WithScene(newScene(anchorAt("a", 1, 1))))
	e.RegisterBox("a", false, nil, nil)
	e.UpdatePosition()

	box, _ := e.Box("a")
	assert.False(t, box.Initialized)
}

func TestFailingCallbackDoesNotStopTick(t *testing.T) {
	e := newEngine(newScene(anchorAt("a", 100, 100), anchorAt("b", 400, 100)))
	e.RegisterBox("a", false, func(ax, ay, cx, cy float64) { panic("boom") }, func(x, y float64) { panic("boom") })
	rec := &recorder{}
	e.RegisterBox("b", false, rec.onLine, rec.onPosition)

	assert.NotPanics(t, e.UpdatePosition)
	assert.Len(t, rec.positions, 1)
	assert.Len(t, rec.lines, 1)
}

func TestSetSceneRebinds(t *testing.T) {
	e := newEngine(nil)
	e.RegisterBox("a", false, nil, nil)
	e.UpdatePosition()

	scene := newScene(anchorAt("a", 10, 10))
	e.SetScene(scene)
	assert.Equal(t, Scene(scene), e.Scene())
	e.UpdatePosition()

	box, _ := e.Box("a")
	assert.True(t, box.Initialized)
	assert.Equal(t, 40.0, box.X)
}

func TestBlockedBoxCreepsWithoutDisplacingOthers(t *testing.T) {
	a, b := anchorAt("a", 100, 100), anchorAt("b", 100, 400)
	e := newEngine(newScene(a, b))
	e.RegisterBox("a", false, nil, nil)
	e.RegisterBox("b", false, nil, nil)
	e.UpdatePosition()

	// b's target now overlaps a
	b.pos = b.pos.Add(geometry.NewVector3(0, -290, 0))
	e.UpdatePosition()

	boxA, _ := e.Box("a")
	boxB, _ := e.Box("b")
	assert.Equal(t, 130.0, boxA.X)
	assert.Equal(t, 130.0, boxA.Y, "a is an obstacle and is not pushed down")
	assert.Equal(t, 130.0, boxB.X)
	assert.InDelta(t, 430+(140-430)*Damping, boxB.Y, 1e-9, "b moves one damped step")
}
