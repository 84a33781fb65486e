package overlay

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/philipparndt/cadoverlay/internal/annotation"
	"github.com/philipparndt/cadoverlay/internal/autoposition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *autoposition.Engine {
	return autoposition.NewEngine(autoposition.WithLogger(log.New(io.Discard)))
}

func TestLabelMount(t *testing.T) {
	engine := newEngine()
	l := NewLabel(annotation.Settings{UID: "a", Display: annotation.DisplayLabel}, engine)

	l.Mount()
	box, ok := engine.Box("a")
	require.True(t, ok)
	assert.False(t, box.Static)
	assert.Equal(t, "a", l.Title(), "uid is the fallback title")

	assert.True(t, l.Resize(90, 24))
	box, _ = engine.Box("a")
	assert.Equal(t, 90.0, box.W)

	l.Unmount()
	assert.Zero(t, engine.Len())
}

func TestLabelSnapsUntilFadedIn(t *testing.T) {
	l := NewLabel(annotation.Settings{UID: "a", Title: "Bore"}, newEngine())

	l.moveTo(130, 130)
	assert.Equal(t, 130.0, l.Position().X, "no transition before the fade-in")
	assert.Zero(t, l.Alpha())

	l.Tick(0.05)
	assert.Zero(t, l.Alpha())

	l.Tick(0.2)
	assert.Equal(t, 1.0, l.Alpha())
	assert.Equal(t, "Bore", l.Title())
}

func TestLabelTweensLaterMoves(t *testing.T) {
	l := NewLabel(annotation.Settings{UID: "a"}, newEngine())
	l.moveTo(10, 10)
	l.Tick(0.2)

	l.moveTo(100, 50)
	l.Tick(MoveDuration / 2)
	p := l.Position()
	assert.Greater(t, p.X, 10.0)
	assert.Less(t, p.X, 100.0)

	l.Tick(MoveDuration)
	assert.Equal(t, 100.0, l.Position().X)
	assert.Equal(t, 50.0, l.Position().Y)
}
