package pinned

import (
	"testing"

	"github.com/philipparndt/cadoverlay/internal/annotation"
	"github.com/philipparndt/cadoverlay/internal/autoposition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type positions map[string]autoposition.Box

func (p positions) Box(id string) (autoposition.Box, bool) {
	b, ok := p[id]
	return b, ok
}

func TestPinUsesCurrentPosition(t *testing.T) {
	store := annotation.NewStore("unused")
	store.Put(annotation.Settings{UID: "a", Display: annotation.DisplayLabel})

	err := Pin(store, positions{"a": {ID: "a", X: 595, Y: 130}}, "a", 1190)
	require.NoError(t, err)

	an, _ := store.Get("a")
	assert.Equal(t, annotation.DisplayWindow, an.Display)
	require.NotNil(t, an.GridPos)
	// x: round(595/1190*24), y: round(130/40)
	assert.Equal(t, annotation.GridPos{X: 12, Y: 3, W: 4, H: 4}, *an.GridPos)
}

func TestPinErrors(t *testing.T) {
	store := annotation.NewStore("unused")
	store.Put(annotation.Settings{UID: "a", Display: annotation.DisplayLabel})

	assert.ErrorIs(t, Pin(store, positions{}, "missing", 1190), annotation.ErrNotFound)
	assert.ErrorIs(t, Pin(store, positions{}, "a", 1190), autoposition.ErrUnknownBox)
	assert.Error(t, Pin(store, positions{"a": {}}, "a", 0))
}

func TestUnpin(t *testing.T) {
	store := annotation.NewStore("unused")
	store.Put(annotation.Settings{UID: "w", Display: annotation.DisplayWindow, GridPos: &annotation.GridPos{W: 4, H: 4}})

	require.NoError(t, Unpin(store, "w"))
	an, _ := store.Get("w")
	assert.Equal(t, annotation.DisplayLabel, an.Display)
	assert.Nil(t, an.GridPos)

	assert.ErrorIs(t, Unpin(store, "missing"), annotation.ErrNotFound)
}
