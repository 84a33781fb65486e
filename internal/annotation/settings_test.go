package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsModes(t *testing.T) {
	tests := []struct {
		name    string
		an      Settings
		pinned  bool
		visible bool
	}{
		{"label", Settings{Display: DisplayLabel}, false, true},
		{"window without cell", Settings{Display: DisplayWindow}, false, true},
		{"pinned window", Settings{Display: DisplayWindow, GridPos: &GridPos{W: 4, H: 4}}, true, true},
		{"hidden", Settings{Display: DisplayHide, GridPos: &GridPos{W: 4, H: 4}}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pinned, tt.an.IsPinnedWindow())
			assert.Equal(t, tt.visible, tt.an.Visible())
		})
	}
}

func TestGridPosItemRoundTrip(t *testing.T) {
	pos := GridPos{X: 3, Y: 5, W: 4, H: 6}
	it := pos.Item("w")
	assert.Equal(t, "w", it.ID)
	assert.True(t, pos.Equal(GridPosFromItem(it)))
}
