package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaderLineGeometry(t *testing.T) {
	l := NewLeaderLine("#fff")
	assert.False(t, l.Visible(), "hidden before the first update")

	l.Update(10, 10, 13, 14)
	assert.True(t, l.Visible())
	assert.InDelta(t, 5, l.Length, 1e-9)
	assert.InDelta(t, 53.1301, l.Angle, 1e-4)

	l.Update(10, 10, 10, 20)
	assert.InDelta(t, 90, l.Angle, 1e-9, "screen Y points down")
}

func TestLeaderLineHidden(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"anchor at origin", 0, 0, 50, 50},
		{"box at origin", 50, 50, 0, 0},
		{"zero length", 20, 30, 20, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLeaderLine("")
			l.Update(tt.x1, tt.y1, tt.x2, tt.y2)
			assert.False(t, l.Visible())
			assert.Zero(t, l.Alpha())
		})
	}
}

func TestLeaderLineFadeIn(t *testing.T) {
	l := NewLeaderLine("")
	l.Tick(0.5)
	l.Update(10, 10, 50, 50)
	assert.Zero(t, l.Alpha(), "fade starts with the first visible update")

	l.Tick(0.5)
	assert.InDelta(t, 0.5, l.Alpha(), 1e-6)
	l.Tick(1)
	assert.Equal(t, 1.0, l.Alpha())
}
