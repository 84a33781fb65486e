package gridlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveBlockedReverts(t *testing.T) {
	a := item("a", 0, 0, 10, 10)
	b := item("b", 0, 50, 10, 10)

	moved := Move(Layout{a, b}, b, 5, 5)

	assert.False(t, moved)
	assert.Equal(t, 0.0, b.X)
	assert.Equal(t, 50.0, b.Y)
	assert.Equal(t, 0.0, a.X, "obstacle is not displaced")
	assert.Equal(t, 0.0, a.Y, "obstacle is not displaced")
}

func TestMoveFreeTarget(t *testing.T) {
	a := item("a", 0, 0, 10, 10)
	b := item("b", 0, 50, 10, 10)

	assert.True(t, Move(Layout{a, b}, b, 30, 30))
	assert.Equal(t, 30.0, b.X)
	assert.Equal(t, 30.0, b.Y)
}

func TestMoveOutOfExistingOverlap(t *testing.T) {
	a := item("a", 0, 0, 10, 10)
	b := item("b", 5, 5, 10, 10)

	assert.True(t, Move(Layout{a, b}, b, 40, 40))
	assert.False(t, Collides(a, b))
}

func TestMoveStaticNeverMoves(t *testing.T) {
	s := &Item{ID: "s", X: 0, Y: 0, W: 10, H: 10, Static: true}

	assert.False(t, Move(Layout{s}, s, 40, 40))
	assert.Equal(t, 0.0, s.X)
	assert.Equal(t, 0.0, s.Y)
}

func TestMoveSamePosition(t *testing.T) {
	a := item("a", 3, 4, 10, 10)
	assert.False(t, Move(Layout{a}, a, 3, 4))
}
