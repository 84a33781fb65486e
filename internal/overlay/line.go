package overlay

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LineFadeDuration is the fade-in of a leader line after its first update, in seconds
const LineFadeDuration = 1.0

// LeaderLine connects an anchor's screen position to the centre of its box
type LeaderLine struct {
	X1, Y1 float64
	X2, Y2 float64
	// Length and Angle (degrees, clockwise from +X in screen space) describe
	// the line as a rotated bar starting at (X1, Y1)
	Length float64
	Angle  float64
	Color  string

	hidden bool
	alpha  float64
	fade   *gween.Tween
}

// NewLeaderLine creates a line that stays hidden until its first update
func NewLeaderLine(color string) *LeaderLine {
	return &LeaderLine{Color: color, hidden: true}
}

// Update places the line between the two points
func (l *LeaderLine) Update(x1, y1, x2, y2 float64) {
	l.X1, l.Y1, l.X2, l.Y2 = x1, y1, x2, y2
	l.Length = math.Hypot(x1-x2, y1-y2)
	l.Angle = math.Atan2(y2-y1, x2-x1) * 180 / math.Pi
	// (0, 0) is the position of a box or anchor that was never placed
	l.hidden = (x1 == 0 && y1 == 0) || (x2 == 0 && y2 == 0) || l.Length == 0

	if l.fade == nil && !l.hidden {
		l.fade = gween.New(0, 1, LineFadeDuration, ease.Linear)
	}
}

// Visible reports whether the line should be drawn
func (l *LeaderLine) Visible() bool {
	return !l.hidden
}

// Alpha returns the current opacity
func (l *LeaderLine) Alpha() float64 {
	if l.hidden {
		return 0
	}
	return l.alpha
}

// Tick advances the fade-in by dt seconds
func (l *LeaderLine) Tick(dt float32) {
	if l.fade == nil {
		return
	}
	v, done := l.fade.Update(dt)
	l.alpha = float64(v)
	if done {
		l.alpha = 1
	}
}
