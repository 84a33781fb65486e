package overlay

import (
	"github.com/philipparndt/cadoverlay/internal/annotation"
	"github.com/philipparndt/cadoverlay/internal/autoposition"
	"github.com/philipparndt/cadoverlay/internal/pinned"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Label timings in seconds
const (
	// FadeDelay keeps a freshly mounted label invisible while the engine
	// settles its first position
	FadeDelay = 0.1
	// MoveDuration is the transition of every later move and of the fade-in
	MoveDuration = 0.05
)

// Label is a floating box that follows the engine's placement
type Label struct {
	Settings annotation.Settings
	Line     *LeaderLine

	registry pinned.Registry
	mounted  bool

	x, y    float64
	toX     float64
	toY     float64
	size    autoposition.Size
	age     float32
	alpha   float64
	tweenX  *gween.Tween
	tweenY  *gween.Tween
	tweenA  *gween.Tween
	settled bool
}

// NewLabel creates an unmounted label for an annotation
func NewLabel(an annotation.Settings, registry pinned.Registry) *Label {
	return &Label{
		Settings: an,
		Line:     NewLeaderLine(an.Color),
		registry: registry,
		size:     autoposition.Size{Width: autoposition.PlaceholderWidth, Height: autoposition.PlaceholderHeight},
	}
}

// UID returns the annotation uid
func (l *Label) UID() string {
	return l.Settings.UID
}

// Title returns the text shown in the label header
func (l *Label) Title() string {
	if l.Settings.Title != "" {
		return l.Settings.Title
	}
	return l.Settings.UID
}

// Mount registers the label as a floating box
func (l *Label) Mount() {
	l.registry.RegisterBox(l.UID(), false, l.Line.Update, l.moveTo)
	l.mounted = true
}

// Unmount removes the box
func (l *Label) Unmount() {
	if !l.mounted {
		return
	}
	l.registry.RemoveBox(l.UID())
	l.mounted = false
}

// Resize reports the rendered size of the label
func (l *Label) Resize(width, height float64) bool {
	l.size = autoposition.Size{Width: width, Height: height}
	return l.registry.OnBoxResize(l.UID(), l.size)
}

// Position returns the current, possibly animated, top-left corner
func (l *Label) Position() geometry.Vector2 {
	return geometry.NewVector2(l.x, l.y)
}

// Rect returns the current screen rectangle
func (l *Label) Rect() geometry.Rect {
	return geometry.NewRect(l.x, l.y, l.size.Width, l.size.Height)
}

// Alpha returns the current opacity
func (l *Label) Alpha() float64 {
	return l.alpha
}

// Tick advances the fade-in, the move transition and the leader line by dt seconds
func (l *Label) Tick(dt float32) {
	l.Line.Tick(dt)

	if !l.settled {
		l.age += dt
		if l.age < FadeDelay {
			return
		}
		l.settled = true
		l.tweenA = gween.New(0, 1, MoveDuration, ease.InOutQuad)
	}

	if l.tweenA != nil {
		v, done := l.tweenA.Update(dt)
		l.alpha = float64(v)
		if done {
			l.alpha = 1
			l.tweenA = nil
		}
	}
	if l.tweenX != nil {
		vx, doneX := l.tweenX.Update(dt)
		vy, doneY := l.tweenY.Update(dt)
		l.x, l.y = float64(vx), float64(vy)
		if doneX && doneY {
			l.x, l.y = l.toX, l.toY
			l.tweenX, l.tweenY = nil, nil
		}
	}
}

// moveTo is the engine's position callback. Until the label fades in moves
// are applied directly so it never slides in from the corner.
func (l *Label) moveTo(x, y float64) {
	l.toX, l.toY = x, y
	if !l.settled {
		l.x, l.y = x, y
		return
	}
	l.tweenX = gween.New(float32(l.x), float32(x), MoveDuration, ease.InOutQuad)
	l.tweenY = gween.New(float32(l.y), float32(y), MoveDuration, ease.InOutQuad)
}
