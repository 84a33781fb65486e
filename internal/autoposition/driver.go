package autoposition

import (
	"context"
	"sync"
	"time"
)

// DefaultFPS is the tick rate of a FrameLoop created with fps <= 0
const DefaultFPS = 60

// Ticker runs one positioning tick
type Ticker interface {
	UpdatePosition()
}

// FrameLoop drives a Ticker at a fixed rate from the calling goroutine,
// standing in for a display animation-frame callback.
type FrameLoop struct {
	ticker   Ticker
	interval time.Duration
	frames   int
	stop     chan struct{}
	stopOnce sync.Once

	// Before runs ahead of every tick, typically to advance scene animation
	Before func()
	// Limit stops the loop after that many ticks when positive
	Limit int
}

// NewFrameLoop creates a loop ticking t at fps frames per second
func NewFrameLoop(t Ticker, fps int) *FrameLoop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &FrameLoop{
		ticker:   t,
		interval: time.Second / time.Duration(fps),
		stop:     make(chan struct{}),
	}
}

// Unthrottled makes the loop tick as fast as possible, used for headless runs
func (f *FrameLoop) Unthrottled() *FrameLoop {
	f.interval = 0
	return f
}

// Frames returns the number of ticks run so far
func (f *FrameLoop) Frames() int {
	return f.frames
}

// Stop ends a running loop after the current tick. It may be called from
// Before or from another goroutine.
func (f *FrameLoop) Stop() {
	f.stopOnce.Do(func() { close(f.stop) })
}

// Run ticks until ctx is done, Stop is called or Limit is reached. A
// cancelled context returns the context error, the other two return nil.
func (f *FrameLoop) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if f.interval > 0 {
		t := time.NewTicker(f.interval)
		defer t.Stop()
		tick = t.C
	}

	for f.Limit <= 0 || f.frames < f.Limit {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-f.stop:
				return nil
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-f.stop:
				return nil
			default:
			}
		}

		if f.Before != nil {
			f.Before()
		}
		f.ticker.UpdatePosition()
		f.frames++
	}
	return nil
}

// RenderNotifier is a renderer that calls back after each rendered frame
type RenderNotifier interface {
	SetOnRendered(fn func())
}

// RenderHook ticks an engine from a renderer's after-render callback so
// positioning always sees the matrices of the frame just drawn.
type RenderHook struct {
	ticker   Ticker
	notifier RenderNotifier
}

// NewRenderHook creates an uninstalled hook for t
func NewRenderHook(t Ticker) *RenderHook {
	return &RenderHook{ticker: t}
}

// Install attaches the hook to n, detaching it from any previous renderer
func (h *RenderHook) Install(n RenderNotifier) {
	h.Uninstall()
	n.SetOnRendered(h.ticker.UpdatePosition)
	h.notifier = n
}

// Uninstall detaches the hook. It is safe to call when not installed.
func (h *RenderHook) Uninstall() {
	if h.notifier == nil {
		return
	}
	h.notifier.SetOnRendered(nil)
	h.notifier = nil
}
