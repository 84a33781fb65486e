package app

import (
	"image/color"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/charmbracelet/log"
	"github.com/philipparndt/cadoverlay/internal/autoposition"
	"github.com/philipparndt/cadoverlay/internal/overlay"
	"github.com/philipparndt/cadoverlay/internal/session"
	"github.com/philipparndt/cadoverlay/pkg/stl"
	"github.com/philipparndt/cadoverlay/pkg/viewer"
	"github.com/philipparndt/cadoverlay/pkg/watcher"
)

// Panel shows a session in a fyne window. The engine is ticked by the
// renderer after every frame it draws.
type Panel struct {
	session  *session.Session
	renderer *viewer.ModelRenderer
	logger   *log.Logger
	changes  watcher.Changes
	model    *stl.Model
}

// RunPanel opens the fyne panel and blocks until the window is closed
func RunPanel(s *session.Session, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	a := fyneapp.New()
	w := a.NewWindow("cadoverlay - " + filepath.Base(s.Config.Model))

	p := &Panel{
		session:  s,
		renderer: viewer.NewModelRenderer(s.Model(), s.Scene.ViewCamera()),
		logger:   logger,
		model:    s.Model(),
	}
	p.renderer.SetOverlay(p.objects)
	p.renderer.SetOnResize(s.Resize)
	p.renderer.SetOnTapped(p.tapped)

	hook := autoposition.NewRenderHook(s)
	hook.Install(p.renderer)
	defer hook.Uninstall()

	if fw, err := s.Watch(&p.changes); err != nil {
		logger.Warn("auto-reload not available", "err", err)
	} else {
		defer fw.Close()
	}

	// Fyne only draws on change, the animation keeps frames coming so
	// labels keep following the anchors
	frames := fyne.NewAnimation(time.Second, func(float32) {
		p.applyChanges()
		p.renderer.Redraw()
	})
	frames.Curve = fyne.AnimationLinear
	frames.RepeatCount = fyne.AnimationRepeatForever
	frames.Start()
	defer frames.Stop()

	width, height := s.Size()
	w.SetContent(p.renderer)
	w.Resize(fyne.NewSize(float32(width), float32(height)))
	w.ShowAndRun()
	return nil
}

func (p *Panel) applyChanges() {
	changed := p.changes.Drain()
	if len(changed) == 0 {
		return
	}
	p.session.ApplyChanges(changed)
	if m := p.session.Model(); m != p.model {
		p.model = m
		p.renderer.SetModel(m, p.session.Scene.ViewCamera())
	}
}

// tapped unpins a tapped window and pins a tapped label
func (p *Panel) tapped(x, y float64) {
	ov := p.session.Overlay
	if uid, ok := ov.Grid().HitTest(x, y); ok {
		if err := p.session.Unpin(uid); err != nil {
			p.logger.Error("unpin failed", "id", uid, "err", err)
		}
		return
	}
	if l, ok := ov.LabelAt(x, y); ok {
		if err := p.session.Pin(l.UID()); err != nil {
			p.logger.Error("pin failed", "id", l.UID(), "err", err)
		}
	}
}

// objects builds the overlay canvas objects for the frame being drawn
func (p *Panel) objects() []fyne.CanvasObject {
	ov := p.session.Overlay
	var objs []fyne.CanvasObject

	for _, w := range ov.Windows() {
		if line := leaderLine(w.Line, 1); line != nil {
			objs = append(objs, line)
		}
	}
	for _, l := range ov.Labels() {
		if line := leaderLine(l.Line, l.Alpha()); line != nil {
			objs = append(objs, line)
		}
	}

	for _, w := range ov.Windows() {
		rect, ok := ov.WindowRect(w.UID())
		if !ok {
			continue
		}
		c, _ := overlay.ParseColor(w.Settings.Color)
		objs = append(objs, box(rect.X, rect.Y, rect.W, rect.H, color.RGBA{20, 24, 32, 230}, c))
		objs = append(objs, text(w.Title(), rect.X+8, rect.Y+4, color.White))
	}

	for _, l := range ov.Labels() {
		p.measure(l)
		alpha := l.Alpha()
		if alpha <= 0 {
			continue
		}
		r := l.Rect()
		c, _ := overlay.ParseColor(l.Settings.Color)
		objs = append(objs, box(r.X, r.Y, r.W, r.H, straight(color.RGBA{0, 0, 0, 200}, alpha), straight(c, alpha)))
		objs = append(objs, text(l.Title(), r.X+float64(labelPadding), r.Y+float64(labelPadding)/2, straight(color.RGBA{255, 255, 255, 255}, alpha)))
	}
	return objs
}

// measure reports the rendered label size when its title width changed
func (p *Panel) measure(l *overlay.Label) {
	size := fyne.MeasureText(l.Title(), labelFontSize, fyne.TextStyle{})
	w := float64(size.Width + labelPadding*2)
	h := float64(size.Height + labelPadding)
	if r := l.Rect(); r.W != w || r.H != h {
		l.Resize(w, h)
	}
}

func leaderLine(l *overlay.LeaderLine, opacity float64) *canvas.Line {
	if !l.Visible() {
		return nil
	}
	c, _ := overlay.ParseColor(l.Color)
	line := canvas.NewLine(straight(c, l.Alpha()*opacity))
	line.StrokeWidth = 1.5
	line.Position1 = fyne.NewPos(float32(l.X1), float32(l.Y1))
	line.Position2 = fyne.NewPos(float32(l.X2), float32(l.Y2))
	return line
}

// straight fades c for fyne, which reads color.RGBA as premultiplied
func straight(c color.RGBA, alpha float64) color.NRGBA {
	c = overlay.WithAlpha(c, alpha)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func box(x, y, w, h float64, fill, stroke color.Color) *canvas.Rectangle {
	r := canvas.NewRectangle(fill)
	r.StrokeColor = stroke
	r.StrokeWidth = 1
	r.Move(fyne.NewPos(float32(x), float32(y)))
	r.Resize(fyne.NewSize(float32(w), float32(h)))
	return r
}

func text(s string, x, y float64, c color.Color) *canvas.Text {
	t := canvas.NewText(s, c)
	t.TextSize = labelFontSize
	t.Move(fyne.NewPos(float32(x), float32(y)))
	return t
}
