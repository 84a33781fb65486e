package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cadoverlay/internal/overlay"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
)

const (
	labelFontSize = float32(14)
	labelPadding  = float32(8)
	titleBarSize  = float32(22)
)

// measureLabels reports the rendered size of every label whose title width
// changed, so the engine lays out the real box instead of the placeholder
func (app *App) measureLabels() {
	for _, l := range app.session.Overlay.Labels() {
		size := rl.MeasureTextEx(app.UI.font, l.Title(), labelFontSize, 1)
		w := float64(size.X + labelPadding*2)
		h := float64(size.Y + labelPadding*2)
		if r := l.Rect(); r.W != w || r.H != h {
			l.Resize(w, h)
		}
	}
}

// drawOverlay draws leader lines first, then windows and labels over them
func (app *App) drawOverlay() {
	ov := app.session.Overlay

	for _, w := range ov.Windows() {
		drawLeaderLine(w.Line, 1)
	}
	for _, l := range ov.Labels() {
		drawLeaderLine(l.Line, l.Alpha())
	}

	for _, w := range ov.Windows() {
		rect, ok := ov.WindowRect(w.UID())
		if !ok {
			continue
		}
		app.drawWindow(w, rect)
	}
	for _, l := range ov.Labels() {
		app.drawLabel(l)
	}
}

func drawLeaderLine(line *overlay.LeaderLine, opacity float64) {
	if !line.Visible() {
		return
	}
	c, _ := overlay.ParseColor(line.Color)
	c = overlay.WithAlpha(c, line.Alpha()*opacity)
	rl.DrawLineEx(
		rl.Vector2{X: float32(line.X1), Y: float32(line.Y1)},
		rl.Vector2{X: float32(line.X2), Y: float32(line.Y2)},
		1.5, c)
	rl.DrawCircleV(rl.Vector2{X: float32(line.X1), Y: float32(line.Y1)}, 3, c)
}

func (app *App) drawLabel(l *overlay.Label) {
	alpha := l.Alpha()
	if alpha <= 0 {
		return
	}
	r := toRect(l.Rect())
	c, _ := overlay.ParseColor(l.Settings.Color)

	rl.DrawRectangleRec(r, overlay.WithAlpha(rl.NewColor(0, 0, 0, 200), alpha))
	rl.DrawRectangleLinesEx(r, 1, overlay.WithAlpha(c, alpha))
	rl.DrawTextEx(app.UI.font, l.Title(),
		rl.Vector2{X: r.X + labelPadding, Y: r.Y + labelPadding},
		labelFontSize, 1, overlay.WithAlpha(rl.White, alpha))
}

func (app *App) drawWindow(w *overlay.Window, rect geometry.Rect) {
	r := toRect(rect)
	c, _ := overlay.ParseColor(w.Settings.Color)
	dragging := app.Interaction.dragWindow == w.UID()

	rl.DrawRectangleRec(r, rl.NewColor(20, 24, 32, 230))
	bar := rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: titleBarSize}
	rl.DrawRectangleRec(bar, overlay.WithAlpha(c, 0.35))
	border := c
	if dragging {
		border = rl.White
	}
	rl.DrawRectangleLinesEx(r, 1, border)
	rl.DrawTextEx(app.UI.font, w.Title(), rl.Vector2{X: r.X + labelPadding, Y: r.Y + 4}, labelFontSize, 1, rl.White)

	if w.Settings.Link != nil && w.Settings.Link.URL != "" {
		rl.DrawTextEx(app.UI.font, w.Settings.Link.URL,
			rl.Vector2{X: r.X + labelPadding, Y: r.Y + titleBarSize + labelPadding},
			12, 1, rl.SkyBlue)
	}
}

func toRect(r geometry.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}
}
