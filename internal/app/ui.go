package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cadoverlay/version"
)

// drawUI draws the user interface
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	font := app.UI.font
	model := app.Model.model
	ov := app.session.Overlay

	// === SCENE ===
	rl.DrawTextEx(font, "Scene:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	rl.DrawTextEx(font, fmt.Sprintf("  Model: %s", model.Name), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	rl.DrawTextEx(font, fmt.Sprintf("  Triangles: %d", model.TriangleCount()), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	size := app.Model.summary.Dimensions
	rl.DrawTextEx(font, fmt.Sprintf("  Size: %.2f x %.2f x %.2f", size.X, size.Y, size.Z), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	rl.DrawTextEx(font, fmt.Sprintf("  Surface Area: %.2f", app.Model.summary.SurfaceArea), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight
	rl.DrawTextEx(font, fmt.Sprintf("  Labels: %d | Windows: %d", len(ov.Labels()), len(ov.Windows())), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(100, 200, 255, 255))
	y += lineHeight * 2

	if app.View.showHelp {
		// === VIEW ===
		rl.DrawTextEx(font, "View:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		rl.DrawTextEx(font, "  Home: Reset | T: Top | B: Bottom", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(font, "  1: Front | 2: Back | 3: Left | 4: Right", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight * 2

		// === NAVIGATE ===
		rl.DrawTextEx(font, "Navigate:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		rl.DrawTextEx(font, "  Left Drag: Rotate | Shift+Drag: Pan", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(font, "  Mouse Wheel: Zoom | Middle: Pan", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(font, "  W: Wireframe | F: Fill | H: Help", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight * 2

		// === ANNOTATIONS ===
		rl.DrawTextEx(font, "Annotations:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		rl.DrawTextEx(font, "  P: Pin label under cursor", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(144, 238, 144, 255))
		y += lineHeight
		rl.DrawTextEx(font, "  U: Unpin window under cursor", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(255, 200, 100, 255))
		y += lineHeight
		rl.DrawTextEx(font, "  X: Close label or window under cursor", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(255, 140, 140, 255))
		y += lineHeight
		rl.DrawTextEx(font, "  Drag window: Move | [ ]: Resize", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
	}

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(font, versionText, fontSize12, 1).X
	rl.DrawTextEx(font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}
