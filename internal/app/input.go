package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	mx, my := float64(mouse.X), float64(mouse.Y)

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.setCameraBottomView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraBackView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraLeftView()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.setCameraRightView()
	}

	// Display toggles
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}

	app.handlePinKeys(mx, my)
	app.handleWindowResize(mx, my)

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		if cam := app.viewCamera(); cam != nil {
			cam.Zoom(-float64(wheel) * 0.1)
		}
	}

	grid := app.session.Overlay.Grid()

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = mouse
		app.Interaction.mouseMoved = false
		// Pan if Shift is pressed
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		app.Interaction.isPanning = shiftPressed

		if uid, ok := grid.HitTest(mx, my); ok && !shiftPressed {
			rect, _ := grid.Rect(uid)
			app.Interaction.dragWindow = uid
			app.Interaction.dragOffsetX = mx - rect.X
			app.Interaction.dragOffsetY = my - rect.Y
		}
	}

	switch {
	case app.Interaction.dragWindow != "" && rl.IsMouseButtonDown(rl.MouseLeftButton):
		// Dragging a pinned window snaps it to the grid
		uid := app.Interaction.dragWindow
		if err := grid.DragPixels(uid, mx-app.Interaction.dragOffsetX, my-app.Interaction.dragOffsetY); err != nil {
			app.logger.Warn("drag failed", "id", uid, "err", err)
			app.Interaction.dragWindow = ""
		}

	case (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton):
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.doPan(delta)
		}

	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		// Camera rotation with mouse drag
		delta := rl.GetMouseDelta()
		if math.Abs(float64(delta.X)) > 1.0 || math.Abs(float64(delta.Y)) > 1.0 {
			app.Interaction.mouseMoved = true
		}
		if cam := app.viewCamera(); cam != nil && (delta.X != 0 || delta.Y != 0) {
			cam.Rotate(-float64(delta.Y)*0.01, float64(delta.X)*0.01)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Interaction.dragWindow = ""
		app.Interaction.isPanning = false
	}
}

// handlePinKeys pins the label under the cursor with P, unpins the window
// under the cursor with U and closes either with X
func (app *App) handlePinKeys(mx, my float64) {
	if rl.IsKeyPressed(rl.KeyP) {
		if l, ok := app.session.Overlay.LabelAt(mx, my); ok {
			if err := app.session.Pin(l.UID()); err != nil {
				app.logger.Error("pin failed", "id", l.UID(), "err", err)
			}
		}
	}
	if rl.IsKeyPressed(rl.KeyU) {
		if uid, ok := app.session.Overlay.Grid().HitTest(mx, my); ok {
			if err := app.session.Unpin(uid); err != nil {
				app.logger.Error("unpin failed", "id", uid, "err", err)
			}
		}
	}
	if rl.IsKeyPressed(rl.KeyX) {
		uid, ok := app.session.Overlay.Grid().HitTest(mx, my)
		if !ok {
			if l, found := app.session.Overlay.LabelAt(mx, my); found {
				uid, ok = l.UID(), true
			}
		}
		if ok {
			if err := app.session.Hide(uid); err != nil {
				app.logger.Error("hide failed", "id", uid, "err", err)
			}
		}
	}
}

// handleWindowResize grows or shrinks the window under the cursor by one
// grid cell with ] and [
func (app *App) handleWindowResize(mx, my float64) {
	delta := 0.0
	if rl.IsKeyPressed(rl.KeyRightBracket) {
		delta = 1
	}
	if rl.IsKeyPressed(rl.KeyLeftBracket) {
		delta = -1
	}
	if delta == 0 {
		return
	}

	grid := app.session.Overlay.Grid()
	uid, ok := grid.HitTest(mx, my)
	if !ok {
		return
	}
	it, _ := grid.Item(uid)
	if err := grid.Resize(uid, math.Max(1, it.W+delta), math.Max(1, it.H+delta)); err != nil {
		app.logger.Warn("resize failed", "id", uid, "err", err)
	}
}
