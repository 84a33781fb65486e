// Package app shows an open session in the raylib viewer or the fyne panel.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cadoverlay/internal/session"
)

// App is the raylib viewer of one session
type App struct {
	Camera      CameraState
	Model       ModelData
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState

	session         *session.Session
	logger          *log.Logger
	defaultDistance float64
}

// Run opens the viewer window and blocks until it is closed. The engine is
// ticked once per drawn frame.
func Run(s *session.Session, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if s.Model() == nil {
		return fmt.Errorf("viewer: no model loaded")
	}

	width, height := s.Size()
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(width), int32(height), "cadoverlay - "+filepath.Base(s.Config.Model))
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(s.Config.Layout.FPS))
	rl.SetExitKey(0)

	app := &App{
		View: ViewSettings{
			showWireframe: true,
			showFilled:    true,
			showHelp:      true,
		},
		session: s,
		logger:  logger,
	}
	if cam := s.Scene.ViewCamera(); cam != nil {
		app.defaultDistance = cam.Distance
	}

	if fw, err := s.Watch(&app.FileWatch.changes); err != nil {
		logger.Warn("auto-reload not available", "err", err)
	} else {
		app.FileWatch.fileWatcher = fw
		defer fw.Close()
	}

	app.UI.font = rl.GetFontDefault()
	app.Model.material = rl.LoadMaterialDefault()
	app.refreshMesh()
	defer func() { rl.UnloadMesh(&app.Model.mesh) }()

	for !rl.WindowShouldClose() {
		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Reloads run here so the mesh upload stays on the main thread
		if changed := app.FileWatch.changes.Drain(); len(changed) > 0 {
			s.ApplyChanges(changed)
			app.refreshMesh()
		}

		app.handleInput()
		s.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		app.measureLabels()
		s.Advance(rl.GetFrameTime())
		app.syncCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showFilled {
			rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		rl.EndMode3D()

		app.drawOverlay()
		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}
