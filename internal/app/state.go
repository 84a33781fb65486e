package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cadoverlay/pkg/analysis"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/stl"
	"github.com/philipparndt/cadoverlay/pkg/watcher"
)

// CameraState mirrors the session camera into raylib
type CameraState struct {
	camera rl.Camera3D
}

// ModelData holds the GPU copy of the model
type ModelData struct {
	model    *stl.Model // model the mesh was built from
	mesh     rl.Mesh
	material rl.Material
	edges    [][2]geometry.Vector3
	summary  analysis.Summary
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showHelp      bool
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool

	// window being dragged and the grab point inside it
	dragWindow  string
	dragOffsetX float64
	dragOffsetY float64
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher
	changes     watcher.Changes
}

// UIState holds UI-related state
type UIState struct {
	font rl.Font
}
