package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawWireframe renders the deduplicated model edges
func (app *App) drawWireframe() {
	wireframeColor := rl.NewColor(100, 100, 100, 200)
	for _, edge := range app.Model.edges {
		rl.DrawLine3D(toRL(edge[0]), toRL(edge[1]), wireframeColor)
	}
}
