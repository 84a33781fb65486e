package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cadoverlay/pkg/analysis"
	"github.com/philipparndt/cadoverlay/pkg/geometry"
	"github.com/philipparndt/cadoverlay/pkg/stl"
)

// stlToRaylibMesh converts an STL model to a Raylib mesh with baked lighting
func stlToRaylibMesh(model *stl.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	// Light direction for baked lighting
	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()
	uv := [3][2]float32{{0, 0}, {1, 0}, {0, 1}}

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Min 30% ambient, max 100% diffuse
		light := math.Max(0.3, -normal.Dot(lightDir))
		r := uint8(180 * light * 0.55)
		g := uint8(180 * light * 0.6)
		b := uint8(180 * light * 0.7)

		for i, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = uv[i][0]
			texcoords[idx*2+1] = uv[i][1]
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = 255
			idx++
		}
	}

	if vertexCount > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// refreshMesh rebuilds the GPU mesh after the session reloaded its model
func (app *App) refreshMesh() {
	model := app.session.Model()
	if model == nil || model == app.Model.model {
		return
	}
	old := app.Model.mesh
	hadMesh := app.Model.model != nil

	app.Model.mesh = stlToRaylibMesh(model)
	app.Model.model = model
	app.Model.edges = model.Edges()
	app.Model.summary = analysis.Summarize(model)
	if hadMesh {
		rl.UnloadMesh(&old)
	}
}
