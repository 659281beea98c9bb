package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/cymmbal/demo-gems/internal/control"
	"github.com/cymmbal/demo-gems/pkg/gem"
	"github.com/cymmbal/demo-gems/pkg/geometry"
)

// gemToRaylibMesh converts the generated stone to a raylib mesh with facet
// lighting baked into vertex colors, tinted toward a cool sapphire blue.
func gemToRaylibMesh(model *gem.Model) rl.Mesh {
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

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.Normal

		// Flat shading per facet keeps the cut crisp
		lightIntensity := math.Max(0.3, -normal.Dot(lightDir))
		baseColor := 220.0
		r := uint8(baseColor * lightIntensity * 0.45)
		g := uint8(baseColor * lightIntensity * 0.6)
		b := uint8(baseColor * lightIntensity)

		for _, v := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = 0
			texcoords[idx*2+1] = 0
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = 255
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
	}
	if len(normals) > 0 {
		mesh.Normals = &normals[0]
	}
	if len(texcoords) > 0 {
		mesh.Texcoords = &texcoords[0]
	}
	if len(colors) > 0 {
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)

	return mesh
}

func (app *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

	rl.BeginMode3D(app.Camera.camera)
	rl.DrawMesh(app.Gem.mesh, app.Gem.material, app.Gem.pose.transform)
	if app.UI.showWireframe {
		app.drawWireframe()
	}
	rl.EndMode3D()

	if app.UI.showHUD {
		app.drawHUD()
	}

	rl.EndDrawing()
}

// drawWireframe outlines every facet with the stone's current rotation applied
func (app *App) drawWireframe() {
	edgeColor := rl.NewColor(130, 170, 255, 90)
	transform := app.Gem.pose.transform

	for _, triangle := range app.Gem.model.Triangles {
		v1 := rl.Vector3Transform(toRaylib(triangle.V1), transform)
		v2 := rl.Vector3Transform(toRaylib(triangle.V2), transform)
		v3 := rl.Vector3Transform(toRaylib(triangle.V3), transform)

		rl.DrawLine3D(v1, v2, edgeColor)
		rl.DrawLine3D(v2, v3, edgeColor)
		rl.DrawLine3D(v3, v1, edgeColor)
	}
}

func (app *App) drawHUD() {
	textColor := rl.NewColor(200, 210, 230, 255)
	dimColor := rl.NewColor(120, 130, 150, 255)

	rl.DrawText(fmt.Sprintf("zoom %d/%d", app.Control.zoom.Level(), control.MaxZoomLevel), 12, 12, 18, textColor)

	drift := "drift on"
	if !app.UI.driftEnabled {
		drift = "drift off"
	}
	rl.DrawText(drift, 12, 34, 18, textColor)

	if app.Control.rotate.Dragging() {
		rl.DrawText("dragging", 12, 56, 18, textColor)
	}

	rl.DrawText("drag: spin   wheel: zoom   M: drift   W: wireframe   H: hud",
		12, int32(rl.GetScreenHeight())-28, 16, dimColor)
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 12)
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
