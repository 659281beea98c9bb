package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/cymmbal/demo-gems/pkg/input"
)

// One wheel notch maps to a gesture large enough to pass the zoom
// controller's noise filter.
const wheelNotch = 40.0

// pumpInput translates raylib's polled state into dispatcher events once per
// frame. The controllers never see raylib types.
func (app *App) pumpInput() {
	surface := app.Control.surface

	if rl.IsWindowResized() {
		surface.EmitResize(input.ResizeEvent{
			Width:  float64(rl.GetScreenWidth()),
			Height: float64(rl.GetScreenHeight()),
		})
	}

	pos := rl.GetMousePosition()
	if pos != app.Control.lastMouse {
		app.Control.lastMouse = pos
		surface.EmitPointerMove(input.PointerEvent{X: float64(pos.X), Y: float64(pos.Y)})
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		surface.EmitPointerDown(input.PointerEvent{X: float64(pos.X), Y: float64(pos.Y)})
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		surface.EmitPointerUp(input.PointerEvent{X: float64(pos.X), Y: float64(pos.Y)})
	}

	// Wheel up zooms in, which the controllers read as negative delta
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		surface.EmitWheel(input.WheelEvent{DeltaY: float64(-wheel) * wheelNotch})
	}

	if rl.IsKeyPressed(rl.KeyW) {
		app.UI.showWireframe = !app.UI.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHUD = !app.UI.showHUD
	}
	if rl.IsKeyPressed(rl.KeyM) {
		app.UI.driftEnabled = !app.UI.driftEnabled
		app.Control.drift.SetEnabled(app.UI.driftEnabled)
	}
}
