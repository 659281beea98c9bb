package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/cymmbal/demo-gems/internal/control"
	"github.com/cymmbal/demo-gems/internal/settings"
	"github.com/cymmbal/demo-gems/pkg/gem"
	"github.com/cymmbal/demo-gems/pkg/input"
	"github.com/cymmbal/demo-gems/pkg/view"
	"github.com/cymmbal/demo-gems/pkg/watcher"
)

// CameraState holds the raylib camera and the model that animates it
type CameraState struct {
	camera rl.Camera3D
	model  *view.CameraModel
}

// GemState holds the generated stone and its GPU resources
type GemState struct {
	model    *gem.Model
	mesh     rl.Mesh
	material rl.Material
	view     *view.Model
	pose     *gemPose
}

// ControlState holds the input surface and the three controllers driving it
type ControlState struct {
	surface   *input.Dispatcher
	zoom      *control.ZoomController
	drift     *control.DriftController
	rotate    *control.RotationController
	lastMouse rl.Vector2
}

// SettingsState holds the persisted preferences and their file watcher
type SettingsState struct {
	store       *settings.Store
	fileWatcher *watcher.SettingsWatcher
	needsReload atomic.Bool // set from the watcher goroutine
}

// UIState holds display toggles
type UIState struct {
	showWireframe bool
	showHUD       bool
	driftEnabled  bool
}

// gemPose receives the eased rotation and keeps it as a raylib transform
type gemPose struct {
	transform rl.Matrix
}

func (p *gemPose) ApplyTransform(t view.Transform) {
	p.transform = rl.MatrixRotateXYZ(rl.NewVector3(
		float32(t.Rotation.X),
		float32(t.Rotation.Y),
		float32(t.Rotation.Z),
	))
}

// cameraRig receives the eased orbit position. The camera always faces the
// stone at the origin.
type cameraRig struct {
	camera *rl.Camera3D
}

func (r *cameraRig) ApplyTransform(t view.Transform) {
	r.camera.Position = rl.Vector3{
		X: float32(t.Position.X),
		Y: float32(t.Position.Y),
		Z: float32(t.Position.Z),
	}
	r.camera.Target = rl.Vector3{}
}
