// Package app hosts the gem viewer in a raylib window: it generates the
// stone, wires the input surface to the zoom, drift and rotation controllers
// and runs the frame loop that steps the eased models.
package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/cymmbal/demo-gems/internal/control"
	"github.com/cymmbal/demo-gems/internal/settings"
	"github.com/cymmbal/demo-gems/pkg/gem"
	"github.com/cymmbal/demo-gems/pkg/input"
	"github.com/cymmbal/demo-gems/pkg/view"
	"github.com/cymmbal/demo-gems/pkg/watcher"
)

// Options carries the command line tuning into the viewer
type Options struct {
	SettingsPath string
	Sensitivity  float64 // drag sensitivity multiplier
	Facets       int     // girdle facet count, 0 for the default cut
	Verbose      bool
}

type App struct {
	Camera   CameraState
	Gem      GemState
	Control  ControlState
	Settings SettingsState
	UI       UIState

	verbose bool
}

// Run starts the viewer and blocks until the window closes
func Run(opts Options) {
	store := settings.NewStore(opts.SettingsPath)

	screenWidth := int32(1280)
	screenHeight := int32(800)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "Demo Gems")
	rl.SetTargetFPS(60)

	cut := gem.DefaultCut()
	if opts.Facets > 0 {
		cut.Facets = opts.Facets
	}
	model := gem.Generate("brilliant", cut)

	app := &App{
		Gem: GemState{
			model: model,
			pose:  &gemPose{transform: rl.MatrixIdentity()},
		},
		UI: UIState{
			showHUD:      true,
			driftEnabled: true,
		},
		verbose: opts.Verbose,
	}
	app.Settings.store = store

	app.Gem.mesh = gemToRaylibMesh(model)
	app.Gem.material = rl.LoadMaterialDefault()

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{Z: 5},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	app.setupControllers(opts)
	app.setupSettingsWatcher()

	for {
		if rl.WindowShouldClose() {
			break
		}
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		if app.Settings.needsReload.Swap(false) {
			app.reloadSettings()
		}

		app.pumpInput()

		now := time.Now()
		app.Control.zoom.Update(now)
		app.Control.drift.Update(now)
		app.Control.rotate.Update(now)

		app.Gem.view.Step()
		app.Camera.model.Step()

		if level := app.Control.zoom.Level(); level != store.Settings().ZoomLevel {
			store.SetZoomLevel(level)
		}

		app.draw()
	}

	app.Control.rotate.Cleanup()
	app.Control.drift.Cleanup()
	app.Control.zoom.Cleanup()
	if app.Settings.fileWatcher != nil {
		app.Settings.fileWatcher.Close()
	}
	rl.UnloadMesh(&app.Gem.mesh)
	rl.CloseWindow()
}

// setupControllers builds the input surface, the eased models and the three
// controllers. The desktop host has no permission gate or overlay; hover
// drift works without either.
func (app *App) setupControllers(opts Options) {
	surface := input.NewDispatcher(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	app.Control.surface = surface

	gemView := view.NewModel(0.35, 0.0005)
	gemView.Bind(app.Gem.pose)
	app.Gem.view = gemView

	cameraModel := view.NewCameraModel(0.1, 0.0005)
	cameraModel.Bind(&cameraRig{camera: &app.Camera.camera})
	app.Camera.model = cameraModel

	s := app.Settings.store.Settings()

	zoomCfg := control.DefaultZoomConfig()
	zoom := control.NewZoomController(cameraModel, surface, control.PlatformDesktop, zoomCfg)
	zoom.SetLevel(s.ZoomLevel)
	cameraModel.Snap()
	app.Control.zoom = zoom

	driftCfg := control.DefaultDriftConfig()
	if s.MaxDriftDegrees > 0 {
		driftCfg.MaxDriftDegrees = s.MaxDriftDegrees
	}
	driftCfg.InvertDrift = s.InvertDrift
	var logf control.Logf
	if app.verbose {
		logf = func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		}
	}
	drift := control.NewDriftController(cameraModel, surface, control.PlatformDesktop,
		driftCfg, nil, app.Settings.store, nil, logf)
	drift.Start()
	app.Control.drift = drift

	rotateCfg := control.DefaultRotateConfig()
	if opts.Sensitivity > 0 {
		rotateCfg.Sensitivity = opts.Sensitivity
	}
	// Suspend camera drift while the gem is being dragged so the two
	// controllers never fight over the pointer gesture.
	callbacks := control.RotateCallbacks{
		RotationStart: func() {
			drift.SetEnabled(false)
			if app.verbose {
				fmt.Println("rotation: drag started")
			}
		},
		RotationEnd: func(manual bool) {
			drift.SetEnabled(true)
			if app.verbose {
				fmt.Printf("rotation: drag ended (manual=%v)\n", manual)
			}
		},
	}
	if app.verbose {
		callbacks.AutoRotateComplete = func() { fmt.Println("rotation: returned to cardinal") }
	}
	app.Control.rotate = control.NewRotationController(gemView, surface, rotateCfg, callbacks)
}

// setupSettingsWatcher reloads drift tuning when the settings file is edited
func (app *App) setupSettingsWatcher() {
	fw, err := watcher.NewSettingsWatcher(app.Settings.store.Path(), 150*time.Millisecond, func() {
		app.Settings.needsReload.Store(true)
	})
	if err != nil {
		fmt.Printf("Warning: Failed to watch settings file: %v\n", err)
		fmt.Println("Live settings reload will not be available")
		return
	}
	fw.Start()
	app.Settings.fileWatcher = fw
}

func (app *App) reloadSettings() {
	app.Settings.store.Reload()
	s := app.Settings.store.Settings()

	max := s.MaxDriftDegrees
	if max <= 0 {
		max = control.DefaultDriftConfig().MaxDriftDegrees
	}
	app.Control.drift.SetTuning(max, s.InvertDrift)

	if app.verbose {
		fmt.Printf("settings reloaded: drift %.1f degrees, invert=%v\n", max, s.InvertDrift)
	}
}
