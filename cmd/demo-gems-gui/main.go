package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/cymmbal/demo-gems/internal/control"
	"github.com/cymmbal/demo-gems/internal/settings"
	"github.com/cymmbal/demo-gems/pkg/gem"
	"github.com/cymmbal/demo-gems/pkg/input"
	"github.com/cymmbal/demo-gems/pkg/view"
	"github.com/cymmbal/demo-gems/pkg/viewer"
)

type App struct {
	window   fyne.Window
	store    *settings.Store
	renderer *viewer.GemRenderer

	gemView     *view.Model
	cameraModel *view.CameraModel

	zoom   *control.ZoomController
	drift  *control.DriftController
	rotate *control.RotationController

	// driftWanted mirrors the drift checkbox so a finished drag only
	// resumes drift the user has not switched off.
	driftWanted bool

	zoomLabel *widget.Label
}

func main() {
	a := fyneapp.New()
	w := a.NewWindow("Demo Gems")

	appInstance := &App{
		window: w,
		store:  settings.NewStore(settingsPath()),
	}
	appInstance.setupScene()
	appInstance.setupMainUI()
	appInstance.startFrameLoop()

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func settingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "demo-gems-settings.json"
	}
	return filepath.Join(dir, "demo-gems", "settings.json")
}

func (a *App) setupScene() {
	model := gem.Generate("brilliant", gem.DefaultCut())
	surface := input.NewDispatcher(800, 800)

	pose := &viewer.Pose{}
	gemView := view.NewModel(0.35, 0.0005)
	gemView.Bind(pose)
	a.gemView = gemView

	camera := viewer.NewCamera(5)
	cameraModel := view.NewCameraModel(0.1, 0.0005)
	cameraModel.Bind(camera)
	a.cameraModel = cameraModel

	s := a.store.Settings()

	a.zoom = control.NewZoomController(cameraModel, surface, control.PlatformDesktop, control.DefaultZoomConfig())
	a.zoom.SetLevel(s.ZoomLevel)
	cameraModel.Snap()

	driftCfg := control.DefaultDriftConfig()
	if s.MaxDriftDegrees > 0 {
		driftCfg.MaxDriftDegrees = s.MaxDriftDegrees
	}
	driftCfg.InvertDrift = s.InvertDrift
	a.drift = control.NewDriftController(cameraModel, surface, control.PlatformDesktop,
		driftCfg, nil, a.store, nil, nil)
	a.drift.Start()
	a.driftWanted = true

	a.rotate = control.NewRotationController(gemView, surface, control.DefaultRotateConfig(), control.RotateCallbacks{
		RotationStart: func() { a.drift.SetEnabled(false) },
		RotationEnd: func(manual bool) {
			if a.driftWanted {
				a.drift.SetEnabled(true)
			}
		},
	})

	a.renderer = viewer.NewGemRenderer(model, camera, pose, surface)
}

func (a *App) setupMainUI() {
	a.zoomLabel = widget.NewLabel(fmt.Sprintf("Zoom: %d", a.zoom.Level()))

	driftCheck := widget.NewCheck("Ambient drift", func(checked bool) {
		a.driftWanted = checked
		a.drift.SetEnabled(checked)
	})
	driftCheck.SetChecked(true)

	invertCheck := widget.NewCheck("Invert drift", func(checked bool) {
		s := a.store.Settings()
		max := s.MaxDriftDegrees
		if max <= 0 {
			max = control.DefaultDriftConfig().MaxDriftDegrees
		}
		a.drift.SetTuning(max, checked)
	})
	invertCheck.SetChecked(a.store.Settings().InvertDrift)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to spin the stone\n" +
			"• Scroll to zoom in steps\n" +
			"• Move the mouse to drift the view\n" +
			"• Release after a spin and wait:\n" +
			"  the stone returns to face you",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Viewer:"),
		widget.NewSeparator(),
		a.zoomLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		driftCheck,
		invertCheck,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(240, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.renderer, // center
	)

	a.window.SetContent(content)
}

// startFrameLoop steps the controllers and eased models at ~60 fps on the
// fyne UI thread
func (a *App) startFrameLoop() {
	ticker := time.NewTicker(time.Second / 60)
	go func() {
		for range ticker.C {
			fyne.Do(a.frame)
		}
	}()
	a.window.SetOnClosed(func() {
		ticker.Stop()
		a.rotate.Cleanup()
		a.drift.Cleanup()
		a.zoom.Cleanup()
	})
}

func (a *App) frame() {
	now := time.Now()
	a.zoom.Update(now)
	a.drift.Update(now)
	a.rotate.Update(now)

	gemSettled := a.gemView.Step()
	cameraSettled := a.cameraModel.Step()

	if level := a.zoom.Level(); level != a.store.Settings().ZoomLevel {
		a.store.SetZoomLevel(level)
		a.zoomLabel.SetText(fmt.Sprintf("Zoom: %d", level))
	}

	if !gemSettled || !cameraSettled {
		size := a.renderer.Size()
		a.renderer.Render(float64(size.Width), float64(size.Height))
	}
}
