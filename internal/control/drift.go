package control

import (
	"math"
	"time"

	"github.com/cymmbal/demo-gems/pkg/geometry"
	"github.com/cymmbal/demo-gems/pkg/input"
	"github.com/cymmbal/demo-gems/pkg/view"
)

// DriftConfig tunes the ambient orbit offset
type DriftConfig struct {
	// MaxDriftDegrees is the largest orbit offset a full deflection maps to
	MaxDriftDegrees float64
	// MaxTiltDegrees normalizes device tilt deltas to [-1, 1]
	MaxTiltDegrees float64
	// InvertDrift flips the horizontal drift direction
	InvertDrift bool
	// LivenessTimeout bounds how long a granted permission may stay silent
	// before it is treated as non-functional
	LivenessTimeout time.Duration
}

// DefaultDriftConfig returns the viewer's stock drift tuning
func DefaultDriftConfig() DriftConfig {
	return DriftConfig{
		MaxDriftDegrees: 8,
		MaxTiltDegrees:  45,
		LivenessTimeout: 2 * time.Second,
	}
}

// PermissionGate asks the platform for motion-sensor access. Platforms that
// need no prompt have a nil gate, which counts as granted.
type PermissionGate interface {
	Request() (granted bool, err error)
}

// PermissionStore persists whether motion access was granted in an earlier
// session, so the overlay is only shown when needed.
type PermissionStore interface {
	MotionGranted() bool
	SetMotionGranted(bool)
}

// Overlay is the blocking prompt shown until motion permission is resolved
type Overlay interface {
	Show()
	Hide()
}

// DriftController computes an ambient orbit offset around the gem from
// pointer hover (desktop) or device tilt (touch platforms). The branch is
// fixed at construction. It owns the camera model's orbit angles; the radius
// belongs to the zoom controller.
type DriftController struct {
	camera   *view.CameraModel
	surface  *input.Dispatcher
	cfg      DriftConfig
	platform Platform

	gate    PermissionGate
	store   PermissionStore
	overlay Overlay
	logf    Logf

	enabled   bool
	listening bool
	live      bool
	deadline  time.Time

	haveRef  bool
	refBeta  float64
	refGamma float64

	pointerHandle     input.Handle
	orientationHandle input.Handle
	cleaned           bool
	now               nowFunc
}

// NewDriftController wires the pointer-hover branch immediately on desktop.
// On touch platforms nothing listens until Start resolves permission.
func NewDriftController(camera *view.CameraModel, surface *input.Dispatcher, platform Platform, cfg DriftConfig, gate PermissionGate, store PermissionStore, overlay Overlay, logf Logf) *DriftController {
	d := &DriftController{
		camera:   camera,
		surface:  surface,
		cfg:      cfg,
		platform: platform,
		gate:     gate,
		store:    store,
		overlay:  overlay,
		logf:     logf,
		enabled:  true,
		now:      time.Now,
	}
	if store == nil {
		d.store = &memoryStore{}
	}
	if !platform.Touch() {
		d.pointerHandle = surface.OnPointerMove(d.handleHover)
	}
	return d
}

// Start begins the orientation branch: listen right away when a previous
// session granted access, otherwise show the permission overlay. No-op on
// desktop, where the hover branch is already live.
func (d *DriftController) Start() {
	if !d.platform.Touch() || d.cleaned {
		return
	}
	if d.store.MotionGranted() {
		d.listen()
		return
	}
	if d.overlay != nil {
		d.overlay.Show()
	}
}

// RequestPermission runs the platform prompt; the host calls it when the
// overlay is tapped. A nil gate counts as granted.
func (d *DriftController) RequestPermission() {
	if !d.platform.Touch() || d.cleaned {
		return
	}

	granted := true
	if d.gate != nil {
		var err error
		granted, err = d.gate.Request()
		if err != nil {
			d.logf.printf("motion permission request failed: %v", err)
			granted = false
		}
	}
	if !granted {
		d.store.SetMotionGranted(false)
		return
	}

	d.store.SetMotionGranted(true)
	if d.overlay != nil {
		d.overlay.Hide()
	}
	d.listen()
}

// SetEnabled freezes or resumes drift updates without touching listeners.
// Re-enabling the tilt branch clears the reference orientation so the next
// sample re-centers.
func (d *DriftController) SetEnabled(enabled bool) {
	d.enabled = enabled
	if enabled && d.platform.Touch() {
		d.haveRef = false
	}
}

// SetTuning replaces the drift range and direction at runtime, for settings
// edited while the viewer is open. The new values take effect on the next
// pointer or orientation sample.
func (d *DriftController) SetTuning(maxDriftDegrees float64, invert bool) {
	d.cfg.MaxDriftDegrees = maxDriftDegrees
	d.cfg.InvertDrift = invert
}

// Update checks orientation liveness: a grant that produced no events by the
// deadline is treated as non-functional, the cached grant is cleared and the
// overlay re-shown. Some platforms report granted yet never deliver a sample.
func (d *DriftController) Update(now time.Time) {
	if !d.listening || d.live || d.deadline.IsZero() || now.Before(d.deadline) {
		return
	}
	d.deadline = time.Time{}
	d.listening = false
	d.orientationHandle.Remove()
	d.store.SetMotionGranted(false)
	d.logf.printf("motion permission granted but no orientation events arrived")
	if d.overlay != nil {
		d.overlay.Show()
	}
}

// Cleanup releases listeners and timers and hides the overlay; idempotent
func (d *DriftController) Cleanup() {
	if d.cleaned {
		return
	}
	d.cleaned = true
	d.pointerHandle.Remove()
	d.orientationHandle.Remove()
	d.listening = false
	d.deadline = time.Time{}
	if d.overlay != nil {
		d.overlay.Hide()
	}
}

func (d *DriftController) listen() {
	d.live = false
	d.haveRef = false
	d.deadline = d.now().Add(d.cfg.LivenessTimeout)
	d.orientationHandle = d.surface.OnOrientation(d.handleOrientation)
	d.listening = true
}

// handleHover maps the pointer offset from the surface center to [-1, 1] on
// both axes and orbits the camera by that fraction of the maximum drift.
func (d *DriftController) handleHover(e input.PointerEvent) {
	if !d.enabled || d.camera == nil || d.cleaned {
		return
	}
	w, h := d.surface.Size()
	if w <= 0 || h <= 0 {
		return
	}
	nx := geometry.Clamp((e.X-w/2)/(w/2), -1, 1)
	// Screen Y grows downward; invert so moving up tilts the view up
	ny := geometry.Clamp(-(e.Y-h/2)/(h/2), -1, 1)
	d.apply(nx, ny, true)
}

// handleOrientation compares a tilt sample against the reference captured on
// the first event; there is no factory calibration, the first reading becomes
// centered. Null angles drop the event.
func (d *DriftController) handleOrientation(e input.OrientationEvent) {
	if d.cleaned {
		return
	}
	d.live = true
	if !d.enabled || d.camera == nil {
		return
	}
	if e.Beta == nil || e.Gamma == nil {
		return
	}

	if !d.haveRef {
		d.refBeta = *e.Beta
		d.refGamma = *e.Gamma
		d.haveRef = true
	}
	dBeta := *e.Beta - d.refBeta
	dGamma := *e.Gamma - d.refGamma

	// Remap the tilt axes for the current screen rotation
	var dx, dy float64
	switch e.ScreenRotation {
	case 90:
		dx, dy = dBeta, -dGamma
	case -90:
		dx, dy = -dBeta, dGamma
	case 180:
		dx, dy = -dGamma, -dBeta
	default:
		dx, dy = dGamma, dBeta
	}

	nx := geometry.Clamp(dx/d.cfg.MaxTiltDegrees, -1, 1)
	ny := geometry.Clamp(dy/d.cfg.MaxTiltDegrees, -1, 1)
	// Handhelds keep the camera level; only tablets map the vertical axis
	d.apply(nx, ny, d.platform == PlatformTablet)
}

// apply orbits the camera around its base orientation. Only the angles move;
// the radius is read through the camera model and never mutated here.
func (d *DriftController) apply(nx, ny float64, vertical bool) {
	maxRad := geometry.DegToRad(d.cfg.MaxDriftDegrees)
	if d.cfg.InvertDrift {
		nx = -nx
	}
	theta := nx * maxRad
	phi := math.Pi / 2
	if vertical {
		phi -= ny * maxRad
	}
	d.camera.SetOrbitAngles(theta, phi)
}

type memoryStore struct {
	granted bool
}

func (m *memoryStore) MotionGranted() bool     { return m.granted }
func (m *memoryStore) SetMotionGranted(b bool) { m.granted = b }
