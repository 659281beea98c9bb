package control

import (
	"math"
	"time"

	"github.com/cymmbal/demo-gems/pkg/input"
	"github.com/cymmbal/demo-gems/pkg/view"
)

// MaxZoomLevel is the deepest zoom-in level; levels run 0 (out) to 2 (in).
const MaxZoomLevel = 2

// ZoomConfig tunes the zoom controller
type ZoomConfig struct {
	// MobileBreakpointWidth separates the two base-distance regimes
	MobileBreakpointWidth float64
	// MobileBaseDistance is the level-0 camera distance on narrow viewports
	MobileBaseDistance float64
	// DesktopBaseDistance is the level-0 camera distance on wide viewports
	DesktopBaseDistance float64
	// MaxZoomRatio shrinks the distance per level, 0 < ratio < 1
	MaxZoomRatio float64
	// DebounceInterval ignores gestures arriving too soon after an accepted
	// one, so a fast scroll cannot skip levels
	DebounceInterval time.Duration
	// MinGestureMagnitude filters out wheel noise
	MinGestureMagnitude float64
	// ResizeDebounce delays re-applying the distance after a resize
	ResizeDebounce time.Duration
}

// DefaultZoomConfig returns the viewer's stock zoom tuning
func DefaultZoomConfig() ZoomConfig {
	return ZoomConfig{
		MobileBreakpointWidth: 768,
		MobileBaseDistance:    6.5,
		DesktopBaseDistance:   5.0,
		MaxZoomRatio:          0.6,
		DebounceInterval:      200 * time.Millisecond,
		MinGestureMagnitude:   4,
		ResizeDebounce:        150 * time.Millisecond,
	}
}

// ZoomController maintains a discrete zoom level and converts wheel or pinch
// gestures into camera radius changes. A nil camera model makes every
// operation a no-op, since the controller may outlive scene loads.
type ZoomController struct {
	camera  *view.CameraModel
	surface *input.Dispatcher
	cfg     ZoomConfig

	level        int
	width        float64
	lastAccepted time.Time
	resizeDue    time.Time

	handles []input.Handle
	cleaned bool
	now     nowFunc
}

// NewZoomController wires a zoom controller to the surface. The input source
// is chosen once: wheel on desktop, pinch on touch platforms.
func NewZoomController(camera *view.CameraModel, surface *input.Dispatcher, platform Platform, cfg ZoomConfig) *ZoomController {
	z := &ZoomController{
		camera:  camera,
		surface: surface,
		cfg:     cfg,
		now:     time.Now,
	}
	z.width, _ = surface.Size()

	if platform.Touch() {
		z.handles = append(z.handles, surface.OnPinch(func(e input.PinchEvent) {
			z.handleGesture(e.Delta)
		}))
	} else {
		z.handles = append(z.handles, surface.OnWheel(func(e input.WheelEvent) {
			z.handleGesture(e.DeltaY)
		}))
	}
	z.handles = append(z.handles, surface.OnResize(func(e input.ResizeEvent) {
		z.width = e.Width
		z.resizeDue = z.now().Add(z.cfg.ResizeDebounce)
	}))
	return z
}

// Level returns the current zoom level
func (z *ZoomController) Level() int {
	return z.level
}

// SetLevel clamps and applies a level, used to restore a persisted session
func (z *ZoomController) SetLevel(level int) {
	if level < 0 {
		level = 0
	}
	if level > MaxZoomLevel {
		level = MaxZoomLevel
	}
	z.level = level
	z.Apply()
}

// Apply recomputes the camera radius for the current level and breakpoint
func (z *ZoomController) Apply() {
	if z.camera == nil {
		return
	}
	z.camera.SetRadius(z.distanceFor(z.level))
}

// Update runs the debounced resize re-apply. The zoom level survives layout
// changes; only the distance under the new breakpoint is recomputed.
func (z *ZoomController) Update(now time.Time) {
	if z.resizeDue.IsZero() || now.Before(z.resizeDue) {
		return
	}
	z.resizeDue = time.Time{}
	z.Apply()
}

// Cleanup releases the surface subscriptions; idempotent
func (z *ZoomController) Cleanup() {
	if z.cleaned {
		return
	}
	z.cleaned = true
	for _, h := range z.handles {
		h.Remove()
	}
	z.handles = nil
	z.resizeDue = time.Time{}
}

// handleGesture filters a wheel or pinch delta and moves the level by one.
// Negative delta zooms in. Boundary gestures are no-ops and do not consume
// the debounce window.
func (z *ZoomController) handleGesture(delta float64) {
	if z.camera == nil || z.cleaned {
		return
	}
	if math.Abs(delta) < z.cfg.MinGestureMagnitude {
		return
	}
	now := z.now()
	if !z.lastAccepted.IsZero() && now.Sub(z.lastAccepted) < z.cfg.DebounceInterval {
		return
	}

	next := z.level
	if delta < 0 {
		next++
	} else {
		next--
	}
	if next < 0 || next > MaxZoomLevel {
		return
	}

	z.level = next
	z.lastAccepted = now
	z.camera.SetRadius(z.distanceFor(next))
}

func (z *ZoomController) baseDistance() float64 {
	if z.width <= z.cfg.MobileBreakpointWidth {
		return z.cfg.MobileBaseDistance
	}
	return z.cfg.DesktopBaseDistance
}

func (z *ZoomController) distanceFor(level int) float64 {
	return z.baseDistance() * math.Pow(z.cfg.MaxZoomRatio, float64(level))
}
