package control

import (
	"time"

	"github.com/cymmbal/demo-gems/pkg/geometry"
	"github.com/cymmbal/demo-gems/pkg/input"
	"github.com/cymmbal/demo-gems/pkg/view"
)

// dragScale converts pointer pixels to radians at sensitivity 1.0
const dragScale = 0.01

// RotateConfig tunes drag rotation, momentum and auto-return
type RotateConfig struct {
	// Sensitivity scales pixels of drag into rotation
	Sensitivity float64
	// VerticalLimitDegrees clamps the pitch accumulated by dragging
	VerticalLimitDegrees float64
	// DragEasing is the per-frame convergence fraction while spinning
	DragEasing float64
	// Threshold is the residual delta below which the spin settles
	Threshold float64
	// AutoRotateDelay is the idle time before the gem returns to a cardinal
	AutoRotateDelay time.Duration
	// AutoRotateDuration is how long the return animation runs
	AutoRotateDuration time.Duration
}

// DefaultRotateConfig returns the viewer's stock rotation tuning
func DefaultRotateConfig() RotateConfig {
	return RotateConfig{
		Sensitivity:          1.0,
		VerticalLimitDegrees: 35,
		DragEasing:           0.12,
		Threshold:            0.001,
		AutoRotateDelay:      3 * time.Second,
		AutoRotateDuration:   1200 * time.Millisecond,
	}
}

// RotateCallbacks are emitted for the hosting layer, which uses them to
// coordinate drift and zoom behaviour around an active drag.
type RotateCallbacks struct {
	RotationStart      func()
	RotationEnd        func(manual bool)
	AutoRotateComplete func()
}

type rotateState int

const (
	stateIdle rotateState = iota
	stateDragging
	stateReleasing
	stateAutoRotating
)

// RotationController converts drag gestures into free rotation of the gem
// itself, with momentum after release and a timed return to the nearest
// cardinal yaw when idle. Touch rotation is single-finger only: a second
// simultaneous pointer cancels the session so it cannot fight pinch zoom.
type RotationController struct {
	model   *view.Model
	surface *input.Dispatcher
	cfg     RotateConfig
	cb      RotateCallbacks

	enabled  bool
	state    rotateState
	pointers map[int]struct{}
	aborted  bool
	prevX    float64
	prevY    float64

	target  geometry.EulerRotation
	current geometry.EulerRotation

	// one live easing loop at most; starting another while this is set is
	// prevented by the guard
	animating bool
	manual    bool

	armAt     time.Time
	autoStart time.Time
	autoFromX float64
	autoFromY float64
	autoToY   float64

	handles []input.Handle
	cleaned bool
	now     nowFunc
}

// NewRotationController wires drag rotation to the surface
func NewRotationController(model *view.Model, surface *input.Dispatcher, cfg RotateConfig, cb RotateCallbacks) *RotationController {
	r := &RotationController{
		model:    model,
		surface:  surface,
		cfg:      cfg,
		cb:       cb,
		enabled:  true,
		pointers: make(map[int]struct{}),
		now:      time.Now,
	}
	r.handles = append(r.handles,
		surface.OnPointerDown(r.handleDown),
		surface.OnPointerMove(r.handleMove),
		surface.OnPointerUp(r.handleUp),
	)
	return r
}

// Rotation returns the eased rotation the controller is applying
func (r *RotationController) Rotation() geometry.EulerRotation {
	return r.current
}

// TargetRotation returns the rotation being eased toward
func (r *RotationController) TargetRotation() geometry.EulerRotation {
	return r.target
}

// Dragging reports whether a drag session is active
func (r *RotationController) Dragging() bool {
	return r.state == stateDragging
}

// SetEnabled freezes or resumes drag handling without touching listeners.
// Disabling cancels an armed auto-return, aborts a running one where it
// stands and ends any drag session. An in-flight momentum ease still runs
// out to its already-set target; only future target mutation stops.
func (r *RotationController) SetEnabled(enabled bool) {
	if r.enabled == enabled || r.cleaned {
		return
	}
	r.enabled = enabled
	if enabled {
		return
	}

	r.armAt = time.Time{}
	r.manual = false
	r.aborted = false
	r.pointers = make(map[int]struct{})

	switch r.state {
	case stateAutoRotating:
		r.target = r.current
		r.animating = false
		r.state = stateIdle
	case stateDragging:
		r.state = stateReleasing
	}
}

func (r *RotationController) handleDown(e input.PointerEvent) {
	if r.cleaned || !r.enabled {
		return
	}
	r.pointers[e.ID] = struct{}{}

	if len(r.pointers) > 1 {
		// Second finger: this is a pinch, not a rotate. Cancel without
		// applying further motion and stay cancelled until all fingers lift.
		r.aborted = true
		r.state = stateIdle
		r.armAt = time.Time{}
		return
	}
	if r.aborted {
		return
	}

	if r.state == stateAutoRotating {
		// A new drag aborts the return animation where it stands
		r.target = r.current
	}
	r.state = stateDragging
	r.prevX, r.prevY = e.X, e.Y
	r.manual = false
	r.armAt = time.Time{}
	r.animating = true
	if r.cb.RotationStart != nil {
		r.cb.RotationStart()
	}
}

func (r *RotationController) handleMove(e input.PointerEvent) {
	if r.cleaned || !r.enabled || r.state != stateDragging || r.aborted {
		return
	}
	if _, ok := r.pointers[e.ID]; !ok {
		return
	}

	dx := e.X - r.prevX
	dy := e.Y - r.prevY
	r.prevX, r.prevY = e.X, e.Y
	if dx == 0 && dy == 0 {
		return
	}

	limit := geometry.DegToRad(r.cfg.VerticalLimitDegrees)
	r.target.Y += dx * r.cfg.Sensitivity * dragScale
	r.target.X = geometry.Clamp(r.target.X+dy*r.cfg.Sensitivity*dragScale, -limit, limit)
	r.manual = true
}

func (r *RotationController) handleUp(e input.PointerEvent) {
	if r.cleaned || !r.enabled {
		return
	}
	delete(r.pointers, e.ID)
	if len(r.pointers) > 0 {
		return
	}

	if r.aborted {
		r.aborted = false
		return
	}
	if r.state != stateDragging {
		return
	}

	r.state = stateReleasing
	if r.cb.RotationEnd != nil {
		r.cb.RotationEnd(r.manual)
	}
	if r.manual {
		r.armAt = r.now().Add(r.cfg.AutoRotateDelay)
	}
}

// Update advances one animation frame: momentum easing toward the last drag
// target, then the delayed auto-return to the nearest cardinal orientation.
func (r *RotationController) Update(now time.Time) {
	if r.cleaned {
		return
	}

	if r.state == stateAutoRotating {
		r.stepAutoRotate(now)
		return
	}

	if r.animating {
		r.current.X += (r.target.X - r.current.X) * r.cfg.DragEasing
		r.current.Y += (r.target.Y - r.current.Y) * r.cfg.DragEasing
		r.applyToModel()

		if r.state != stateDragging && r.settled() {
			// Pin the yaw exactly so residual float error cannot linger
			r.current.Y = r.target.Y
			r.current.X = r.target.X
			r.applyToModel()
			r.animating = false
			if r.state == stateReleasing && !r.manual {
				r.state = stateIdle
			}
		}
	}

	if !r.armAt.IsZero() && !now.Before(r.armAt) && r.state == stateReleasing && r.manual {
		r.startAutoRotate(now)
	}
}

// Cleanup cancels animation and timers and releases listeners; idempotent
func (r *RotationController) Cleanup() {
	if r.cleaned {
		return
	}
	r.cleaned = true
	for _, h := range r.handles {
		h.Remove()
	}
	r.handles = nil
	r.pointers = make(map[int]struct{})
	r.animating = false
	r.armAt = time.Time{}
	r.state = stateIdle
}

func (r *RotationController) startAutoRotate(now time.Time) {
	r.state = stateAutoRotating
	r.armAt = time.Time{}
	r.autoStart = now
	r.autoFromX = r.current.X
	r.autoFromY = r.current.Y
	r.autoToY = geometry.NearestCardinalYaw(r.current.Y)
}

func (r *RotationController) stepAutoRotate(now time.Time) {
	t := 1.0
	if r.cfg.AutoRotateDuration > 0 {
		t = float64(now.Sub(r.autoStart)) / float64(r.cfg.AutoRotateDuration)
	}
	eased := geometry.EaseInOutQuad(t)

	r.current.X = geometry.Lerp(r.autoFromX, 0, eased)
	r.current.Y = geometry.Lerp(r.autoFromY, r.autoToY, eased)
	r.target = r.current
	r.applyToModel()

	if t >= 1 {
		// Land exactly on the cardinal; the manual flag clears so the
		// return does not re-arm itself
		r.current.X = 0
		r.current.Y = r.autoToY
		r.target = r.current
		r.applyToModel()
		r.state = stateIdle
		r.manual = false
		r.animating = false
		if r.cb.AutoRotateComplete != nil {
			r.cb.AutoRotateComplete()
		}
	}
}

func (r *RotationController) applyToModel() {
	if r.model != nil {
		r.model.SetTargetRotation(r.current)
	}
}

func (r *RotationController) settled() bool {
	return abs(r.target.X-r.current.X) <= r.cfg.Threshold &&
		abs(r.target.Y-r.current.Y) <= r.cfg.Threshold
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
