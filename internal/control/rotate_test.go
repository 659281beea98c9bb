package control

import (
	"math"
	"testing"
	"time"

	"github.com/cymmbal/demo-gems/pkg/input"
	"github.com/cymmbal/demo-gems/pkg/view"
)

func newRotateFixture(cb RotateCallbacks) (*RotationController, *view.Model, *input.Dispatcher, *fakeClock) {
	model := view.NewModel(0.1, 0.001)
	surface := input.NewDispatcher(1000, 800)
	clock := newFakeClock()
	r := NewRotationController(model, surface, DefaultRotateConfig(), cb)
	r.now = clock.now
	return r, model, surface, clock
}

func TestDragAccumulatesYaw(t *testing.T) {
	r, _, surface, _ := newRotateFixture(RotateCallbacks{})

	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 100, Y: 0})

	// 100 px at sensitivity 1.0 is exactly 1.0 rad before easing
	if math.Abs(r.TargetRotation().Y-1.0) > 1e-12 {
		t.Errorf("expected target yaw 1.0, got %v", r.TargetRotation().Y)
	}

	// The eased value approaches the target over frames
	now := time.Now()
	for i := 0; i < 200; i++ {
		r.Update(now)
	}
	if math.Abs(r.Rotation().Y-1.0) > 0.01 {
		t.Errorf("eased yaw should approach 1.0, got %v", r.Rotation().Y)
	}
}

func TestDragClampsPitch(t *testing.T) {
	r, _, surface, _ := newRotateFixture(RotateCallbacks{})
	limit := DefaultRotateConfig().VerticalLimitDegrees * math.Pi / 180

	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 0, Y: 5000})

	if math.Abs(r.TargetRotation().X-limit) > 1e-12 {
		t.Errorf("pitch should clamp at %v, got %v", limit, r.TargetRotation().X)
	}

	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 0, Y: -15000})
	if math.Abs(r.TargetRotation().X+limit) > 1e-12 {
		t.Errorf("pitch should clamp at %v, got %v", -limit, r.TargetRotation().X)
	}
}

func TestSecondPointerCancelsSession(t *testing.T) {
	r, _, surface, _ := newRotateFixture(RotateCallbacks{})

	surface.EmitPointerDown(input.PointerEvent{ID: 1, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 1, X: 50, Y: 0})
	before := r.TargetRotation()

	// Second finger: pinch, not rotate
	surface.EmitPointerDown(input.PointerEvent{ID: 2, X: 200, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 1, X: 400, Y: 300})
	surface.EmitPointerMove(input.PointerEvent{ID: 2, X: 500, Y: 300})

	if r.TargetRotation() != before {
		t.Errorf("rotation accumulated after the second pointer: %v vs %v", r.TargetRotation(), before)
	}

	// Lifting one finger does not resume the cancelled session
	surface.EmitPointerUp(input.PointerEvent{ID: 2})
	surface.EmitPointerMove(input.PointerEvent{ID: 1, X: 600, Y: 0})
	if r.TargetRotation() != before {
		t.Error("cancelled session resumed before all pointers lifted")
	}

	// After all fingers lift, a fresh drag works again
	surface.EmitPointerUp(input.PointerEvent{ID: 1})
	surface.EmitPointerDown(input.PointerEvent{ID: 1, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 1, X: 100, Y: 0})
	if r.TargetRotation() == before {
		t.Error("new session after cancel should rotate again")
	}
}

func TestMomentumConvergesAndPins(t *testing.T) {
	r, _, surface, clock := newRotateFixture(RotateCallbacks{})

	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 80, Y: 10})
	surface.EmitPointerUp(input.PointerEvent{ID: 0})

	target := r.TargetRotation()

	prev := math.Abs(target.Y - r.Rotation().Y)
	for i := 0; i < 500; i++ {
		r.Update(clock.now())
		gap := math.Abs(target.Y - r.Rotation().Y)
		if gap > prev+1e-15 {
			t.Fatalf("momentum gap grew on frame %d: %v > %v", i, gap, prev)
		}
		prev = gap
	}

	// Residual float error is pinned away exactly
	if r.Rotation().Y != target.Y {
		t.Errorf("yaw should pin exactly to %v, got %v", target.Y, r.Rotation().Y)
	}
}

func TestAutoRotateLandsOnCardinal(t *testing.T) {
	completed := false
	r, model, surface, clock := newRotateFixture(RotateCallbacks{
		AutoRotateComplete: func() { completed = true },
	})
	cfg := DefaultRotateConfig()

	// Drag the yaw to 2.0 rad; nearest cardinal is pi
	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 200, Y: 40})
	surface.EmitPointerUp(input.PointerEvent{ID: 0})

	// Let momentum settle, then wait out the idle delay
	for i := 0; i < 300; i++ {
		r.Update(clock.now())
	}
	clock.advance(cfg.AutoRotateDelay + 10*time.Millisecond)
	r.Update(clock.now())

	// Step through the return animation
	steps := 60
	for i := 0; i <= steps; i++ {
		clock.advance(cfg.AutoRotateDuration / time.Duration(steps))
		r.Update(clock.now())
	}

	if !completed {
		t.Fatal("auto-rotation never completed")
	}
	if r.Rotation().Y != math.Pi {
		t.Errorf("yaw must land exactly on pi, got %v", r.Rotation().Y)
	}
	if r.Rotation().X != 0 {
		t.Errorf("pitch must land exactly on 0, got %v", r.Rotation().X)
	}
	if model.Target().Rotation.Y != math.Pi {
		t.Errorf("model target should carry the cardinal yaw, got %v", model.Target().Rotation.Y)
	}

	// Completion clears the manual flag: no re-arm
	clock.advance(cfg.AutoRotateDelay * 2)
	r.Update(clock.now())
	if r.state != stateIdle {
		t.Error("auto-rotation re-armed itself")
	}
}

func TestDragAbortsAutoRotate(t *testing.T) {
	r, _, surface, clock := newRotateFixture(RotateCallbacks{})
	cfg := DefaultRotateConfig()

	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 200, Y: 0})
	surface.EmitPointerUp(input.PointerEvent{ID: 0})

	for i := 0; i < 300; i++ {
		r.Update(clock.now())
	}
	clock.advance(cfg.AutoRotateDelay + 10*time.Millisecond)
	r.Update(clock.now())

	// Partway through the return, a new drag takes over where it stands
	clock.advance(cfg.AutoRotateDuration / 3)
	r.Update(clock.now())
	mid := r.Rotation()

	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	if !r.Dragging() {
		t.Fatal("pointer down should abort auto-rotation into a drag")
	}
	if r.TargetRotation() != mid {
		t.Errorf("aborted auto-rotation should freeze at %v, got %v", mid, r.TargetRotation())
	}
}

func TestReleaseWithoutMotionDoesNotArm(t *testing.T) {
	var endedManual *bool
	r, _, surface, clock := newRotateFixture(RotateCallbacks{
		RotationEnd: func(manual bool) { endedManual = &manual },
	})
	cfg := DefaultRotateConfig()

	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 10, Y: 10})
	surface.EmitPointerUp(input.PointerEvent{ID: 0})

	if endedManual == nil || *endedManual {
		t.Fatal("rotation-end should report no manual rotation")
	}

	clock.advance(cfg.AutoRotateDelay * 2)
	r.Update(clock.now())
	if r.state == stateAutoRotating {
		t.Error("auto-rotation must only arm after manual rotation")
	}
}

func TestRotationCallbacks(t *testing.T) {
	starts := 0
	var manual bool
	_, _, surface, _ := newRotateFixture(RotateCallbacks{
		RotationStart: func() { starts++ },
		RotationEnd:   func(m bool) { manual = m },
	})

	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 30, Y: 0})
	surface.EmitPointerUp(input.PointerEvent{ID: 0})

	if starts != 1 {
		t.Errorf("expected one rotation-start, got %d", starts)
	}
	if !manual {
		t.Error("rotation-end should report manual rotation")
	}
}

func TestDragSuspendsDrift(t *testing.T) {
	camera := view.NewCameraModel(0.1, 0.001)
	camera.SetRadius(10)
	surface := input.NewDispatcher(1000, 800)
	drift := NewDriftController(camera, surface, PlatformDesktop, DefaultDriftConfig(), nil, nil, nil, nil)

	gem := view.NewModel(0.1, 0.001)
	NewRotationController(gem, surface, DefaultRotateConfig(), RotateCallbacks{
		RotationStart: func() { drift.SetEnabled(false) },
		RotationEnd:   func(bool) { drift.SetEnabled(true) },
	})

	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 500, Y: 400})
	frozen := camera.Target().Position
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 900, Y: 100})

	if camera.Target().Position != frozen {
		t.Error("hover during a drag must not drift the camera")
	}

	surface.EmitPointerUp(input.PointerEvent{ID: 0, X: 900, Y: 100})
	surface.EmitPointerMove(input.PointerEvent{X: 900, Y: 100})

	theta, _, _ := camera.Orbit()
	if theta == 0 {
		t.Error("drift should resume once the drag ends")
	}
}

func TestDisableCancelsArmedReturn(t *testing.T) {
	r, _, surface, clock := newRotateFixture(RotateCallbacks{})
	cfg := DefaultRotateConfig()

	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 200, Y: 0})
	surface.EmitPointerUp(input.PointerEvent{ID: 0})
	for i := 0; i < 300; i++ {
		r.Update(clock.now())
	}

	r.SetEnabled(false)
	clock.advance(cfg.AutoRotateDelay * 2)
	r.Update(clock.now())

	if r.state == stateAutoRotating {
		t.Fatal("disable must cancel the armed return")
	}
	if math.Abs(r.Rotation().Y-2.0) > 1e-9 {
		t.Errorf("rotation should stay where it settled, got %v", r.Rotation().Y)
	}

	// Pointer input is ignored while disabled
	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 100, Y: 0})
	surface.EmitPointerUp(input.PointerEvent{ID: 0})
	if math.Abs(r.TargetRotation().Y-2.0) > 1e-9 {
		t.Errorf("disabled controller must not mutate the target, got %v", r.TargetRotation().Y)
	}

	// Re-enabling restores drag handling
	r.SetEnabled(true)
	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 100, Y: 0})
	if math.Abs(r.TargetRotation().Y-3.0) > 1e-9 {
		t.Errorf("re-enabled drag should accumulate yaw, got %v", r.TargetRotation().Y)
	}
}

func TestDisableAbortsRunningReturn(t *testing.T) {
	r, _, surface, clock := newRotateFixture(RotateCallbacks{})
	cfg := DefaultRotateConfig()

	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	surface.EmitPointerMove(input.PointerEvent{ID: 0, X: 200, Y: 0})
	surface.EmitPointerUp(input.PointerEvent{ID: 0})
	for i := 0; i < 300; i++ {
		r.Update(clock.now())
	}
	clock.advance(cfg.AutoRotateDelay + 10*time.Millisecond)
	r.Update(clock.now())

	clock.advance(cfg.AutoRotateDuration / 3)
	r.Update(clock.now())
	mid := r.Rotation().Y
	if mid == 2.0 || mid == math.Pi {
		t.Fatalf("expected the return to be mid-flight, yaw %v", mid)
	}

	r.SetEnabled(false)
	clock.advance(cfg.AutoRotateDuration)
	r.Update(clock.now())

	if r.Rotation().Y != mid {
		t.Errorf("disable must freeze the return where it stands: %v vs %v", mid, r.Rotation().Y)
	}
	if r.TargetRotation().Y != mid {
		t.Errorf("target should hold the frozen yaw, got %v", r.TargetRotation().Y)
	}
	if r.state != stateIdle {
		t.Error("aborted return should leave the controller idle")
	}
}

func TestRotateCleanupReleasesListeners(t *testing.T) {
	surface := input.NewDispatcher(1000, 800)
	baseline := surface.ListenerCount()

	r := NewRotationController(view.NewModel(0.1, 0.001), surface, DefaultRotateConfig(), RotateCallbacks{})
	if surface.ListenerCount() == baseline {
		t.Fatal("controller did not subscribe anything")
	}

	r.Cleanup()
	r.Cleanup()
	if surface.ListenerCount() != baseline {
		t.Errorf("listener count %d, want baseline %d", surface.ListenerCount(), baseline)
	}

	// Events after cleanup are inert
	surface.EmitPointerDown(input.PointerEvent{ID: 0, X: 0, Y: 0})
	r.Update(time.Now())
	if r.Dragging() {
		t.Error("cleaned controller still tracks pointers")
	}
}
