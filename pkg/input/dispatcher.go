package input

// Dispatcher fans surface events out to subscribed handlers. It is not
// goroutine safe: the host pumps events and controllers subscribe from the
// same loop, so everything runs between frame boundaries.
type Dispatcher struct {
	width  float64
	height float64

	nextID      uint32
	dispatching int // nesting depth of in-flight emits
	pointerDown []handler[PointerEvent]
	pointerMove []handler[PointerEvent]
	pointerUp   []handler[PointerEvent]
	wheel       []handler[WheelEvent]
	pinch       []handler[PinchEvent]
	resize      []handler[ResizeEvent]
	orientation []handler[OrientationEvent]
}

type handler[E any] struct {
	id uint32
	fn func(E)
}

// Handle identifies one subscription so its owner can remove it again.
// Remove is idempotent.
type Handle struct {
	remove func()
}

// Remove unregisters the subscription. Safe to call more than once.
func (h Handle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

// NewDispatcher creates a dispatcher for a surface of the given size
func NewDispatcher(width, height float64) *Dispatcher {
	return &Dispatcher{width: width, height: height}
}

// Size returns the current surface size in pixels
func (d *Dispatcher) Size() (width, height float64) {
	return d.width, d.height
}

// ListenerCount returns how many handlers are currently subscribed.
// Teardown tests use this to assert controllers release everything.
func (d *Dispatcher) ListenerCount() int {
	return countHandlers(d.pointerDown) + countHandlers(d.pointerMove) +
		countHandlers(d.pointerUp) + countHandlers(d.wheel) +
		countHandlers(d.pinch) + countHandlers(d.resize) +
		countHandlers(d.orientation)
}

func subscribe[E any](d *Dispatcher, list *[]handler[E], fn func(E)) Handle {
	if d.dispatching == 0 {
		*list = compactHandlers(*list)
	}
	d.nextID++
	id := d.nextID
	*list = append(*list, handler[E]{id: id, fn: fn})
	return Handle{remove: func() { markRemoved(*list, id) }}
}

// markRemoved nils out the handler in place instead of shifting the slice.
// An emit may be walking this slice right now; it skips nil entries, so a
// handler removed mid-dispatch never fires and later handlers still do.
func markRemoved[E any](s []handler[E], id uint32) {
	for i := range s {
		if s[i].id == id {
			s[i].fn = nil
			return
		}
	}
}

func compactHandlers[E any](s []handler[E]) []handler[E] {
	kept := s[:0]
	for _, h := range s {
		if h.fn != nil {
			kept = append(kept, h)
		}
	}
	return kept
}

func countHandlers[E any](s []handler[E]) int {
	n := 0
	for _, h := range s {
		if h.fn != nil {
			n++
		}
	}
	return n
}

func emit[E any](d *Dispatcher, list []handler[E], e E) {
	d.dispatching++
	for _, h := range list {
		if h.fn != nil {
			h.fn(e)
		}
	}
	d.dispatching--
}

// OnPointerDown subscribes to pointer press events
func (d *Dispatcher) OnPointerDown(fn func(PointerEvent)) Handle {
	return subscribe(d, &d.pointerDown, fn)
}

// OnPointerMove subscribes to pointer move events
func (d *Dispatcher) OnPointerMove(fn func(PointerEvent)) Handle {
	return subscribe(d, &d.pointerMove, fn)
}

// OnPointerUp subscribes to pointer release and leave events
func (d *Dispatcher) OnPointerUp(fn func(PointerEvent)) Handle {
	return subscribe(d, &d.pointerUp, fn)
}

// OnWheel subscribes to scroll gestures
func (d *Dispatcher) OnWheel(fn func(WheelEvent)) Handle {
	return subscribe(d, &d.wheel, fn)
}

// OnPinch subscribes to pinch gestures
func (d *Dispatcher) OnPinch(fn func(PinchEvent)) Handle {
	return subscribe(d, &d.pinch, fn)
}

// OnResize subscribes to surface size changes
func (d *Dispatcher) OnResize(fn func(ResizeEvent)) Handle {
	return subscribe(d, &d.resize, fn)
}

// OnOrientation subscribes to device orientation samples
func (d *Dispatcher) OnOrientation(fn func(OrientationEvent)) Handle {
	return subscribe(d, &d.orientation, fn)
}

// EmitPointerDown delivers a pointer press to subscribers
func (d *Dispatcher) EmitPointerDown(e PointerEvent) { emit(d, d.pointerDown, e) }

// EmitPointerMove delivers a pointer move to subscribers
func (d *Dispatcher) EmitPointerMove(e PointerEvent) { emit(d, d.pointerMove, e) }

// EmitPointerUp delivers a pointer release to subscribers
func (d *Dispatcher) EmitPointerUp(e PointerEvent) { emit(d, d.pointerUp, e) }

// EmitWheel delivers a scroll gesture to subscribers
func (d *Dispatcher) EmitWheel(e WheelEvent) { emit(d, d.wheel, e) }

// EmitPinch delivers a pinch gesture to subscribers
func (d *Dispatcher) EmitPinch(e PinchEvent) { emit(d, d.pinch, e) }

// EmitResize records the new surface size and notifies subscribers
func (d *Dispatcher) EmitResize(e ResizeEvent) {
	d.width = e.Width
	d.height = e.Height
	emit(d, d.resize, e)
}

// EmitOrientation delivers a device orientation sample to subscribers
func (d *Dispatcher) EmitOrientation(e OrientationEvent) { emit(d, d.orientation, e) }
