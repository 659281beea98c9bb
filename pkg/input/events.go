// Package input abstracts the surface the viewer controls listen to.
// Hosts (raylib window, fyne widget) translate their native events into these
// types and push them through a Dispatcher; controllers subscribe without
// knowing which backend produced the event.
package input

// PointerEvent is a pointer press, move or release on the surface.
// ID 0 is the mouse; touch contacts get distinct ids while they are down.
type PointerEvent struct {
	ID   int
	X, Y float64
}

// WheelEvent is a discrete scroll gesture. Negative DeltaY zooms in.
type WheelEvent struct {
	DeltaY float64
}

// PinchEvent is a two-finger pinch gesture, normalized to wheel semantics:
// negative Delta (fingers apart) zooms in.
type PinchEvent struct {
	Delta float64
}

// ResizeEvent reports a new surface size in pixels.
type ResizeEvent struct {
	Width, Height float64
}

// OrientationEvent carries device tilt angles in degrees. Beta is front-back
// tilt, Gamma left-right. Platforms can deliver events with null angles;
// those are represented as nil and dropped by consumers. ScreenRotation is
// the display rotation in degrees: 0, 90, -90 or 180.
type OrientationEvent struct {
	Beta           *float64
	Gamma          *float64
	ScreenRotation int
}
