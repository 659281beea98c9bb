// Package control translates surface input into view-model targets: zoom
// (discrete distance levels), drift (ambient hover or tilt orbit offset) and
// rotation (drag spin with momentum and auto-return).
//
// Controllers are single-threaded: subscriptions fire from the host's event
// pump and Update runs once per frame, so the most recent target write always
// wins and nothing queues historical deltas. Every controller owns window
// level listeners and must have Cleanup called exactly once by its owner, or
// listeners accumulate across viewer instances.
package control

import "time"

// Platform selects the input branch wired at construction time. The choice
// is fixed for a controller's lifetime.
type Platform int

const (
	// PlatformDesktop uses pointer hover and wheel input
	PlatformDesktop Platform = iota
	// PlatformTablet uses touch with pinch zoom and both tilt axes mapped
	PlatformTablet
	// PlatformHandheld uses touch with pinch zoom and horizontal-only tilt
	PlatformHandheld
)

// Touch reports whether the platform uses touch gestures instead of a mouse
func (p Platform) Touch() bool {
	return p != PlatformDesktop
}

// Logf lets controllers report permission failures without choosing a log
// destination. Nil means silent.
type Logf func(format string, args ...any)

func (l Logf) printf(format string, args ...any) {
	if l != nil {
		l(format, args...)
	}
}

// nowFunc returns the current time; tests swap it for a fake clock
type nowFunc func() time.Time
