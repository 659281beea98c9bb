package view

import (
	"math"

	"github.com/cymmbal/demo-gems/pkg/geometry"
)

// CameraModel composes a camera transform from an orbit-angle pair and a
// scalar radius. Drift owns the angles, zoom owns the radius; neither touches
// the Cartesian position directly, so their writes cannot race on it.
type CameraModel struct {
	*Model

	theta  float64
	phi    float64
	radius float64
}

// NewCameraModel creates a camera model at the canonical forward orientation
func NewCameraModel(easing, threshold float64) *CameraModel {
	return &CameraModel{
		Model: NewModel(easing, threshold),
		phi:   math.Pi / 2,
	}
}

// Orbit returns the composed orbit state
func (c *CameraModel) Orbit() (theta, phi, radius float64) {
	return c.theta, c.phi, c.radius
}

// Radius returns the camera distance from the origin
func (c *CameraModel) Radius() float64 {
	return c.radius
}

// SetOrbitAngles moves the camera on the sphere of the current radius
func (c *CameraModel) SetOrbitAngles(theta, phi float64) {
	c.theta = theta
	c.phi = phi
	c.compose()
}

// SetRadius changes the camera distance, preserving the orbit direction
func (c *CameraModel) SetRadius(radius float64) {
	c.radius = radius
	c.compose()
}

// SeedFromPosition derives the orbit state from a Cartesian position, which
// stays the single source of truth when a scene loads. A zero-length position
// keeps the canonical forward direction.
func (c *CameraModel) SeedFromPosition(pos geometry.Vector3) {
	theta, phi, radius := geometry.CartesianToSpherical(pos)
	if radius == 0 {
		c.theta, c.phi = 0, math.Pi/2
		return
	}
	c.theta, c.phi, c.radius = theta, phi, radius
	c.compose()
}

// compose rewrites the model target from the orbit state, with the rotation
// derived as a look-at toward the origin.
func (c *CameraModel) compose() {
	pos := geometry.SphericalToCartesian(c.theta, c.phi, c.radius)
	rot := geometry.LookAtOrigin(pos)
	c.SetTarget(&pos, &rot)
}
