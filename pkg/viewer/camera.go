package viewer

import (
	"math"

	"github.com/cymmbal/demo-gems/pkg/geometry"
	"github.com/cymmbal/demo-gems/pkg/view"
)

// Camera projects the scene for the software renderer. Its position is fed
// by the eased camera model; it always faces the stone at the origin.
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in radians
}

// NewCamera creates a camera on the forward axis
func NewCamera(distance float64) *Camera {
	return &Camera{
		Position: geometry.NewVector3(0, 0, distance),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4, // 45 degrees
	}
}

// ApplyTransform receives the eased orbit position from the camera model
func (c *Camera) ApplyTransform(t view.Transform) {
	c.Position = t.Position
}

// Project projects a 3D point to 2D screen coordinates
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	// View transformation
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Perspective projection
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}
