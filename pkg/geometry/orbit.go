package geometry

import "math"

// Orbit math for a camera constrained to a sphere around the origin.
// Theta is the azimuth, phi the polar angle measured from +Y, so phi = pi/2
// places the camera on the horizontal plane.

// SphericalToCartesian converts orbit angles and a radius to a position
func SphericalToCartesian(theta, phi, radius float64) Vector3 {
	sinPhi := math.Sin(phi)
	return Vector3{
		X: -radius * sinPhi * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Cos(theta),
	}
}

// CartesianToSpherical derives orbit angles and radius from a position.
// A zero-length position has no defined direction; it maps to the canonical
// forward-facing orientation (theta 0, phi pi/2) at radius 0.
func CartesianToSpherical(pos Vector3) (theta, phi, radius float64) {
	radius = pos.Length()
	if radius == 0 {
		return 0, math.Pi / 2, 0
	}
	phi = math.Acos(Clamp(pos.Y/radius, -1, 1))
	theta = math.Atan2(-pos.X, pos.Z)
	return theta, phi, radius
}

// LookAtOrigin returns the rotation that points a camera at pos toward the
// origin. Pitch comes from the vertical component, yaw from the horizontal
// ones, roll is always 0.
func LookAtOrigin(pos Vector3) EulerRotation {
	dir := pos.Neg().Normalize()
	return EulerRotation{
		X: math.Asin(-dir.Y),
		Y: math.Atan2(dir.X, dir.Z),
	}
}
