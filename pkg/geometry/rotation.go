package geometry

import "math"

// EulerRotation holds pitch (X), yaw (Y) and roll (Z) in radians.
// Camera and gem motion is constrained to orbit plus spin, so roll stays 0.
type EulerRotation struct {
	X, Y, Z float64
}

// NewEulerRotation creates a rotation from pitch and yaw, roll fixed at 0
func NewEulerRotation(pitch, yaw float64) EulerRotation {
	return EulerRotation{X: pitch, Y: yaw}
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Clamp limits v to the range [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// NearestCardinalYaw returns the multiple of pi (180 degrees) closest to yaw,
// the resting orientation auto-rotation settles on.
func NearestCardinalYaw(yaw float64) float64 {
	return math.Round(yaw/math.Pi) * math.Pi
}

// Apply rotates v about the X, Y and Z axes in that order
func (r EulerRotation) Apply(v Vector3) Vector3 {
	cx, sx := math.Cos(r.X), math.Sin(r.X)
	v.Y, v.Z = v.Y*cx-v.Z*sx, v.Y*sx+v.Z*cx

	cy, sy := math.Cos(r.Y), math.Sin(r.Y)
	v.X, v.Z = v.X*cy+v.Z*sy, -v.X*sy+v.Z*cy

	cz, sz := math.Cos(r.Z), math.Sin(r.Z)
	v.X, v.Y = v.X*cz-v.Y*sz, v.X*sz+v.Y*cz
	return v
}
