package geometry

// EaseInOutQuad is a quadratic ease-in-out curve over t in [0, 1]:
// accelerates through the first half, decelerates through the second.
func EaseInOutQuad(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Lerp interpolates between a and b by t (0 = a, 1 = b)
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
