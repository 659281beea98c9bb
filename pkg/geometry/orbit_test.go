package geometry

import (
	"math"
	"testing"
)

func TestSphericalToCartesianForward(t *testing.T) {
	// theta 0, phi pi/2 is the canonical forward position on +Z
	pos := SphericalToCartesian(0, math.Pi/2, 10)

	if math.Abs(pos.X) > 1e-10 || math.Abs(pos.Y) > 1e-10 || math.Abs(pos.Z-10) > 1e-10 {
		t.Errorf("expected (0, 0, 10), got %v", pos)
	}
}

func TestSphericalToCartesianTop(t *testing.T) {
	// phi 0 looks down the +Y axis
	pos := SphericalToCartesian(0, 0, 5)

	if math.Abs(pos.X) > 1e-10 || math.Abs(pos.Y-5) > 1e-10 || math.Abs(pos.Z) > 1e-10 {
		t.Errorf("expected (0, 5, 0), got %v", pos)
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	cases := []struct {
		theta, phi, radius float64
	}{
		{0, math.Pi / 2, 3},
		{0.7, 1.2, 12},
		{-1.1, 0.4, 0.5},
		{2.5, 2.8, 100},
	}

	for _, c := range cases {
		pos := SphericalToCartesian(c.theta, c.phi, c.radius)
		theta, phi, radius := CartesianToSpherical(pos)

		if math.Abs(theta-c.theta) > 1e-9 || math.Abs(phi-c.phi) > 1e-9 || math.Abs(radius-c.radius) > 1e-9 {
			t.Errorf("round trip (%v, %v, %v) gave (%v, %v, %v)",
				c.theta, c.phi, c.radius, theta, phi, radius)
		}
	}
}

func TestSphericalPreservesRadius(t *testing.T) {
	// Sweeping angles at a fixed radius must keep the position on the sphere
	radius := 7.5
	for theta := -3.0; theta <= 3.0; theta += 0.37 {
		for phi := 0.1; phi < math.Pi; phi += 0.29 {
			pos := SphericalToCartesian(theta, phi, radius)
			if math.Abs(pos.Length()-radius) > 1e-9 {
				t.Fatalf("theta %v phi %v: length %v, want %v", theta, phi, pos.Length(), radius)
			}
		}
	}
}

func TestCartesianToSphericalZero(t *testing.T) {
	theta, phi, radius := CartesianToSpherical(Vector3{})

	if theta != 0 || math.Abs(phi-math.Pi/2) > 1e-10 || radius != 0 {
		t.Errorf("zero position should map to the forward default, got (%v, %v, %v)", theta, phi, radius)
	}
}

func TestLookAtOriginLevel(t *testing.T) {
	// Camera on the horizontal plane looks level at the origin
	rot := LookAtOrigin(NewVector3(0, 0, 10))

	if math.Abs(rot.X) > 1e-10 {
		t.Errorf("expected level pitch, got %v", rot.X)
	}
	if math.Abs(math.Abs(rot.Y)-math.Pi) > 1e-10 {
		t.Errorf("expected yaw of pi facing -Z, got %v", rot.Y)
	}
	if rot.Z != 0 {
		t.Errorf("roll must stay 0, got %v", rot.Z)
	}
}

func TestLookAtOriginPitch(t *testing.T) {
	// Camera above the origin pitches down
	rot := LookAtOrigin(NewVector3(0, 10, 10))

	if rot.X <= 0 {
		t.Errorf("expected positive pitch looking down, got %v", rot.X)
	}
	if rot.Z != 0 {
		t.Errorf("roll must stay 0, got %v", rot.Z)
	}
}

func TestNearestCardinalYaw(t *testing.T) {
	cases := []struct {
		yaw, want float64
	}{
		{0, 0},
		{0.3, 0},
		{math.Pi - 0.2, math.Pi},
		{-math.Pi + 0.1, -math.Pi},
		{2 * math.Pi, 2 * math.Pi},
		{2.9 * math.Pi, 3 * math.Pi},
		{-1.4, 0},
		{-1.8, -math.Pi},
	}

	for _, c := range cases {
		got := NearestCardinalYaw(c.yaw)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("NearestCardinalYaw(%v) = %v, want %v", c.yaw, got, c.want)
		}
	}
}
