package mathutil

import "math"

// RotX returns the counter-clockwise rotation about +X. Angle in radians.
// Stored so that MulVec3 and Mat3Mul compose it like the tensor rotations.
func RotX(a float64) Mat3 {
	s, c := math.Sincos(a)
	return Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// RotZ returns the counter-clockwise rotation about +Z. Angle in radians.
func RotZ(a float64) Mat3 {
	s, c := math.Sincos(a)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// EulerToMat3 builds three successive counter-clockwise rotations: about +Z
// by z1, then +X by x, then +Z by z2. Angles in degrees.
//
// EulerToMat3(theta, phi, 0) rotates the direction (theta, phi) onto +Z.
func EulerToMat3(z1, x, z2 float64) Mat3 {
	m := Mat3Mul(RotZ(Deg2Rad(z1)), Mat3Identity())
	m = Mat3Mul(RotX(Deg2Rad(x)), m)
	return Mat3Mul(RotZ(Deg2Rad(z2)), m)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
