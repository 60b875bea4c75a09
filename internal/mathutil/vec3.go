package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

// Coordinate axes.
var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// VectorToAngles returns the spherical direction of v in degrees.
//
//	phi=0 is the +Z axis.
//	phi=90 theta=0 is the +Y axis.
//	phi=90 theta=90 is the +X axis.
//
// The magnitude of v does not matter.
func VectorToAngles(v Vec3) (theta, phi float64) {
	theta = Rad2Deg(math.Atan2(v[0], v[1]))
	phi = Rad2Deg(math.Atan2(math.Hypot(v[0], v[1]), v[2]))
	return theta, phi
}

// AnglesToVector is the unit vector pointing at (theta, phi), in degrees.
func AnglesToVector(theta, phi float64) Vec3 {
	st, ct := math.Sincos(Deg2Rad(theta))
	sp, cp := math.Sincos(Deg2Rad(phi))
	return Vec3{sp * st, sp * ct, cp}
}
