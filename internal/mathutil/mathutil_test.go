package mathutil

import (
	"math"
	"testing"
)

const eps = 1e-12

func vecEq(a, b Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func maxAbsDiff(a, b Mat3) float64 {
	var d float64
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}
	return d
}

func det(m Mat3) float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

func isOrthonormal(t *testing.T, name string, m Mat3) {
	t.Helper()
	if d := maxAbsDiff(Mat3Mul(m, m.Transpose()), Mat3Identity()); d > 1e-12 {
		t.Fatalf("%s: R·Rᵀ != I (max diff %.3g)\n%v", name, d, m)
	}
	if d := det(m); math.Abs(d-1) > 1e-12 {
		t.Fatalf("%s: det = %.15g, want 1", name, d)
	}
}

func TestMat3MulOrder(t *testing.T) {
	a := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := Mat3{0, 1, 0, 0, 0, 1, 1, 0, 0}

	// m[i][j] = Σ a[l][j]·b[i][l], which is b × a in textbook order.
	want := Mat3{
		4, 5, 6,
		7, 8, 9,
		1, 2, 3,
	}
	if have := Mat3Mul(a, b); have != want {
		t.Fatalf("Mat3Mul\nhave %v\nwant %v", have, want)
	}
	if have := Mat3Mul(Mat3Identity(), a); have != a {
		t.Fatalf("Mat3Mul(I, a)\nhave %v\nwant %v", have, a)
	}
}

func TestMulVec3AppliesTranspose(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	// w[i] = Σ m[j][i]·v[j]
	if have, want := m.MulVec3(Vec3{1, 0, 0}), (Vec3{1, 2, 3}); have != want {
		t.Fatalf("MulVec3(x)\nhave %v\nwant %v", have, want)
	}
	if have, want := m.MulVec3(Vec3{1, 1, 1}), (Vec3{12, 15, 18}); have != want {
		t.Fatalf("MulVec3(1,1,1)\nhave %v\nwant %v", have, want)
	}
}

func TestTranspose(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	want := Mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}
	if have := m.Transpose(); have != want {
		t.Fatalf("Transpose\nhave %v\nwant %v", have, want)
	}
	if m.Transpose().Transpose() != m {
		t.Fatal("Transpose is not an involution")
	}
}

func TestVec3Len(t *testing.T) {
	v := Vec3{2, -3, 6}
	if l := v.Len(); l != 7 {
		t.Fatalf("Len = %g, want 7", l)
	}
	if l := v.Normalize().Len(); math.Abs(l-1) > eps {
		t.Fatalf("normalized Len = %g", l)
	}
	if d := v.Dot(AxisY); d != -3 {
		t.Fatalf("Dot(Y) = %g", d)
	}
}

func TestEulerToMat3(t *testing.T) {
	table := []struct {
		z1, x, z2 float64
		in, out   Vec3
	}{
		{0, 0, 0, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		// 90° about +Z carries +X to +Y.
		{90, 0, 0, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{90, 0, 0, Vec3{0, 1, 0}, Vec3{-1, 0, 0}},
		// 90° about +X carries +Y to +Z.
		{0, 90, 0, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{0, 90, 0, Vec3{0, 0, 1}, Vec3{0, -1, 0}},
		{0, 0, 90, Vec3{0, 1, 0}, Vec3{-1, 0, 0}},
		{90, 90, 0, Vec3{0, 0, 1}, Vec3{0, -1, 0}},
	}
	for i, tc := range table {
		m := EulerToMat3(tc.z1, tc.x, tc.z2)
		if have := m.MulVec3(tc.in); !vecEq(have, tc.out, eps) {
			t.Errorf("%d) Euler(%g,%g,%g)·%v\nhave %v\nwant %v", i, tc.z1, tc.x, tc.z2, tc.in, have, tc.out)
		}
		isOrthonormal(t, "EulerToMat3", m)
	}
}

func TestEulerCarriesAxisToZ(t *testing.T) {
	for _, dir := range [][2]float64{{0, 0}, {67.89, 12.345}, {-120, 75}, {300, 90}, {45, 135}} {
		v := AnglesToVector(dir[0], dir[1])
		have := EulerToMat3(dir[0], dir[1], 0).MulVec3(v)
		if !vecEq(have, AxisZ, 1e-12) {
			t.Fatalf("theta=%g phi=%g: rotated axis %v, want +Z", dir[0], dir[1], have)
		}
	}
}

func TestVectorToAngles(t *testing.T) {
	table := []struct {
		v          Vec3
		theta, phi float64
	}{
		{Vec3{0, 0, 1}, 0, 0},
		{Vec3{1, 0, 0}, 90, 90},
		{Vec3{0, 1, 0}, 0, 90},
		{Vec3{0, 0, -5}, 0, 180},
		{Vec3{3, 3, 0}, 45, 90},
	}
	for _, tc := range table {
		theta, phi := VectorToAngles(tc.v)
		if math.Abs(theta-tc.theta) > eps || math.Abs(phi-tc.phi) > eps {
			t.Errorf("VectorToAngles(%v)\nhave (%g, %g)\nwant (%g, %g)", tc.v, theta, phi, tc.theta, tc.phi)
		}
	}

	// Magnitude is irrelevant and AnglesToVector is the inverse.
	v := Vec3{0.2, -0.7, 0.4}
	theta, phi := VectorToAngles(v.Scale(17))
	if have := AnglesToVector(theta, phi); !vecEq(have, v.Normalize(), 1e-12) {
		t.Fatalf("AnglesToVector(VectorToAngles(v))\nhave %v\nwant %v", have, v.Normalize())
	}
}

func TestQuatToMat3(t *testing.T) {
	if have := QuatToMat3(Quat{1, 0, 0, 0}); have != Mat3Identity() {
		t.Fatalf("QuatToMat3(1,0,0,0)\nhave %v\nwant identity", have)
	}
	// Scale of the quaternion does not matter.
	if d := maxAbsDiff(QuatToMat3(Quat{3, 0, 0, 0}), Mat3Identity()); d > eps {
		t.Fatalf("QuatToMat3(3,0,0,0) differs from identity by %.3g", d)
	}

	// 90° about +Z. Signs: R01 = tk - tq, R10 = tk + tq.
	s := math.Sqrt2 / 2
	want := Mat3{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}
	if d := maxAbsDiff(QuatToMat3(Quat{s, 0, 0, s}), want); d > eps {
		t.Fatalf("QuatToMat3(90° about z)\nhave %v\nwant %v", QuatToMat3(Quat{s, 0, 0, s}), want)
	}
	// 90° about +X. R12 = tk - tq, R21 = tk + tq.
	want = Mat3{
		1, 0, 0,
		0, 0, -1,
		0, 1, 0,
	}
	if d := maxAbsDiff(QuatToMat3(Quat{s, s, 0, 0}), want); d > eps {
		t.Fatalf("QuatToMat3(90° about x)\nhave %v\nwant %v", QuatToMat3(Quat{s, s, 0, 0}), want)
	}
	// 90° about +Y. R02 = tk + tq, R20 = tk - tq.
	want = Mat3{
		0, 0, 1,
		0, 1, 0,
		-1, 0, 0,
	}
	if d := maxAbsDiff(QuatToMat3(Quat{s, 0, s, 0}), want); d > eps {
		t.Fatalf("QuatToMat3(90° about y)\nhave %v\nwant %v", QuatToMat3(Quat{s, 0, s, 0}), want)
	}

	for _, q := range []Quat{{0.1, 0.2, 0.3, 0.4}, {0.9, 0, 1, 0.25}, {0, 1, 1, 1}, {1e-3, 5, -2, 0.5}} {
		isOrthonormal(t, "QuatToMat3", QuatToMat3(q))
	}
}

func TestQuatToMat3Degenerate(t *testing.T) {
	if have := QuatToMat3(Quat{}); have != Mat3Identity() {
		t.Fatalf("QuatToMat3(0)\nhave %v\nwant %v", have, Mat3Identity())
	}
}

func TestSwapRotations(t *testing.T) {
	table := []struct {
		name    string
		m       Mat3
		in, out Vec3
	}{
		{"SwapYZ", SwapYZ, AxisY, AxisZ},
		{"SwapXZ", SwapXZ, AxisX, AxisZ},
		{"SwapXY", SwapXY, AxisX, AxisY},
	}
	for _, tc := range table {
		if have := tc.m.MulVec3(tc.in); !vecEq(have, tc.out, eps) {
			t.Errorf("%s·%v\nhave %v\nwant %v", tc.name, tc.in, have, tc.out)
		}
		isOrthonormal(t, tc.name, tc.m)
	}
}
