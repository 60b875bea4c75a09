package mathutil

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// At returns the element at row r, column c.
func (m Mat3) At(r, c int) float64 {
	return m[r*3+c]
}

// Mat3Mul composes two rotations: m[i][j] = Σ a[l][j]·b[i][l].
//
// This is b × a in textbook order. Rotating a tensor by a and then by b is
// the same as rotating it once by Mat3Mul(b, a).
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[0*3+c]*b[r*3+0] + a[1*3+c]*b[r*3+1] + a[2*3+c]*b[r*3+2]
		}
	}
	return m
}

// MulVec3 returns w[i] = Σ m[j][i]·v[j], i.e. Mᵀ × v.
// All rotation call sites use this convention.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}
