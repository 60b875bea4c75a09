package mathutil

// Quat represents a quaternion (q0, q1, q2, q3) with q0 the scalar part.
// It need not be normalized.
type Quat [4]float64

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix, normalizing it
// on the way. The all-zero quaternion has no direction; it yields the matrix
// with ones on the diagonal and zeros elsewhere.
func QuatToMat3(q Quat) Mat3 {
	tx := q[1] * q[1]
	ty := q[2] * q[2]
	tz := q[3] * q[3]
	tq := ty + tz

	var tk float64
	if s := tq + tx + q[0]*q[0]; s != 0 {
		tk = 2 / s
	}

	var m Mat3
	m[0] = 1 - tk*tq
	m[4] = 1 - tk*(tx+tz)
	m[8] = 1 - tk*(tx+ty)

	tx = tk * q[1]
	ty = tk * q[2]

	tq = tk * q[3] * q[0]
	tk2 := tx * q[2]
	m[1] = tk2 - tq
	m[3] = tk2 + tq

	tq = ty * q[0]
	tk2 = tx * q[3]
	m[2] = tk2 + tq
	m[6] = tk2 - tq

	tq = tx * q[0]
	tk2 = ty * q[3]
	m[5] = tk2 - tq
	m[7] = tk2 + tq

	return m
}
