package mathutil

// Fixed axis relabelling rotations, composed with Mat3Mul after a rotation R
// to permute which rotated axis ends up where.
var (
	// SwapYZ brings the Y axis to Z.
	SwapYZ = EulerToMat3(0, 90, 0)

	// SwapXZ brings the X axis to Z.
	SwapXZ = EulerToMat3(90, 90, -90)

	// SwapXY brings the X axis to Y.
	SwapXY = EulerToMat3(90, 0, 0)
)
