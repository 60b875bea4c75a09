// Package voigt holds 6×6 elastic stiffness matrices in Voigt notation and the
// tensor operations on them: rotation, projection onto TI and orthorhombic
// symmetry, and the Federov norm and distance.
package voigt

import "math"

// Matrix is a 6×6 stiffness matrix in Voigt notation, stored row-major.
// Value type for zero heap allocation.
//
// The same 36 numbers are also a 3×3×3×3 elasticity tensor, addressed
// through the fixed index map below (see T).
type Matrix [36]float64

// index maps a pair of tensor indices to a Voigt index:
// (0,0)→0, (1,1)→1, (2,2)→2, (1,2)/(2,1)→3, (0,2)/(2,0)→4, (0,1)/(1,0)→5.
// This fixes the row/column order of every matrix read or printed.
var index = [3][3]int{
	{0, 5, 4},
	{5, 1, 3},
	{4, 3, 2},
}

// Inverse of index: Voigt index → tensor index pair.
var (
	left  = [6]int{0, 1, 2, 1, 0, 0}
	right = [6]int{0, 1, 2, 2, 2, 1}
)

// At returns the element at row i, column j (0-based Voigt indices).
func (c Matrix) At(i, j int) float64 {
	return c[i*6+j]
}

// Set stores v at row i, column j.
func (c *Matrix) Set(i, j int, v float64) {
	c[i*6+j] = v
}

// SetSym stores v at (i, j) and (j, i).
func (c *Matrix) SetSym(i, j int, v float64) {
	c[i*6+j] = v
	c[j*6+i] = v
}

// F returns the element in 1-based "Fortran" Voigt notation, as stiffness
// constants are usually written (C11, C44, ...).
func (c Matrix) F(i, j int) float64 {
	return c[(i-1)*6+(j-1)]
}

// T returns the tensor component C_ijkl.
func (c Matrix) T(i, j, k, l int) float64 {
	return c[index[i][j]*6+index[k][l]]
}

// Transpose returns the matrix with rows and columns exchanged.
func (c Matrix) Transpose() Matrix {
	var t Matrix
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			t[j*6+i] = c[i*6+j]
		}
	}
	return t
}

// IsSymmetric reports whether |C_ij - C_ji| <= eps for every pair.
func (c Matrix) IsSymmetric(eps float64) bool {
	for _, d := range Sub(c, c.Transpose()) {
		if math.Abs(d) > eps {
			return false
		}
	}
	return true
}

// Sub returns a - b element by element.
func Sub(a, b Matrix) Matrix {
	var d Matrix
	for i := range a {
		d[i] = a[i] - b[i]
	}
	return d
}

// Scale returns s·c.
func (c Matrix) Scale(s float64) Matrix {
	for i := range c {
		c[i] *= s
	}
	return c
}

// Norm is the Federov norm: the Euclidean norm over all 81 tensor components.
// Off-diagonal Voigt entries are counted once per tensor component they stand
// for, not once per matrix slot.
func Norm(c Matrix) float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			row := index[i][j] * 6
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					v := c[row+index[k][l]]
					sum += v * v
				}
			}
		}
	}
	return math.Sqrt(sum)
}

// Distance is the Federov distance ‖a - b‖ over all 81 tensor components.
func Distance(a, b Matrix) float64 {
	return Norm(Sub(a, b))
}
