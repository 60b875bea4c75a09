package voigt

import "anisofit/internal/mathutil"

// Rotate returns c expressed in the frame given by r:
//
//	C'_ijkl = Σ r[p][i]·r[q][j]·r[r][k]·r[s][l]·C_pqrs
//
// Only the 21 entries with kl <= ij are summed; the rest are mirrored, so
// the result is always symmetric even if c was not. Rotating by a and then
// by b equals rotating by mathutil.Mat3Mul(b, a).
func Rotate(c Matrix, r mathutil.Mat3) Matrix {
	var out Matrix
	for ij := 0; ij < 6; ij++ {
		ii, jj := left[ij], right[ij]
		for kl := 0; kl <= ij; kl++ {
			kk, ll := left[kl], right[kl]

			var sum float64
			for p := 0; p < 3; p++ {
				rp := r[p*3+ii]
				for q := 0; q < 3; q++ {
					rpq := rp * r[q*3+jj]
					for s := 0; s < 3; s++ {
						rpqs := rpq * r[s*3+kk]
						row := index[p][q] * 6
						for t := 0; t < 3; t++ {
							sum += rpqs * r[t*3+ll] * c[row+index[s][t]]
						}
					}
				}
			}

			out[ij*6+kl] = sum
			out[kl*6+ij] = sum
		}
	}
	return out
}
