package voigt

// TIDistance returns the transversely isotropic matrix with a vertical (+Z)
// symmetry axis that is nearest to c, and the Federov distance between them.
// A VTI input is its own projection, at distance zero.
func TIDistance(c Matrix) (Matrix, float64) {
	c33 := c.F(3, 3)
	c13 := (c.F(1, 3) + c.F(2, 3)) / 2
	c55 := (c.F(4, 4) + c.F(5, 5)) / 2
	c11 := (3*c.F(1, 1) + 3*c.F(2, 2) + 4*c.F(6, 6) + 2*c.F(1, 2)) / 8
	c66 := (c.F(1, 1) + c.F(2, 2) + 4*c.F(6, 6) - 2*c.F(1, 2)) / 8

	var ti Matrix
	ti.Set(0, 0, c11)
	ti.Set(1, 1, c11)
	ti.Set(2, 2, c33)
	ti.Set(3, 3, c55)
	ti.Set(4, 4, c55)
	ti.Set(5, 5, c66)
	ti.SetSym(0, 2, c13)
	ti.SetSym(1, 2, c13)
	ti.SetSym(0, 1, c11-2*c66)

	return ti, Distance(ti, c)
}

// OrthoDistance returns the orthorhombic matrix with the coordinate planes as
// symmetry planes that is nearest to c, and the Federov distance between them.
// Every entry outside C11, C12, C13, C22, C23, C33, C44, C55, C66 is zeroed.
func OrthoDistance(c Matrix) (Matrix, float64) {
	var o Matrix
	o.Set(0, 0, c.F(1, 1))
	o.SetSym(0, 1, c.F(1, 2))
	o.SetSym(0, 2, c.F(1, 3))
	o.Set(1, 1, c.F(2, 2))
	o.SetSym(1, 2, c.F(2, 3))
	o.Set(2, 2, c.F(3, 3))
	o.Set(3, 3, c.F(4, 4))
	o.Set(4, 4, c.F(5, 5))
	o.Set(5, 5, c.F(6, 6))

	return o, Distance(o, c)
}
