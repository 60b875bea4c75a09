// Package misfitmap draws how well every direction of the upper hemisphere
// serves as a TI symmetry axis for a stiffness matrix.
//
// The hemisphere is flattened with the Lambert azimuthal equal-area
// projection: the pole +Z is the centre of the image, the equator its
// inscribed circle, +X points right and +Y up. Equal areas on the map are
// equal solid angles, so the size of a low-misfit region is meaningful.
package misfitmap

import (
	"math"

	"anisofit/internal/mathutil"
	"anisofit/internal/symmetry"
	"anisofit/internal/voigt"
)

// Grid holds the TI distance of a size×size raster of directions, in
// percent of the Federov norm of the input.
type Grid struct {
	Size int

	// Values is row-major, top row first. Cells whose centre lies outside
	// the disc hold the value of the nearest point on the equator.
	Values []float64

	// Min and Max range over the cells inside the disc.
	Min, Max float64

	// Best is the axis marked on the rendered map. Sample sets it to the
	// direction of the smallest cell; callers holding a FindTI result may
	// replace it.
	Best symmetry.Axis
}

// Sample evaluates c on a size×size grid.
func Sample(c voigt.Matrix, size int) Grid {
	g := Grid{
		Size:   size,
		Values: make([]float64, size*size),
		Min:    math.Inf(1),
		Max:    math.Inf(-1),
	}
	norm := voigt.Norm(c)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u, v := g.cellCentre(x, y)
			inside := u*u+v*v <= 1
			a := Unproject(u, v)
			d := symmetry.Percent(symmetry.AxisTIDistance(c, a), norm)
			g.Values[y*size+x] = d
			if !inside {
				continue
			}
			if d < g.Min {
				g.Min = d
				g.Best = a
			}
			if d > g.Max {
				g.Max = d
			}
		}
	}
	if g.Min > g.Max {
		g.Min, g.Max = 0, 0
	}
	return g
}

// At is the value of cell (x, y), clamped to the grid.
func (g Grid) At(x, y int) float64 {
	x = min(max(x, 0), g.Size-1)
	y = min(max(y, 0), g.Size-1)
	return g.Values[y*g.Size+x]
}

// cellCentre is the map position of the centre of cell (x, y).
func (g Grid) cellCentre(x, y int) (u, v float64) {
	n := float64(g.Size)
	return (2*float64(x)+1)/n - 1, 1 - (2*float64(y)+1)/n
}

// Project maps a direction to the unit disc. Axes below the equator are
// replaced by their opposite, which describes the same TI medium.
func Project(a symmetry.Axis) (u, v float64) {
	d := a.Vector()
	if d[2] < 0 {
		d = d.Scale(-1)
	}
	// Lambert radius sqrt(1 - cos phi), 1 on the equator.
	r := math.Sqrt(1 - d[2])
	h := math.Hypot(d[0], d[1])
	if h == 0 {
		return 0, 0
	}
	return r * d[0] / h, r * d[1] / h
}

// Unproject is the inverse of Project. Points outside the disc map to the
// equator.
func Unproject(u, v float64) symmetry.Axis {
	r := math.Hypot(u, v)
	if r == 0 {
		return symmetry.Axis{}
	}
	if r > 1 {
		u, v, r = u/r, v/r, 1
	}
	z := 1 - r*r
	s := math.Sqrt(1 - z*z)
	theta, phi := mathutil.VectorToAngles(mathutil.Vec3{s * u / r, s * v / r, z})
	return symmetry.Axis{Theta: theta, Phi: phi}
}
