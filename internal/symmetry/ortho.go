package symmetry

import (
	"anisofit/internal/mathutil"
	"anisofit/internal/search"
	"anisofit/internal/voigt"
)

const (
	// Initial samples along the rotation-angle parameter q0; errors in the
	// angle matter more than errors in the axis.
	orthoSubRot = 29

	// Initial samples along each rotation-axis parameter q1..q3.
	orthoSubPos = 5

	// Samples per parameter in every refinement.
	orthoSubdivide = 5
)

// OrthoFit is the result of FindOrtho.
type OrthoFit struct {
	// Rotation carries the input frame onto the canonically ordered frame
	// of the best orthorhombic medium: Z is the principal axis that works
	// best as a TI symmetry axis, Y the second best, X the worst.
	Rotation mathutil.Mat3

	// Distance is the absolute Federov distance, same units as the input.
	Distance float64

	// Quat is the search optimum before the axes were reordered.
	Quat mathutil.Quat

	// AxisTI holds the TI distance of the canonical X, Y and Z axes used as
	// symmetry axis; it is sorted in decreasing order.
	AxisTI [3]float64

	Levels  int
	Samples int
}

// FindOrtho finds the orthorhombic medium nearest to c, whatever the
// orientation of its symmetry planes. obs may be nil.
func FindOrtho(c voigt.Matrix, obs Observer) OrthoFit {
	sp := newQuaternionGrid()
	res := search.Minimize[mathutil.Quat](sp, func(q mathutil.Quat) float64 {
		_, d := voigt.OrthoDistance(voigt.Rotate(c, mathutil.QuatToMat3(q)))
		return d
	}, observer[mathutil.Quat](obs))

	rot, axisTI := canonicalAxes(c, mathutil.QuatToMat3(res.Best))
	return OrthoFit{
		Rotation: rot,
		Distance: res.Distance,
		Quat:     res.Best,
		AxisTI:   axisTI,
		Levels:   res.Levels,
		Samples:  res.Samples,
	}
}

// quaternionGrid is the search space of orthorhombic orientations.
//
// An orientation is a rotation by an angle about a unit axis (A, B, C):
//
//	q0 = cos(angle/2), (q1, q2, q3) = (A, B, C)·sin(angle/2)
//
// Rotating by angle about (A, B, C) equals rotating by -angle about
// (-A, -B, -C), so 180° of angle suffice; the three symmetry planes make
// one octant of axes sufficient. Together this bounds all four parameters
// to [0, 1]. QuatToMat3 normalises, so the grid need not stay on the unit
// sphere.
type quaternionGrid struct {
	center [4]float64
	rng    [4]float64 // half-width
	count  [4]int
	inc    [4]float64
}

func newQuaternionGrid() *quaternionGrid {
	g := &quaternionGrid{
		count: [4]int{orthoSubRot, orthoSubPos, orthoSubPos, orthoSubPos},
	}
	for k := range g.center {
		g.center[k] = 0.5
		g.rng[k] = 0.5
	}
	return g
}

func (g *quaternionGrid) Coarse(visit func(mathutil.Quat)) {
	g.scan(visit)
}

// Refine recentres every parameter on best and searches twice the previous
// grid spacing on either side.
func (g *quaternionGrid) Refine(best mathutil.Quat, visit func(mathutil.Quat)) {
	for k := range g.center {
		g.center[k] = best[k]
		g.rng[k] = g.inc[k]
		g.count[k] = orthoSubdivide
	}
	g.scan(visit)
}

func (g *quaternionGrid) scan(visit func(mathutil.Quat)) {
	for k := range g.inc {
		g.inc[k] = 2 * g.rng[k] / float64(g.count[k]-1)
	}

	var q mathutil.Quat
	for i3 := 0; i3 < g.count[3]; i3++ {
		q[3] = g.at(3, i3)
		for i2 := 0; i2 < g.count[2]; i2++ {
			q[2] = g.at(2, i2)
			for i1 := 0; i1 < g.count[1]; i1++ {
				q[1] = g.at(1, i1)
				for i0 := 0; i0 < g.count[0]; i0++ {
					q[0] = g.at(0, i0)
					visit(q)
				}
			}
		}
	}
}

// at is sample i of parameter k, running from center-rng to center+rng.
func (g *quaternionGrid) at(k, i int) float64 {
	n := g.count[k] - 1
	return g.rng[k]*(float64(2*i-n)/float64(n)) + g.center[k]
}

// Increment is the coarsest of the four spacings.
func (g *quaternionGrid) Increment() float64 {
	m := g.inc[0]
	for _, v := range g.inc[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Converged reports whether every one of the four spacings has reached the
// resolution.
func (g *quaternionGrid) Converged() bool {
	return g.Increment() <= Resolution
}

// canonicalAxes reorders the principal axes of rot so that Z is the one
// that best serves as a TI symmetry axis and Y the second best. It returns
// the reordered rotation and the TI distance of the X, Y, Z axes.
func canonicalAxes(c voigt.Matrix, rot mathutil.Mat3) (mathutil.Mat3, [3]float64) {
	// After rotation the principal axes are the coordinate axes, so the
	// inverse rotation takes each coordinate axis back to a principal axis
	// of the input.
	inv := rot.Transpose()
	var dist [3]float64
	for k, e := range [3]mathutil.Vec3{mathutil.AxisX, mathutil.AxisY, mathutil.AxisZ} {
		theta, phi := mathutil.VectorToAngles(inv.MulVec3(e))
		dist[k] = AxisTIDistance(c, Axis{Theta: theta, Phi: phi})
	}

	// Best TI axis to Z.
	swap := mathutil.Mat3Identity()
	switch {
	case dist[2] <= dist[1] && dist[2] <= dist[0]:
	case dist[1] <= dist[2] && dist[1] <= dist[0]:
		swap = mathutil.SwapYZ
		dist[1], dist[2] = dist[2], dist[1]
	default:
		swap = mathutil.SwapXZ
		dist[0], dist[2] = dist[2], dist[0]
	}
	rot = mathutil.Mat3Mul(swap, rot)

	// Next best to Y.
	swap = mathutil.Mat3Identity()
	if dist[1] > dist[0] {
		swap = mathutil.SwapXY
		dist[0], dist[1] = dist[1], dist[0]
	}
	return mathutil.Mat3Mul(swap, rot), dist
}
