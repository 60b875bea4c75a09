// Package symmetry finds the transversely isotropic (TI) and orthorhombic
// media that best approximate an arbitrary stiffness matrix, together with the
// orientation of their symmetry axes.
//
// "Best" means smallest Federov distance (see voigt.Distance). Both searches
// are brute-force grid scans refined around the best point; see package
// search. For background see Arts, Helbig and Rasolofosaon, "General
// anisotropic elastic tensor in rocks: approximation, invariants, and
// particular directions", SEG Expanded Abstracts 1991, p. 1534.
package symmetry

import (
	"math"

	"anisofit/internal/mathutil"
	"anisofit/internal/search"
	"anisofit/internal/voigt"
)

const (
	// Resolution is the grid spacing at which both searches stop refining.
	// For the TI search it is in degrees, for the orthorhombic search in
	// quaternion units.
	Resolution = 1e-9

	// tiStep is the spacing of the coarse hemisphere scan, in degrees.
	tiStep = 5.0

	// tiSubdivide is the factor by which each TI refinement shrinks the grid.
	tiSubdivide = 4

	// poleFuzz keeps the longitude step finite at the pole, in degrees.
	poleFuzz = 0.01
)

// Axis is a symmetry axis direction in degrees.
//
//	Phi=0 is the +Z axis.
//	Phi=90 Theta=0 is the +Y axis.
//	Phi=90 Theta=90 is the +X axis.
type Axis struct {
	Theta float64 `json:"theta"`
	Phi   float64 `json:"phi"`
}

// Vector is the unit vector along a.
func (a Axis) Vector() mathutil.Vec3 {
	return mathutil.AnglesToVector(a.Theta, a.Phi)
}

// Rotation is the rotation that carries a onto +Z.
func (a Axis) Rotation() mathutil.Mat3 {
	return mathutil.EulerToMat3(a.Theta, a.Phi, 0)
}

// Step is the state of a search after one grid level.
type Step struct {
	Level     int
	Samples   int
	Increment float64
	Distance  float64
}

// Observer receives every Step of a search.
type Observer func(Step)

// TIFit is the result of FindTI.
type TIFit struct {
	Axis     Axis
	Distance float64 // absolute Federov distance, same units as the input
	Levels   int
	Samples  int
}

// AxisTIDistance is the distance between c and the nearest TI medium whose
// symmetry axis is a.
func AxisTIDistance(c voigt.Matrix, a Axis) float64 {
	_, d := voigt.TIDistance(voigt.Rotate(c, a.Rotation()))
	return d
}

// FindTI finds the TI medium nearest to c, whatever the direction of its
// symmetry axis. obs may be nil.
func FindTI(c voigt.Matrix, obs Observer) TIFit {
	sp := &hemisphere{inc: tiStep}
	res := search.Minimize[Axis](sp, func(a Axis) float64 {
		return AxisTIDistance(c, a)
	}, observer[Axis](obs))

	return TIFit{
		Axis:     res.Best,
		Distance: res.Distance,
		Levels:   res.Levels,
		Samples:  res.Samples,
	}
}

// hemisphere is the search space of TI symmetry axes. An axis and its
// opposite describe the same medium, so the coarse scan covers only the
// upper hemisphere.
type hemisphere struct {
	inc float64 // latitude spacing of the last scan, degrees
}

func (h *hemisphere) Coarse(visit func(Axis)) {
	// Pole to equator in latitude, all longitudes at each latitude with a
	// longitude step of about the same arc length.
	for phi := 0.0; phi <= 90; phi += h.inc {
		thetaInc := h.inc / math.Sin(mathutil.Deg2Rad(math.Abs(phi)+poleFuzz))
		for theta := 0.0; theta < 360; theta += thetaInc {
			visit(Axis{Theta: theta, Phi: phi})
		}
	}
}

// Refine scans a (4·tiSubdivide+1)² grid on the plane tangent to the sphere
// at best. The grid spans twice the previous cell in each direction so that
// an optimum near a cell edge is not lost.
func (h *hemisphere) Refine(best Axis, visit func(Axis)) {
	// Rotation taking +Z back to best; its images of +X and +Y span the
	// tangent plane.
	rb := mathutil.EulerToMat3(0, -best.Phi, -best.Theta)
	v0 := rb.MulVec3(mathutil.AxisZ)
	v1 := rb.MulVec3(mathutil.AxisX)
	v2 := rb.MulVec3(mathutil.AxisY)

	span := math.Tan(mathutil.Deg2Rad(h.inc))
	for i := -2 * tiSubdivide; i <= 2*tiSubdivide; i++ {
		for j := -2 * tiSubdivide; j <= 2*tiSubdivide; j++ {
			v := v0.
				Add(v1.Scale(span * float64(i) / tiSubdivide)).
				Add(v2.Scale(span * float64(j) / tiSubdivide))
			theta, phi := mathutil.VectorToAngles(v)
			visit(Axis{Theta: theta, Phi: phi})
		}
	}
	h.inc /= tiSubdivide
}

func (h *hemisphere) Increment() float64 { return h.inc }
func (h *hemisphere) Converged() bool    { return h.inc <= Resolution }

// observer adapts obs to search.Minimize; nil stays nil.
func observer[P any](obs Observer) func(search.Level[P]) {
	if obs == nil {
		return nil
	}
	return func(l search.Level[P]) {
		obs(Step{Level: l.Level, Samples: l.Samples, Increment: l.Increment, Distance: l.Distance})
	}
}
