package symmetry

import (
	"anisofit/internal/mathutil"
	"anisofit/internal/voigt"
)

// Report is the full account of one approximation: the input, the input in
// the symmetry frame, the approximation in both frames and the deviation.
type Report struct {
	Input voigt.Matrix

	// Norm is the Federov norm of Input; percentages are relative to it.
	Norm float64

	// Rotation carries Input into the symmetry frame.
	Rotation mathutil.Mat3

	// Rotated is Input in the symmetry frame.
	Rotated voigt.Matrix

	// Approx is the symmetric approximation in the symmetry frame.
	Approx voigt.Matrix

	// ApproxOriginal is Approx rotated back into the input frame.
	ApproxOriginal voigt.Matrix

	// Deviation is (Input - ApproxOriginal) in percent of Norm.
	Deviation voigt.Matrix

	// Distance is the Federov distance to the approximation, and Percent
	// the same in percent of Norm.
	Distance float64
	Percent  float64
}

// TIReport adds the symmetry axis to a Report.
type TIReport struct {
	Report
	Fit TIFit

	// SymmetryAxis is the TI symmetry axis in the input frame.
	SymmetryAxis mathutil.Vec3
}

// PrincipalAxis is one of the three canonical orthorhombic axes, expressed
// in the input frame, and how well it serves as a TI symmetry axis.
type PrincipalAxis struct {
	Name      string        `json:"name"`
	Vector    mathutil.Vec3 `json:"vector"`
	Axis      Axis          `json:"axis"`
	TIPercent float64       `json:"ti_percent"`
}

// OrthoReport adds the principal axes to a Report.
type OrthoReport struct {
	Report
	Fit  OrthoFit
	Axes [3]PrincipalAxis // X, Y, Z
}

// Percent returns 100·d/norm, or 0 for a zero norm.
func Percent(d, norm float64) float64 {
	if norm == 0 {
		return 0
	}
	return 100 * d / norm
}

// NewTIReport runs FindTI on c and assembles its report.
func NewTIReport(c voigt.Matrix, obs Observer) TIReport {
	fit := FindTI(c, obs)
	rot := fit.Axis.Rotation()
	r := newReport(c, rot, voigt.TIDistance)
	return TIReport{
		Report:       r,
		Fit:          fit,
		SymmetryAxis: rot.Transpose().MulVec3(mathutil.AxisZ),
	}
}

// NewOrthoReport runs FindOrtho on c and assembles its report.
func NewOrthoReport(c voigt.Matrix, obs Observer) OrthoReport {
	fit := FindOrtho(c, obs)
	r := newReport(c, fit.Rotation, voigt.OrthoDistance)

	inv := fit.Rotation.Transpose()
	rep := OrthoReport{Report: r, Fit: fit}
	for k, e := range [3]mathutil.Vec3{mathutil.AxisX, mathutil.AxisY, mathutil.AxisZ} {
		v := inv.MulVec3(e)
		theta, phi := mathutil.VectorToAngles(v)
		a := Axis{Theta: theta, Phi: phi}
		rep.Axes[k] = PrincipalAxis{
			Name:      string("XYZ"[k]),
			Vector:    v,
			Axis:      a,
			TIPercent: Percent(AxisTIDistance(c, a), r.Norm),
		}
	}
	return rep
}

func newReport(c voigt.Matrix, rot mathutil.Mat3, project func(voigt.Matrix) (voigt.Matrix, float64)) Report {
	r := Report{
		Input:    c,
		Norm:     voigt.Norm(c),
		Rotation: rot,
	}
	r.Rotated = voigt.Rotate(c, rot)
	r.Approx, r.Distance = project(r.Rotated)
	r.ApproxOriginal = voigt.Rotate(r.Approx, rot.Transpose())
	r.Percent = Percent(r.Distance, r.Norm)

	var dev voigt.Matrix
	if r.Norm != 0 {
		dev = voigt.Sub(c, r.ApproxOriginal).Scale(100 / r.Norm)
	}
	// Lower triangle, mirrored.
	for i := 0; i < 6; i++ {
		for j := 0; j <= i; j++ {
			r.Deviation.SetSym(i, j, dev.At(i, j))
		}
	}
	return r
}
