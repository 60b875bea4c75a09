// Command orthotest reads a 6×6 stiffness matrix from standard input and
// reports the orthorhombic medium that best approximates it.
//
// Usage:
//
//	orthotest [-trace] [-map misfit.webp] < elastic_constants
//
// The principal axes are ordered so that Z is the one closest to being a TI
// symmetry axis, then Y, then X. For a TI input, Z is its symmetry axis; for
// an arbitrary input Z need not coincide with the axis titest finds.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"anisofit/internal/misfitmap"
	"anisofit/internal/symmetry"
	"anisofit/internal/voigt"
)

func main() {
	trace := flag.Bool("trace", false, "Print every refinement level to stderr")
	mapFile := flag.String("map", "", "Write a TI misfit map marking the Z axis (.webp, .tga or .png)")
	mapSize := flag.Int("map-size", 256, "Misfit map size in pixels")
	supersample := flag.Int("supersample", 2, "Misfit map supersampling factor")
	flag.Parse()

	c, err := voigt.Read(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stiffness matrix: %v\n", err)
		os.Exit(1)
	}

	var obs symmetry.Observer
	if *trace {
		obs = func(s symmetry.Step) {
			fmt.Fprintf(os.Stderr, "level %2d: %7d samples, increment %-10.4g distance %.9g\n",
				s.Level, s.Samples, s.Increment, s.Distance)
		}
	}
	r := symmetry.NewOrthoReport(c, obs)

	if *trace {
		writeRotation(os.Stderr, r)
	}

	w := bufio.NewWriter(os.Stdout)
	writeReport(w, r)
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *mapFile != "" {
		g := misfitmap.Sample(c, *mapSize)
		g.Best = r.Axes[2].Axis
		if err := misfitmap.WriteFile(*mapFile, misfitmap.Render(g, *supersample)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// writeRotation prints the rotation taking the input to the principal axes.
func writeRotation(w io.Writer, r symmetry.OrthoReport) {
	fmt.Fprintf(w, "Rotation matrix (%d levels, %d samples):\n", r.Fit.Levels, r.Fit.Samples)
	voigt.FormatMat3(w, r.Rotation)
}

func writeReport(w io.Writer, r symmetry.OrthoReport) {
	fmt.Fprintln(w, "Input C matrix:")
	voigt.Format(w, voigt.DefaultFormat, r.Input)
	fmt.Fprint(w, "\n\n")

	fmt.Fprintln(w, "Rotated C matrix:")
	voigt.Format(w, voigt.DefaultFormat, r.Rotated)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Orthorhombic approximation:")
	voigt.Format(w, voigt.DefaultFormat, r.Approx)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Orthorhombic approximation in original coordinates:")
	voigt.Format(w, voigt.DefaultFormat, r.ApproxOriginal)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Normalized deviation from Orthorhombic in original coordinates, in percent:")
	voigt.Format(w, "%11.4f ", r.Deviation)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Distance from Orthorhombic = %.3f percent\n", r.Percent)
	fmt.Fprintln(w)

	for _, a := range r.Axes {
		v := a.Vector
		fmt.Fprintf(w, "%s axis: (%.4f, %.4f, %.4f)  ", a.Name, v[0], v[1], v[2])
		fmt.Fprintf(w, "theta=%.3f, phi=%.3f, TI dist=%.3f%%\n", a.Axis.Theta, a.Axis.Phi, a.TIPercent)
	}
}
