// Command titest reads a 6×6 stiffness matrix from standard input and
// reports the transversely isotropic medium that best approximates it.
//
// Usage:
//
//	titest [-trace] [-map misfit.webp] < elastic_constants
//
// The input is 36 numbers, usually six on each of six lines. Try the TI
// medium below, whose symmetry axis was rotated to theta=67.890,
// phi=12.345:
//
//	 331.325   128.029   112.309  -1.30380  -23.3328  -1.92204
//	 128.029   339.374   108.716  -9.83459  -4.08399  -1.99410
//	 112.309   108.716   226.191  0.447454   1.10140   1.74841
//	-1.30380  -9.83459  0.447454   56.8929   1.27023  -9.88887
//	-23.3328  -4.08399   1.10140   1.27023   59.5035  -3.66209
//	-1.92204  -1.99410   1.74841  -9.88887  -3.66209   103.658
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
	mapFile := flag.String("map", "", "Write a misfit map of all axis directions (.webp, .tga or .png)")
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
		obs = traceTo(os.Stderr)
	}
	r := symmetry.NewTIReport(c, obs)

	w := bufio.NewWriter(os.Stdout)
	writeReport(w, r)
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *mapFile != "" {
		g := misfitmap.Sample(c, *mapSize)
		g.Best = r.Fit.Axis
		if err := misfitmap.WriteFile(*mapFile, misfitmap.Render(g, *supersample)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func writeReport(w io.Writer, r symmetry.TIReport) {
	fmt.Fprintln(w, "Input C matrix:")
	voigt.Format(w, voigt.DefaultFormat, r.Input)
	fmt.Fprint(w, "\n\n")

	fmt.Fprintln(w, "Rotated C matrix:")
	voigt.Format(w, voigt.DefaultFormat, r.Rotated)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "TI approximation:")
	voigt.Format(w, voigt.DefaultFormat, r.Approx)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "TI approximation in original coordinate system:")
	voigt.Format(w, voigt.DefaultFormat, r.ApproxOriginal)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Normalized deviation from TI in original coordinate system, in percent:")
	voigt.Format(w, "%11.4f ", r.Deviation)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "distance from TI = %.3f percent\n", r.Percent)
	v := r.SymmetryAxis
	fmt.Fprintf(w, "Symmetry axis: (%.4f, %.4f, %.4f)\n", v[0], v[1], v[2])
	fmt.Fprintf(w, "theta = %.3f,   phi = %.3f\n", r.Fit.Axis.Theta, r.Fit.Axis.Phi)
}

func traceTo(w io.Writer) symmetry.Observer {
	return func(s symmetry.Step) {
		fmt.Fprintf(w, "level %2d: %7d samples, increment %-10.4g distance %.9g\n",
			s.Level, s.Samples, s.Increment, s.Distance)
	}
}
