// Package search implements a derivative-free grid minimiser: one coarse scan
// over the whole parameter space, then repeated scans of a finer grid centred
// on the best point so far, until the grid spacing reaches a resolution.
//
// The parameter space is supplied by the caller as a Space. Points are value
// types so that the scans do not allocate.
package search

// Space describes the grids scanned by Minimize.
type Space[P any] interface {
	// Coarse calls visit for every point of the initial global grid.
	Coarse(visit func(P))

	// Refine calls visit for every point of a grid centred on best, then
	// shrinks the grid for the next level.
	Refine(best P, visit func(P))

	// Increment is the current grid spacing, as reported to observers.
	Increment() float64

	// Converged reports whether the grid spacing has reached the
	// resolution.
	Converged() bool
}

// Level reports the state of the search after one scan.
// Level 0 is the coarse scan.
type Level[P any] struct {
	Level     int
	Samples   int
	Increment float64
	Best      P
	Distance  float64
}

// Result is the best point found and its score.
type Result[P any] struct {
	Best     P
	Distance float64
	Levels   int
	Samples  int
}

// Minimize runs the coarse scan of space and then refines until the space
// reports convergence. score must be non-negative. observe, when non-nil, is
// called after each level.
//
// The best score never increases from one level to the next: a refined grid
// only replaces the best point if it finds a strictly smaller score.
func Minimize[P any](space Space[P], score func(P) float64, observe func(Level[P])) Result[P] {
	var (
		best    P
		dist    = -1.0
		samples int
	)
	visit := func(p P) {
		samples++
		if d := score(p); d < dist || dist < 0 {
			dist = d
			best = p
		}
	}

	space.Coarse(visit)
	level := 0
	if observe != nil {
		observe(Level[P]{Level: level, Samples: samples, Increment: space.Increment(), Best: best, Distance: dist})
	}

	for !space.Converged() {
		space.Refine(best, visit)
		level++
		if observe != nil {
			observe(Level[P]{Level: level, Samples: samples, Increment: space.Increment(), Best: best, Distance: dist})
		}
	}

	return Result[P]{Best: best, Distance: dist, Levels: level, Samples: samples}
}
