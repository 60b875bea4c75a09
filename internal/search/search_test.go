package search

import (
	"math"
	"testing"
)

// line is a 1-D space over [lo, hi] used to exercise Minimize.
type line struct {
	lo, hi, inc, res float64
	refines          int
}

func (l *line) Coarse(visit func(float64)) {
	for x := l.lo; x <= l.hi; x += l.inc {
		visit(x)
	}
}

func (l *line) Refine(best float64, visit func(float64)) {
	l.refines++
	step := l.inc / 4
	for i := -4; i <= 4; i++ {
		visit(best + float64(i)*step)
	}
	l.inc = step
}

func (l *line) Increment() float64 { return l.inc }
func (l *line) Converged() bool    { return l.inc <= l.res }

func TestMinimizeParabola(t *testing.T) {
	sp := &line{lo: -10, hi: 10, inc: 1, res: 1e-9}
	var levels []Level[float64]
	res := Minimize[float64](sp, func(x float64) float64 { return (x - 3.3) * (x - 3.3) },
		func(l Level[float64]) { levels = append(levels, l) })

	if math.Abs(res.Best-3.3) > 1e-8 {
		t.Fatalf("Best = %.12g, want 3.3", res.Best)
	}
	if res.Distance > 1e-15 {
		t.Fatalf("Distance = %g, want ~0", res.Distance)
	}
	if res.Levels != sp.refines {
		t.Fatalf("Levels = %d, refinements = %d", res.Levels, sp.refines)
	}
	// 1 / 4^n <= 1e-9 first holds at n = 15.
	if res.Levels != 15 {
		t.Fatalf("Levels = %d, want 15", res.Levels)
	}
	if len(levels) != res.Levels+1 {
		t.Fatalf("observed %d levels, want %d", len(levels), res.Levels+1)
	}
	if want := 21 + 9*15; res.Samples != want {
		t.Fatalf("Samples = %d, want %d", res.Samples, want)
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].Distance > levels[i-1].Distance {
			t.Fatalf("level %d: distance went up from %g to %g", i, levels[i-1].Distance, levels[i].Distance)
		}
		if levels[i].Increment >= levels[i-1].Increment {
			t.Fatalf("level %d: increment did not shrink", i)
		}
	}
}

func TestMinimizeKeepsFirstOfEqualScores(t *testing.T) {
	sp := &line{lo: 0, hi: 4, inc: 1, res: 1}
	res := Minimize[float64](sp, func(float64) float64 { return 2 }, nil)
	if res.Best != 0 || res.Distance != 2 || res.Levels != 0 {
		t.Fatalf("have %+v, want first point, distance 2, no refinement", res)
	}
}
