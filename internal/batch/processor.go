package batch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"anisofit/internal/mathutil"
	"anisofit/internal/misfitmap"
	"anisofit/internal/symmetry"
	"anisofit/internal/voigt"
)

// Config holds the settings shared by every job of a batch run.
type Config struct {
	OutputDir string
	FitTI     bool
	FitOrtho  bool

	// MapSize <= 0 disables the misfit map.
	MapSize     int
	Supersample int
	MapFormat   string

	Workers int

	// Trace logs every refinement level of every search at debug level.
	Trace bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// TISummary is the outcome of the TI fit of one input.
type TISummary struct {
	Axis         symmetry.Axis `json:"axis"`
	SymmetryAxis mathutil.Vec3 `json:"symmetry_axis"`
	Percent      float64       `json:"percent"`
	Levels       int           `json:"levels"`
	Samples      int           `json:"samples"`
}

// OrthoSummary is the outcome of the orthorhombic fit of one input.
type OrthoSummary struct {
	Rotation mathutil.Mat3             `json:"rotation"`
	Axes     [3]symmetry.PrincipalAxis `json:"axes"`
	Percent  float64                   `json:"percent"`
	Levels   int                       `json:"levels"`
	Samples  int                       `json:"samples"`
}

// Result holds the outcome of processing one input file.
type Result struct {
	Name    string
	Input   string
	Success bool
	Error   string

	Norm  float64
	TI    *TISummary
	Ortho *OrthoSummary
	Map   string // path of the misfit map, if written
}

// List returns the files in dir matching pattern, sorted by name.
func List(dir, pattern string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("batch: list %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// Run processes all files using a worker pool. Results are in the order of
// files.
func Run(cfg Config, files []string) []Result {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "batch"))
	cfg.Logger = log
	workers := max(cfg.Workers, 1)

	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("progress",
						slog.Int64("done", p),
						slog.Int("total", total),
						slog.Float64("files_per_sec", float64(p)/elapsed))
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				if !results[idx].Success {
					log.Warn("fit failed",
						slog.String("file", files[idx]),
						slog.String("error", results[idx].Error))
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	log.Info("batch finished",
		slog.Int("files", total),
		slog.Duration("duration", time.Since(start)))
	return results
}

func processFile(cfg Config, path string) Result {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res := Result{Name: name, Input: path}

	c, err := voigt.ReadFile(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if !c.IsSymmetric(1e-6 * voigt.Norm(c)) {
		cfg.Logger.Warn("stiffness matrix is not symmetric, using the upper triangle",
			slog.String("file", path))
	}
	res.Norm = voigt.Norm(c)

	var best *symmetry.Axis
	if cfg.FitTI {
		r := symmetry.NewTIReport(c, tracer(cfg, path, "ti"))
		res.TI = &TISummary{
			Axis:         r.Fit.Axis,
			SymmetryAxis: r.SymmetryAxis,
			Percent:      r.Percent,
			Levels:       r.Fit.Levels,
			Samples:      r.Fit.Samples,
		}
		best = &r.Fit.Axis
	}
	if cfg.FitOrtho {
		r := symmetry.NewOrthoReport(c, tracer(cfg, path, "ortho"))
		res.Ortho = &OrthoSummary{
			Rotation: r.Rotation,
			Axes:     r.Axes,
			Percent:  r.Percent,
			Levels:   r.Fit.Levels,
			Samples:  r.Fit.Samples,
		}
	}

	if cfg.MapSize > 0 {
		g := misfitmap.Sample(c, cfg.MapSize)
		if best != nil {
			g.Best = *best
		}
		// Keep the input extension so a.txt and a.dat get separate maps.
		out := filepath.Join(cfg.OutputDir, filepath.Base(path)+"."+cfg.MapFormat)
		if err := misfitmap.WriteFile(out, misfitmap.Render(g, cfg.Supersample)); err != nil {
			res.Error = err.Error()
			return res
		}
		res.Map = out
	}

	res.Success = true
	return res
}

// tracer logs the refinement levels of one search when tracing is on.
func tracer(cfg Config, path, fit string) symmetry.Observer {
	if !cfg.Trace {
		return nil
	}
	log := cfg.Logger.With(slog.String("file", path), slog.String("fit", fit))
	return func(s symmetry.Step) {
		log.Debug("level",
			slog.Int("level", s.Level),
			slog.Int("samples", s.Samples),
			slog.Float64("increment", s.Increment),
			slog.Float64("distance", s.Distance))
	}
}
