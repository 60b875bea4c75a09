// Command anisofit fits TI and orthorhombic media to every stiffness matrix
// file in a directory and writes misfit maps and a manifest.json.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"anisofit/internal/batch"
	"anisofit/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json or .yaml config file")
	inputDir := flag.String("input", "", "Directory holding the stiffness matrix files (default: .)")
	outputDir := flag.String("output", "", "Output directory (default: <input>/fits)")
	mode := flag.String("mode", "", "Fits to run: ti, ortho or both (default: both)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	mapFormat := flag.String("map-format", "", "Misfit map format: webp, tga or png (default: webp)")
	mapSize := flag.Int("map-size", 0, "Misfit map size in pixels, negative for none (default: 256)")
	trace := flag.Bool("trace", false, "Log every refinement level")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		Mode:      *mode,
		MapFormat: *mapFormat,
		MapSize:   *mapSize,
		Workers:   *workers,
		Trace:     *trace,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Trace {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	files, err := batch.List(cfg.InputDir, cfg.Pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No files matching %s in %s.\n", cfg.Pattern, cfg.InputDir)
		os.Exit(0)
	}

	fmt.Printf("Anisotropy fits (%s)\n", cfg.Mode)
	fmt.Printf("Files: %d, Workers: %d\n", len(files), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		FitTI:       cfg.FitsTI(),
		FitOrtho:    cfg.FitsOrtho(),
		MapSize:     cfg.MapSize,
		Supersample: cfg.Supersample,
		MapFormat:   cfg.MapFormat,
		Workers:     cfg.Workers,
		Trace:       cfg.Trace,
		Logger:      logger,
	}, files)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
			continue
		}
		fmt.Printf("  %-24s", r.Name)
		if r.TI != nil {
			fmt.Printf("  TI %7.3f%% (theta=%.3f, phi=%.3f)", r.TI.Percent, r.TI.Axis.Theta, r.TI.Axis.Phi)
		}
		if r.Ortho != nil {
			fmt.Printf("  ortho %7.3f%%", r.Ortho.Percent)
		}
		fmt.Println()
	}

	fmt.Printf("Fitted: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, e := range failed[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
