package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	want := Config{
		InputDir:  "cores",
		Pattern:   "*.cij",
		Mode:      "ti",
		MapSize:   128,
		MapFormat: "tga",
		Workers:   3,
		Trace:     true,
	}
	files := map[string]string{
		"run.json": `{"input_dir": "cores", "pattern": "*.cij", "mode": "ti",
			"map_size": 128, "map_format": "tga", "workers": 3, "trace": true}`,
		"run.yaml": "input_dir: cores\npattern: \"*.cij\"\nmode: ti\nmap_size: 128\nmap_format: tga\nworkers: 3\ntrace: true\n",
		"run.YML":  "input_dir: cores\npattern: \"*.cij\"\nmode: ti\nmap_size: 128\nmap_format: tga\nworkers: 3\ntrace: true\n",
	}
	for name, body := range files {
		cfg, err := Load(writeFile(t, name, body))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if cfg != want {
			t.Fatalf("%s:\nhave %+v\nwant %+v", name, cfg, want)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: %v", err)
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); err == nil {
		t.Fatal("bad JSON accepted")
	}
	if _, err := Load(writeFile(t, "bad.yaml", "workers: [")); err == nil {
		t.Fatal("bad YAML accepted")
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{InputDir: "data"})

	want := Config{
		InputDir:    "data",
		OutputDir:   filepath.Join("data", "fits"),
		Pattern:     "*.txt",
		Mode:        ModeBoth,
		MapSize:     256,
		Supersample: 2,
		MapFormat:   "webp",
		Workers:     runtime.NumCPU(),
	}
	if cfg != want {
		t.Fatalf("have %+v\nwant %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if !cfg.FitsTI() || !cfg.FitsOrtho() {
		t.Fatal("mode both must run both fits")
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{
		InputDir:  "file-in",
		OutputDir: "file-out",
		Mode:      "ti",
		MapSize:   64,
		MapFormat: "png",
		Workers:   2,
	}
	cfg.Resolve(Flags{
		OutputDir: "flag-out",
		Mode:      "ORTHO",
		MapSize:   -1,
		Workers:   7,
		Trace:     true,
	})

	if cfg.InputDir != "file-in" || cfg.OutputDir != "flag-out" {
		t.Fatalf("paths %q %q", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.Mode != ModeOrtho || cfg.FitsTI() || !cfg.FitsOrtho() {
		t.Fatalf("mode %q", cfg.Mode)
	}
	if cfg.MapSize != -1 || cfg.MapFormat != "png" || cfg.Workers != 7 || !cfg.Trace {
		t.Fatalf("settings %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", Config{}, true},
		{"unknown mode", Config{Mode: "mono"}, false},
		{"unknown format", Config{MapFormat: "gif"}, false},
		{"unknown format without map", Config{MapFormat: "gif", MapSize: -1}, true},
		{"bad pattern", Config{Pattern: "[x"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			cfg.Resolve(Flags{})
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}
