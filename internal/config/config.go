package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"anisofit/internal/misfitmap"
)

// Fit modes.
const (
	ModeTI    = "ti"
	ModeOrtho = "ortho"
	ModeBoth  = "both"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds the input selection and fit settings of a batch run.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir" yaml:"input_dir"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	Pattern   string `json:"pattern" yaml:"pattern"`

	// Fit settings
	Mode    string `json:"mode" yaml:"mode"`
	Workers int    `json:"workers" yaml:"workers"`
	Trace   bool   `json:"trace" yaml:"trace"`

	// Misfit map settings. A negative MapSize disables the map.
	MapSize     int    `json:"map_size" yaml:"map_size"`
	Supersample int    `json:"supersample" yaml:"supersample"`
	MapFormat   string `json:"map_format" yaml:"map_format"`
}

// Load reads a config file and returns Config. Files ending in .yaml or .yml
// are YAML, anything else JSON. Fields not set in the file keep their zero
// values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir  string
	OutputDir string
	Mode      string
	MapFormat string
	MapSize   int
	Workers   int
	Trace     bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.MapFormat != "" {
		c.MapFormat = flags.MapFormat
	}
	if flags.MapSize != 0 {
		c.MapSize = flags.MapSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Trace {
		c.Trace = true
	}

	if c.InputDir == "" {
		c.InputDir = "."
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.InputDir, "fits")
	}
	if c.Pattern == "" {
		c.Pattern = "*.txt"
	}

	c.Mode = strings.ToLower(c.Mode)
	if c.Mode == "" {
		c.Mode = ModeBoth
	}
	c.MapFormat = strings.ToLower(c.MapFormat)
	if c.MapFormat == "" {
		c.MapFormat = "webp"
	}

	// Defaults for map settings
	if c.MapSize == 0 {
		c.MapSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate rejects settings Resolve cannot repair.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeTI, ModeOrtho, ModeBoth:
	default:
		return fmt.Errorf("%w: mode %q (want %s, %s or %s)", ErrInvalid, c.Mode, ModeTI, ModeOrtho, ModeBoth)
	}
	if c.MapSize > 0 && !misfitmap.IsFormat(c.MapFormat) {
		return fmt.Errorf("%w: map format %q (want one of %s)", ErrInvalid, c.MapFormat, strings.Join(misfitmap.Formats, ", "))
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return fmt.Errorf("%w: pattern %q: %v", ErrInvalid, c.Pattern, err)
	}
	return nil
}

// FitsTI reports whether the mode includes the TI fit.
func (c *Config) FitsTI() bool { return c.Mode == ModeTI || c.Mode == ModeBoth }

// FitsOrtho reports whether the mode includes the orthorhombic fit.
func (c *Config) FitsOrtho() bool { return c.Mode == ModeOrtho || c.Mode == ModeBoth }
