// Package config holds viewer settings. Values come from built-in defaults,
// then an optional TOML file, then command line flags.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"primview/internal/scene"
)

const (
	// DefaultFile is read from the working directory when no --config is given.
	DefaultFile = "primview.toml"
	// DefaultInputFile names a file whose first line is used as the input path.
	DefaultInputFile = "default_input.txt"
)

// ErrNoInput is returned when neither a flag nor default_input.txt names an input.
var ErrNoInput = errors.New("no input file given")

// Config is the full set of viewer settings.
type Config struct {
	SphereRadius    float64 `toml:"sphere_radius"`
	TubeRadius      float64 `toml:"tube_radius"`
	NoReset         bool    `toml:"no_reset"`
	AutoResetCamera bool    `toml:"auto_reset_camera"`
	BasicMode       bool    `toml:"basic_mode"`
	BuildingsMode   bool    `toml:"buildings_mode"`
	Outline         string  `toml:"outline"`
	Watch           bool    `toml:"watch"`
	LogFile         string  `toml:"log_file"`
	ExportPrefix    string  `toml:"export_prefix"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SphereRadius: scene.DefaultRadii.SphereRadius,
		TubeRadius:   scene.DefaultRadii.TubeRadius,
		ExportPrefix: "primview_scene",
	}
}

// Load overlays the TOML file at path on the defaults. An empty path means
// DefaultFile, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.SphereRadius <= 0 {
		return fmt.Errorf("sphere_radius must be positive, got %g", c.SphereRadius)
	}
	if c.TubeRadius <= 0 {
		return fmt.Errorf("tube_radius must be positive, got %g", c.TubeRadius)
	}
	if c.BasicMode && c.BuildingsMode {
		return errors.New("basic mode and buildings mode are exclusive")
	}
	return nil
}

// Radii returns the entity radius defaults.
func (c Config) Radii() scene.Defaults {
	return scene.Defaults{SphereRadius: c.SphereRadius, TubeRadius: c.TubeRadius}
}

// ResolveInput returns filename when set, otherwise the first non-blank line
// of DefaultInputFile inside dir.
func ResolveInput(filename, dir string) (string, error) {
	if filename != "" {
		return filename, nil
	}
	f, err := os.Open(filepath.Join(dir, DefaultInputFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoInput
		}
		return "", err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			return s, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", ErrNoInput
}

// LoadOptions returns the scene loader settings implied by c.
func (c Config) LoadOptions() scene.LoadOptions {
	opts := scene.LoadOptions{
		Mode:     scene.ModeAuto,
		Outline:  c.Outline,
		Defaults: c.Radii(),
		NoReset:  c.NoReset,
	}
	switch {
	case c.BasicMode:
		opts.Mode = scene.ModeBasic
	case c.BuildingsMode:
		opts.Mode = scene.ModeBuildings
	}
	return opts
}
