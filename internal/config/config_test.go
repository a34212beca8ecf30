package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primview/internal/scene"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
sphere_radius = 0.5
no_reset = true
basic_mode = true
export_prefix = "out"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.SphereRadius)
	assert.Equal(t, 0.025, cfg.TubeRadius)
	assert.True(t, cfg.NoReset)
	assert.Equal(t, "out", cfg.ExportPrefix)

	opts := cfg.LoadOptions()
	assert.Equal(t, scene.ModeBasic, opts.Mode)
	assert.True(t, opts.NoReset)
	assert.Equal(t, scene.Defaults{SphereRadius: 0.5, TubeRadius: 0.025}, opts.Defaults)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("sphere_radius = -1.0\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "sphere_radius")

	both := filepath.Join(dir, "both.toml")
	require.NoError(t, os.WriteFile(both, []byte("basic_mode = true\nbuildings_mode = true\n"), 0o644))
	_, err = Load(both)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("sphere_radius = \n"), 0o644))
	_, err = Load(broken)
	assert.Error(t, err)
}

func TestResolveInput(t *testing.T) {
	dir := t.TempDir()

	p, err := ResolveInput("scene.json", dir)
	require.NoError(t, err)
	assert.Equal(t, "scene.json", p)

	_, err = ResolveInput("", dir)
	assert.ErrorIs(t, err, ErrNoInput)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultInputFile), []byte("\n  steps.json  \nother.json\n"), 0o644))
	p, err = ResolveInput("", dir)
	require.NoError(t, err)
	assert.Equal(t, "steps.json", p)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultInputFile), []byte("\n\n"), 0o644))
	_, err = ResolveInput("", dir)
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestBuildingsMode(t *testing.T) {
	cfg := Default()
	cfg.BuildingsMode = true
	cfg.Outline = "outline.csv"
	opts := cfg.LoadOptions()
	assert.Equal(t, scene.ModeBuildings, opts.Mode)
	assert.Equal(t, "outline.csv", opts.Outline)
	assert.Equal(t, scene.ModeAuto, Default().LoadOptions().Mode)
}
