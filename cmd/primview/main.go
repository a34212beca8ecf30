// primview - terminal viewer for step-by-step 3D primitive scenes.
//
// Controls:
//
//	n / Space   - Play the next step
//	r           - Run all remaining steps
//	c           - Fit camera to the scene
//	Arrows      - Pan
//	+/-         - Zoom
//	y/Y t/T     - Yaw and tilt
//	i / click   - Inspect an artifact
//	a           - Artifact table
//	e           - Export visible artifacts to OBJ
//	q           - Quit
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"primview/internal/config"
	"primview/internal/tui"
)

// errUnsupportedMode is returned for mode switches that select pipelines
// this viewer does not have.
var errUnsupportedMode = errors.New("unsupported mode")

type options struct {
	configPath string
	filename   string

	sphereRadius    float64
	tubeRadius      float64
	noReset         bool
	basicMode       bool
	buildingsMode   bool
	outline         string
	autoResetCamera bool
	watch           bool
	logFile         string
	exportPrefix    string

	modelMode, objMode, renderMode, scalarFieldMode, lightMode bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "primview [-f scene.json]",
		Short: "Terminal viewer for step-by-step 3D primitive scenes",
		Long: `primview - terminal viewer for step-by-step 3D primitive scenes

Loads a JSON step document (points, vectors, polylines), a basic-mode
text file of 3 or 6 numbers per row, or a buildings CSV, and plays it
step by step in the terminal.

When --filename is omitted the first line of ./default_input.txt is used.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.checkModes(); err != nil {
				return err
			}
			cfg, path, err := opts.resolve(cmd)
			if err != nil {
				if errors.Is(err, config.ErrNoInput) {
					_ = cmd.Help()
				}
				return err
			}
			return runViewer(cfg, path)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.filename, "filename", "f", "", "scene file to load")
	pf.StringVar(&opts.configPath, "config", "", "settings file (default ./"+config.DefaultFile+" when present)")
	pf.Float64VarP(&opts.sphereRadius, "sphere-radius", "s", config.Default().SphereRadius, "default point radius")
	pf.Float64VarP(&opts.tubeRadius, "tube-radius", "t", config.Default().TubeRadius, "default vector/polyline radius")
	pf.BoolVarP(&opts.noReset, "no-reset", "n", false, "keep earlier steps visible unless a step asks for a reset")
	pf.BoolVarP(&opts.basicMode, "basic-mode", "b", false, "read rows of 3 (point) or 6 (vector) numbers")
	pf.BoolVar(&opts.buildingsMode, "buildings-mode", false, "read a buildings CSV")
	pf.StringVar(&opts.outline, "outline", "", "outline CSV (x,y rows) drawn with --buildings-mode")
	pf.BoolVar(&opts.autoResetCamera, "auto-reset-camera", false, "fit the camera after every step")

	f := cmd.Flags()
	f.BoolVarP(&opts.watch, "watch", "w", false, "reload the scene when the file changes")
	f.StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	f.StringVar(&opts.exportPrefix, "export-prefix", config.Default().ExportPrefix, "file prefix for OBJ export")
	f.BoolVar(&opts.modelMode, "model-mode", false, "mesh model pipeline (not supported)")
	f.BoolVar(&opts.objMode, "obj-mode", false, "OBJ import pipeline (not supported)")
	f.BoolVar(&opts.renderMode, "render-mode", false, "offscreen render pipeline (not supported)")
	f.BoolVar(&opts.scalarFieldMode, "scalar-field-mode", false, "scalar field pipeline (not supported)")
	f.BoolVar(&opts.lightMode, "light-mode", false, "lighting pipeline (not supported)")

	cmd.AddCommand(newInfoCmd(&opts))
	return cmd
}

func (o *options) checkModes() error {
	for name, on := range map[string]bool{
		"model-mode":        o.modelMode,
		"obj-mode":          o.objMode,
		"render-mode":       o.renderMode,
		"scalar-field-mode": o.scalarFieldMode,
		"light-mode":        o.lightMode,
	} {
		if on {
			return fmt.Errorf("--%s: %w", name, errUnsupportedMode)
		}
	}
	return nil
}

// resolve layers explicitly set flags over the config file and finds the input path.
func (o *options) resolve(cmd *cobra.Command) (config.Config, string, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, "", err
	}
	changed := cmd.Flags().Changed
	if changed("sphere-radius") {
		cfg.SphereRadius = o.sphereRadius
	}
	if changed("tube-radius") {
		cfg.TubeRadius = o.tubeRadius
	}
	if changed("no-reset") {
		cfg.NoReset = o.noReset
	}
	if changed("basic-mode") {
		cfg.BasicMode = o.basicMode
	}
	if changed("buildings-mode") {
		cfg.BuildingsMode = o.buildingsMode
	}
	if changed("outline") {
		cfg.Outline = o.outline
	}
	if changed("auto-reset-camera") {
		cfg.AutoResetCamera = o.autoResetCamera
	}
	if changed("watch") {
		cfg.Watch = o.watch
	}
	if changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if changed("export-prefix") {
		cfg.ExportPrefix = o.exportPrefix
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	path, err := config.ResolveInput(o.filename, ".")
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, path, nil
}

func runViewer(cfg config.Config, path string) error {
	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	m := tui.NewWithPath(cfg, logger, path)
	defer m.Close()
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Printf("primview: %v", err)
		return err
	}
	return nil
}
