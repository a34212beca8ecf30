package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"primview/internal/config"
	"primview/internal/interp"
	"primview/internal/scene"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D7D")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	headStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF")).Bold(true)
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Play a scene to the end without a viewport and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := opts.resolve(cmd)
			if err != nil {
				if errors.Is(err, config.ErrNoInput) {
					_ = cmd.Help()
				}
				return err
			}
			doc, err := scene.Load(path, cfg.LoadOptions())
			if err != nil {
				return err
			}
			rec := interp.NewRecorder()
			in, err := interp.New(doc, rec,
				interp.WithAutoResetCamera(cfg.AutoResetCamera),
				interp.WithPaddingFloor(cfg.SphereRadius))
			if err != nil {
				return err
			}
			in.RunAll()
			writeSummary(cmd.OutOrStdout(), path, in, rec)
			return nil
		},
	}
}

func writeSummary(w io.Writer, path string, in *interp.Interpreter, rec *interp.Recorder) {
	doc := in.Document()
	kinds := map[scene.Kind]int{}
	for _, s := range doc.Steps {
		for _, e := range s.Entities {
			kinds[e.Kind]++
		}
	}
	var counts []string
	for _, k := range []scene.Kind{scene.Point, scene.Vector, scene.Polyline, scene.Box} {
		if n := kinds[k]; n > 0 {
			counts = append(counts, fmt.Sprintf("%s=%d", k, n))
		}
	}

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
	}
	lines := []string{
		headStyle.Render(path),
		row("steps", fmt.Sprintf("%d", in.Len())),
		row("glyph", fmt.Sprintf("%v", doc.Glyph)),
		row("reset", fmt.Sprintf("%v", doc.Reset)),
		row("entities", fmt.Sprintf("%d  %s", doc.EntityCount(), strings.Join(counts, " "))),
		row("created", fmt.Sprintf("%d (%d batched)", rec.Creates+rec.BatchCreates, rec.BatchCreates)),
		row("removed", fmt.Sprintf("%d", rec.Removes)),
		row("live", fmt.Sprintf("%d", len(in.Live()))),
		row("held", fmt.Sprintf("%d", len(in.Held()))),
	}
	if f, ok := in.Frame(); ok {
		lines = append(lines, row("frame", fmt.Sprintf("x[%.4g,%.4g] y[%.4g,%.4g] z[%.4g,%.4g]",
			f.MinX, f.MaxX, f.MinY, f.MaxY, f.MinZ, f.MaxZ)))
	} else {
		lines = append(lines, row("frame", "none"))
	}
	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, lines...))
}
