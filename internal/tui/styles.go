package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	hoverFg   = lipgloss.Color("#FFA500")
	frameFg   = "#3B4A5C"
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
)

// background is what translucent entities are blended against.
var background = colorful.Color{R: 0x0B / 255.0, G: 0x0F / 255.0, B: 0x14 / 255.0}

// entityHex converts an entity colour and opacity to a terminal colour.
func entityHex(rgba [4]float64) string {
	c := colorful.Color{R: rgba[0], G: rgba[1], B: rgba[2]}.Clamped()
	op := rgba[3]
	if op < 0 {
		op = 0
	}
	if op > 1 {
		op = 1
	}
	return background.BlendRgb(c, op).Clamped().Hex()
}
