package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
}

// layout computes the screen regions; View and mouse handling share it.
func (m Model) layout() layout {
	var lay layout
	if m.showSidebar {
		lay.sidebarW = sidebarWidth
	}
	lay.contentH = max(4, m.height-headerHeight-footerHeight)
	lay.contentW = max(10, m.width)
	lay.mapW = max(10, lay.contentW-lay.sidebarW-1)
	lay.mapH = lay.contentH
	lay.mapX = lay.sidebarW
	if m.showSidebar {
		lay.mapX++
	}
	lay.mapY = headerHeight
	return lay
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
	}

	// Header
	title := " primview ─ terminal scene viewer "
	if m.in != nil {
		title += fmt.Sprintf("─ step %d/%d ", m.in.Cursor(), m.in.Len())
	}
	header := lipgloss.NewStyle().Width(lay.contentW).Padding(0).Render(titleStyle.Render(title))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lay.sidebarW).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(lay.mapW)
		m.ta.SetHeight(min(lay.mapH, 12))
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.renderScene(lay.mapW, lay.mapH))
	}

	// Inspect popup (center-left overlay, not in map column)
	popup := ""
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := max(20, min(48, lay.contentW/2))
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(lay.contentW, lipgloss.Height(box), lipgloss.Left, lipgloss.Center, box)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	statusStyle := dimStyle
	if strings.Contains(m.status, "error") {
		statusStyle = errStyle
	}
	status := statusStyle.Render(" " + m.status + " ")
	frame := ""
	if f, ok := m.canvas.Frame(); ok && m.showFrame {
		frame = dimStyle.Render(fmt.Sprintf("  x[%.3g,%.3g] y[%.3g,%.3g] z[%.3g,%.3g]  ", f.MinX, f.MaxX, f.MinY, f.MaxY, f.MinZ, f.MaxZ))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	spacerW := max(0, lay.contentW-lipgloss.Width(left)-lipgloss.Width(frame))
	right := lipgloss.Place(spacerW+lipgloss.Width(frame), 1, lipgloss.Right, lipgloss.Center, frame)
	footer := lipgloss.NewStyle().Width(lay.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	for _, b := range m.keys.shortHelp() {
		h := b.Help()
		keys = append(keys, h.Key+" "+h.Desc)
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
