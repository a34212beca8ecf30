package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"primview/internal/interp"
	"primview/internal/scene"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case fileChangedMsg:
		// events for files other than the open scene are dropped
		if m.isCurrent(msg.path) {
			m.reload(m.selPath)
		}
		return m, waitForChange(m.watcher)
	case watchErrMsg:
		m.status = "watch error: " + msg.err.Error()
		m.log.Warn("watch error", "err", msg.err)
		return m, waitForChange(m.watcher)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showAttrs && !key.Matches(msg, m.keys.Attrs, m.keys.Quit) {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.advance()
		case key.Matches(msg, m.keys.RunAll):
			if m.in != nil {
				n := m.in.RunAll()
				m.status = fmt.Sprintf("ran %d steps  %s", n, m.progress())
			}
		case key.Matches(msg, m.keys.Camera):
			m.canvas.ResetCameraToFit()
			m.status = "camera fitted"
		case key.Matches(msg, m.keys.ZoomIn):
			if m.canvas.cam.zoom < 256 {
				m.canvas.cam.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.canvas.cam.zoom)
			}
		case key.Matches(msg, m.keys.ZoomOut):
			if m.canvas.cam.zoom > 0.05 {
				m.canvas.cam.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.canvas.cam.zoom)
			}
		case key.Matches(msg, m.keys.Yaw):
			m.canvas.cam.yaw += rotStep
		case key.Matches(msg, m.keys.YawBack):
			m.canvas.cam.yaw -= rotStep
		case key.Matches(msg, m.keys.Tilt):
			m.canvas.cam.pitch += rotStep
		case key.Matches(msg, m.keys.TiltBack):
			m.canvas.cam.pitch -= rotStep
		case key.Matches(msg, m.keys.Up):
			m.canvas.cam.panY -= 1
		case key.Matches(msg, m.keys.Down):
			m.canvas.cam.panY += 1
		case key.Matches(msg, m.keys.Left):
			m.canvas.cam.panX -= 2
		case key.Matches(msg, m.keys.Right):
			m.canvas.cam.panX += 2
		case key.Matches(msg, m.keys.Sidebar):
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case key.Matches(msg, m.keys.Paste):
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		case key.Matches(msg, m.keys.Frame):
			m.showFrame = !m.showFrame
			m.status = fmt.Sprintf("axis frame: %v", m.showFrame)
		case key.Matches(msg, m.keys.Attrs):
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case key.Matches(msg, m.keys.Inspect):
			if h, ok := m.inspectNearest(); ok {
				m.showInspect(h)
			} else {
				m.inspectPopup = "no artifact nearby"
				m.status = m.inspectPopup
			}
		case key.Matches(msg, m.keys.Export):
			name, err := m.canvas.ExportOBJ(m.cfg.ExportPrefix)
			if err != nil {
				m.status = "export error: " + err.Error()
				m.log.Error("export failed", "err", err)
			} else {
				m.status = "exported: " + name
				m.log.Info("scene exported", "file", name, "artifacts", m.canvas.Len())
			}
		case key.Matches(msg, m.keys.Open):
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					if cmd := m.loadPath(it.path); cmd != nil {
						return m, cmd
					}
				}
			} else {
				m.inspectPopup = ""
			}
		}
	case tea.MouseMsg:
		lay := m.layout()
		cx, cy := msg.X, msg.Y
		if cx >= lay.mapX && cx < lay.mapX+lay.mapW && cy >= lay.mapY && cy < lay.mapY+lay.mapH {
			hxMic := (cx - lay.mapX) * 2
			hyMic := (cy - lay.mapY) * 4
			h, bx, by, ok := m.nearestVertex(hxMic, hyMic, lay.mapW, lay.mapH)
			m.hovering = ok
			m.hoverHandle, m.hoverMicX, m.hoverMicY = h, bx, by
			if ok && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				m.showInspect(h)
			}
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return *m, nil
	case "ctrl+s":
		src := strings.TrimSpace(m.ta.Value())
		if src == "" {
			m.status = "paste: empty"
			return *m, nil
		}
		doc, err := scene.DecodeJSON(strings.NewReader(src), m.cfg.Radii())
		if err != nil {
			m.status = "scene error: " + err.Error()
			return *m, nil
		}
		if m.cfg.NoReset {
			doc.Reset = false
		}
		if err := m.play(doc, 1); err != nil {
			m.status = "scene error: " + err.Error()
			return *m, nil
		}
		m.selPath = ""
		m.status = "rendered pasted scene  " + m.progress()
		m.pasteMode = false
		m.ta.Blur()
		return *m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return *m, cmd
}

func (m *Model) advance() {
	if m.in == nil {
		m.status = "no scene loaded"
		return
	}
	res := m.in.Advance()
	if res.Status == interp.NoMoreSteps {
		m.status = "no more steps  " + m.progress()
		return
	}
	m.status = fmt.Sprintf("step %d: +%d artifacts  %s", res.Step+1, len(res.Handles), m.progress())
	if m.showAttrs {
		m.refreshAttrs()
	}
}

func (m *Model) showInspect(h interp.Handle) {
	a, ok := m.canvas.items[h]
	if !ok || m.in == nil {
		return
	}
	m.inspectPopup = fmt.Sprintf("artifact %d (%s)\n%s", h, a.label, strings.TrimRight(m.in.Describe(h), "\n"))
	m.status = "inspect popup"
}
