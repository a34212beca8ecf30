package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"primview/internal/interp"
	"primview/internal/scene"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

var sceneExts = map[string]bool{".json": true, ".csv": true, ".txt": true, ".xyz": true}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if sceneExts[ext] {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no scene files in current directory"
	}
}

// loadPath loads a scene file and plays its first step. Loading is all or
// nothing: on error the current scene stays on screen. With watching on,
// the watcher follows the loaded file; the returned command is non-nil
// only when a watcher had to be started.
func (m *Model) loadPath(p string) tea.Cmd {
	doc, err := scene.Load(p, m.cfg.LoadOptions())
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Error("load failed", "path", p, "err", err)
		return nil
	}
	if err := m.play(doc, 1); err != nil {
		m.status = "load error: " + err.Error()
		m.log.Error("load failed", "path", p, "err", err)
		return nil
	}
	m.selPath = p
	m.status = "loaded: " + filepath.Base(p) + "  " + m.progress()
	m.log.Info("scene loaded", "path", p, "steps", len(doc.Steps), "entities", doc.EntityCount(), "glyph", doc.Glyph)
	if m.cfg.Watch && m.watch(p) {
		return waitForChange(m.watcher)
	}
	return nil
}

// play replaces the current scene with doc and advances to step n. Basic
// and buildings documents are a single step, so they are always complete.
func (m *Model) play(doc *scene.Document, n int) error {
	canvas := NewCanvas()
	if m.canvas != nil {
		// keep the user's orientation across reloads
		canvas.cam.yaw, canvas.cam.pitch = m.canvas.cam.yaw, m.canvas.cam.pitch
	}
	in, err := interp.New(doc, canvas,
		interp.WithAutoResetCamera(m.cfg.AutoResetCamera),
		interp.WithPaddingFloor(m.cfg.SphereRadius),
		interp.WithLogger(m.log))
	if err != nil {
		return err
	}
	in.AdvanceTo(max(n, 1))
	m.canvas, m.in = canvas, in
	m.inspectPopup = ""
	m.hovering = false
	if m.showAttrs {
		m.refreshAttrs()
	}
	return nil
}

func (m Model) progress() string {
	if m.in == nil {
		return ""
	}
	return fmt.Sprintf("step %d/%d  artifacts=%d", m.in.Cursor(), m.in.Len(), m.canvas.Len())
}
