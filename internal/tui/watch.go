package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"primview/internal/scene"
)

type fileChangedMsg struct{ path string }

type watchErrMsg struct{ err error }

// watch points the watcher at the directory holding path, creating the
// watcher on first use. Editors often replace a file rather than write it
// in place, which a file watch would miss. It reports whether a new
// watcher was created, in which case the caller must start waitForChange.
func (m *Model) watch(path string) bool {
	dir := filepath.Dir(path)
	if m.watcher != nil {
		if dir == m.watchDir {
			return false
		}
		_ = m.watcher.Remove(m.watchDir)
		if err := m.watcher.Add(dir); err != nil {
			m.status = "watch error: " + err.Error()
			m.log.Warn("watch failed", "dir", dir, "err", err)
			m.watchDir = ""
			return false
		}
		m.watchDir = dir
		m.log.Info("watching scene", "path", path)
		return false
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		m.status = "watch error: " + err.Error()
		return false
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		m.status = "watch error: " + err.Error()
		return false
	}
	m.watcher, m.watchDir = w, dir
	m.log.Info("watching scene", "path", path)
	return true
}

// waitForChange blocks on the watcher until a file in the watched
// directory is written or created. Update decides whether it matters.
func waitForChange(w *fsnotify.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					return fileChangedMsg{path: ev.Name}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

// isCurrent reports whether path names the scene on screen.
func (m Model) isCurrent(path string) bool {
	return m.selPath != "" && filepath.Clean(path) == filepath.Clean(m.selPath)
}

// reload replays the changed file up to the current step.
func (m *Model) reload(path string) {
	doc, err := scene.Load(path, m.cfg.LoadOptions())
	if err != nil {
		m.status = "reload error: " + err.Error()
		m.log.Warn("reload failed", "path", path, "err", err)
		return
	}
	cursor := 1
	if m.in != nil {
		cursor = m.in.Cursor()
	}
	if err := m.play(doc, cursor); err != nil {
		m.status = "reload error: " + err.Error()
		return
	}
	m.status = "reloaded: " + filepath.Base(path) + "  " + m.progress()
	m.log.Info("scene reloaded", "path", path, "step", m.in.Cursor())
}
