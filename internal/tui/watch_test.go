package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primview/internal/config"
)

func onePoint(desc string) string {
	return `{"list": [{"e": [{"t": "p", "p": [0, 0, 0], "d": "` + desc + `"}]}]}`
}

func changed(t *testing.T, m Model, path string) Model {
	t.Helper()
	next, _ := m.Update(fileChangedMsg{path: path})
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestReloadReplaysToCursor(t *testing.T) {
	path := writeScene(t, threeSteps)
	m := NewWithPath(config.Default(), nil, path)
	m = press(t, m, "n")
	require.Equal(t, 2, m.in.Cursor())
	before := m.in

	require.NoError(t, os.WriteFile(path, []byte(threeSteps), 0o644))
	m = changed(t, m, path)

	assert.NotSame(t, before, m.in)
	assert.Equal(t, 2, m.in.Cursor())
	assert.Equal(t, 1, m.canvas.Len())
	assert.Contains(t, m.status, "reloaded")
}

func TestReloadErrorKeepsScene(t *testing.T) {
	path := writeScene(t, threeSteps)
	m := NewWithPath(config.Default(), nil, path)
	before, canvas := m.in, m.canvas

	require.NoError(t, os.WriteFile(path, []byte(`{"list": [`), 0o644))
	m = changed(t, m, path)

	assert.Contains(t, m.status, "reload error")
	assert.Same(t, before, m.in)
	assert.Same(t, canvas, m.canvas)
}

func TestWatchFollowsOpenedScene(t *testing.T) {
	cfg := config.Default()
	cfg.Watch = true
	a := writeScene(t, onePoint("A"))
	b := writeScene(t, onePoint("B"))

	m := NewWithPath(cfg, nil, a)
	defer m.Close()
	require.NotNil(t, m.watcher)
	assert.Equal(t, filepath.Dir(a), m.watchDir)

	assert.Nil(t, m.loadPath(b))
	assert.Equal(t, filepath.Dir(b), m.watchDir)
	assert.Equal(t, "B", m.in.Describe(m.canvas.Handles()[0]))

	// the previously opened file no longer drives the viewer
	m = changed(t, m, a)
	assert.Equal(t, b, m.selPath)
	assert.Equal(t, "B", m.in.Describe(m.canvas.Handles()[0]))

	require.NoError(t, os.WriteFile(b, []byte(onePoint("B2")), 0o644))
	m = changed(t, m, b)
	assert.Equal(t, "B2", m.in.Describe(m.canvas.Handles()[0]))
}

func TestPastedSceneIgnoresFileChanges(t *testing.T) {
	path := writeScene(t, onePoint("file"))
	m := NewWithPath(config.Default(), nil, path)

	m = press(t, m, "p")
	m.ta.SetValue(onePoint("pasted"))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	require.Equal(t, "pasted", m.in.Describe(m.canvas.Handles()[0]))

	m = changed(t, m, path)
	assert.Equal(t, "pasted", m.in.Describe(m.canvas.Handles()[0]))
}

func TestWaitForChange(t *testing.T) {
	assert.Nil(t, waitForChange(nil))

	w, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer w.Close()
	dir := t.TempDir()
	require.NoError(t, w.Add(dir))

	got := make(chan tea.Msg, 1)
	go func() { got <- waitForChange(w)() }()
	path := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(onePoint("x")), 0o644))

	select {
	case msg := <-got:
		fc, ok := msg.(fileChangedMsg)
		require.True(t, ok, "%#v", msg)
		assert.Equal(t, "scene.json", filepath.Base(fc.path))
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}
