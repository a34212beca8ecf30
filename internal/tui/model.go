package tui

import (
	"io"
	"log/slog"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"primview/internal/config"
	"primview/internal/interp"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	cfg    config.Config
	log    *slog.Logger
	keys   keyMap

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Scene
	canvas *Canvas
	in     *interp.Interpreter

	// paste mode
	pasteMode bool
	ta        textarea.Model

	showFrame bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverHandle interp.Handle
	hoverMicX   int
	hoverMicY   int

	// artifact table
	showAttrs bool
	tbl       table.Model

	watcher  *fsnotify.Watcher
	watchDir string
}

// New returns a viewer with no scene loaded.
func New(cfg config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := Model{
		helpVisible: true,
		status:      "primview ready",
		cfg:         cfg,
		log:         logger,
		keys:        defaultKeys(),
		showFrame:   true,
		canvas:      NewCanvas(),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Scenes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = `Paste a JSON scene ({"list":[{"e":[{"t":"p","p":[0,0,0]}]}]}). Press Ctrl+S to render; Esc to cancel.`
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a scene at launch.
func NewWithPath(cfg config.Config, logger *slog.Logger, path string) Model {
	m := New(cfg, logger)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.watcher)
}

// Close releases the file watcher, if any.
func (m Model) Close() error {
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}
