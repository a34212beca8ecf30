package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Next     key.Binding
	RunAll   key.Binding
	Camera   key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Yaw      key.Binding
	YawBack  key.Binding
	Tilt     key.Binding
	TiltBack key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Inspect  key.Binding
	Attrs    key.Binding
	Frame    key.Binding
	Paste    key.Binding
	Sidebar  key.Binding
	Open     key.Binding
	Export   key.Binding
	Help     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Next:     key.NewBinding(key.WithKeys("n", " "), key.WithHelp("n", "next step")),
		RunAll:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run all")),
		Camera:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "fit camera")),
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut:  key.NewBinding(key.WithKeys("-", "_")),
		Yaw:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y/t", "rotate")),
		YawBack:  key.NewBinding(key.WithKeys("Y")),
		Tilt:     key.NewBinding(key.WithKeys("t")),
		TiltBack: key.NewBinding(key.WithKeys("T")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓←→", "pan")),
		Down:     key.NewBinding(key.WithKeys("down")),
		Left:     key.NewBinding(key.WithKeys("left")),
		Right:    key.NewBinding(key.WithKeys("right")),
		Inspect:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspect")),
		Attrs:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "artifacts")),
		Frame:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "frame")),
		Paste:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Sidebar:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "sidebar")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "open")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Help:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
	}
}

// shortHelp lists the bindings shown in the footer.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{
		k.Next, k.RunAll, k.Camera, k.Up, k.ZoomIn, k.Yaw, k.Inspect,
		k.Attrs, k.Frame, k.Paste, k.Sidebar, k.Export, k.Help, k.Quit,
	}
}
