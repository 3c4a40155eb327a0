package tui

import key "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pan     key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Reset   key.Binding
	Sidebar key.Binding
	Open    key.Binding
	Paste   key.Binding
	Table   key.Binding
	Inspect key.Binding
	Export  key.Binding
	Legend  key.Binding
	Help    key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		// help-only entry for the arrow bindings below
		Pan:     key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→/drag", "pan")),
		Up:      key.NewBinding(key.WithKeys("up")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Left:    key.NewBinding(key.WithKeys("left")),
		Right:   key.NewBinding(key.WithKeys("right")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-/wheel", "zoom")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
		Reset:   key.NewBinding(key.WithKeys("r", "0"), key.WithHelp("r", "reset")),
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "files")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Paste:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Table:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "records")),
		Inspect: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspect")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Legend:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "legend")),
		Help:    key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Close:   key.NewBinding(key.WithKeys("esc")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pan, k.ZoomIn, k.Reset, k.Sidebar, k.Open, k.Paste, k.Table, k.Inspect, k.Export, k.Legend, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
