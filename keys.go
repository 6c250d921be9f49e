package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the selector
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Save      key.Binding
	Kill      key.Binding
	Search    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.SelectAll, k.Save, k.Kill, k.Search, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.SelectAll, k.Search},
		{k.Save, k.Kill, k.Quit},
	}
}

// keys is the default set of selector key bindings
var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Select: key.NewBinding(
		key.WithKeys(" ", "tab"),
		key.WithHelp("space", "select"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save selection"),
	),
	Kill: key.NewBinding(
		key.WithKeys("enter", "d"),
		key.WithHelp("enter/d", "kill selected"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc", " "),
		key.WithHelp("enter", "ok"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// hotkeyMap holds the headless listener's combinations
type hotkeyMap struct {
	Kill key.Binding
	Quit key.Binding
}

var hotkeys = hotkeyMap{
	Kill: key.NewBinding(
		key.WithKeys("ctrl+shift+q"),
		key.WithHelp("Ctrl+Shift+Q", "close apps"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("Esc", "stop"),
	),
}

// terminalOnlyKeys are never grabbed system-wide; ctrl+c is the copy
// shortcut in most desktop applications.
var terminalOnlyKeys = []string{"ctrl+c"}
