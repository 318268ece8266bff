package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Check  key.Binding
	Finish key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Check: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "check step"),
		),
		Finish: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finish"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// bindings returns the keys shown in the help line for a screen.
func (k keyMap) bindings(s screen) []key.Binding {
	switch s {
	case screenSteps:
		return []key.Binding{k.Up, k.Down, k.Check, k.Finish, k.Back, k.Quit}
	case screenResult:
		return []key.Binding{k.Select, k.Quit}
	case screenAircraft:
		return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
	}
}
