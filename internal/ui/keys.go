package ui

import "github.com/charmbracelet/bubbles/key"

type checklistKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	NextRegion key.Binding
	PrevRegion key.Binding
	Search     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k checklistKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Search, k.NextRegion, k.Help, k.Quit}
}

func (k checklistKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.NextRegion, k.PrevRegion, k.Search},
		{k.Help, k.Quit},
	}
}

var checklistKeys = checklistKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle done"),
	),
	NextRegion: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "next region"),
	),
	PrevRegion: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab", "prev region"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
