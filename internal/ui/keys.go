package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the pane.
type keyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Acknowledge key.Binding

	// Window toggles
	CycleLevel   key.Binding
	CycleFormat  key.Binding
	ToggleTime   key.Binding
	ToggleBorder key.Binding
	Clear        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		Acknowledge: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Continue after pause"),
		),
		CycleLevel: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Cycle visible level"),
		),
		CycleFormat: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle level tag"),
		),
		ToggleTime: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Toggle timestamps"),
		),
		ToggleBorder: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Toggle border"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear messages"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleLevel, k.CycleFormat, k.ToggleTime, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CycleLevel, k.CycleFormat, k.ToggleTime, k.ToggleBorder},
		{k.Acknowledge, k.Clear},
		{k.Help, k.Quit},
	}
}
