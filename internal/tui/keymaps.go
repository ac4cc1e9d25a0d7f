package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the TUI
type KeyMap struct {
	Help     key.Binding
	Quit     key.Binding
	Submit   key.Binding
	NextPane key.Binding
	NextFile key.Binding
	PrevFile key.Binding
	Toggle   key.Binding
	NewURL   key.Binding
}

// DefaultKeyMap returns the default key map
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fetch pull request"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		NextFile: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next file"),
		),
		PrevFile: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p", "previous file"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand/collapse diff"),
		),
		NewURL: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "review another URL"),
		),
	}
}

// Keys is a global instance of the keymap for use in the model
var Keys = DefaultKeyMap()

// ShortHelp returns the short help text for the help bubble
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.NextPane}
}

// FullHelp returns the full help text for the help bubble
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Help, k.Quit, k.Submit, k.NewURL},
		{k.NextPane, k.NextFile, k.PrevFile, k.Toggle},
	}
}
