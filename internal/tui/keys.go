package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the calendar.
type KeyMap struct {
	Quit       key.Binding
	ToggleView key.Binding
	Today      key.Binding
	Prev       key.Binding
	Next       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	ExpandLane key.Binding
	NewEvent   key.Binding
	Delete     key.Binding
	Copy       key.Binding
	Import     key.Binding
	Escape     key.Binding
	Confirm    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v", "tab"),
			key.WithHelp("v", "day/week"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "next"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "scroll down"),
		),
		ExpandLane: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand all-day"),
		),
		NewEvent: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new event"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import ics"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

var keys = DefaultKeyMap()
