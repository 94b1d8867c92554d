package page

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings shown on the quote screen.
type KeyMap struct {
	Reload key.Binding
	Quit   key.Binding // handled by the root model, listed here for help only
}

// DefaultKeyMap returns the bindings used by both page variants.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reload: key.NewBinding(
			key.WithKeys("r", "enter", " "),
			key.WithHelp("r", "random quote"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
