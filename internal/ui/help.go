package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// NewHelp returns a bubbles/help model styled with the shared palette.
func NewHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.HelpKey
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h
}

// RenderHelp renders the enabled bindings as a single compact hint bar.
func RenderHelp(h help.Model, bindings ...key.Binding) string {
	return h.ShortHelpView(bindings)
}
