package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - spinner, titles
	ColorHighlight = "205" // Magenta - help keys
	ColorButton    = "162" // Pink - the new-quote button
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWhite     = "255"
)

// QuoteWidth is the widest a quote is allowed to render, in columns.
const QuoteWidth = 60

// Styles contains shared style definitions used across views.
var Styles = struct {
	Quote   lipgloss.Style // Centered quote text
	Button  lipgloss.Style // Filled pill for the new-quote action
	Spinner lipgloss.Style // Loading indicator
	HelpKey lipgloss.Style
	Hint    lipgloss.Style // Help/hint text (muted color)
}{
	Quote: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorText)).
		Align(lipgloss.Center),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorButton)).
		Padding(0, 3),
	Spinner: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
