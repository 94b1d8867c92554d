package page

import (
	"quotepage/internal/ui"
	"quotepage/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// ButtonLabel is the caption of the new-quote action.
const ButtonLabel = "Random Quote"

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.Styles.Spinner
	return s
}

// chrome is the presentation state shared by both page variants.
type chrome struct {
	spinner spinner.Model
	help    help.Model
	keys    KeyMap
	width   int
	height  int
}

func newChrome() chrome {
	return chrome{
		spinner: newSpinner(),
		help:    ui.NewHelp(),
		keys:    DefaultKeyMap(),
	}
}

// render draws st: the spinner alone while loading, otherwise the quote and
// the button.
func (c chrome) render(st State) string {
	var body string
	if st.IsLoading {
		body = c.spinner.View()
	} else {
		width := ui.QuoteWidth
		if c.width > 0 && c.width < width {
			width = c.width
		}
		quote := ui.Styles.Quote.Render(textutil.Wrap(st.CurrentQuote, width))
		button := ui.Styles.Button.Render(ButtonLabel)
		hints := ui.RenderHelp(c.help, c.keys.Reload, c.keys.Quit)
		body = lipgloss.JoinVertical(lipgloss.Center, quote, "", button, "", hints)
	}

	if c.width > 0 && c.height > 0 {
		return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}
