package page

import (
	"log/slog"

	"quotepage/internal/ui"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// MainPage is the quote screen driven through a Controller.
type MainPage struct {
	controller *Controller
	chrome
}

var (
	_ ui.View      = (*MainPage)(nil)
	_ ui.Unmounter = (*MainPage)(nil)
)

// NewMainPage creates the controller-based quote screen.
func NewMainPage(source Retriever, onNewQuote OnNewQuote, logger *slog.Logger) *MainPage {
	return &MainPage{
		controller: NewController(source, onNewQuote, logger),
		chrome:     newChrome(),
	}
}

// Controller returns the controller backing the page.
func (p *MainPage) Controller() *Controller {
	return p.controller
}

// State returns the controller's display state.
func (p *MainPage) State() State {
	return p.controller.State()
}

// Init mounts the page and starts the first load.
func (p *MainPage) Init() tea.Cmd {
	return p.withSpinner(p.controller.Mount())
}

// Update implements ui.View.
func (p *MainPage) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
	case quoteLoadedMsg:
		p.controller.HandleMsg(msg)
	case spinner.TickMsg:
		if p.controller.State().IsLoading {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return p, cmd
		}
	case tea.KeyMsg:
		if !p.controller.State().IsLoading && key.Matches(msg, p.keys.Reload) {
			return p, p.withSpinner(p.controller.TriggerReload())
		}
	}
	return p, nil
}

// View implements ui.View.
func (p *MainPage) View() string {
	return p.render(p.controller.State())
}

// Unmount implements ui.Unmounter.
func (p *MainPage) Unmount() {
	p.controller.Unmount()
}

// withSpinner pairs a load command with a spinner tick so the indicator
// animates for the duration of the load.
func (p *MainPage) withSpinner(load tea.Cmd) tea.Cmd {
	if load == nil {
		return nil
	}
	return tea.Batch(load, p.spinner.Tick)
}
