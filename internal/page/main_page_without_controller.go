package page

import (
	"log/slog"

	"quotepage/internal/ui"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// MainPageWithoutController is the quote screen with the state machine held
// inline instead of behind a Controller. It behaves exactly like MainPage.
type MainPageWithoutController struct {
	*loader
	chrome
}

var (
	_ ui.View      = (*MainPageWithoutController)(nil)
	_ ui.Unmounter = (*MainPageWithoutController)(nil)
)

// NewMainPageWithoutController creates the inline-state quote screen.
func NewMainPageWithoutController(source Retriever, onNewQuote OnNewQuote, logger *slog.Logger) *MainPageWithoutController {
	return &MainPageWithoutController{
		loader: newLoader(source, onNewQuote, logger),
		chrome: newChrome(),
	}
}

// State returns the display state.
func (p *MainPageWithoutController) State() State {
	return p.state
}

// Init mounts the page and starts the first load.
func (p *MainPageWithoutController) Init() tea.Cmd {
	return p.loadNewQuote()
}

// Update implements ui.View.
func (p *MainPageWithoutController) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
	case quoteLoadedMsg:
		p.finish(msg)
	case spinner.TickMsg:
		if p.state.IsLoading {
			var cmd tea.Cmd
			p.spinner, cmd = p.spinner.Update(msg)
			return p, cmd
		}
	case tea.KeyMsg:
		if !p.state.IsLoading && key.Matches(msg, p.keys.Reload) {
			return p, p.loadNewQuote()
		}
	}
	return p, nil
}

// View implements ui.View.
func (p *MainPageWithoutController) View() string {
	return p.render(p.state)
}

// Unmount implements ui.Unmounter.
func (p *MainPageWithoutController) Unmount() {
	p.stop()
}

func (p *MainPageWithoutController) loadNewQuote() tea.Cmd {
	load := p.start()
	if load == nil {
		return nil
	}
	return tea.Batch(load, p.spinner.Tick)
}
