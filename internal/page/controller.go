package page

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Controller owns the display state of the quote screen and exposes it to a
// view as a read-only snapshot plus a reload command.
type Controller struct {
	l *loader
}

// NewController creates a controller in the Idle state with no quote.
func NewController(source Retriever, onNewQuote OnNewQuote, logger *slog.Logger) *Controller {
	return &Controller{l: newLoader(source, onNewQuote, logger)}
}

// State returns a snapshot of the current display state.
func (c *Controller) State() State {
	return c.l.state
}

// Mount starts the initial load. The state is Loading when Mount returns.
func (c *Controller) Mount() tea.Cmd {
	return c.l.start()
}

// TriggerReload starts a new load. It is a no-op while a load is in flight
// and after Unmount.
func (c *Controller) TriggerReload() tea.Cmd {
	return c.l.start()
}

// HandleMsg applies msg if it is a result of this controller's load and
// reports whether the state changed.
func (c *Controller) HandleMsg(msg tea.Msg) bool {
	loaded, ok := msg.(quoteLoadedMsg)
	if !ok {
		return false
	}
	return c.l.finish(loaded)
}

// Unmount cancels any pending load and suppresses later state updates.
func (c *Controller) Unmount() {
	c.l.stop()
}
