package page

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// scriptedRetriever returns its quotes in order, then repeats the last one.
type scriptedRetriever struct {
	mu     sync.Mutex
	quotes []string
	calls  int
}

func (r *scriptedRetriever) Retrieve(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if len(r.quotes) == 0 {
		return ""
	}
	i := min(r.calls-1, len(r.quotes)-1)
	return r.quotes[i]
}

// blockingRetriever blocks until its context is cancelled.
type blockingRetriever struct{}

func (blockingRetriever) Retrieve(ctx context.Context) string {
	<-ctx.Done()
	return ""
}

// recorder collects observer notifications.
type recorder struct {
	quotes []string
}

func (r *recorder) observe(q string) {
	r.quotes = append(r.quotes, q)
}

// runCmd executes cmd synchronously, flattening batches.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// loadedMsgs runs cmd and returns only the quote results it produced.
func loadedMsgs(t *testing.T, cmd tea.Cmd) []quoteLoadedMsg {
	t.Helper()
	var out []quoteLoadedMsg
	for _, msg := range runCmd(t, cmd) {
		if m, ok := msg.(quoteLoadedMsg); ok {
			out = append(out, m)
		}
	}
	return out
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
