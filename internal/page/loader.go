package page

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// State is the display state driving the view.
// The zero value is the state before the first load starts.
type State struct {
	CurrentQuote string
	IsLoading    bool
}

// Retriever fetches one quote. It is called off the event loop.
type Retriever interface {
	Retrieve(ctx context.Context) string
}

// OnNewQuote observes every quote that becomes the displayed one.
// It is never called with "".
type OnNewQuote func(quote string)

// quoteLoadedMsg carries a finished retrieval back to the event loop.
type quoteLoadedMsg struct {
	mountID string
	seq     uint64
	quote   string
}

// loader is the canonical Idle/Loading state machine. All methods run on the
// Bubble Tea event loop; only the command returned by start leaves it.
type loader struct {
	id         string
	source     Retriever
	onNewQuote OnNewQuote
	logger     *slog.Logger

	state State
	seq   uint64

	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
}

func newLoader(source Retriever, onNewQuote OnNewQuote, logger *slog.Logger) *loader {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	return &loader{
		id:         id,
		source:     source,
		onNewQuote: onNewQuote,
		logger:     logger.With("mount_id", id),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// start moves Idle → Loading and returns the command performing the
// retrieval. Returns nil when already loading or after stop.
func (l *loader) start() tea.Cmd {
	if l.stopped {
		return nil
	}
	if l.state.IsLoading {
		l.logger.Debug("reload ignored, load in flight", "seq", l.seq)
		return nil
	}

	l.seq++
	l.state.IsLoading = true
	l.logger.Debug("loading quote", "seq", l.seq)

	id, seq, ctx, source := l.id, l.seq, l.ctx, l.source
	return func() tea.Msg {
		return quoteLoadedMsg{mountID: id, seq: seq, quote: source.Retrieve(ctx)}
	}
}

// finish applies a completed retrieval, moving Loading → Idle.
// Results from another mount, a superseded load, or after stop are dropped.
// It reports whether the state changed.
func (l *loader) finish(msg quoteLoadedMsg) bool {
	if msg.mountID != l.id {
		return false
	}
	if l.stopped || msg.seq != l.seq || !l.state.IsLoading {
		l.logger.Debug("dropping stale quote", "seq", msg.seq, "current_seq", l.seq, "stopped", l.stopped)
		return false
	}

	l.state.IsLoading = false
	if msg.quote == "" {
		l.logger.Warn("quote source returned no quote", "seq", msg.seq)
		return true
	}

	l.state.CurrentQuote = msg.quote
	if l.onNewQuote != nil {
		l.onNewQuote(msg.quote)
	}
	return true
}

// stop tears the machine down: the in-flight retrieval is cancelled and any
// late result is ignored.
func (l *loader) stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	l.cancel()
	l.logger.Debug("unmounted", "seq", l.seq)
}
