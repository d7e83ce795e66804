// Package autosuggest implements a debounced suggestion list with keyboard
// navigation, shared by every search box that needs one.
//
// An Engine is fed UI events (Input, Key, Focus, Blur, Select) and reports
// back through callbacks. With a Fetch function it debounces keystrokes and
// cancels superseded requests; with only a Pool it filters synchronously.
package autosuggest

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tourism-server/config"
	"tourism-server/metrics"
	"tourism-server/models"
)

// FailedMessage is shown inline when a remote fetch fails.
const FailedMessage = "Failed to load suggestions"

// FetchFunc looks up suggestions for query. It must honour ctx cancellation.
type FetchFunc func(ctx context.Context, query string, limit int) ([]models.SuggestionItem, error)

// Key is a navigation key understood by the engine.
type Key string

const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
)

type Options struct {
	// Fetch selects the remote variant. When nil, Pool is filtered locally.
	Fetch FetchFunc
	Pool  []models.SuggestionItem

	// Debounce is the quiet period before a remote fetch. Zero uses the default.
	Debounce time.Duration
	// Timeout bounds a single remote fetch. Zero means no extra bound.
	Timeout time.Duration
	Limit   int

	OnResults func(query string, items []models.SuggestionItem)
	OnSelect  func(item models.SuggestionItem)
	// OnSubmit receives the raw query when Enter is pressed with nothing
	// highlighted. Nil disables free-text submit.
	OnSubmit func(query string)
	OnError  func(message string)

	Logger *slog.Logger
}

// Snapshot is a copy of the engine's visible state.
type Snapshot struct {
	Text    string                  `json:"text"`
	Open    bool                    `json:"open"`
	Cursor  int                     `json:"cursor"`
	Items   []models.SuggestionItem `json:"items"`
	Message string                  `json:"message,omitempty"`
}

type Engine struct {
	opts   Options
	logger *slog.Logger

	mu      sync.Mutex
	text    string
	open    bool
	cursor  int
	items   []models.SuggestionItem
	message string

	// dismissed is set by Blur or Escape; results arriving afterwards update
	// the list without reopening it.
	dismissed bool

	// emitMu orders result callbacks so a superseded result set is never
	// delivered after a newer one.
	emitMu sync.Mutex

	// token identifies the latest query; results carrying an older token are dropped.
	token  uint64
	timer  *time.Timer
	cancel context.CancelFunc

	// echo is the label written by a commit; the next identical Input is ignored.
	echo    string
	hasEcho bool

	closed bool
}

// New builds an Engine. The list starts closed with nothing highlighted.
func New(opts Options) *Engine {
	if opts.Debounce <= 0 {
		opts.Debounce = config.SUGGEST_DEFAULT_DEBOUNCE
	}
	if opts.Limit <= 0 {
		opts.Limit = config.SUGGEST_DEFAULT_LIMIT
	}
	lg := opts.Logger
	if lg == nil {
		lg = slog.Default()
	}
	return &Engine{
		opts:   opts,
		logger: lg.With("component", "autosuggest"),
		cursor: -1,
	}
}

// Remote reports whether the engine fetches suggestions remotely.
func (e *Engine) Remote() bool { return e.opts.Fetch != nil }

// Input handles a change of the input text.
func (e *Engine) Input(text string) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	if e.hasEcho && text == e.echo {
		e.hasEcho = false
		e.mu.Unlock()
		return
	}
	e.hasEcho = false
	e.text = text
	e.cursor = -1
	e.dismissed = false
	e.token++
	e.stopPendingLocked()
	token := e.token

	if strings.TrimSpace(text) == "" {
		e.items = nil
		e.message = ""
		e.open = false
		e.mu.Unlock()
		e.emitResults(token, text, nil, false)
		return
	}

	if !e.Remote() {
		items := Rank(e.opts.Pool, text, e.opts.Limit)
		e.items = items
		e.message = ""
		e.open = true
		e.mu.Unlock()
		e.emitResults(token, text, items, false)
		return
	}

	e.timer = time.AfterFunc(e.opts.Debounce, func() { e.fetch(token, text) })
	e.mu.Unlock()
}

// fetch runs once the debounce window for token has elapsed.
func (e *Engine) fetch(token uint64, query string) {
	e.mu.Lock()
	if e.closed || token != e.token {
		e.mu.Unlock()
		return
	}
	var ctx context.Context
	var cancel context.CancelFunc
	if e.opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), e.opts.Timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	e.cancel = cancel
	e.mu.Unlock()

	metrics.SuggestFetchTotal.Inc()
	items, err := e.opts.Fetch(ctx, query, e.opts.Limit)

	e.mu.Lock()
	if e.closed || token != e.token {
		e.mu.Unlock()
		cancel()
		metrics.SuggestAbortedTotal.Inc()
		e.logger.Debug("discarding superseded suggestions", "query", query)
		return
	}
	e.cancel = nil
	cancel()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			e.mu.Unlock()
			metrics.SuggestAbortedTotal.Inc()
			return
		}
		e.items = nil
		e.message = FailedMessage
		e.mu.Unlock()
		metrics.SuggestFailTotal.Inc()
		e.logger.Warn("suggestion fetch failed", "query", query, "error", err)
		e.emitResults(token, query, nil, true)
		return
	}

	if len(items) > e.opts.Limit {
		items = items[:e.opts.Limit]
	}
	e.items = items
	e.message = ""
	e.open = !e.dismissed
	e.cursor = -1
	e.mu.Unlock()
	e.emitResults(token, query, items, false)
}

// Focus opens the list when it is closed.
func (e *Engine) Focus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		e.open = true
		e.cursor = -1
	}
	e.dismissed = false
}

// Blur closes the list, e.g. on a click outside the widget.
func (e *Engine) Blur() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = false
	e.dismissed = true
}

// Key applies one navigation key. The cursor is clamped at both ends of the
// list; it does not wrap around.
func (e *Engine) Key(k Key) {
	e.mu.Lock()

	switch k {
	case KeyArrowDown:
		if !e.open {
			e.open = true
			e.dismissed = false
			e.cursor = -1
			break
		}
		if n := len(e.items); n > 0 {
			e.cursor = clamp(e.cursor+1, 0, n-1)
		}
	case KeyArrowUp:
		if !e.open {
			break
		}
		if n := len(e.items); n > 0 {
			e.cursor = clamp(e.cursor-1, 0, n-1)
		}
	case KeyEscape:
		e.open = false
		e.dismissed = true
	case KeyEnter:
		if !e.open {
			e.open = true
			e.dismissed = false
			e.cursor = -1
			break
		}
		if e.cursor >= 0 && e.cursor < len(e.items) {
			item := e.items[e.cursor]
			e.commitLocked(item)
			e.mu.Unlock()
			e.emitSelect(item)
			return
		}
		if e.opts.OnSubmit != nil {
			query := e.text
			e.open = false
			e.mu.Unlock()
			e.opts.OnSubmit(query)
			return
		}
	}
	e.mu.Unlock()
}

// Select commits the item at index i, as a pointer click would. It reports
// false when i is out of range.
func (e *Engine) Select(i int) bool {
	e.mu.Lock()
	if i < 0 || i >= len(e.items) {
		e.mu.Unlock()
		return false
	}
	item := e.items[i]
	e.commitLocked(item)
	e.mu.Unlock()
	e.emitSelect(item)
	return true
}

// commitLocked sets the input text to the chosen label, closes the list and
// arms the echo guard so the resulting text change does not reopen it.
func (e *Engine) commitLocked(item models.SuggestionItem) {
	e.text = item.Label
	e.echo = item.Label
	e.hasEcho = true
	e.open = false
	e.cursor = -1
	e.token++
	e.stopPendingLocked()
}

// State returns a copy of the visible state.
func (e *Engine) State() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Text:    e.text,
		Open:    e.open,
		Cursor:  e.cursor,
		Items:   append([]models.SuggestionItem(nil), e.items...),
		Message: e.message,
	}
}

// Close cancels any pending or in-flight fetch. Later events are ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.token++
	e.stopPendingLocked()
}

func (e *Engine) stopPendingLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// emitResults delivers the outcome of the query identified by token, unless a
// newer query has started in the meantime.
func (e *Engine) emitResults(token uint64, query string, items []models.SuggestionItem, failed bool) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	stale := token != e.token
	e.mu.Unlock()
	if stale {
		return
	}

	if failed && e.opts.OnError != nil {
		e.opts.OnError(FailedMessage)
	}
	if e.opts.OnResults != nil {
		e.opts.OnResults(query, items)
	}
}

func (e *Engine) emitSelect(item models.SuggestionItem) {
	if e.opts.OnSelect != nil {
		e.opts.OnSelect(item)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
