package suggest

import "strings"

// State is a read-only snapshot of the widget handed to renderers.
type State struct {
	// Ready is false until candidates have been loaded.
	Ready bool
	// Open reports whether the suggestion panel is shown.
	Open bool
	// Query is the trimmed text the visible set was computed from; empty
	// while the panel is closed.
	Query string
	// Visible holds the current suggestions; empty when NoMatches is set.
	Visible []Match
	// Cursor is the highlighted index into Visible, or NoSelection.
	Cursor int
	// Window is the scrolled part of Visible that is on screen.
	Window Window
	// NoMatches is set when the panel is open for a query with zero matches.
	NoMatches bool
}

// Option configures a Widget.
type Option func(*Widget)

// WithOnCommit registers the callback fired once per committed value.
func WithOnCommit(fn func(value string)) Option {
	return func(w *Widget) { w.onCommit = fn }
}

// WithRenderer registers the callback invoked after every state change.
func WithRenderer(fn func(State)) Option {
	return func(w *Widget) { w.render = fn }
}

// WithWindowHeight sets how many suggestions fit on screen at once.
func WithWindowHeight(rows int) Option {
	return func(w *Widget) { w.window.Height = rows }
}

// Widget is the suggestion selector. All methods are meant to be called from
// a single event loop; callbacks run synchronously on that loop.
type Widget struct {
	candidates *Candidates
	ready      bool

	query   string
	visible []Match
	cursor  Cursor
	window  Window
	open    bool

	onCommit func(string)
	render   func(State)

	// dispatching is set while a callback runs; re-entrant calls are dropped.
	dispatching bool
}

// New creates an inert widget. It shows nothing until Load is called.
func New(opts ...Option) *Widget {
	w := &Widget{cursor: NewCursor()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Load installs the candidate list and makes the widget interactive.
// It is meant to be called once, or again after a failed load.
func (w *Widget) Load(names []string) {
	if w.dispatching {
		return
	}
	w.candidates = NewCandidates(names)
	w.ready = true
	w.close()
	w.emit()
}

// Ready reports whether candidates have been loaded.
func (w *Widget) Ready() bool { return w.ready }

// IsOpen reports whether the suggestion panel is shown.
func (w *Widget) IsOpen() bool { return w.open }

// SetQuery handles typing. The cursor is always reset, even when the new
// visible set equals the old one. An empty query dismisses the panel.
func (w *Widget) SetQuery(q string) {
	if w.dispatching {
		return
	}
	q = strings.TrimSpace(q)
	if q == "" || !w.ready {
		w.close()
		w.emit()
		return
	}

	w.query = q
	w.visible = w.candidates.filter(q)
	w.cursor.Reset(len(w.visible))
	w.window.reset()
	w.open = true
	w.emit()
}

// MoveDown highlights the next suggestion. It reports whether the key was
// consumed, which is the case whenever the panel is open.
func (w *Widget) MoveDown() bool {
	if !w.open || w.dispatching {
		return false
	}
	if w.cursor.Down() {
		w.window.Reveal(w.cursor.Index())
		w.emit()
	}
	return true
}

// MoveUp highlights the previous suggestion, down to no selection.
func (w *Widget) MoveUp() bool {
	if !w.open || w.dispatching {
		return false
	}
	if w.cursor.Up() {
		w.window.Reveal(w.cursor.Index())
		w.emit()
	}
	return true
}

// Commit handles Enter. With a highlighted suggestion it commits that value;
// with nothing highlighted it does nothing. It reports whether the key was
// consumed, which is the case whenever the panel is open.
func (w *Widget) Commit() bool {
	if !w.open || w.dispatching {
		return false
	}
	if !w.cursor.Selected() {
		return true
	}
	w.commit(w.visible[w.cursor.Index()].Value)
	return true
}

// Select handles pointer activation of visible item i: it highlights and
// commits in one step, whatever was highlighted before.
func (w *Widget) Select(i int) bool {
	if !w.open || w.dispatching {
		return false
	}
	if !w.cursor.Set(i) {
		return false
	}
	w.commit(w.visible[i].Value)
	return true
}

// Dismiss closes the panel without touching the host field.
func (w *Widget) Dismiss() {
	if w.dispatching || !w.open {
		return
	}
	w.close()
	w.emit()
}

// State returns a snapshot of the widget.
func (w *Widget) State() State {
	visible := make([]Match, len(w.visible))
	copy(visible, w.visible)
	return State{
		Ready:     w.ready,
		Open:      w.open,
		Query:     w.query,
		Visible:   visible,
		Cursor:    w.cursor.Index(),
		Window:    w.window,
		NoMatches: w.open && len(w.visible) == 0,
	}
}

// commit notifies the host before the panel closes so the field already
// holds the value when the dismissed state is rendered.
func (w *Widget) commit(value string) {
	w.notify(value)
	w.close()
	w.emit()
}

func (w *Widget) notify(value string) {
	if w.onCommit == nil {
		return
	}
	w.dispatching = true
	defer func() { w.dispatching = false }()
	w.onCommit(value)
}

func (w *Widget) close() {
	w.query = ""
	w.open = false
	w.visible = nil
	w.cursor.Reset(0)
	w.window.reset()
}

func (w *Widget) emit() {
	if w.render == nil {
		return
	}
	w.dispatching = true
	defer func() { w.dispatching = false }()
	w.render(w.State())
}
