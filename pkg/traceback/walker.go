package traceback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/chalklab/chalkline/internal/logging"
	"github.com/chalklab/chalkline/pkg/domain"
)

// Hop is one move of a traceback walk over a solved DP table.
type Hop struct {
	From domain.Coord `json:"from"`
	To   domain.Coord `json:"to"`

	// Take reports whether the hop takes something with it: an included
	// knapsack item or a matched subsequence character.
	Take bool `json:"take"`

	// Label carries the taken payload in display form (item number, character).
	Label string `json:"label,omitempty"`

	// Description narrates the condition checked and the decision made.
	Description string `json:"description"`
}

// Rule is the per-algorithm decision function of a traceback walk.
// Next must be pure: given the same coordinate it always returns the same
// hop, so monk-mode validation can recompute the expected move fresh.
type Rule interface {
	// Start returns the coordinate the walk begins at.
	Start() domain.Coord

	// Next returns the hop from the given coordinate, or ok=false when the
	// walk terminates there.
	Next(at domain.Coord) (Hop, bool)
}

// Walker replays a traceback rule hop by hop. It is independent of the
// forward step log: it consumes only the solved table via the rule.
type Walker struct {
	mu     sync.Mutex
	rule   Rule
	at     domain.Coord
	hops   []Hop
	log    []string
	done   bool
	speed  time.Duration
	runID  int
	onHop  func(Hop)
	logger *slog.Logger
}

// Option configures the Walker.
type Option func(*Walker)

// WithSpeed sets the inter-hop delay for Animate.
func WithSpeed(d time.Duration) Option {
	return func(w *Walker) {
		w.speed = d
	}
}

// WithHopFunc registers a callback invoked on every executed hop.
func WithHopFunc(fn func(Hop)) Option {
	return func(w *Walker) {
		w.onHop = fn
	}
}

// WithLogger configures a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Walker) {
		w.logger = logger
	}
}

// NewWalker creates a walker positioned at the rule's start coordinate.
func NewWalker(rule Rule, opts ...Option) *Walker {
	w := &Walker{
		rule:   rule,
		at:     rule.Start(),
		speed:  500 * time.Millisecond,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Position returns the current coordinate of the walk.
func (w *Walker) Position() domain.Coord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.at
}

// Done reports whether the walk has terminated.
func (w *Walker) Done() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done
}

// Step executes one hop. Returns ok=false once the walk has terminated;
// calling Step past termination is a no-op.
func (w *Walker) Step() (Hop, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step()
}

func (w *Walker) step() (Hop, bool) {
	if w.done {
		return Hop{}, false
	}
	hop, ok := w.rule.Next(w.at)
	if !ok {
		w.done = true
		return Hop{}, false
	}
	w.apply(hop)
	return hop, true
}

func (w *Walker) apply(hop Hop) {
	w.at = hop.To
	w.hops = append(w.hops, hop)
	w.log = append(w.log, hop.Description)
	w.logger.Debug("traceback hop",
		"from_row", hop.From.Row, "from_col", hop.From.Col,
		"to_row", hop.To.Row, "to_col", hop.To.Col,
		"take", hop.Take,
	)
	if w.onHop != nil {
		w.onHop(hop)
	}
}

// Run drains the walk synchronously and returns all hops.
func (w *Walker) Run() []Hop {
	for {
		if _, ok := w.Step(); !ok {
			break
		}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Hop(nil), w.hops...)
}

// Animate executes the walk with the configured inter-hop delay until the
// walk terminates or ctx is cancelled. A stale animation abandoned by Reset
// stops at its next wakeup via the run guard.
func (w *Walker) Animate(ctx context.Context) error {
	w.mu.Lock()
	w.runID++
	id := w.runID
	speed := w.speed
	w.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(speed):
		}

		w.mu.Lock()
		if w.runID != id {
			w.mu.Unlock()
			return nil
		}
		_, ok := w.step()
		w.mu.Unlock()
		if !ok {
			return nil
		}
	}
}

// Expected computes the next hop without advancing state. It re-evaluates
// the rule fresh on every call rather than memoizing.
func (w *Walker) Expected() (Hop, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done {
		return Hop{}, false
	}
	return w.rule.Next(w.at)
}

// ValidateClick checks a learner's clicked cell against the single expected
// next coordinate. On a match the walk advances; a wrong click leaves state
// unchanged and is reported as a recoverable miss, never an error.
func (w *Walker) ValidateClick(c domain.Coord) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done {
		return false
	}
	hop, ok := w.rule.Next(w.at)
	if !ok {
		w.done = true
		return false
	}
	if c.Row != hop.To.Row || c.Col != hop.To.Col {
		return false
	}
	w.apply(hop)
	return true
}

// Reset returns the walk to its start coordinate and clears the log.
// Any in-flight animation is abandoned at its next tick.
func (w *Walker) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.runID++
	w.at = w.rule.Start()
	w.hops = nil
	w.log = nil
	w.done = false
}

// Log returns the accumulated per-hop narration.
func (w *Walker) Log() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.log...)
}

// Hops returns the executed hops so far.
func (w *Walker) Hops() []Hop {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Hop(nil), w.hops...)
}
