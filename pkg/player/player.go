package player

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/chalklab/chalkline/internal/logging"
	"github.com/chalklab/chalkline/pkg/domain"
	"github.com/chalklab/chalkline/pkg/ports"
)

// Status is the player state machine position.
type Status string

const (
	StatusIdle     Status = "idle"     // no steps loaded
	StatusLoaded   Status = "loaded"   // steps present, cursor at 0
	StatusPlaying  Status = "playing"  // timer advancing the cursor
	StatusPaused   Status = "paused"   // cursor frozen, timer cancelled
	StatusFinished Status = "finished" // cursor == len(steps)
)

// DefaultSpeed is the initial per-step interval.
const DefaultSpeed = 400 * time.Millisecond

type family int

const (
	familyTable family = iota
	familyArray
	familyMatrix
)

// Player holds a step sequence and a cursor and drives a render sink on
// each transition. It runs on a single-threaded cooperative timer loop:
// the only suspension point is the scheduled tick, cancellable at any time.
//
// Operations on an out-of-range cursor clamp silently; "no steps to play"
// is a degenerate valid state, not an error.
type Player struct {
	mu     sync.Mutex
	sink   ports.RenderSink
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	trace  *domain.Trace
	steps  []domain.Step
	fam    family
	cursor int
	status Status
	speed  time.Duration

	timer *time.Timer
	runID int // stale scheduled ticks check this before acting
}

// Option configures the Player.
type Option func(*Player)

// WithSpeed sets the per-step interval. Takes effect on the next tick.
func WithSpeed(d time.Duration) Option {
	return func(p *Player) {
		p.speed = d
	}
}

// WithLogger configures a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) {
		p.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Player) {
		p.hooks = hooks
	}
}

// New creates a player driving the given sink.
func New(sink ports.RenderSink, opts ...Option) *Player {
	p := &Player{
		sink:   sink,
		status: StatusIdle,
		speed:  DefaultSpeed,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load replaces the current trace: any active timer is cancelled, the
// cursor resets to 0 and all visual state is cleared. Callable from any state.
func (p *Player) Load(trace *domain.Trace) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopTimer()
	p.trace = trace
	p.cursor = 0

	if trace == nil || len(trace.Steps) == 0 {
		p.steps = nil
		p.status = StatusIdle
	} else {
		p.steps = trace.Steps
		p.status = StatusLoaded
		p.fam = detectFamily(trace)
	}

	p.resetView()
}

func detectFamily(t *domain.Trace) family {
	for i := range t.Steps {
		if t.Steps[i].MatrixSnapshot != nil {
			return familyMatrix
		}
		if t.Steps[i].Snapshot != nil {
			return familyArray
		}
	}
	return familyTable
}

// resetView clears the sink back to the pre-play state. Caller holds the lock.
func (p *Player) resetView() {
	p.sink.Clear()
	if p.trace == nil {
		p.sink.Status("")
		return
	}
	switch p.fam {
	case familyArray:
		p.sink.SetArray("", domain.CloneArray(p.trace.Initial))
	case familyTable:
		p.blankFrom(0)
	}
	p.sink.Status("")
	p.sink.Stats(domain.Stats{})
}

// Status returns the state machine position.
func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Cursor returns the current position in the step sequence.
func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Len returns the number of loaded steps.
func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.steps)
}

// SetSpeed changes the per-step interval; it takes effect on the next
// scheduled tick.
func (p *Player) SetSpeed(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if d > 0 {
		p.speed = d
	}
}

// Play starts the cooperative loop. No-op if already playing, finished or
// nothing is loaded.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != StatusLoaded && p.status != StatusPaused {
		return
	}
	p.status = StatusPlaying
	p.runID++
	p.schedule(p.runID)
}

// Pause cancels the pending tick. Idempotent.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauseLocked()
}

func (p *Player) pauseLocked() {
	p.stopTimer()
	if p.status == StatusPlaying {
		p.status = StatusPaused
	}
}

func (p *Player) stopTimer() {
	p.runID++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Player) schedule(id int) {
	p.timer = time.AfterFunc(p.speed, func() { p.tick(id) })
}

func (p *Player) tick(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.runID != id || p.status != StatusPlaying {
		// Stale continuation from a cancelled run.
		return
	}
	p.advance()
	if p.status == StatusPlaying {
		p.schedule(id)
	}
}

// Next pauses, then executes exactly the step at the cursor. No-op past the end.
func (p *Player) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauseLocked()
	p.advance()
}

// advance executes the step at the cursor and increments it. Caller holds
// the lock.
func (p *Player) advance() {
	if len(p.steps) == 0 {
		// Nothing loaded. Stay idle rather than jumping to finished.
		return
	}
	if p.cursor >= len(p.steps) {
		p.status = StatusFinished
		return
	}
	p.apply(p.steps[p.cursor])
	p.cursor++
	if p.cursor == len(p.steps) {
		p.status = StatusFinished
	}
}

// apply projects one step onto the sink. Caller holds the lock.
func (p *Player) apply(step domain.Step) {
	p.sink.Clear()
	p.sink.Highlight(step.Target, step.Deps)

	switch p.fam {
	case familyMatrix:
		if step.MatrixSnapshot != nil {
			p.sink.SetMatrix(step.MatrixSnapshot)
		}
		if step.Value != nil {
			p.sink.SetValue(step.Target, step.Value)
		}
	case familyArray:
		if step.Snapshot != nil {
			p.sink.SetArray(step.Phase, step.Snapshot)
		}
	case familyTable:
		p.sink.SetValue(step.Target, step.Value)
	}

	p.sink.Status(step.Description)
	p.sink.Stats(step.Stats)

	if p.hooks.OnStepPlayed != nil {
		p.hooks.OnStepPlayed(context.Background(), &domain.StepEvent{
			Algorithm: p.trace.Algorithm,
			Cursor:    p.cursor,
			Kind:      step.Kind,
		})
	}
	p.logger.Debug("step played", "cursor", p.cursor, "kind", string(step.Kind))
}

// Prev pauses and moves the cursor back one step, reconstructing the state
// at cursor-1 rather than undoing a single step: inspect steps on table
// algorithms have no inverse, and array algorithms carry full snapshots
// that make reconstruction a lookup. No-op at the start.
func (p *Player) Prev() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauseLocked()
	if p.cursor == 0 {
		return
	}
	p.cursor--
	p.rebuild()
}

// Seek moves the cursor to the given index (clamped to [0, len]) and
// reconstructs the view at that position.
func (p *Player) Seek(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauseLocked()
	if p.steps == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(p.steps) {
		i = len(p.steps)
	}
	p.cursor = i
	p.rebuild()
	if p.cursor == len(p.steps) {
		p.status = StatusFinished
	} else if p.status == StatusFinished {
		p.status = StatusPaused
	}
}

// rebuild reconstructs the sink state for the current cursor. Caller holds
// the lock.
func (p *Player) rebuild() {
	if p.cursor == 0 {
		p.resetView()
		if p.status == StatusFinished || p.status == StatusPaused {
			p.status = StatusLoaded
		}
		return
	}

	switch p.fam {
	case familyArray, familyMatrix:
		// Adopt the most recent snapshot at or before cursor-1 directly.
		// This is the payoff of full-snapshot storage.
		p.sink.Clear()
		adopted := false
		for j := p.cursor - 1; j >= 0 && !adopted; j-- {
			step := p.steps[j]
			if step.MatrixSnapshot != nil {
				p.sink.SetMatrix(step.MatrixSnapshot)
				adopted = true
			} else if step.Snapshot != nil {
				p.sink.SetArray(step.Phase, step.Snapshot)
				adopted = true
			}
		}
		if !adopted && p.trace != nil {
			p.sink.SetArray("", domain.CloneArray(p.trace.Initial))
		}
		if p.fam == familyMatrix {
			// Product values live outside the snapshots; replay them so a
			// seek lands on the same view as stepping forward.
			for j := 0; j < p.cursor; j++ {
				if step := p.steps[j]; step.Value != nil {
					p.sink.SetValue(step.Target, step.Value)
				}
			}
		}
	case familyTable:
		// Blank every cell whose committing step is beyond the cursor,
		// re-apply committed values before it, then re-derive highlights
		// from the new current step.
		p.sink.Clear()
		p.blankFrom(p.cursor)
		for j := 0; j < p.cursor; j++ {
			step := p.steps[j]
			if step.Kind == domain.StepUpdate {
				p.sink.SetValue(step.Target, step.Value)
			}
		}
	}

	last := p.steps[p.cursor-1]
	p.sink.Highlight(last.Target, last.Deps)
	p.sink.Status(last.Description)
	p.sink.Stats(last.Stats)
}

// blankFrom clears the committed value of every cell first written at or
// after step index from. Caller holds the lock.
func (p *Player) blankFrom(from int) {
	for j := len(p.steps) - 1; j >= from; j-- {
		step := p.steps[j]
		if step.Kind == domain.StepUpdate {
			p.sink.SetValue(step.Target, nil)
		}
	}
}
