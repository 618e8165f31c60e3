package chalkline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/chalklab/chalkline/internal/logging"
	"github.com/chalklab/chalkline/pkg/algorithms/countsort"
	"github.com/chalklab/chalkline/pkg/algorithms/heap"
	"github.com/chalklab/chalkline/pkg/algorithms/knapsack"
	"github.com/chalklab/chalkline/pkg/algorithms/lcs"
	"github.com/chalklab/chalkline/pkg/algorithms/strassen"
	"github.com/chalklab/chalkline/pkg/domain"
	"github.com/chalklab/chalkline/pkg/ports"
)

// Version is the chalkline release version.
const Version = "0.4.1"

// Engine is the high-level entry point for the chalkline library: a
// registry of algorithm solvers with lifecycle observability. It wraps the
// per-algorithm packages and provides a simplified API for consumers.
type Engine struct {
	solvers map[string]ports.Solver
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSolver registers an additional solver, or overrides a built-in of
// the same name.
func WithSolver(s ports.Solver) Option {
	return func(e *Engine) {
		e.solvers[s.Name()] = s
	}
}

// New initializes an Engine with the five built-in solvers registered.
func New(opts ...Option) *Engine {
	e := &Engine{
		solvers: map[string]ports.Solver{},
		logger:  logging.NewNop(),
	}
	for _, s := range []ports.Solver{
		knapsack.NewSolver(),
		lcs.NewSolver(),
		heap.NewSolver(),
		countsort.NewSolver(),
		strassen.NewSolver(),
	} {
		e.solvers[s.Name()] = s
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Algorithms returns the registered solver names, sorted.
func (e *Engine) Algorithms() []string {
	names := make([]string, 0, len(e.solvers))
	for name := range e.solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Solver returns the registered solver for an algorithm name.
func (e *Engine) Solver(algorithm string) (ports.Solver, bool) {
	s, ok := e.solvers[algorithm]
	return s, ok
}

// Solve runs the named algorithm to completion and returns its trace.
// Input-shape errors surface here synchronously; a failed solve never
// yields a partial trace.
func (e *Engine) Solve(ctx context.Context, algorithm string, inputs map[string]any) (*domain.Trace, error) {
	solver, ok := e.solvers[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, algorithm)
	}

	start := time.Now()
	trace, err := solver.Solve(ctx, inputs)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("solve complete",
		"algorithm", algorithm,
		"steps", len(trace.Steps),
		"duration", time.Since(start),
	)
	if e.hooks.OnSolve != nil {
		e.hooks.OnSolve(ctx, &domain.SolveEvent{
			Algorithm: algorithm,
			Steps:     len(trace.Steps),
			Duration:  time.Since(start),
		})
	}
	return trace, nil
}
