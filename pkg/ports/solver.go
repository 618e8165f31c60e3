package ports

import (
	"context"

	"github.com/chalklab/chalkline/pkg/domain"
)

// Solver is the contract every algorithm family implements: run the
// algorithm to completion once, deterministically, and return the full
// trace. Inputs arrive as a loosely typed map (from YAML scenarios or HTTP
// bodies); implementations decode and validate them, returning an
// InvalidInputError for malformed shapes before emitting any step.
type Solver interface {
	// Name returns the registry name of the algorithm (e.g. "knapsack").
	Name() string

	// Solve executes the algorithm and returns its trace.
	Solve(ctx context.Context, inputs map[string]any) (*domain.Trace, error)
}
