package chalkline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalklab/chalkline"
	"github.com/chalklab/chalkline/pkg/domain"
)

func TestEngine_Algorithms(t *testing.T) {
	eng := chalkline.New()
	assert.Equal(t,
		[]string{"countsort", "heap", "knapsack", "lcs", "strassen"},
		eng.Algorithms(),
	)
}

func TestEngine_Solve(t *testing.T) {
	eng := chalkline.New()

	trace, err := eng.Solve(context.Background(), "knapsack", map[string]any{
		"capacity": 5,
		"weights":  []int{2, 3, 4},
		"values":   []int{3, 4, 5},
	})
	require.NoError(t, err)
	assert.Equal(t, "knapsack", trace.Algorithm)
	assert.Equal(t, 7, trace.Table[3][5])
}

func TestEngine_UnknownAlgorithm(t *testing.T) {
	eng := chalkline.New()

	_, err := eng.Solve(context.Background(), "bubblesort", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "bubblesort")
}

func TestEngine_SolveHook(t *testing.T) {
	var events []*domain.SolveEvent
	eng := chalkline.New(chalkline.WithLifecycleHooks(domain.LifecycleHooks{
		OnSolve: func(_ context.Context, e *domain.SolveEvent) {
			events = append(events, e)
		},
	}))

	trace, err := eng.Solve(context.Background(), "countsort", map[string]any{
		"array": []int{3, 1, 2},
	})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "countsort", events[0].Algorithm)
	assert.Equal(t, len(trace.Steps), events[0].Steps)

	// Failed solves do not fire the hook.
	_, err = eng.Solve(context.Background(), "countsort", map[string]any{})
	require.Error(t, err)
	assert.Len(t, events, 1)
}

// stubSolver exercises solver registration through options.
type stubSolver struct{}

func (stubSolver) Name() string { return "stub" }

func (stubSolver) Solve(ctx context.Context, inputs map[string]any) (*domain.Trace, error) {
	return &domain.Trace{Algorithm: "stub"}, nil
}

func TestEngine_WithSolver(t *testing.T) {
	eng := chalkline.New(chalkline.WithSolver(stubSolver{}))

	assert.Contains(t, eng.Algorithms(), "stub")

	s, ok := eng.Solver("stub")
	require.True(t, ok)
	assert.Equal(t, "stub", s.Name())

	trace, err := eng.Solve(context.Background(), "stub", nil)
	require.NoError(t, err)
	assert.Equal(t, "stub", trace.Algorithm)
}
