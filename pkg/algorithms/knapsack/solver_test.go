package knapsack_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalklab/chalkline/pkg/algorithms/knapsack"
	"github.com/chalklab/chalkline/pkg/domain"
)

// The classroom example: three items, capacity 5, optimum 7 from items 0 and 1.
var classic = knapsack.Input{
	Capacity: 5,
	Weights:  []int{2, 3, 4},
	Values:   []int{3, 4, 5},
}

func TestSolve_Optimum(t *testing.T) {
	trace, err := knapsack.Solve(context.Background(), classic)
	require.NoError(t, err)

	assert.Equal(t, knapsack.Name, trace.Algorithm)
	assert.Equal(t, 7, trace.Table[3][5])
}

func TestSolve_StepShape(t *testing.T) {
	trace, err := knapsack.Solve(context.Background(), classic)
	require.NoError(t, err)

	// 4x6 table: 9 base cells emit one update each, 15 non-base cells emit
	// an inspect followed by an update.
	assert.Len(t, trace.Steps, 9+2*15)

	var prev *domain.Step
	for i := range trace.Steps {
		step := &trace.Steps[i]
		switch step.Kind {
		case domain.StepInspect:
			assert.Nil(t, step.Value, "inspect steps carry no committed value")
			assert.NotEmpty(t, step.Deps)
		case domain.StepUpdate:
			require.NotNil(t, step.Value)
			if prev != nil && prev.Kind == domain.StepInspect {
				assert.Equal(t, prev.Target, step.Target, "update commits the inspected cell")
			}
		default:
			t.Fatalf("unexpected step kind %q", step.Kind)
		}
		prev = step
	}
}

func TestSolve_Deterministic(t *testing.T) {
	a, err := knapsack.Solve(context.Background(), classic)
	require.NoError(t, err)
	b, err := knapsack.Solve(context.Background(), classic)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(a.Steps, b.Steps), "two solves of the same input must record identical steps")
	assert.Equal(t, a.Stats, b.Stats)
}

func TestSolve_ComparisonsCounted(t *testing.T) {
	trace, err := knapsack.Solve(context.Background(), classic)
	require.NoError(t, err)

	// One comparison per non-base cell decision.
	assert.Equal(t, 15, trace.Stats.Comparisons)

	// Counters are monotonic across the step sequence.
	last := 0
	for _, step := range trace.Steps {
		assert.GreaterOrEqual(t, step.Stats.Comparisons, last)
		last = step.Stats.Comparisons
	}
}

func TestSolve_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   knapsack.Input
	}{
		{"negative capacity", knapsack.Input{Capacity: -1}},
		{"mismatched lengths", knapsack.Input{Capacity: 5, Weights: []int{1, 2}, Values: []int{1}}},
		{"negative weight", knapsack.Input{Capacity: 5, Weights: []int{-2}, Values: []int{3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := knapsack.Solve(context.Background(), tc.in)
			assert.True(t, domain.IsInvalidInput(err), "want InvalidInputError, got %v", err)
		})
	}
}

func TestSolve_ZeroCapacity(t *testing.T) {
	trace, err := knapsack.Solve(context.Background(), knapsack.Input{
		Capacity: 0,
		Weights:  []int{1},
		Values:   []int{10},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, trace.Table[1][0])
	assert.Len(t, trace.Steps, 2) // both cells are base cells
}

func TestTraceback_IncludedItems(t *testing.T) {
	trace, err := knapsack.Solve(context.Background(), classic)
	require.NoError(t, err)

	items := knapsack.Traceback(trace.Table, classic)
	assert.Equal(t, []int{0, 1}, items)

	// The reported items must actually achieve the optimum within capacity.
	weight, value := 0, 0
	for _, i := range items {
		weight += classic.Weights[i]
		value += classic.Values[i]
	}
	assert.LessOrEqual(t, weight, classic.Capacity)
	assert.Equal(t, trace.Table[3][5], value)
}

func TestSolver_DecodesLooseInputs(t *testing.T) {
	trace, err := knapsack.NewSolver().Solve(context.Background(), map[string]any{
		"capacity": 5,
		"weights":  []any{2, 3, 4},
		"values":   []any{3, 4, 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, trace.Table[3][5])
}
