package heap_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalklab/chalkline/pkg/algorithms/heap"
	"github.com/chalklab/chalkline/pkg/domain"
)

var clrs = []int{4, 1, 3, 2, 16, 9, 10, 14, 8, 7}

// assertMaxHeap fails unless every parent is at least as large as its children.
func assertMaxHeap(t *testing.T, arr []int) {
	t.Helper()
	for i := range arr {
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child < len(arr) {
				assert.GreaterOrEqual(t, arr[i], arr[child],
					"parent arr[%d]=%d smaller than child arr[%d]=%d", i, arr[i], child, arr[child])
			}
		}
	}
}

func TestSolve_Build(t *testing.T) {
	trace, err := heap.Solve(context.Background(), heap.Input{Array: clrs, Op: heap.Build{}})
	require.NoError(t, err)

	assert.Equal(t, 16, trace.Array[0])
	assertMaxHeap(t, trace.Array)
	assert.Equal(t, clrs, trace.Initial, "input array is preserved untouched")
	assert.ElementsMatch(t, clrs, trace.Array, "building permutes, never loses elements")
}

func TestSolve_PhaseTags(t *testing.T) {
	trace, err := heap.Solve(context.Background(), heap.Input{Array: clrs, Op: heap.ExtractMax{}})
	require.NoError(t, err)

	seenOperation := false
	for _, step := range trace.Steps {
		switch step.Phase {
		case domain.PhaseBuild:
			assert.False(t, seenOperation, "build steps must precede operation steps")
		case domain.PhaseOperation:
			seenOperation = true
		default:
			t.Fatalf("step %q has no phase tag", step.Kind)
		}
	}
	assert.True(t, seenOperation)
}

func TestSolve_ExtractMax(t *testing.T) {
	trace, err := heap.Solve(context.Background(), heap.Input{Array: clrs, Op: heap.ExtractMax{}})
	require.NoError(t, err)

	require.NotNil(t, trace.Extracted)
	assert.Equal(t, 16, *trace.Extracted)
	assert.Len(t, trace.Array, len(clrs)-1)
	assertMaxHeap(t, trace.Array)
}

func TestSolve_ExtractFromEmpty(t *testing.T) {
	trace, err := heap.Solve(context.Background(), heap.Input{Array: nil, Op: heap.ExtractMax{}})
	require.NoError(t, err, "empty extraction is a displayable end state, not an error")

	assert.Nil(t, trace.Extracted)
	last := trace.Steps[len(trace.Steps)-1]
	assert.Equal(t, domain.StepDone, last.Kind)
}

func TestSolve_Insert(t *testing.T) {
	trace, err := heap.Solve(context.Background(), heap.Input{Array: clrs, Op: heap.Insert{Value: 15}})
	require.NoError(t, err)

	assert.Len(t, trace.Array, len(clrs)+1)
	assert.Contains(t, trace.Array, 15)
	assertMaxHeap(t, trace.Array)
}

func TestSolve_SnapshotsEveryStep(t *testing.T) {
	trace, err := heap.Solve(context.Background(), heap.Input{Array: clrs, Op: heap.Build{}})
	require.NoError(t, err)

	require.True(t, trace.HasSnapshots())
	for i, step := range trace.Steps {
		assert.NotNil(t, step.Snapshot, "step %d lacks a snapshot", i)
	}
	last := trace.Steps[len(trace.Steps)-1]
	assert.Equal(t, trace.Array, last.Snapshot)
}

func TestSolve_Deterministic(t *testing.T) {
	a, err := heap.Solve(context.Background(), heap.Input{Array: clrs, Op: heap.ExtractMax{}})
	require.NoError(t, err)
	b, err := heap.Solve(context.Background(), heap.Input{Array: clrs, Op: heap.ExtractMax{}})
	require.NoError(t, err)
	assert.True(t, reflect.DeepEqual(a.Steps, b.Steps))
}

func TestExpectedSwaps_ReproducesBuild(t *testing.T) {
	trace, err := heap.Solve(context.Background(), heap.Input{Array: clrs, Op: heap.Build{}})
	require.NoError(t, err)

	// Applying the build-phase swap sequence to the initial array must
	// land exactly on the built heap.
	arr := domain.CloneArray(trace.Initial)
	for _, pair := range heap.ExpectedSwaps(trace, domain.PhaseBuild) {
		arr[pair[0]], arr[pair[1]] = arr[pair[1]], arr[pair[0]]
	}
	assert.Equal(t, trace.Array, arr)
}

func TestExpectedSwaps_PhaseFilter(t *testing.T) {
	trace, err := heap.Solve(context.Background(), heap.Input{Array: clrs, Op: heap.ExtractMax{}})
	require.NoError(t, err)

	all := heap.ExpectedSwaps(trace, "")
	build := heap.ExpectedSwaps(trace, domain.PhaseBuild)
	operation := heap.ExpectedSwaps(trace, domain.PhaseOperation)
	assert.Equal(t, len(all), len(build)+len(operation))
	assert.NotEmpty(t, operation, "sifting the moved root must swap at least once")
}

func TestSolver_OperationDecoding(t *testing.T) {
	s := heap.NewSolver()

	t.Run("defaults to build", func(t *testing.T) {
		trace, err := s.Solve(context.Background(), map[string]any{"array": []any{3, 1, 2}})
		require.NoError(t, err)
		assert.Nil(t, trace.Extracted)
		assertMaxHeap(t, trace.Array)
	})

	t.Run("insert requires a value", func(t *testing.T) {
		_, err := s.Solve(context.Background(), map[string]any{
			"array":     []any{3, 1, 2},
			"operation": "insert",
		})
		assert.True(t, domain.IsInvalidInput(err))
	})

	t.Run("unknown operation", func(t *testing.T) {
		_, err := s.Solve(context.Background(), map[string]any{
			"array":     []any{3, 1, 2},
			"operation": "sort",
		})
		assert.True(t, domain.IsInvalidInput(err))
	})
}
