package countsort_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalklab/chalkline/pkg/algorithms/countsort"
	"github.com/chalklab/chalkline/pkg/domain"
)

var input = []int{4, 2, 2, 8, 3, 3, 1}

func TestSolve_SortsStably(t *testing.T) {
	trace, err := countsort.Solve(context.Background(), countsort.Input{Array: input})
	require.NoError(t, err)

	want := append([]int(nil), input...)
	sort.Ints(want)
	assert.Equal(t, want, trace.Array)
	assert.Equal(t, input, trace.Initial)
}

func TestSolve_PhaseOrder(t *testing.T) {
	trace, err := countsort.Solve(context.Background(), countsort.Input{Array: input})
	require.NoError(t, err)

	wantOrder := []string{domain.PhaseFindMax, domain.PhaseCount, domain.PhaseCumulative, domain.PhaseOutput}
	var seen []string
	for _, step := range trace.Steps {
		if step.Kind == domain.StepPhaseStart {
			seen = append(seen, step.Phase)
		}
	}
	assert.Equal(t, wantOrder, seen)
}

func TestSolve_OutputRightToLeft(t *testing.T) {
	trace, err := countsort.Solve(context.Background(), countsort.Input{Array: input})
	require.NoError(t, err)

	// Output steps carry the input position being placed as their
	// dependency. Right-to-left placement means those positions descend.
	last := len(input)
	for _, step := range trace.Steps {
		if step.Phase != domain.PhaseOutput || step.Kind != domain.StepUpdate {
			continue
		}
		require.Len(t, step.Deps, 1)
		assert.Less(t, step.Deps[0].Col, last, "output pass must walk the input right to left")
		last = step.Deps[0].Col
	}
	assert.Equal(t, 0, last, "every input position is placed exactly once")
}

func TestSolve_StabilityVisibleInTrace(t *testing.T) {
	trace, err := countsort.Solve(context.Background(), countsort.Input{Array: input})
	require.NoError(t, err)

	// For equal values, the earlier input occurrence must land at the
	// smaller output index.
	placedAt := map[int]int{} // input index -> output position
	for _, step := range trace.Steps {
		if step.Phase == domain.PhaseOutput && step.Kind == domain.StepUpdate {
			placedAt[step.Deps[0].Col] = step.Target.Col
		}
	}
	assert.Less(t, placedAt[1], placedAt[2], "first 2 sorts before second 2")
	assert.Less(t, placedAt[4], placedAt[5], "first 3 sorts before second 3")
}

func TestSolve_TableHoldsPhaseResults(t *testing.T) {
	trace, err := countsort.Solve(context.Background(), countsort.Input{Array: input})
	require.NoError(t, err)

	count, cumulative, output := countsort.Keys(input)
	require.Len(t, trace.Table, 3)
	assert.Equal(t, count, trace.Table[0])
	assert.Equal(t, cumulative, trace.Table[1])
	assert.Equal(t, output, trace.Table[2])
}

func TestSolve_InvalidInput(t *testing.T) {
	_, err := countsort.Solve(context.Background(), countsort.Input{})
	assert.True(t, domain.IsInvalidInput(err))

	_, err = countsort.Solve(context.Background(), countsort.Input{Array: []int{1, -2}})
	assert.True(t, domain.IsInvalidInput(err))
}

func TestKeys(t *testing.T) {
	count, cumulative, output := countsort.Keys([]int{1, 0, 3, 1})

	assert.Equal(t, []int{1, 2, 0, 1}, count)
	assert.Equal(t, []int{1, 3, 3, 4}, cumulative)
	assert.Equal(t, []int{0, 1, 1, 3}, output)
}

func TestSolve_ComparisonsOnlyInFindMax(t *testing.T) {
	trace, err := countsort.Solve(context.Background(), countsort.Input{Array: input})
	require.NoError(t, err)
	assert.Equal(t, len(input), trace.Stats.Comparisons)
	assert.Zero(t, trace.Stats.Swaps, "counting sort never swaps")
}
