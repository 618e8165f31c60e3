package monk_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalklab/chalkline/pkg/algorithms/countsort"
	"github.com/chalklab/chalkline/pkg/algorithms/heap"
	"github.com/chalklab/chalkline/pkg/algorithms/knapsack"
	"github.com/chalklab/chalkline/pkg/domain"
	"github.com/chalklab/chalkline/pkg/monk"
)

func solvedTable(t *testing.T) [][]int {
	t.Helper()
	trace, err := knapsack.Solve(context.Background(), knapsack.Input{
		Capacity: 5,
		Weights:  []int{2, 3, 4},
		Values:   []int{3, 4, 5},
	})
	require.NoError(t, err)
	return trace.Table
}

func TestTableValidator_FreeFormEditing(t *testing.T) {
	key := solvedTable(t)
	v := monk.NewTableValidator("knapsack", key)

	// Base cells are off limits.
	assert.False(t, v.Editable(domain.Cell(0, 3)))
	assert.False(t, v.Editable(domain.Cell(2, 0)))
	assert.False(t, v.Submit(domain.Cell(0, 3), 0))

	// Any order, immediate feedback, corrections allowed.
	assert.True(t, v.Submit(domain.Cell(3, 5), key[3][5]))
	assert.False(t, v.Submit(domain.Cell(1, 1), key[1][1]+1))
	assert.True(t, v.Submit(domain.Cell(1, 1), key[1][1]))
}

func TestTableValidator_Check(t *testing.T) {
	key := solvedTable(t)
	v := monk.NewTableValidator("knapsack", key)

	p := v.Check()
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, 15, p.Total)
	assert.False(t, p.Complete)

	for r := 1; r < len(key); r++ {
		for c := 1; c < len(key[r]); c++ {
			v.Submit(domain.Cell(r, c), key[r][c])
		}
	}
	p = v.Check()
	assert.Equal(t, 15, p.Score)
	assert.True(t, p.Complete)
}

func TestTableValidator_WrongEntryCountsAgainstScore(t *testing.T) {
	key := solvedTable(t)
	v := monk.NewTableValidator("knapsack", key)

	v.Submit(domain.Cell(1, 2), key[1][2]+7)
	p := v.Check()
	assert.Equal(t, 0, p.Score, "a wrong entry scores nothing even though it was submitted")
}

func TestSwapValidator_GatesOnExactNextSwap(t *testing.T) {
	trace, err := heap.Solve(context.Background(), heap.Input{
		Array: []int{4, 1, 3, 2, 16, 9, 10, 14, 8, 7},
		Op:    heap.Build{},
	})
	require.NoError(t, err)

	expected := heap.ExpectedSwaps(trace, domain.PhaseBuild)
	require.NotEmpty(t, expected)
	v := monk.NewSwapValidator("heap", expected, trace.Initial)

	// A wrong pair mutates nothing.
	before := v.Array()
	assert.False(t, v.ValidateSwap(0, 1))
	assert.Equal(t, before, v.Array())
	assert.Equal(t, 0, v.Check().Score)

	// The correct pair advances, in either order.
	first, ok := v.Expected()
	require.True(t, ok)
	assert.True(t, v.ValidateSwap(first[1], first[0]))
	assert.Equal(t, 1, v.Check().Score)
}

func TestSwapValidator_FullSequenceBuildsHeap(t *testing.T) {
	trace, err := heap.Solve(context.Background(), heap.Input{
		Array: []int{4, 1, 3, 2, 16, 9, 10, 14, 8, 7},
		Op:    heap.Build{},
	})
	require.NoError(t, err)

	v := monk.NewSwapValidator("heap", heap.ExpectedSwaps(trace, domain.PhaseBuild), trace.Initial)
	for {
		pair, ok := v.Expected()
		if !ok {
			break
		}
		require.True(t, v.ValidateSwap(pair[0], pair[1]))
	}

	assert.True(t, v.Done())
	assert.Equal(t, trace.Array, v.Array())
	assert.True(t, v.Check().Complete)
	assert.False(t, v.ValidateSwap(0, 1), "input after completion is ignored")
}

func TestPhasedValidator_LockstepPhases(t *testing.T) {
	source := []int{4, 2, 2, 8, 3, 3, 1}
	count, cumulative, output := countsort.Keys(source)
	v := monk.NewPhasedValidator("countsort", source, count, cumulative, output)

	assert.Equal(t, monk.PhaseCount, v.Phase())

	// Partial fill does not unlock.
	assert.True(t, v.Submit(0, count[0]))
	assert.False(t, v.CheckPhase())
	assert.Equal(t, monk.PhaseCount, v.Phase())

	for i, want := range count {
		v.Submit(i, want)
	}
	assert.True(t, v.CheckPhase())
	assert.Equal(t, monk.PhaseCumulative, v.Phase())
	assert.True(t, v.Locked(monk.PhaseCount))

	// Completed phases are read-only.
	assert.False(t, v.Submit(0, 99))

	for i, want := range cumulative {
		v.Submit(i, want)
	}
	require.True(t, v.CheckPhase())
	for i, want := range output {
		v.Submit(i, want)
	}
	require.True(t, v.CheckPhase())
	assert.True(t, v.Check().Complete)
}

func TestPhasedValidator_HintDerivesFirstWrongCell(t *testing.T) {
	source := []int{1, 0, 1}
	count, cumulative, output := countsort.Keys(source)
	v := monk.NewPhasedValidator("countsort", source, count, cumulative, output)

	// count = [1, 2]; nothing filled yet, so the hint explains count[0].
	assert.Contains(t, v.Hint(), "Value 0 appears 1 times")

	v.Submit(0, count[0])
	assert.Contains(t, v.Hint(), "Value 1 appears 2 times")
}

func TestValidationHooksFire(t *testing.T) {
	var events []bool
	hooks := domain.LifecycleHooks{
		OnValidation: func(_ context.Context, e *domain.ValidationEvent) {
			events = append(events, e.Correct)
		},
	}

	key := solvedTable(t)
	v := monk.NewTableValidator("knapsack", key, monk.WithTableHooks(hooks))
	v.Submit(domain.Cell(1, 1), key[1][1])
	v.Submit(domain.Cell(1, 2), key[1][2]+1)

	assert.Equal(t, []bool{true, false}, events)
}
