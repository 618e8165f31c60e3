package strassen_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalklab/chalkline/pkg/algorithms/strassen"
	"github.com/chalklab/chalkline/pkg/domain"
)

func randomMatrix(rng *rand.Rand, n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			m[i][j] = rng.Intn(21) - 10
		}
	}
	return m
}

func TestSolve_MatchesNaiveOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 2, 4, 8} {
		a := randomMatrix(rng, n)
		b := randomMatrix(rng, n)

		trace, err := strassen.Solve(context.Background(), strassen.Input{A: a, B: b})
		require.NoError(t, err, "size %d", n)
		assert.Equal(t, strassen.Multiply(a, b), trace.Table, "size %d", n)
	}
}

func TestSolve_Scalar(t *testing.T) {
	trace, err := strassen.Solve(context.Background(), strassen.Input{
		A: [][]int{{3}},
		B: [][]int{{-4}},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]int{{-12}}, trace.Table)
	assert.Equal(t, 1, trace.Stats.Products)
	require.Len(t, trace.Steps, 2)
	assert.Equal(t, domain.StepProduct, trace.Steps[0].Kind)
	assert.Equal(t, domain.StepDone, trace.Steps[1].Kind)
}

func TestSolve_SevenProducts2x2(t *testing.T) {
	trace, err := strassen.Solve(context.Background(), strassen.Input{
		A: [][]int{{1, 2}, {3, 4}},
		B: [][]int{{5, 6}, {7, 8}},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]int{{19, 22}, {43, 50}}, trace.Table)
	assert.Equal(t, 7, trace.Stats.Products)

	var products, combines int
	for _, step := range trace.Steps {
		switch step.Kind {
		case domain.StepProduct:
			products++
		case domain.StepCombine:
			combines++
			assert.NotNil(t, step.MatrixSnapshot)
		}
	}
	assert.Equal(t, 7, products)
	assert.Equal(t, 1, combines)
}

func TestSolve_RecursionStructure(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	trace, err := strassen.Solve(context.Background(), strassen.Input{
		A: randomMatrix(rng, 4),
		B: randomMatrix(rng, 4),
	})
	require.NoError(t, err)

	// A 4x4 multiply recurses into seven 2x2 multiplies, each unrolled
	// into seven literal products.
	assert.Equal(t, 7, trace.Stats.RecursiveCalls)
	assert.Equal(t, 49, trace.Stats.Products)

	var calls []string
	for _, step := range trace.Steps {
		if step.Kind == domain.StepCall {
			calls = append(calls, step.Target.Quadrant)
		}
	}
	assert.Equal(t, []string{"C.M1", "C.M2", "C.M3", "C.M4", "C.M5", "C.M6", "C.M7"}, calls)
}

func TestSolve_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   strassen.Input
	}{
		{"empty", strassen.Input{}},
		{"dimension mismatch", strassen.Input{A: [][]int{{1}}, B: [][]int{{1, 2}, {3, 4}}}},
		{"ragged rows", strassen.Input{A: [][]int{{1, 2}, {3}}, B: [][]int{{1, 2}, {3, 4}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := strassen.Solve(context.Background(), tc.in)
			assert.True(t, domain.IsInvalidInput(err))
		})
	}
}
