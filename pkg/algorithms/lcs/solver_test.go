package lcs_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalklab/chalkline/pkg/algorithms/lcs"
	"github.com/chalklab/chalkline/pkg/domain"
)

var classic = lcs.Input{S1: "ABCBDAB", S2: "BDCABA"}

func TestSolve_Length(t *testing.T) {
	trace, err := lcs.Solve(context.Background(), classic)
	require.NoError(t, err)

	assert.Equal(t, lcs.Name, trace.Algorithm)
	assert.Equal(t, 4, trace.Table[7][6])
}

func TestSolve_StepShape(t *testing.T) {
	trace, err := lcs.Solve(context.Background(), classic)
	require.NoError(t, err)

	// 8x7 table: 14 base cells at one step each, 42 non-base at two.
	assert.Len(t, trace.Steps, 14+2*42)
	assert.Equal(t, 42, trace.Stats.Comparisons)
}

func TestSolve_TieBreaksTop(t *testing.T) {
	// "AB" vs "BA": at dp[1][2] (A vs A) match; at dp[2][1] (B vs B) match;
	// dp[2][2] has B != A with top == left == 1, so the top cell wins.
	trace, err := lcs.Solve(context.Background(), lcs.Input{S1: "AB", S2: "BA"})
	require.NoError(t, err)

	last := trace.Steps[len(trace.Steps)-1]
	require.Equal(t, domain.StepUpdate, last.Kind)
	assert.Equal(t, domain.Cell(2, 2), last.Target)
	assert.Equal(t, []domain.Coord{domain.Cell(1, 2)}, last.Deps, "equal candidates resolve to the top cell")
}

func TestSolve_EmptyStrings(t *testing.T) {
	trace, err := lcs.Solve(context.Background(), lcs.Input{S1: "", S2: "ABC"})
	require.NoError(t, err)
	assert.Equal(t, 0, trace.Table[0][3])
	for _, step := range trace.Steps {
		assert.Equal(t, domain.StepUpdate, step.Kind)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	a, err := lcs.Solve(context.Background(), classic)
	require.NoError(t, err)
	b, err := lcs.Solve(context.Background(), classic)
	require.NoError(t, err)
	assert.True(t, reflect.DeepEqual(a.Steps, b.Steps))
}

// isSubsequence reports whether sub appears in s in order.
func isSubsequence(sub, s string) bool {
	i := 0
	for _, r := range s {
		if i < len(sub) && rune(sub[i]) == r {
			i++
		}
	}
	return i == len(sub)
}

func TestTraceback_CommonSubsequence(t *testing.T) {
	trace, err := lcs.Solve(context.Background(), classic)
	require.NoError(t, err)

	got := lcs.Traceback(trace.Table, classic)
	assert.Len(t, got, 4)
	assert.True(t, isSubsequence(got, classic.S1), "%q is not a subsequence of %q", got, classic.S1)
	assert.True(t, isSubsequence(got, classic.S2), "%q is not a subsequence of %q", got, classic.S2)
}

func TestTraceback_Unicode(t *testing.T) {
	in := lcs.Input{S1: "héllo", S2: "mél"}
	trace, err := lcs.Solve(context.Background(), in)
	require.NoError(t, err)

	got := lcs.Traceback(trace.Table, in)
	assert.Equal(t, "él", got)
	assert.Equal(t, strings.Count(got, "")-1, trace.Table[5][3])
}
