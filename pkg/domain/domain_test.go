package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalklab/chalkline/pkg/domain"
)

func TestIsInvalidInput(t *testing.T) {
	err := domain.InvalidInput("capacity", "must be non-negative")
	assert.True(t, domain.IsInvalidInput(err))
	assert.Contains(t, err.Error(), `"capacity"`)

	wrapped := fmt.Errorf("solve failed: %w", err)
	assert.True(t, domain.IsInvalidInput(wrapped), "wrapping preserves the classification")

	assert.False(t, domain.IsInvalidInput(errors.New("boom")))
	assert.False(t, domain.IsInvalidInput(domain.ErrSessionNotFound))
}

func TestSessionStateClone(t *testing.T) {
	state := domain.NewSessionState("s1", "heap", map[string]any{"array": []int{1, 2}})
	state.Cursor = 4

	clone := state.Clone()
	clone.Cursor = 9
	clone.Inputs["array"] = []int{9, 9}

	assert.Equal(t, 4, state.Cursor)
	assert.Equal(t, []int{1, 2}, state.Inputs["array"], "the inputs map is not shared")
}

func TestRecorderStampsStats(t *testing.T) {
	rec := domain.NewRecorder()

	rec.Emit(domain.Step{Kind: domain.StepLoopStart})

	rec.Stats().Comparisons++
	rec.Emit(domain.Step{Kind: domain.StepCompare})

	rec.Stats().Comparisons++
	rec.Stats().Swaps++
	rec.Emit(domain.Step{Kind: domain.StepSwap})

	steps := rec.Steps()
	require.Equal(t, 3, rec.Len())
	assert.Equal(t, 0, steps[0].Stats.Comparisons)
	assert.Equal(t, 1, steps[1].Stats.Comparisons)
	assert.Equal(t, 2, steps[2].Stats.Comparisons)
	assert.Equal(t, 1, steps[2].Stats.Swaps)

	// Counters on later steps do not retroactively change earlier ones.
	rec.Stats().Swaps = 100
	assert.Equal(t, 1, steps[2].Stats.Swaps)
}

func TestDecodeInputs_WeakTyping(t *testing.T) {
	type input struct {
		Capacity int    `mapstructure:"capacity"`
		Weights  []int  `mapstructure:"weights"`
		Label    string `mapstructure:"label"`
	}

	var in input
	err := domain.DecodeInputs(map[string]any{
		"capacity": float64(5), // JSON numbers arrive as float64
		"weights":  []any{float64(2), 3},
		"label":    "classic",
	}, &in)
	require.NoError(t, err)

	assert.Equal(t, 5, in.Capacity)
	assert.Equal(t, []int{2, 3}, in.Weights)
	assert.Equal(t, "classic", in.Label)
}

func TestDecodeInputs_ShapeMismatch(t *testing.T) {
	type input struct {
		Weights []int `mapstructure:"weights"`
	}

	var in input
	err := domain.DecodeInputs(map[string]any{
		"weights": map[string]any{"not": "a list"},
	}, &in)
	assert.True(t, domain.IsInvalidInput(err))
}

func TestCoordConstructors(t *testing.T) {
	assert.Equal(t, domain.Coord{Row: 2, Col: 3}, domain.Cell(2, 3))
	assert.Equal(t, domain.Coord{Col: 4}, domain.Index(4))
}
