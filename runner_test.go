package chalkline_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalklab/chalkline"
)

func knapsackInputs() map[string]any {
	return map[string]any{
		"capacity": 5,
		"weights":  []int{2, 3, 4},
		"values":   []int{3, 4, 5},
	}
}

func TestRunner_Headless(t *testing.T) {
	var out bytes.Buffer
	r := chalkline.NewRunner()
	r.Output = &out
	r.Headless = true

	err := r.Run(context.Background(), chalkline.New(), "knapsack", knapsackInputs())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "[3][5] = 7", "the final table cell appears in the transcript")
	assert.Contains(t, text, "finished: 39 steps")
}

func TestRunner_InteractiveQuit(t *testing.T) {
	var out bytes.Buffer
	r := chalkline.NewRunner()
	r.Input = strings.NewReader("\n\nq\n")
	r.Output = &out

	err := r.Run(context.Background(), chalkline.New(), "knapsack", knapsackInputs())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[2/39]", "two blank lines advance the cursor twice")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunner_InteractiveAutoFinishes(t *testing.T) {
	var out bytes.Buffer
	r := chalkline.NewRunner()
	r.Input = strings.NewReader("a\n")
	r.Output = &out
	r.Speed = 0

	err := r.Run(context.Background(), chalkline.New(), "countsort", map[string]any{
		"array": []int{3, 1, 2},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "finished:")
}

func TestRunner_EOFIsGraceful(t *testing.T) {
	var out bytes.Buffer
	r := chalkline.NewRunner()
	r.Input = strings.NewReader("")
	r.Output = &out

	err := r.Run(context.Background(), chalkline.New(), "lcs", map[string]any{
		"s1": "AB", "s2": "BA",
	})
	assert.NoError(t, err)
}

func TestRunner_SolveErrorSurfaces(t *testing.T) {
	var out bytes.Buffer
	r := chalkline.NewRunner()
	r.Output = &out
	r.Headless = true

	err := r.Run(context.Background(), chalkline.New(), "nope", nil)
	assert.Error(t, err)
	assert.Empty(t, out.String(), "nothing is printed when the solve fails")
}

func TestRunner_RendererAppliesToStatus(t *testing.T) {
	var out bytes.Buffer
	r := chalkline.NewRunner()
	r.Output = &out
	r.Headless = true
	r.Renderer = func(s string) (string, error) {
		return "<<" + s + ">>", nil
	}

	err := r.Run(context.Background(), chalkline.New(), "heap", map[string]any{
		"array": []int{3, 1, 2},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "<<")
}
