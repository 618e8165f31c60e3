package lcs

import (
	"context"
	"fmt"

	"github.com/chalklab/chalkline/pkg/domain"
)

// Name is the registry name of this solver.
const Name = "lcs"

// Input holds the two strings being compared.
type Input struct {
	S1 string `json:"s1" mapstructure:"s1"`
	S2 string `json:"s2" mapstructure:"s2"`
}

// Solve fills the LCS length table bottom-up, emitting two steps per
// non-base cell and one per base cell.
//
// Recurrence: dp[i][0] = dp[0][j] = 0; on a character match
// dp[i][j] = 1 + dp[i-1][j-1]; otherwise dp[i][j] = max(dp[i-1][j],
// dp[i][j-1]), tie-breaking toward the top cell when equal.
func Solve(ctx context.Context, in Input) (*domain.Trace, error) {
	a := []rune(in.S1)
	b := []rune(in.S2)
	m, n := len(a), len(b)
	rec := domain.NewRecorder()

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}

	for i := 0; i <= m; i++ {
		for j := 0; j <= n; j++ {
			if i == 0 || j == 0 {
				rec.Emit(domain.Step{
					Kind:        domain.StepUpdate,
					Target:      domain.Cell(i, j),
					Value:       domain.IntPtr(0),
					Description: fmt.Sprintf("Base case: dp[%d][%d] = 0 (empty prefix)", i, j),
				})
				continue
			}

			rec.Stats().Comparisons++
			if a[i-1] == b[j-1] {
				rec.Emit(domain.Step{
					Kind:   domain.StepInspect,
					Target: domain.Cell(i, j),
					Deps:   []domain.Coord{domain.Cell(i-1, j-1)},
					Description: fmt.Sprintf("Characters match: %q == %q; extend the diagonal dp[%d][%d]",
						string(a[i-1]), string(b[j-1]), i-1, j-1),
				})
				dp[i][j] = 1 + dp[i-1][j-1]
				rec.Emit(domain.Step{
					Kind:        domain.StepUpdate,
					Target:      domain.Cell(i, j),
					Deps:        []domain.Coord{domain.Cell(i-1, j-1)},
					Value:       domain.IntPtr(dp[i][j]),
					Description: fmt.Sprintf("dp[%d][%d] = 1 + dp[%d][%d] = %d", i, j, i-1, j-1, dp[i][j]),
				})
				continue
			}

			top := dp[i-1][j]
			left := dp[i][j-1]
			rec.Emit(domain.Step{
				Kind:   domain.StepInspect,
				Target: domain.Cell(i, j),
				Deps:   []domain.Coord{domain.Cell(i-1, j), domain.Cell(i, j-1)},
				Description: fmt.Sprintf("Characters differ: %q != %q; compare top dp[%d][%d] = %d vs left dp[%d][%d] = %d",
					string(a[i-1]), string(b[j-1]), i-1, j, top, i, j-1, left),
			})

			// Tie-break toward top when equal.
			if top >= left {
				dp[i][j] = top
				rec.Emit(domain.Step{
					Kind:        domain.StepUpdate,
					Target:      domain.Cell(i, j),
					Deps:        []domain.Coord{domain.Cell(i-1, j)},
					Value:       domain.IntPtr(top),
					Description: fmt.Sprintf("dp[%d][%d] = dp[%d][%d] = %d (take top)", i, j, i-1, j, top),
				})
			} else {
				dp[i][j] = left
				rec.Emit(domain.Step{
					Kind:        domain.StepUpdate,
					Target:      domain.Cell(i, j),
					Deps:        []domain.Coord{domain.Cell(i, j-1)},
					Value:       domain.IntPtr(left),
					Description: fmt.Sprintf("dp[%d][%d] = dp[%d][%d] = %d (take left)", i, j, i, j-1, left),
				})
			}
		}
	}

	return &domain.Trace{
		Algorithm: Name,
		Steps:     rec.Steps(),
		Table:     dp,
		Stats:     *rec.Stats(),
	}, nil
}

// Solver adapts Solve to the registry contract.
type Solver struct{}

// NewSolver returns the registry adapter for this algorithm.
func NewSolver() Solver { return Solver{} }

// Name implements ports.Solver.
func (Solver) Name() string { return Name }

// Solve implements ports.Solver.
func (Solver) Solve(ctx context.Context, inputs map[string]any) (*domain.Trace, error) {
	var in Input
	if err := domain.DecodeInputs(inputs, &in); err != nil {
		return nil, err
	}
	return Solve(ctx, in)
}
