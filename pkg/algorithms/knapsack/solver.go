package knapsack

import (
	"context"
	"fmt"

	"github.com/chalklab/chalkline/pkg/domain"
)

// Name is the registry name of this solver.
const Name = "knapsack"

// Input holds the 0/1 knapsack parameters.
type Input struct {
	Capacity int   `json:"capacity" mapstructure:"capacity"`
	Weights  []int `json:"weights" mapstructure:"weights"`
	Values   []int `json:"values" mapstructure:"values"`
}

func (in Input) validate() error {
	if in.Capacity < 0 {
		return domain.InvalidInput("capacity", "must be non-negative")
	}
	if len(in.Weights) != len(in.Values) {
		return domain.InvalidInput("weights", fmt.Sprintf("length %d does not match values length %d", len(in.Weights), len(in.Values)))
	}
	for i, w := range in.Weights {
		if w < 0 {
			return domain.InvalidInput("weights", fmt.Sprintf("weight at index %d is negative", i))
		}
	}
	return nil
}

// Solve fills the DP table bottom-up, emitting two steps per non-base cell
// (an inspect showing the candidates, then the committed update) and one
// step per base cell.
//
// Recurrence: dp[i][0] = dp[0][w] = 0; for weights[i-1] <= w,
// dp[i][w] = max(values[i-1]+dp[i-1][w-weights[i-1]], dp[i-1][w]),
// otherwise dp[i][w] = dp[i-1][w].
func Solve(ctx context.Context, in Input) (*domain.Trace, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	n := len(in.Weights)
	cap := in.Capacity
	rec := domain.NewRecorder()

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, cap+1)
	}

	for i := 0; i <= n; i++ {
		for w := 0; w <= cap; w++ {
			if i == 0 || w == 0 {
				rec.Emit(domain.Step{
					Kind:        domain.StepUpdate,
					Target:      domain.Cell(i, w),
					Value:       domain.IntPtr(0),
					Description: fmt.Sprintf("Base case: dp[%d][%d] = 0 (no items or no capacity)", i, w),
				})
				continue
			}

			weight := in.Weights[i-1]
			value := in.Values[i-1]

			if weight > w {
				rec.Stats().Comparisons++
				rec.Emit(domain.Step{
					Kind:   domain.StepInspect,
					Target: domain.Cell(i, w),
					Deps:   []domain.Coord{domain.Cell(i - 1, w)},
					Description: fmt.Sprintf("Item %d (weight %d) does not fit in capacity %d; carry down dp[%d][%d]",
						i, weight, w, i-1, w),
				})
				dp[i][w] = dp[i-1][w]
				rec.Emit(domain.Step{
					Kind:        domain.StepUpdate,
					Target:      domain.Cell(i, w),
					Deps:        []domain.Coord{domain.Cell(i - 1, w)},
					Value:       domain.IntPtr(dp[i][w]),
					Description: fmt.Sprintf("dp[%d][%d] = dp[%d][%d] = %d (item excluded)", i, w, i-1, w, dp[i][w]),
				})
				continue
			}

			include := value + dp[i-1][w-weight]
			exclude := dp[i-1][w]
			rec.Stats().Comparisons++
			rec.Emit(domain.Step{
				Kind:   domain.StepInspect,
				Target: domain.Cell(i, w),
				Deps:   []domain.Coord{domain.Cell(i-1, w-weight), domain.Cell(i - 1, w)},
				Description: fmt.Sprintf("Compare include = %d + dp[%d][%d] = %d vs exclude = dp[%d][%d] = %d",
					value, i-1, w-weight, include, i-1, w, exclude),
			})

			if include > exclude {
				dp[i][w] = include
				rec.Emit(domain.Step{
					Kind:        domain.StepUpdate,
					Target:      domain.Cell(i, w),
					Deps:        []domain.Coord{domain.Cell(i-1, w-weight)},
					Value:       domain.IntPtr(include),
					Description: fmt.Sprintf("dp[%d][%d] = %d (item %d included)", i, w, include, i),
				})
			} else {
				dp[i][w] = exclude
				rec.Emit(domain.Step{
					Kind:        domain.StepUpdate,
					Target:      domain.Cell(i, w),
					Deps:        []domain.Coord{domain.Cell(i - 1, w)},
					Value:       domain.IntPtr(exclude),
					Description: fmt.Sprintf("dp[%d][%d] = %d (item %d excluded)", i, w, exclude, i),
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

// Solver adapts Solve to the registry contract, decoding loosely typed inputs.
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
