package countsort

import (
	"context"
	"fmt"

	"github.com/chalklab/chalkline/pkg/domain"
)

// Name is the registry name of this solver.
const Name = "countsort"

// Input holds the array to sort. Values must be non-negative integers.
type Input struct {
	Array []int `json:"array" mapstructure:"array"`
}

func (in Input) validate() error {
	if len(in.Array) == 0 {
		return domain.InvalidInput("array", "must not be empty")
	}
	for i, v := range in.Array {
		if v < 0 {
			return domain.InvalidInput("array", fmt.Sprintf("value at index %d is negative", i))
		}
	}
	return nil
}

// Solve runs counting sort in four phases: find-max, count, cumulative
// (in-place prefix sums) and output. The output pass iterates the input
// right to left, placing each value at output[count[value]-1] and
// decrementing count[value]; the right-to-left order is what makes the sort
// stable and is preserved exactly.
//
// Each output step's dependency coordinate is the input position being
// placed, so stability is visible in the trace itself.
func Solve(ctx context.Context, in Input) (*domain.Trace, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	arr := in.Array
	rec := domain.NewRecorder()

	emit := func(step domain.Step, snapshot []int) {
		step.Snapshot = domain.CloneArray(snapshot)
		rec.Emit(step)
	}

	// Phase 1: find the maximum value.
	emit(domain.Step{
		Kind:        domain.StepPhaseStart,
		Phase:       domain.PhaseFindMax,
		Description: fmt.Sprintf("Scan %d elements to find the maximum value", len(arr)),
	}, arr)
	max := arr[0]
	for i, v := range arr {
		rec.Stats().Comparisons++
		if v > max {
			max = v
		}
		emit(domain.Step{
			Kind:        domain.StepCompare,
			Phase:       domain.PhaseFindMax,
			Target:      domain.Index(i),
			Description: fmt.Sprintf("Inspect arr[%d] = %d; maximum so far is %d", i, v, max),
		}, arr)
	}

	// Phase 2: count occurrences.
	count := make([]int, max+1)
	emit(domain.Step{
		Kind:        domain.StepPhaseStart,
		Phase:       domain.PhaseCount,
		Description: fmt.Sprintf("Count occurrences into a count array of size %d", max+1),
	}, count)
	for i, v := range arr {
		count[v]++
		emit(domain.Step{
			Kind:        domain.StepUpdate,
			Phase:       domain.PhaseCount,
			Target:      domain.Index(v),
			Deps:        []domain.Coord{domain.Index(i)},
			Value:       domain.IntPtr(count[v]),
			Description: fmt.Sprintf("arr[%d] = %d: increment count[%d] to %d", i, v, v, count[v]),
		}, count)
	}
	countFinal := domain.CloneArray(count)

	// Phase 3: prefix sums, in place.
	emit(domain.Step{
		Kind:        domain.StepPhaseStart,
		Phase:       domain.PhaseCumulative,
		Description: "Convert counts to cumulative positions: count[i] += count[i-1]",
	}, count)
	for i := 1; i <= max; i++ {
		count[i] += count[i-1]
		emit(domain.Step{
			Kind:        domain.StepUpdate,
			Phase:       domain.PhaseCumulative,
			Target:      domain.Index(i),
			Deps:        []domain.Coord{domain.Index(i - 1)},
			Value:       domain.IntPtr(count[i]),
			Description: fmt.Sprintf("count[%d] += count[%d] = %d", i, i-1, count[i]),
		}, count)
	}
	cumulativeFinal := domain.CloneArray(count)

	// Phase 4: build the output, iterating the input right to left.
	output := make([]int, len(arr))
	emit(domain.Step{
		Kind:        domain.StepPhaseStart,
		Phase:       domain.PhaseOutput,
		Description: "Place elements right to left at output[count[value]-1], decrementing count[value]",
	}, output)
	for i := len(arr) - 1; i >= 0; i-- {
		v := arr[i]
		pos := count[v] - 1
		output[pos] = v
		count[v]--
		emit(domain.Step{
			Kind:        domain.StepUpdate,
			Phase:       domain.PhaseOutput,
			Target:      domain.Index(pos),
			Deps:        []domain.Coord{domain.Index(i)},
			Value:       domain.IntPtr(v),
			Description: fmt.Sprintf("arr[%d] = %d goes to output[%d]; count[%d] is now %d", i, v, pos, v, count[v]),
		}, output)
	}

	emit(domain.Step{
		Kind:        domain.StepDone,
		Phase:       domain.PhaseOutput,
		Description: "Output array complete and stable-sorted",
	}, output)

	return &domain.Trace{
		Algorithm: Name,
		Steps:     rec.Steps(),
		Table:     [][]int{countFinal, cumulativeFinal, output},
		Array:     output,
		Initial:   domain.CloneArray(arr),
		Stats:     *rec.Stats(),
	}, nil
}

// Keys recomputes the three phase answer keys directly from the input,
// independent of the step log. Monk mode validates against these.
func Keys(arr []int) (count, cumulative, output []int) {
	max := 0
	for _, v := range arr {
		if v > max {
			max = v
		}
	}
	count = make([]int, max+1)
	for _, v := range arr {
		count[v]++
	}
	cumulative = append([]int(nil), count...)
	for i := 1; i <= max; i++ {
		cumulative[i] += cumulative[i-1]
	}
	output = make([]int, len(arr))
	remaining := append([]int(nil), cumulative...)
	for i := len(arr) - 1; i >= 0; i-- {
		v := arr[i]
		output[remaining[v]-1] = v
		remaining[v]--
	}
	return count, cumulative, output
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
