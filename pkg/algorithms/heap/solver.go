package heap

import (
	"context"
	"fmt"

	"github.com/chalklab/chalkline/pkg/domain"
)

// Name is the registry name of this solver.
const Name = "heap"

// Operation is the closed set of heap operations. Each variant carries its
// own required fields; there is no nullable operation-data bag.
type Operation interface {
	op() string
}

// Build constructs a max-heap from the input array and stops.
type Build struct{}

// ExtractMax builds the heap, then removes and returns the root.
type ExtractMax struct{}

// Insert builds the heap, then appends Value and bubbles it up.
type Insert struct {
	Value int
}

func (Build) op() string      { return "build" }
func (ExtractMax) op() string { return "extract" }
func (Insert) op() string     { return "insert" }

// Input holds the heap parameters.
type Input struct {
	Array []int
	Op    Operation
}

type solveState struct {
	rec *domain.Recorder
	arr []int
}

// emit stamps the step with a full copy of the current array state.
// Full snapshots make backward stepping a lookup.
func (s *solveState) emit(step domain.Step) {
	step.Snapshot = domain.CloneArray(s.arr)
	s.rec.Emit(step)
}

// Solve runs the requested heap operation. Every step is tagged with its
// phase (build or operation) at emission time, so answer-key extraction
// never reconstructs phase boundaries by searching for sentinel steps.
func Solve(ctx context.Context, in Input) (*domain.Trace, error) {
	op := in.Op
	if op == nil {
		op = Build{}
	}

	s := &solveState{
		rec: domain.NewRecorder(),
		arr: domain.CloneArray(in.Array),
	}
	if s.arr == nil {
		s.arr = []int{}
	}

	trace := &domain.Trace{
		Algorithm: Name,
		Initial:   domain.CloneArray(in.Array),
	}

	s.emit(domain.Step{
		Kind:        domain.StepPhaseStart,
		Phase:       domain.PhaseBuild,
		Description: fmt.Sprintf("Build a max-heap from %d elements, sifting down from index %d", len(s.arr), len(s.arr)/2-1),
	})
	s.buildMaxHeap()

	switch o := op.(type) {
	case Build:
		s.emit(domain.Step{
			Kind:        domain.StepDone,
			Phase:       domain.PhaseBuild,
			Description: "Max-heap built: every parent is at least as large as its children",
		})
	case ExtractMax:
		trace.Extracted = s.extractMax()
	case Insert:
		s.insert(o.Value)
	default:
		return nil, domain.InvalidInput("operation", fmt.Sprintf("unsupported operation %q", op.op()))
	}

	trace.Steps = s.rec.Steps()
	trace.Array = s.arr
	trace.Stats = *s.rec.Stats()
	return trace, nil
}

func (s *solveState) buildMaxHeap() {
	for i := len(s.arr)/2 - 1; i >= 0; i-- {
		s.emit(domain.Step{
			Kind:        domain.StepLoopStart,
			Phase:       domain.PhaseBuild,
			Target:      domain.Index(i),
			Description: fmt.Sprintf("Sift down the subtree rooted at index %d (value %d)", i, s.arr[i]),
		})
		s.rec.Stats().HeapifyCalls++
		s.heapify(i, len(s.arr), domain.PhaseBuild)
	}
}

// heapify restores the max-heap invariant for the subtree rooted at i.
// Callers count the invocation: depth-0 calls as heapifyCalls, recursive
// calls as recursiveCalls.
func (s *solveState) heapify(i, size int, phase string) {
	largest := i
	left := 2*i + 1
	right := 2*i + 2

	if left < size {
		s.rec.Stats().Comparisons++
		s.emit(domain.Step{
			Kind:   domain.StepCompare,
			Phase:  phase,
			Target: domain.Index(left),
			Deps:   []domain.Coord{domain.Index(largest)},
			Description: fmt.Sprintf("Compare left child arr[%d] = %d with arr[%d] = %d",
				left, s.arr[left], largest, s.arr[largest]),
		})
		if s.arr[left] > s.arr[largest] {
			largest = left
		}
	}
	if right < size {
		s.rec.Stats().Comparisons++
		s.emit(domain.Step{
			Kind:   domain.StepCompare,
			Phase:  phase,
			Target: domain.Index(right),
			Deps:   []domain.Coord{domain.Index(largest)},
			Description: fmt.Sprintf("Compare right child arr[%d] = %d with arr[%d] = %d",
				right, s.arr[right], largest, s.arr[largest]),
		})
		if s.arr[right] > s.arr[largest] {
			largest = right
		}
	}

	if largest == i {
		return
	}

	s.rec.Stats().Swaps++
	s.arr[i], s.arr[largest] = s.arr[largest], s.arr[i]
	s.emit(domain.Step{
		Kind:   domain.StepSwap,
		Phase:  phase,
		Target: domain.Index(i),
		Deps:   []domain.Coord{domain.Index(largest)},
		Description: fmt.Sprintf("Swap arr[%d] and arr[%d]: larger child %d moves up",
			i, largest, s.arr[i]),
	})

	s.rec.Stats().RecursiveCalls++
	s.emit(domain.Step{
		Kind:        domain.StepCall,
		Phase:       phase,
		Target:      domain.Index(largest),
		Description: fmt.Sprintf("Recurse into index %d to restore the invariant below the swap", largest),
	})
	s.heapify(largest, size, phase)
}

func (s *solveState) extractMax() *int {
	s.emit(domain.Step{
		Kind:        domain.StepPhaseStart,
		Phase:       domain.PhaseOperation,
		Description: "Extract the maximum from the heap root",
	})

	if len(s.arr) == 0 {
		// Mid-animation callers need a displayable end state, not an error.
		s.emit(domain.Step{
			Kind:        domain.StepDone,
			Phase:       domain.PhaseOperation,
			Description: "Heap is empty: nothing to extract",
		})
		return nil
	}

	max := s.arr[0]
	s.emit(domain.Step{
		Kind:        domain.StepExtract,
		Phase:       domain.PhaseOperation,
		Target:      domain.Index(0),
		Value:       domain.IntPtr(max),
		Description: fmt.Sprintf("The maximum is the root value %d", max),
	})

	last := s.arr[len(s.arr)-1]
	lastIdx := len(s.arr) - 1
	s.arr[0] = last
	s.arr = s.arr[:len(s.arr)-1]
	s.emit(domain.Step{
		Kind:   domain.StepUpdate,
		Phase:  domain.PhaseOperation,
		Target: domain.Index(0),
		Deps:   []domain.Coord{domain.Index(lastIdx)},
		Value:  domain.IntPtr(last),
		Description: fmt.Sprintf("Move last element %d to the root and shrink the heap to %d elements",
			last, len(s.arr)),
	})

	if len(s.arr) > 0 {
		s.rec.Stats().HeapifyCalls++
		s.heapify(0, len(s.arr), domain.PhaseOperation)
	}

	s.emit(domain.Step{
		Kind:        domain.StepDone,
		Phase:       domain.PhaseOperation,
		Value:       domain.IntPtr(max),
		Description: fmt.Sprintf("Extracted maximum %d; heap invariant restored", max),
	})
	return &max
}

func (s *solveState) insert(value int) {
	s.emit(domain.Step{
		Kind:        domain.StepPhaseStart,
		Phase:       domain.PhaseOperation,
		Description: fmt.Sprintf("Insert value %d into the heap", value),
	})

	s.arr = append(s.arr, value)
	i := len(s.arr) - 1
	s.emit(domain.Step{
		Kind:        domain.StepInsert,
		Phase:       domain.PhaseOperation,
		Target:      domain.Index(i),
		Value:       domain.IntPtr(value),
		Description: fmt.Sprintf("Append %d at index %d", value, i),
	})

	// Bubble up: repeatedly compare with the parent while the child is larger.
	for i > 0 {
		parent := (i - 1) / 2
		s.rec.Stats().Comparisons++
		s.emit(domain.Step{
			Kind:   domain.StepCompare,
			Phase:  domain.PhaseOperation,
			Target: domain.Index(i),
			Deps:   []domain.Coord{domain.Index(parent)},
			Description: fmt.Sprintf("Compare arr[%d] = %d with parent arr[%d] = %d",
				i, s.arr[i], parent, s.arr[parent]),
		})
		if s.arr[i] <= s.arr[parent] {
			break
		}
		s.rec.Stats().Swaps++
		s.arr[i], s.arr[parent] = s.arr[parent], s.arr[i]
		s.emit(domain.Step{
			Kind:   domain.StepSwap,
			Phase:  domain.PhaseOperation,
			Target: domain.Index(i),
			Deps:   []domain.Coord{domain.Index(parent)},
			Description: fmt.Sprintf("Swap arr[%d] and arr[%d]: child %d outranks its parent",
				i, parent, s.arr[parent]),
		})
		i = parent
	}

	s.emit(domain.Step{
		Kind:        domain.StepDone,
		Phase:       domain.PhaseOperation,
		Description: fmt.Sprintf("Inserted %d; heap invariant restored", value),
	})
}

// ExpectedSwaps returns the ordered swap pairs of a trace, optionally
// filtered by phase (empty string selects all phases). This is the
// monk-mode answer key for heap practice.
func ExpectedSwaps(t *domain.Trace, phase string) [][2]int {
	var swaps [][2]int
	for _, step := range t.Steps {
		if step.Kind != domain.StepSwap {
			continue
		}
		if phase != "" && step.Phase != phase {
			continue
		}
		swaps = append(swaps, [2]int{step.Target.Col, step.Deps[0].Col})
	}
	return swaps
}

// Solver adapts Solve to the registry contract, mapping the loosely typed
// operation field onto the closed Operation variants.
type Solver struct{}

// NewSolver returns the registry adapter for this algorithm.
func NewSolver() Solver { return Solver{} }

// Name implements ports.Solver.
func (Solver) Name() string { return Name }

// Solve implements ports.Solver.
func (Solver) Solve(ctx context.Context, inputs map[string]any) (*domain.Trace, error) {
	var raw struct {
		Array       []int  `mapstructure:"array"`
		Operation   string `mapstructure:"operation"`
		InsertValue *int   `mapstructure:"insertValue"`
	}
	if err := domain.DecodeInputs(inputs, &raw); err != nil {
		return nil, err
	}

	var op Operation
	switch raw.Operation {
	case "", "build":
		op = Build{}
	case "extract":
		op = ExtractMax{}
	case "insert":
		if raw.InsertValue == nil {
			return nil, domain.InvalidInput("insertValue", "required for the insert operation")
		}
		op = Insert{Value: *raw.InsertValue}
	default:
		return nil, domain.InvalidInput("operation", fmt.Sprintf("unknown operation %q", raw.Operation))
	}

	return Solve(ctx, Input{Array: raw.Array, Op: op})
}
