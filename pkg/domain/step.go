package domain

// StepKind identifies the category of a recorded step.
// It is a closed set: renderers and validators switch on it exhaustively.
type StepKind string

const (
	// StepLoopStart marks the beginning of an outer loop iteration (e.g. a new DP row).
	StepLoopStart StepKind = "loop-start"
	// StepPhaseStart marks the beginning of a named algorithm phase.
	StepPhaseStart StepKind = "phase-start"
	// StepInspect shows a decision being displayed; the target value is not yet committed.
	StepInspect StepKind = "inspect"
	// StepUpdate commits the final value of a cell or array slot for this pass.
	StepUpdate StepKind = "update"
	// StepCompare records a comparison between two locations.
	StepCompare StepKind = "compare"
	// StepSwap records an exchange of two array slots.
	StepSwap StepKind = "swap"
	// StepCall records entry into a recursive call (heapify, Strassen quadrant).
	StepCall StepKind = "call"
	// StepExtract records removal of the heap root.
	StepExtract StepKind = "extract"
	// StepInsert records appending a new value to the heap.
	StepInsert StepKind = "insert"
	// StepProduct records one of Strassen's seven intermediate products.
	StepProduct StepKind = "product"
	// StepCombine records the combination of intermediate results into an output quadrant.
	StepCombine StepKind = "combine"
	// StepDone marks the terminal step of a trace.
	StepDone StepKind = "done"
)

// Execution phases for multi-phase algorithms. Heap traces tag every step
// with PhaseBuild or PhaseOperation at emission time so consumers never have
// to reconstruct phase boundaries by searching for sentinel steps.
const (
	PhaseBuild      = "build"
	PhaseOperation  = "operation"
	PhaseFindMax    = "find-max"
	PhaseCount      = "count"
	PhaseCumulative = "cumulative"
	PhaseOutput     = "output"
)

// Coord addresses a location in the observable state. Table algorithms use
// Row/Col. Array algorithms address slot i as Coord{Col: i}. Strassen steps
// additionally carry the quadrant being computed.
type Coord struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Quadrant string `json:"quadrant,omitempty"`
}

// Cell returns a table coordinate.
func Cell(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Index returns an array coordinate for slot i.
func Index(i int) Coord {
	return Coord{Col: i}
}

// Step is one immutable record of a single state transition emitted during a
// solve pass. Two solves with identical inputs produce identical step
// sequences; there is no randomness inside a solver.
type Step struct {
	Kind  StepKind `json:"kind"`
	Phase string   `json:"phase,omitempty"`

	// Target is the coordinate being written or inspected.
	Target Coord `json:"target"`

	// Deps lists prior coordinates this step's decision depends on.
	// Used purely for highlight rendering.
	Deps []Coord `json:"deps,omitempty"`

	// Value is the value displayed or committed at this step.
	// Nil for inspect-type steps where the value is still pending.
	Value *int `json:"value,omitempty"`

	// Description is a human-readable explanation of what is happening.
	Description string `json:"description"`

	// Snapshot is a full copy of the mutable array state after this step is
	// applied. Full-snapshot storage is a deliberate simplicity-over-memory
	// tradeoff: backward stepping becomes a lookup instead of an inverse
	// operation.
	Snapshot []int `json:"snapshot,omitempty"`

	// MatrixSnapshot is the matrix equivalent of Snapshot (Strassen).
	MatrixSnapshot [][]int `json:"matrixSnapshot,omitempty"`

	// Stats is a copy of the monotonic counters as of this step.
	Stats Stats `json:"stats"`
}

// IntPtr returns a pointer to v. Step values are pointers so inspect steps
// can carry "pending" as nil.
func IntPtr(v int) *int {
	return &v
}
