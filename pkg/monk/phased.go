package monk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chalklab/chalkline/internal/logging"
	"github.com/chalklab/chalkline/pkg/domain"
)

// Phase identifies one of the three counting-sort practice phases.
type Phase int

const (
	PhaseCount Phase = iota
	PhaseCumulative
	PhaseOutput
	phaseCount // number of phases
)

func (p Phase) String() string {
	switch p {
	case PhaseCount:
		return "count"
	case PhaseCumulative:
		return "cumulative"
	case PhaseOutput:
		return "output"
	}
	return "unknown"
}

// PhasedValidator implements counting-sort monk mode: three sequential
// phases, each free-form within itself (per-cell feedback, any order) but
// locked against the next. Only a full-phase check unlocks progression,
// after which the completed phase is read-only.
type PhasedValidator struct {
	input     [][]int // keys per phase: count, cumulative, output
	source    []int   // the original input array, for hint narration
	entries   [3][]*int
	current   Phase
	locked    [3]bool
	algorithm string
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// PhasedOption configures the PhasedValidator.
type PhasedOption func(*PhasedValidator)

// WithPhasedHooks registers observability hooks.
func WithPhasedHooks(hooks domain.LifecycleHooks) PhasedOption {
	return func(v *PhasedValidator) {
		v.hooks = hooks
	}
}

// WithPhasedLogger configures a structured logger.
func WithPhasedLogger(logger *slog.Logger) PhasedOption {
	return func(v *PhasedValidator) {
		v.logger = logger
	}
}

// NewPhasedValidator creates a validator over the three phase answer keys
// (recomputed directly from the input via countsort.Keys, never filtered
// from the step log).
func NewPhasedValidator(algorithm string, source, count, cumulative, output []int, opts ...PhasedOption) *PhasedValidator {
	v := &PhasedValidator{
		input:     [][]int{count, cumulative, output},
		source:    domain.CloneArray(source),
		algorithm: algorithm,
		logger:    logging.NewNop(),
	}
	for i, key := range v.input {
		v.entries[i] = make([]*int, len(key))
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Phase returns the currently unlocked phase.
func (v *PhasedValidator) Phase() Phase {
	return v.current
}

// Locked reports whether a phase has been completed and made read-only.
func (v *PhasedValidator) Locked(p Phase) bool {
	if p < 0 || p >= phaseCount {
		return false
	}
	return v.locked[p]
}

// Submit records a learner's value for a cell of the current phase and
// returns immediate correctness feedback. Submissions outside the current
// phase's bounds, or after the phase is locked, are ignored.
func (v *PhasedValidator) Submit(index, value int) bool {
	key := v.input[v.current]
	if index < 0 || index >= len(key) || v.locked[v.current] {
		return false
	}
	v.entries[v.current][index] = domain.IntPtr(value)
	correct := key[index] == value
	v.report(correct)
	v.logger.Debug("phase cell submitted",
		"phase", v.current.String(), "index", index, "value", value, "correct", correct)
	return correct
}

// CheckPhase validates every cell of the current phase simultaneously.
// Only full correctness locks the phase and unlocks the next.
func (v *PhasedValidator) CheckPhase() bool {
	key := v.input[v.current]
	for i, want := range key {
		got := v.entries[v.current][i]
		if got == nil || *got != want {
			return false
		}
	}
	v.locked[v.current] = true
	if v.current < PhaseOutput {
		v.current++
	}
	v.logger.Debug("phase unlocked", "next", v.current.String())
	return true
}

// Hint explains the correct derivation of the first incorrect or missing
// cell in the current phase. Empty when the phase is already correct.
func (v *PhasedValidator) Hint() string {
	key := v.input[v.current]
	for i, want := range key {
		got := v.entries[v.current][i]
		if got != nil && *got == want {
			continue
		}
		switch v.current {
		case PhaseCount:
			return fmt.Sprintf("Value %d appears %d times in the input", i, want)
		case PhaseCumulative:
			if i == 0 {
				return fmt.Sprintf("cumulative[0] equals count[0] = %d", want)
			}
			return fmt.Sprintf("cumulative[%d] = count[%d] + cumulative[%d] = %d", i, i, i-1, want)
		case PhaseOutput:
			return fmt.Sprintf("Position %d of the output holds %d: elements are placed right to left at output[count[value]-1]", i, want)
		}
	}
	return ""
}

// Check reports progress across all three phases: every correctly filled
// cell counts, and completion requires all phases locked or fully correct.
func (v *PhasedValidator) Check() domain.Progress {
	score, total := 0, 0
	for p := 0; p < int(phaseCount); p++ {
		for i, want := range v.input[p] {
			total++
			got := v.entries[p][i]
			if got != nil && *got == want {
				score++
			}
		}
	}
	return domain.Progress{Score: score, Total: total, Complete: total > 0 && score == total}
}

// Source returns the original input array the keys derive from.
func (v *PhasedValidator) Source() []int {
	return domain.CloneArray(v.source)
}

func (v *PhasedValidator) report(correct bool) {
	if v.hooks.OnValidation != nil {
		v.hooks.OnValidation(context.Background(), &domain.ValidationEvent{
			Algorithm: v.algorithm,
			Mode:      "phased",
			Correct:   correct,
		})
	}
}
