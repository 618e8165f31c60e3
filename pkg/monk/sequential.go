package monk

import (
	"context"
	"log/slog"

	"github.com/chalklab/chalkline/internal/logging"
	"github.com/chalklab/chalkline/pkg/domain"
)

// SwapValidator implements strictly gated monk mode for heap practice: the
// learner must produce the next expected swap before the cursor advances.
// A wrong pair never mutates state; it is recoverable by trying again.
type SwapValidator struct {
	expected  [][2]int
	idx       int
	arr       []int
	stats     domain.Stats
	algorithm string
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// SwapOption configures the SwapValidator.
type SwapOption func(*SwapValidator)

// WithSwapHooks registers observability hooks.
func WithSwapHooks(hooks domain.LifecycleHooks) SwapOption {
	return func(v *SwapValidator) {
		v.hooks = hooks
	}
}

// WithSwapLogger configures a structured logger.
func WithSwapLogger(logger *slog.Logger) SwapOption {
	return func(v *SwapValidator) {
		v.logger = logger
	}
}

// NewSwapValidator creates a validator over the expected swap sequence
// (extracted from a trace via heap.ExpectedSwaps) and the initial array.
// The validator owns its copy of the array; the learner's swaps apply to it.
func NewSwapValidator(algorithm string, expected [][2]int, initial []int, opts ...SwapOption) *SwapValidator {
	v := &SwapValidator{
		expected:  expected,
		arr:       domain.CloneArray(initial),
		algorithm: algorithm,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateSwap checks a selected pair against the next expected swap,
// order-insensitively. On a match the swap is applied to the learner's
// array and the expected index advances; on a mismatch nothing changes.
// Input after completion is ignored.
func (v *SwapValidator) ValidateSwap(a, b int) bool {
	if v.Done() {
		return false
	}
	want := v.expected[v.idx]
	match := (a == want[0] && b == want[1]) || (a == want[1] && b == want[0])
	v.report(match)
	if !match {
		v.logger.Debug("wrong swap", "got_a", a, "got_b", b, "want_a", want[0], "want_b", want[1])
		return false
	}

	v.arr[want[0]], v.arr[want[1]] = v.arr[want[1]], v.arr[want[0]]
	v.idx++
	v.stats.Swaps++
	v.logger.Debug("swap accepted", "index", v.idx, "total", len(v.expected))
	return true
}

// Expected returns the next expected swap pair. ok=false once complete.
func (v *SwapValidator) Expected() (pair [2]int, ok bool) {
	if v.Done() {
		return [2]int{}, false
	}
	return v.expected[v.idx], true
}

// Done reports whether all expected swaps have been performed.
func (v *SwapValidator) Done() bool {
	return v.idx >= len(v.expected)
}

// Array returns the learner's current array state.
func (v *SwapValidator) Array() []int {
	return domain.CloneArray(v.arr)
}

// Stats returns the learner's counters.
func (v *SwapValidator) Stats() domain.Stats {
	return v.stats
}

// Check reports progress through the expected swap sequence.
func (v *SwapValidator) Check() domain.Progress {
	return domain.Progress{
		Score:    v.idx,
		Total:    len(v.expected),
		Complete: v.Done(),
	}
}

func (v *SwapValidator) report(correct bool) {
	if v.hooks.OnValidation != nil {
		v.hooks.OnValidation(context.Background(), &domain.ValidationEvent{
			Algorithm: v.algorithm,
			Mode:      "sequential",
			Correct:   correct,
		})
	}
}
