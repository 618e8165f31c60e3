package monk

import (
	"context"
	"log/slog"

	"github.com/chalklab/chalkline/internal/logging"
	"github.com/chalklab/chalkline/pkg/domain"
)

// TableValidator implements free-form monk mode for table algorithms
// (knapsack, LCS): every non-base cell is editable in any order, each edit
// gets immediate feedback against the answer key, and CheckAll tallies the
// whole grid. There is no forward-progress gating.
type TableValidator struct {
	key       [][]int
	entries   map[domain.Coord]int
	algorithm string
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// TableOption configures the TableValidator.
type TableOption func(*TableValidator)

// WithTableHooks registers observability hooks.
func WithTableHooks(hooks domain.LifecycleHooks) TableOption {
	return func(v *TableValidator) {
		v.hooks = hooks
	}
}

// WithTableLogger configures a structured logger.
func WithTableLogger(logger *slog.Logger) TableOption {
	return func(v *TableValidator) {
		v.logger = logger
	}
}

// NewTableValidator creates a validator over a solved DP table. The table
// is the answer key; row 0 and column 0 are base cells and not editable.
func NewTableValidator(algorithm string, key [][]int, opts ...TableOption) *TableValidator {
	v := &TableValidator{
		key:       key,
		entries:   make(map[domain.Coord]int),
		algorithm: algorithm,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Editable reports whether a coordinate accepts learner input.
func (v *TableValidator) Editable(c domain.Coord) bool {
	if c.Row <= 0 || c.Row >= len(v.key) {
		return false
	}
	if c.Col <= 0 || c.Col >= len(v.key[c.Row]) {
		return false
	}
	return true
}

// Submit records a learner's value for a cell and returns whether it is
// correct. Cells may be edited in any order and as often as desired;
// submissions to non-editable coordinates are ignored and reported false.
func (v *TableValidator) Submit(c domain.Coord, value int) bool {
	if !v.Editable(c) {
		return false
	}
	v.entries[c] = value
	correct := v.key[c.Row][c.Col] == value
	v.report(correct)
	v.logger.Debug("table cell submitted",
		"row", c.Row, "col", c.Col, "value", value, "correct", correct)
	return correct
}

// Expected returns the answer-key value for a coordinate.
func (v *TableValidator) Expected(c domain.Coord) int {
	return v.key[c.Row][c.Col]
}

// Check scans every editable cell and reports the score: a cell counts
// only if it has been filled in and matches the key.
func (v *TableValidator) Check() domain.Progress {
	score, total := 0, 0
	for r := 1; r < len(v.key); r++ {
		for c := 1; c < len(v.key[r]); c++ {
			total++
			entered, ok := v.entries[domain.Cell(r, c)]
			if ok && entered == v.key[r][c] {
				score++
			}
		}
	}
	return domain.Progress{Score: score, Total: total, Complete: total > 0 && score == total}
}

func (v *TableValidator) report(correct bool) {
	if v.hooks.OnValidation != nil {
		v.hooks.OnValidation(context.Background(), &domain.ValidationEvent{
			Algorithm: v.algorithm,
			Mode:      "table",
			Correct:   correct,
		})
	}
}
