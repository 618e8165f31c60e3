package ports

import "github.com/chalklab/chalkline/pkg/domain"

// ProgressChecker is the common surface over the monk-mode validator
// strategies. The strategies differ deliberately (free-form table editing
// vs strict sequential gating vs phase locking) and are not unified beyond
// this progress query.
type ProgressChecker interface {
	// Check reports the current score, total and completion.
	Check() domain.Progress
}
