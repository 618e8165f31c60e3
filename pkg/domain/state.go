package domain

import "time"

// SessionState is the persistable snapshot of a learner session. It carries
// everything needed to rebuild the visualization deterministically: the
// algorithm inputs (the trace is recomputed, never stored) plus the player
// cursor and monk-mode progress.
type SessionState struct {
	// ID identifies the session.
	ID string `json:"id"`

	// Algorithm is the registry name of the solver.
	Algorithm string `json:"algorithm"`

	// Inputs holds the raw algorithm parameters as decoded from the host.
	Inputs map[string]any `json:"inputs"`

	// Cursor is the player position within the step sequence.
	Cursor int `json:"cursor"`

	// MonkIndex is the progress of a sequential validator (expected-swap index).
	MonkIndex int `json:"monkIndex"`

	// MonkPhase is the unlocked phase of a phased validator.
	MonkPhase int `json:"monkPhase"`

	// Score and Total track monk-mode results.
	Score int `json:"score"`
	Total int `json:"total"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSessionState creates a clean session for an algorithm run.
func NewSessionState(id, algorithm string, inputs map[string]any) *SessionState {
	now := time.Now().UTC()
	return &SessionState{
		ID:        id,
		Algorithm: algorithm,
		Inputs:    inputs,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy so stores can hand out isolated state.
func (s *SessionState) Clone() *SessionState {
	out := *s
	out.Inputs = make(map[string]any, len(s.Inputs))
	for k, v := range s.Inputs {
		out.Inputs[k] = v
	}
	return &out
}

// Progress summarizes monk-mode completion for a "check progress" call.
type Progress struct {
	Score    int  `json:"score"`
	Total    int  `json:"total"`
	Complete bool `json:"complete"`
}
