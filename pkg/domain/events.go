package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSolve      EventType = "solve"
	EventStepPlayed EventType = "step_played"
	EventValidation EventType = "validation"
)

// SolveEvent describes a completed solve pass.
type SolveEvent struct {
	Algorithm string        `json:"algorithm"`
	Steps     int           `json:"steps"`
	Duration  time.Duration `json:"duration"`
}

// StepEvent describes a step executed by a player.
type StepEvent struct {
	Algorithm string   `json:"algorithm"`
	Cursor    int      `json:"cursor"`
	Kind      StepKind `json:"kind"`
}

// ValidationEvent describes a monk-mode answer check.
type ValidationEvent struct {
	Algorithm string `json:"algorithm"`
	Mode      string `json:"mode"`
	Correct   bool   `json:"correct"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnSolve      func(context.Context, *SolveEvent)
	OnStepPlayed func(context.Context, *StepEvent)
	OnValidation func(context.Context, *ValidationEvent)
}
