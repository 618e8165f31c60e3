// Package session coordinates safe access to persisted learner sessions.
// One manager fronts a ports.StateStore with per-session in-process locking
// (reference counted, garbage collected) and an optional distributed locker
// for multi-process deployments.
package session
