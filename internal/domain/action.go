package domain

import "time"

// ResolvedAction is an action whose target is a concrete filesystem path.
// Reference tokens never survive past the resolver, so the executor can
// treat Target as a plain path string.
type ResolvedAction struct {
	Verb    Verb
	Target  string
	Payload *string
}

// MemoryEntry is the single remembered action. At most one exists per
// session: empty at start, overwritten after every successful ACTION turn.
type MemoryEntry struct {
	Verb      Verb
	Target    string
	Payload   *string
	Timestamp time.Time
}

// ExecutionResult reports the terminal state of one executed action.
// Detail holds file contents for READ and a human-readable status line
// otherwise.
type ExecutionResult struct {
	Verb    Verb
	Target  string
	Success bool
	Detail  string
}
