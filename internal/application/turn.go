package application

import (
	"errors"

	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
)

// TurnOutcome tags the three possible terminal states of one turn.
type TurnOutcome string

const (
	OutcomeAnswer    TurnOutcome = "answer"
	OutcomeAction    TurnOutcome = "action"
	OutcomeCancelled TurnOutcome = "cancelled"
	OutcomeError     TurnOutcome = "error"
)

// TurnResult is what one pipeline invocation hands back to the caller.
// Exactly one of Answer, Action or Err is meaningful, selected by Outcome.
type TurnResult struct {
	Outcome TurnOutcome
	Answer  string
	Action  domain.ExecutionResult
	Err     error
}

// ErrorKind maps a turn error onto the sentinel it wraps, for rendering.
// Returns nil when the result is not an error.
func (r TurnResult) ErrorKind() error {
	if r.Outcome != OutcomeError || r.Err == nil {
		return nil
	}
	for _, sentinel := range []error{
		domain.ErrClassification,
		domain.ErrUnknownVerb,
		domain.ErrNoPriorContext,
		domain.ErrMissingPayload,
		domain.ErrTargetNotFound,
		domain.ErrAccess,
	} {
		if errors.Is(r.Err, sentinel) {
			return sentinel
		}
	}
	return r.Err
}
