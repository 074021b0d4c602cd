package application

import (
	"fmt"
	"strings"

	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
)

// Reference tokens the resolver recognizes, compared case-insensitively
// after trimming.
const (
	refAgain = "again"
)

var refLastTarget = map[string]struct{}{
	"that file": {},
	"it":        {},
	"last file": {},
}

// Resolve rewrites an ACTION intent into a concrete action using the
// remembered entry. It is a pure function: neither the intent nor the
// memory entry is mutated, and no I/O happens here.
//
// Priority order: a target that is not a recognized reference token is
// used as-is; "that file" / "it" / "last file" and an empty target borrow
// the remembered target; "again" borrows the remembered verb, target and
// (when the intent supplies none) payload. An explicit verb always wins
// over the remembered one, but never changes the borrowed target.
func Resolve(intent domain.Intent, memory *domain.MemoryEntry) (domain.ResolvedAction, error) {
	if intent.Kind != domain.KindAction {
		return domain.ResolvedAction{}, fmt.Errorf("%w: resolve called on %s intent", domain.ErrClassification, intent.Kind)
	}

	token := strings.ToLower(strings.TrimSpace(intent.Target))

	if token == refAgain {
		return resolveAgain(intent, memory)
	}

	target := intent.Target
	_, borrows := refLastTarget[token]
	if borrows || token == "" {
		if memory == nil {
			if token == "" {
				return domain.ResolvedAction{}, fmt.Errorf("%w: action has no target", domain.ErrNoPriorContext)
			}
			return domain.ResolvedAction{}, fmt.Errorf("%w: %q", domain.ErrNoPriorContext, intent.Target)
		}
		target = memory.Target
	}

	if intent.Verb == "" {
		return domain.ResolvedAction{}, fmt.Errorf("%w: action has no verb", domain.ErrUnknownVerb)
	}
	if target == "" {
		return domain.ResolvedAction{}, fmt.Errorf("%w: action has no target", domain.ErrNoPriorContext)
	}

	payload := copyPayload(intent.Payload)
	if payload == nil && needsPayload(intent.Verb) {
		return domain.ResolvedAction{}, fmt.Errorf("%w: %s needs content", domain.ErrMissingPayload, intent.Verb)
	}

	return domain.ResolvedAction{
		Verb:    intent.Verb,
		Target:  target,
		Payload: payload,
	}, nil
}

func resolveAgain(intent domain.Intent, memory *domain.MemoryEntry) (domain.ResolvedAction, error) {
	if memory == nil {
		return domain.ResolvedAction{}, fmt.Errorf("%w: %q", domain.ErrNoPriorContext, intent.Target)
	}

	verb := memory.Verb
	if intent.Verb != "" {
		verb = intent.Verb
	}

	payload := copyPayload(intent.Payload)
	if payload == nil {
		payload = copyPayload(memory.Payload)
	}

	return domain.ResolvedAction{
		Verb:    verb,
		Target:  memory.Target,
		Payload: payload,
	}, nil
}

func needsPayload(verb domain.Verb) bool {
	return verb == domain.VerbWrite || verb == domain.VerbAppend
}

func copyPayload(payload *string) *string {
	if payload == nil {
		return nil
	}
	value := *payload
	return &value
}
