package domain

import (
	"fmt"
	"strings"
)

// IntentKind separates turns that only need a spoken reply from turns that
// request a filesystem side effect.
type IntentKind string

const (
	KindAnswer IntentKind = "ANSWER"
	KindAction IntentKind = "ACTION"
)

// Verb is a file operation the executor knows how to perform.
type Verb string

const (
	VerbRead   Verb = "READ"
	VerbWrite  Verb = "WRITE"
	VerbAppend Verb = "APPEND"
	VerbDelete Verb = "DELETE"
)

// ParseVerb maps a raw classifier verb onto a known Verb.
func ParseVerb(raw string) (Verb, error) {
	switch Verb(strings.ToUpper(strings.TrimSpace(raw))) {
	case VerbRead:
		return VerbRead, nil
	case VerbWrite:
		return VerbWrite, nil
	case VerbAppend:
		return VerbAppend, nil
	case VerbDelete:
		return VerbDelete, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVerb, raw)
	}
}

// Mutates reports whether the verb changes the filesystem. The chat loop
// uses this to decide when to ask for confirmation.
func (v Verb) Mutates() bool {
	return v == VerbWrite || v == VerbAppend || v == VerbDelete
}

// Intent is the classifier's structured reading of one utterance.
//
// For ACTION intents, Target may still be a reference token such as
// "that file" or "again"; the resolver rewrites it into a concrete path.
// A zero Verb means the classifier saw no explicit verb (legal only in
// combination with the "again" reference). Answer carries the spoken reply
// for ANSWER intents.
type Intent struct {
	Kind    IntentKind
	Answer  string
	Verb    Verb
	Target  string
	Payload *string
}
