package domain

import "errors"

var (
	// ErrClassification means the language model's reply could not be
	// mapped onto a known intent shape.
	ErrClassification = errors.New("classification failed")
	// ErrUnknownVerb means an ACTION intent carried a verb outside
	// READ/WRITE/APPEND/DELETE.
	ErrUnknownVerb = errors.New("unknown verb")
	// ErrNoPriorContext means a reference token was used with no
	// remembered action to resolve it against.
	ErrNoPriorContext = errors.New("no prior action to refer to")
	// ErrMissingPayload means a WRITE or APPEND had no content and no
	// remembered content to fall back on.
	ErrMissingPayload = errors.New("missing payload")
	// ErrTargetNotFound means the target path does not exist.
	ErrTargetNotFound = errors.New("target not found")
	// ErrAccess means the target exists but cannot be used as requested.
	ErrAccess = errors.New("access denied")
)
