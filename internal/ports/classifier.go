package ports

import (
	"context"

	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
)

// Classifier turns one raw utterance into a structured intent. The context
// hint describes the remembered action, if any, so the language model can
// ground references like "that file" the same way the resolver will.
//
// Implementations validate the reply shape: an unrecognized kind maps to
// domain.ErrClassification and an ACTION with an unusable verb to
// domain.ErrUnknownVerb. A missing verb is legal only for "again".
type Classifier interface {
	Classify(ctx context.Context, utterance string, hint string) (domain.Intent, error)
}
