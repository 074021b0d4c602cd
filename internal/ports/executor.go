package ports

import (
	"context"

	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
)

// Executor performs the filesystem side effect of one resolved action.
// It is the only component allowed to touch the filesystem. Failures are
// returned as errors wrapping domain.ErrTargetNotFound or domain.ErrAccess;
// the ExecutionResult is meaningful only when err is nil.
type Executor interface {
	Execute(ctx context.Context, action domain.ResolvedAction) (domain.ExecutionResult, error)
}
