package ports

import (
	"context"

	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
)

// MemoryStore holds the single most recent successfully executed action.
// Get returns ok=false while no action has ever succeeded. Set overwrites
// unconditionally; only the pipeline calls it, and only after executor
// success.
type MemoryStore interface {
	Get(ctx context.Context) (domain.MemoryEntry, bool, error)
	Set(ctx context.Context, entry domain.MemoryEntry) error
	Clear(ctx context.Context) error
}
