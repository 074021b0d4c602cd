// Package slot holds the single remembered action in memory. Capacity is
// one entry; nothing survives process restart.
package slot

import (
	"context"
	"sync"

	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
	"github.com/srinivasagudi0/Stark-Assistant/internal/ports"
)

type Store struct {
	mu    sync.RWMutex
	entry domain.MemoryEntry
	set   bool
}

var _ ports.MemoryStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Get(ctx context.Context) (domain.MemoryEntry, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.MemoryEntry{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entry, s.set, nil
}

func (s *Store) Set(ctx context.Context, entry domain.MemoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entry = entry
	s.set = true
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entry = domain.MemoryEntry{}
	s.set = false
	return nil
}
