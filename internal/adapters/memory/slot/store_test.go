package slot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
)

func TestStoreStartsEmpty(t *testing.T) {
	store := NewStore()

	_, ok, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreLastWriteWins(t *testing.T) {
	store := NewStore()
	first := domain.MemoryEntry{Verb: domain.VerbRead, Target: "a.txt", Timestamp: time.Now()}
	second := domain.MemoryEntry{Verb: domain.VerbDelete, Target: "b.txt", Timestamp: time.Now()}

	require.NoError(t, store.Set(context.Background(), first))
	require.NoError(t, store.Set(context.Background(), second))

	entry, ok, err := store.Get(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, entry)
}

func TestStoreClear(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Set(context.Background(), domain.MemoryEntry{Verb: domain.VerbRead, Target: "a.txt"}))

	require.NoError(t, store.Clear(context.Background()))

	_, ok, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := store.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Set(ctx, domain.MemoryEntry{}), context.Canceled)
	assert.ErrorIs(t, store.Clear(ctx), context.Canceled)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set(context.Background(), domain.MemoryEntry{Verb: domain.VerbRead, Target: "a.txt"})
		}()
		go func() {
			defer wg.Done()
			_, _, _ = store.Get(context.Background())
		}()
	}

	wg.Wait()

	_, ok, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}
