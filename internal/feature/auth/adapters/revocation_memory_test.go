package adapters

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevocationMemory_AddAndContains(t *testing.T) {
	store := NewRevocationMemory()

	require.NoError(t, store.Add(context.Background(), "token-001", time.Hour))

	revoked, err := store.Contains(context.Background(), "token-001")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.Contains(context.Background(), "unknown-token")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationMemory_NonPositiveTTL(t *testing.T) {
	store := NewRevocationMemory()

	assert.Error(t, store.Add(context.Background(), "token-001", 0))
	assert.Error(t, store.Add(context.Background(), "token-001", -time.Minute))
}

// TestRevocationMemory_ExpiredEntryIsPruned は期限切れエントリが読み取り時に
// 削除され、失効済みとして扱われないことを検証します。
func TestRevocationMemory_ExpiredEntryIsPruned(t *testing.T) {
	store := NewRevocationMemory()

	require.NoError(t, store.Add(context.Background(), "short-lived", 15*time.Millisecond))

	time.Sleep(30 * time.Millisecond)

	revoked, err := store.Contains(context.Background(), "short-lived")
	require.NoError(t, err)
	assert.False(t, revoked, "expired entry must not count as revoked")

	store.mu.RLock()
	_, ok := store.entries["short-lived"]
	store.mu.RUnlock()
	assert.False(t, ok, "expired entry must be removed on read")
}

// TestRevocationMemory_ConcurrentAccess は並行するログアウトの記録が
// 安全に交錯できることを検証します。
func TestRevocationMemory_ConcurrentAccess(t *testing.T) {
	store := NewRevocationMemory()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			token := fmt.Sprintf("token-%03d", n)
			_ = store.Add(context.Background(), token, time.Hour)
			_, _ = store.Contains(context.Background(), token)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		revoked, err := store.Contains(context.Background(), fmt.Sprintf("token-%03d", i))
		require.NoError(t, err)
		assert.True(t, revoked)
	}
}
