// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"sync"
	"time"

	"account_backend/internal/feature/auth/usecase"
)

// revocationMemory はRevocationStoreインターフェースのプロセス内実装です。
// Redisが利用できない場合のフォールバックで、エントリはプロセス再起動で失われます。
type revocationMemory struct {
	mu      sync.RWMutex
	entries map[string]time.Time // トークン → 失効記録の期限
}

// revocationMemoryがRevocationStoreを実装していることをコンパイル時に検証します。
var _ usecase.RevocationStore = (*revocationMemory)(nil)

// NewRevocationMemory はrevocationMemoryの新しいインスタンスを生成します。
func NewRevocationMemory() *revocationMemory {
	return &revocationMemory{entries: make(map[string]time.Time)}
}

// Add はトークンをttlの間だけ失効済みとして記録します。
func (s *revocationMemory) Add(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %v", ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = time.Now().Add(ttl)
	return nil
}

// Contains はトークンが失効済みかどうかを返します。
// 期限切れのエントリは読み取り時に遅延削除されます。
func (s *revocationMemory) Contains(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	deadline, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}
