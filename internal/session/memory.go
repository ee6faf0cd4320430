package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore 把会话保存在进程内存中，用于开发和测试。
// 后台的清理 goroutine 按固定周期扫掉已过期的会话；
// UserID 本身也会拒绝已过期但尚未被扫掉的会话。
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	done     chan struct{}
	closeOne sync.Once
}

func NewMemoryStore(ttl time.Duration, sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	go s.sweep(sweepInterval)

	return s
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, entry := range s.sessions {
				if entry.expiresAt.Before(now) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

func (s *MemoryStore) Create(ctx context.Context, sessionID string, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = memoryEntry{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}

	return nil
}

func (s *MemoryStore) UserID(ctx context.Context, sessionID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[sessionID]
	if !ok || entry.expiresAt.Before(time.Now()) {
		return 0, ErrSessionNotFound
	}

	return entry.userID, nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)

	return nil
}

// Close 停掉清理 goroutine
func (s *MemoryStore) Close() {
	s.closeOne.Do(func() {
		close(s.done)
	})
}
