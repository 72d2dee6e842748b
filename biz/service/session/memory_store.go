package session

import (
	"context"
	"sync"
	"time"

	"bankdemo/biz/model/domain"
)

// MemoryStore is a process-local Store for tests and single-instance runs.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]domain.Session
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]domain.Session), now: time.Now}
}

func (s *MemoryStore) Put(_ context.Context, token string, sess *domain.Session, ttl time.Duration) error {
	cp := *sess
	if deadline := s.now().Add(ttl); deadline.Before(cp.ExpiresAt) {
		cp.ExpiresAt = deadline
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[token] = cp
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[token]
	if !ok {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		delete(s.items, token)
		return nil, nil
	}
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
	return nil
}
