package usage

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	byRun map[string]Usage
}

func newMemoryStore() *memoryStore {
	return &memoryStore{byRun: make(map[string]Usage)}
}

func (s *memoryStore) Record(ctx context.Context, auditRunID string, tokens int) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byRun[auditRunID]
	if !ok {
		u = Usage{AuditRunID: auditRunID}
	}
	u.Extractions++
	u.TokensUsed += tokens
	s.byRun[auditRunID] = u
	return u, nil
}

func (s *memoryStore) Get(ctx context.Context, auditRunID string) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byRun[auditRunID]
	if !ok {
		return Usage{AuditRunID: auditRunID}, nil
	}
	return u, nil
}
