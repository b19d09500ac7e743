package observations

import (
	"context"
	"sync"
)

// MemoryRepo stores observations in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu  sync.RWMutex
	all []Observation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores the observation.
func (r *MemoryRepo) Create(ctx context.Context, obs Observation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, obs)
	return nil
}

// ListByAuditRun returns observations recorded under the given audit run.
func (r *MemoryRepo) ListByAuditRun(ctx context.Context, auditRunID string) ([]Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Observation, 0)
	for _, obs := range r.all {
		if obs.AuditRunID == auditRunID {
			out = append(out, obs)
		}
	}
	return out, nil
}

// ListAll returns every stored observation in insertion order.
func (r *MemoryRepo) ListAll(ctx context.Context) ([]Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Observation, len(r.all))
	copy(out, r.all)
	return out, nil
}
