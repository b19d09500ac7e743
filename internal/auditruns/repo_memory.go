package auditruns

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores audit runs in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]AuditRun
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]AuditRun)}
}

// Create stores the audit run.
func (r *MemoryRepo) Create(ctx context.Context, run AuditRun) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[run.ID] = run
	return nil
}

// GetByID returns an audit run by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (AuditRun, error) {
	if err := ctx.Err(); err != nil {
		return AuditRun{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.byID[id]
	if !ok {
		return AuditRun{}, ErrNotFound
	}
	return run, nil
}

// ListAll returns all audit runs, newest first.
func (r *MemoryRepo) ListAll(ctx context.Context) ([]AuditRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	runs := make([]AuditRun, 0, len(r.byID))
	for _, run := range r.byID {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}
