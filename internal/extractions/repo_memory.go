package extractions

import (
	"context"
	"sync"
)

// MemoryRepo stores extraction results in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu         sync.RWMutex
	byID       map[string]ExtractionResult
	byAuditRun map[string][]string
	order      []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:       make(map[string]ExtractionResult),
		byAuditRun: make(map[string][]string),
	}
}

// Create stores the extraction result.
func (r *MemoryRepo) Create(ctx context.Context, result ExtractionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[result.ID] = result
	r.byAuditRun[result.AuditRunID] = append(r.byAuditRun[result.AuditRunID], result.ID)
	r.order = append(r.order, result.ID)
	return nil
}

// GetByID returns an extraction result by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return ExtractionResult{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.byID[id]
	if !ok {
		return ExtractionResult{}, ErrNotFound
	}
	return result, nil
}

// ListByAuditRun returns all results stored under the given audit run.
func (r *MemoryRepo) ListByAuditRun(ctx context.Context, auditRunID string) ([]ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byAuditRun[auditRunID]
	results := make([]ExtractionResult, 0, len(ids))
	for _, id := range ids {
		results = append(results, r.byID[id])
	}
	return results, nil
}

// ListAll returns every stored result in insertion order.
func (r *MemoryRepo) ListAll(ctx context.Context) ([]ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	results := make([]ExtractionResult, 0, len(r.order))
	for _, id := range r.order {
		results = append(results, r.byID[id])
	}
	return results, nil
}
