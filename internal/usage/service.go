package usage

import "context"

type store interface {
	Record(ctx context.Context, auditRunID string, tokens int) (Usage, error)
	Get(ctx context.Context, auditRunID string) (Usage, error)
}

// Service manages per-run usage data via an underlying store.
type Service struct {
	store store
}

// NewService constructs a Service with the in-memory store.
func NewService() *Service {
	return &Service{store: newMemoryStore()}
}

// RecordExtraction credits one extraction and its token spend to the run.
func (s *Service) RecordExtraction(ctx context.Context, auditRunID string, tokens int) error {
	if tokens < 0 {
		tokens = 0
	}
	_, err := s.store.Record(ctx, auditRunID, tokens)
	return err
}

// Get returns the usage for a run. Unknown runs report zero usage.
func (s *Service) Get(ctx context.Context, auditRunID string) (Usage, error) {
	return s.store.Get(ctx, auditRunID)
}
