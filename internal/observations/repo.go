package observations

import "context"

// Repo defines persistence operations for observations.
type Repo interface {
	Create(ctx context.Context, obs Observation) error
	ListByAuditRun(ctx context.Context, auditRunID string) ([]Observation, error)
	ListAll(ctx context.Context) ([]Observation, error)
}
