package auditruns

import "context"

// Repo defines persistence operations for audit runs.
type Repo interface {
	Create(ctx context.Context, run AuditRun) error
	GetByID(ctx context.Context, id string) (AuditRun, error)
	ListAll(ctx context.Context) ([]AuditRun, error)
}
