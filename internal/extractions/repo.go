package extractions

import "context"

// Repo defines persistence operations for extraction results. The store is
// injected rather than a package-level map so tests get isolated state.
type Repo interface {
	Create(ctx context.Context, result ExtractionResult) error
	GetByID(ctx context.Context, id string) (ExtractionResult, error)
	ListByAuditRun(ctx context.Context, auditRunID string) ([]ExtractionResult, error)
	ListAll(ctx context.Context) ([]ExtractionResult, error)
}
