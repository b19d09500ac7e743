package auditruns

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for audit run bookkeeping.
type Service struct {
	Repo Repo
}

// Create validates and stores a new audit run.
func (s *Service) Create(ctx context.Context, name, clientName string) (AuditRun, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AuditRun{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	run := AuditRun{
		ID:         uuid.NewString(),
		Name:       name,
		ClientName: strings.TrimSpace(clientName),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, run); err != nil {
		return AuditRun{}, err
	}
	return run, nil
}

// Get returns an audit run by ID.
func (s *Service) Get(ctx context.Context, id string) (AuditRun, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all audit runs, newest first.
func (s *Service) List(ctx context.Context) ([]AuditRun, error) {
	return s.Repo.ListAll(ctx)
}
