package observations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for recording observations.
type Service struct {
	Repo Repo
}

// RecordRequest captures one confirmed observation.
type RecordRequest struct {
	AuditRunID string
	Text       string
	IsCustom   bool
}

// Record validates and stores a confirmed observation. Preset observations
// must match the catalog exactly.
func (s *Service) Record(ctx context.Context, req RecordRequest) (Observation, error) {
	auditRunID := strings.TrimSpace(req.AuditRunID)
	if auditRunID == "" {
		return Observation{}, fmt.Errorf("%w: auditRunId is required", ErrInvalidInput)
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Observation{}, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if !req.IsCustom && !IsPreset(text) {
		return Observation{}, fmt.Errorf("%w: text is not a preset observation", ErrInvalidInput)
	}

	obs := Observation{
		ID:         uuid.NewString(),
		AuditRunID: auditRunID,
		Text:       text,
		IsCustom:   req.IsCustom,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, obs); err != nil {
		return Observation{}, err
	}
	return obs, nil
}

// ListByAuditRun returns observations recorded under one audit run.
func (s *Service) ListByAuditRun(ctx context.Context, auditRunID string) ([]Observation, error) {
	return s.Repo.ListByAuditRun(ctx, auditRunID)
}

// ListAll returns every recorded observation.
func (s *Service) ListAll(ctx context.Context) ([]Observation, error) {
	return s.Repo.ListAll(ctx)
}
