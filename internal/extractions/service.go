package extractions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"audit-backend/internal/llm"
	"audit-backend/internal/shared/metrics"
	"audit-backend/internal/shared/telemetry"
	"audit-backend/internal/shared/util"
	"audit-backend/internal/usage"
)

// Service contains business logic for procedure extractions.
type Service struct {
	Repo  Repo
	LLM   llm.Client // nil when no API credential is configured
	Usage *usage.Service
	Model string
}

// ExtractRequest captures one extraction call.
type ExtractRequest struct {
	AuditRunID        string
	ProceduresContent string
	SourceFileName    string
	UseMock           bool
}

// Extract runs one extraction: mock or real depending on the request flag
// and credential presence, then stores the result under a fresh ID.
func (s *Service) Extract(ctx context.Context, req ExtractRequest) (ExtractionResult, error) {
	auditRunID := strings.TrimSpace(req.AuditRunID)
	if auditRunID == "" {
		return ExtractionResult{}, fmt.Errorf("%w: auditRunId is required", ErrInvalidInput)
	}

	sourceFileName := strings.TrimSpace(req.SourceFileName)
	if sourceFileName == "" {
		sourceFileName = DefaultSourceFileName
	}

	useMock := req.UseMock || s.LLM == nil
	client := s.LLM
	if useMock {
		client = llm.MockClient{}
	} else if strings.TrimSpace(req.ProceduresContent) == "" {
		return ExtractionResult{}, fmt.Errorf("%w: proceduresContent is required", ErrInvalidInput)
	}

	metrics.IncExtractionStarted()
	start := time.Now()
	out, err := client.ExtractProcedures(ctx, llm.ExtractInput{
		ProceduresText: req.ProceduresContent,
		SourceFileName: sourceFileName,
	})
	if err != nil {
		metrics.IncExtractionFailed()
		telemetry.Error("extraction.failed", map[string]any{
			"audit_run_id": auditRunID,
			"source_file":  sourceFileName,
			"model":        s.Model,
			"error":        err.Error(),
		})
		return ExtractionResult{}, &LLMError{Message: err.Error()}
	}

	result := ExtractionResult{
		ID:             uuid.NewString(),
		AuditRunID:     auditRunID,
		SourceFileName: sourceFileName,
		Result:         normalizePayload(out.Payload),
		TokensUsed:     out.TokensUsed,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, result); err != nil {
		return ExtractionResult{}, err
	}

	if s.Usage != nil {
		if err := s.Usage.RecordExtraction(ctx, auditRunID, result.TokensUsed); err != nil {
			telemetry.Warn("extraction.usage_record_failed", map[string]any{
				"audit_run_id": auditRunID,
				"error":        err.Error(),
			})
		}
	}

	metrics.IncExtractionCompleted()
	if useMock {
		metrics.IncExtractionMock()
	}
	metrics.AddExtractionTokens(result.TokensUsed)
	metrics.ObserveExtractionDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	telemetry.Info("extraction.complete", map[string]any{
		"extraction_id": result.ID,
		"audit_run_id":  auditRunID,
		"source_file":   sourceFileName,
		"mock":          useMock,
		"tokens_used":   result.TokensUsed,
		"content_hash":  util.ContentHash(req.ProceduresContent),
		"duration_ms":   float64(time.Since(start).Microseconds()) / 1000.0,
	})

	return result, nil
}

// Get returns a stored extraction result by ID.
func (s *Service) Get(ctx context.Context, id string) (ExtractionResult, error) {
	if strings.TrimSpace(id) == "" {
		return ExtractionResult{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// ListByAuditRun returns results correlated to one audit run.
func (s *Service) ListByAuditRun(ctx context.Context, auditRunID string) ([]ExtractionResult, error) {
	return s.Repo.ListByAuditRun(ctx, auditRunID)
}

// ListAll returns every stored result.
func (s *Service) ListAll(ctx context.Context) ([]ExtractionResult, error) {
	return s.Repo.ListAll(ctx)
}

// normalizePayload parses the provider output as a JSON object. Anything
// else is preserved verbatim under a rawText key. A literal null unmarshals
// into a nil map, so it takes the rawText path too.
func normalizePayload(raw json.RawMessage) map[string]any {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err == nil && payload != nil {
		return payload
	}
	return map[string]any{"rawText": string(raw)}
}
