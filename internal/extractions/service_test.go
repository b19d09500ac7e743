package extractions

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"audit-backend/internal/llm"
	"audit-backend/internal/shared/metrics"
	"audit-backend/internal/usage"
)

type stubClient struct {
	calls  int
	result llm.ExtractResult
	err    error
}

func (s *stubClient) ExtractProcedures(ctx context.Context, input llm.ExtractInput) (llm.ExtractResult, error) {
	s.calls++
	return s.result, s.err
}

func newService(client llm.Client) (*Service, *MemoryRepo, *usage.Service) {
	repo := NewMemoryRepo()
	usageSvc := usage.NewService()
	return &Service{Repo: repo, LLM: client, Usage: usageSvc, Model: "gpt-4o-mini"}, repo, usageSvc
}

func TestExtractRequiresAuditRunID(t *testing.T) {
	stub := &stubClient{}
	svc, _, _ := newService(stub)

	_, err := svc.Extract(context.Background(), ExtractRequest{AuditRunID: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no LLM call, got %d", stub.calls)
	}
}

func TestExtractMockModeNeverCallsLLM(t *testing.T) {
	stub := &stubClient{}
	svc, _, _ := newService(stub)

	result, err := svc.Extract(context.Background(), ExtractRequest{
		AuditRunID: "run-1",
		UseMock:    true,
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no LLM call in mock mode, got %d", stub.calls)
	}
	if result.TokensUsed != 0 {
		t.Fatalf("expected 0 tokens in mock mode, got %d", result.TokensUsed)
	}
	if _, ok := result.Result["cipRequirements"]; !ok {
		t.Fatalf("expected canned payload, got %v", result.Result)
	}
}

func TestExtractNoCredentialFallsBackToMock(t *testing.T) {
	svc, _, _ := newService(nil)

	// Content is not required on the mock path.
	result, err := svc.Extract(context.Background(), ExtractRequest{AuditRunID: "run-1"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.TokensUsed != 0 {
		t.Fatalf("expected 0 tokens without a credential, got %d", result.TokensUsed)
	}
}

func TestExtractRealModeRequiresContent(t *testing.T) {
	stub := &stubClient{}
	svc, _, _ := newService(stub)

	_, err := svc.Extract(context.Background(), ExtractRequest{AuditRunID: "run-1"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no LLM call before validation, got %d", stub.calls)
	}
}

func TestExtractStoresResultAndCreditsUsage(t *testing.T) {
	stub := &stubClient{result: llm.ExtractResult{
		Payload:    json.RawMessage(`{"summary":"risk-based program"}`),
		TokensUsed: 77,
	}}
	svc, repo, usageSvc := newService(stub)
	ctx := context.Background()

	result, err := svc.Extract(ctx, ExtractRequest{
		AuditRunID:        "run-1",
		ProceduresContent: "Verify photo ID.",
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.SourceFileName != DefaultSourceFileName {
		t.Fatalf("expected default source file name, got %q", result.SourceFileName)
	}
	if result.TokensUsed != 77 {
		t.Fatalf("expected 77 tokens, got %d", result.TokensUsed)
	}

	stored, err := repo.GetByID(ctx, result.ID)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.AuditRunID != "run-1" {
		t.Fatalf("auditRunId did not round-trip: %q", stored.AuditRunID)
	}
	if stored.Result["summary"] != "risk-based program" {
		t.Fatalf("unexpected stored result: %v", stored.Result)
	}

	u, err := usageSvc.Get(ctx, "run-1")
	if err != nil {
		t.Fatalf("usage get: %v", err)
	}
	if u.Extractions != 1 || u.TokensUsed != 77 {
		t.Fatalf("expected usage credited, got %+v", u)
	}
}

func TestExtractMintsUniqueIDs(t *testing.T) {
	svc, _, _ := newService(nil)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		result, err := svc.Extract(ctx, ExtractRequest{AuditRunID: "run-1", UseMock: true})
		if err != nil {
			t.Fatalf("extract %d: %v", i, err)
		}
		if _, dup := seen[result.ID]; dup {
			t.Fatalf("duplicate id %s", result.ID)
		}
		seen[result.ID] = struct{}{}
	}
}

func TestExtractLLMFailureSurfacesMessage(t *testing.T) {
	stub := &stubClient{err: errors.New("rate limit reached")}
	svc, repo, _ := newService(stub)
	ctx := context.Background()

	_, err := svc.Extract(ctx, ExtractRequest{
		AuditRunID:        "run-1",
		ProceduresContent: "text",
	})
	var llmErr *LLMError
	if !errors.As(err, &llmErr) {
		t.Fatalf("expected LLMError, got %v", err)
	}
	if !strings.Contains(llmErr.Message, "rate limit reached") {
		t.Fatalf("expected provider message, got %q", llmErr.Message)
	}

	all, _ := repo.ListAll(ctx)
	if len(all) != 0 {
		t.Fatalf("expected nothing stored on failure, got %d", len(all))
	}
}

func counterValue(t *testing.T, name string) uint64 {
	t.Helper()
	for _, line := range strings.Split(metrics.Render(), "\n") {
		if value, ok := strings.CutPrefix(line, name+" "); ok {
			parsed, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				t.Fatalf("parse %s value %q: %v", name, value, err)
			}
			return parsed
		}
	}
	t.Fatalf("counter %s not rendered", name)
	return 0
}

func TestExtractCountsAttempts(t *testing.T) {
	stub := &stubClient{err: errors.New("model overloaded")}
	svc, _, _ := newService(stub)
	ctx := context.Background()

	started := counterValue(t, "extraction_started_total")
	failed := counterValue(t, "extraction_failed_total")

	if _, err := svc.Extract(ctx, ExtractRequest{AuditRunID: "run-1", UseMock: true}); err != nil {
		t.Fatalf("mock extract: %v", err)
	}
	if _, err := svc.Extract(ctx, ExtractRequest{AuditRunID: "run-1", ProceduresContent: "text"}); err == nil {
		t.Fatal("expected stub failure")
	}

	if got := counterValue(t, "extraction_started_total"); got != started+2 {
		t.Fatalf("expected started counter %d, got %d", started+2, got)
	}
	if got := counterValue(t, "extraction_failed_total"); got != failed+1 {
		t.Fatalf("expected failed counter %d, got %d", failed+1, got)
	}
}

func TestExtractWrapsNonJSONPayload(t *testing.T) {
	stub := &stubClient{result: llm.ExtractResult{
		Payload:    json.RawMessage("not json at all"),
		TokensUsed: 5,
	}}
	svc, _, _ := newService(stub)

	result, err := svc.Extract(context.Background(), ExtractRequest{
		AuditRunID:        "run-1",
		ProceduresContent: "text",
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.Result["rawText"] != "not json at all" {
		t.Fatalf("expected rawText wrapping, got %v", result.Result)
	}
}

func TestExtractWrapsNullPayload(t *testing.T) {
	stub := &stubClient{result: llm.ExtractResult{
		Payload:    json.RawMessage("null"),
		TokensUsed: 5,
	}}
	svc, _, _ := newService(stub)

	result, err := svc.Extract(context.Background(), ExtractRequest{
		AuditRunID:        "run-1",
		ProceduresContent: "text",
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.Result == nil {
		t.Fatal("expected non-nil result map for null payload")
	}
	if result.Result["rawText"] != "null" {
		t.Fatalf("expected rawText wrapping for null payload, got %v", result.Result)
	}
}
