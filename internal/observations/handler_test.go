package observations_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"audit-backend/internal/observations"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &observations.Service{Repo: observations.NewMemoryRepo()}
	r := gin.New()
	observations.NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postObservation(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/observations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGetPresetsReturnsCatalog(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/observations/presets", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var presets []string
	if err := json.NewDecoder(resp.Body).Decode(&presets); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(presets) != 10 {
		t.Fatalf("expected 10 presets, got %d", len(presets))
	}
}

func TestRecordPresetObservation(t *testing.T) {
	router := newRouter()
	preset := observations.Presets()[0]

	resp := postObservation(t, router, map[string]any{
		"auditRunId": "run-1",
		"text":       preset,
		"isCustom":   false,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var obs observations.Observation
	if err := json.NewDecoder(resp.Body).Decode(&obs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if obs.ID == "" || obs.Text != preset || obs.IsCustom {
		t.Fatalf("unexpected observation: %+v", obs)
	}
}

func TestRecordRejectsNonPresetWhenNotCustom(t *testing.T) {
	router := newRouter()

	resp := postObservation(t, router, map[string]any{
		"auditRunId": "run-1",
		"text":       "made-up finding",
		"isCustom":   false,
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRecordRequiresAuditRunIDAndText(t *testing.T) {
	router := newRouter()

	resp := postObservation(t, router, map[string]any{"text": "x", "isCustom": true})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("missing auditRunId: expected 400, got %d", resp.Code)
	}

	resp = postObservation(t, router, map[string]any{"auditRunId": "run-1", "text": "   ", "isCustom": true})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("blank text: expected 400, got %d", resp.Code)
	}
}

func TestListObservationsFiltersByAuditRun(t *testing.T) {
	router := newRouter()

	for _, tc := range []struct {
		runID string
		text  string
	}{
		{"run-a", "first custom finding"},
		{"run-a", "second custom finding"},
		{"run-b", "other run finding"},
	} {
		resp := postObservation(t, router, map[string]any{
			"auditRunId": tc.runID,
			"text":       tc.text,
			"isCustom":   true,
		})
		if resp.Code != http.StatusCreated {
			t.Fatalf("post %q: expected 201, got %d", tc.text, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/observations?auditRunId=run-a", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var results []observations.Observation
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 observations for run-a, got %d", len(results))
	}
	for _, obs := range results {
		if obs.AuditRunID != "run-a" {
			t.Fatalf("unexpected auditRunId in filtered list: %q", obs.AuditRunID)
		}
	}
}
