package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"

	"audit-backend/internal/auditruns"
	"audit-backend/internal/documents"
	"audit-backend/internal/extractions"
	"audit-backend/internal/llm"
	openaillm "audit-backend/internal/llm/openai"
	"audit-backend/internal/observations"
	"audit-backend/internal/services/health"
	"audit-backend/internal/shared/config"
	"audit-backend/internal/shared/server"
	"audit-backend/internal/shared/telemetry"
	"audit-backend/internal/usage"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine

	ExtractionsRepo  extractions.Repo
	ObservationsRepo observations.Repo
	AuditRunsRepo    auditruns.Repo

	LLM llm.Client

	UsageService        *usage.Service
	ExtractionsService  *extractions.Service
	ObservationsService *observations.Service
	AuditRunsService    *auditruns.Service
}

// Build wires repositories, the LLM client, services, handlers, and the
// router. All state is in-memory; a fresh Build gives tests isolated state.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	var llmClient llm.Client
	if cfg.LLMConfigured() {
		client, err := openaillm.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		llmClient = client
	} else {
		telemetry.Warn("llm.not_configured", map[string]any{
			"detail": "OPENAI_API_KEY not set; extractions will use the mock payload",
		})
	}

	extractionsRepo := extractions.NewMemoryRepo()
	observationsRepo := observations.NewMemoryRepo()
	auditRunsRepo := auditruns.NewMemoryRepo()

	usageSvc := usage.NewService()
	extractionsSvc := &extractions.Service{
		Repo:  extractionsRepo,
		LLM:   llmClient,
		Usage: usageSvc,
		Model: cfg.LLMModel,
	}
	observationsSvc := &observations.Service{Repo: observationsRepo}
	auditRunsSvc := &auditruns.Service{Repo: auditRunsRepo}

	deps := server.RouterDeps{
		Health:       health.NewService(),
		Extractions:  extractions.NewHandler(extractionsSvc),
		Observations: observations.NewHandler(observationsSvc),
		AuditRuns:    auditruns.NewHandler(auditRunsSvc),
		Documents:    documents.NewHandler(),
		Usage:        usage.NewHandler(usageSvc),
	}

	return &App{
		Config:              cfg,
		Router:              server.NewRouter(cfg, deps),
		ExtractionsRepo:     extractionsRepo,
		ObservationsRepo:    observationsRepo,
		AuditRunsRepo:       auditRunsRepo,
		LLM:                 llmClient,
		UsageService:        usageSvc,
		ExtractionsService:  extractionsSvc,
		ObservationsService: observationsSvc,
		AuditRunsService:    auditRunsSvc,
	}, nil
}
