package extractions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"audit-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the extractions service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extractions", h.create)
	rg.GET("/extractions", h.get)
}

type createRequest struct {
	AuditRunID        string `json:"auditRunId"`
	ProceduresContent string `json:"proceduresContent"`
	SourceFileName    string `json:"sourceFileName"`
	UseMock           bool   `json:"useMock"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}
	if strings.TrimSpace(req.AuditRunID) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "auditRunId is required")
		return
	}
	c.Set("auditRunId", req.AuditRunID)

	result, err := h.Svc.Extract(c.Request.Context(), ExtractRequest{
		AuditRunID:        req.AuditRunID,
		ProceduresContent: req.ProceduresContent,
		SourceFileName:    req.SourceFileName,
		UseMock:           req.UseMock,
	})
	if err != nil {
		var llmErr *LLMError
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
		case errors.As(err, &llmErr):
			message := strings.TrimSpace(llmErr.Message)
			if message == "" {
				message = "Failed to extract procedures"
			}
			respond.Error(c, http.StatusInternalServerError, "llm_error", message)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to extract procedures")
		}
		return
	}
	c.Set("extractionId", result.ID)

	respond.OK(c, gin.H{
		"id":         result.ID,
		"result":     result.Result,
		"tokensUsed": result.TokensUsed,
	})
}

func (h *Handler) get(c *gin.Context) {
	if id := strings.TrimSpace(c.Query("id")); id != "" {
		result, err := h.Svc.Get(c.Request.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				respond.Error(c, http.StatusNotFound, "not_found", "extraction not found")
			default:
				respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch extraction")
			}
			return
		}
		c.Set("extractionId", result.ID)
		respond.OK(c, result)
		return
	}

	var (
		results []ExtractionResult
		err     error
	)
	if auditRunID := strings.TrimSpace(c.Query("auditRunId")); auditRunID != "" {
		c.Set("auditRunId", auditRunID)
		results, err = h.Svc.ListByAuditRun(c.Request.Context(), auditRunID)
	} else {
		results, err = h.Svc.ListAll(c.Request.Context())
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list extractions")
		return
	}

	respond.OK(c, results)
}
