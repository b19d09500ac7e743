package observations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"audit-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the observations service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches observation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/observations", h.record)
	rg.GET("/observations", h.list)
	rg.GET("/observations/presets", h.presets)
}

type recordRequest struct {
	AuditRunID string `json:"auditRunId"`
	Text       string `json:"text"`
	IsCustom   bool   `json:"isCustom"`
}

func (h *Handler) record(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}
	c.Set("auditRunId", req.AuditRunID)

	obs, err := h.Svc.Record(c.Request.Context(), RecordRequest{
		AuditRunID: req.AuditRunID,
		Text:       req.Text,
		IsCustom:   req.IsCustom,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record observation")
		}
		return
	}

	respond.Created(c, obs)
}

func (h *Handler) list(c *gin.Context) {
	var (
		results []Observation
		err     error
	)
	if auditRunID := strings.TrimSpace(c.Query("auditRunId")); auditRunID != "" {
		c.Set("auditRunId", auditRunID)
		results, err = h.Svc.ListByAuditRun(c.Request.Context(), auditRunID)
	} else {
		results, err = h.Svc.ListAll(c.Request.Context())
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list observations")
		return
	}

	respond.OK(c, results)
}

func (h *Handler) presets(c *gin.Context) {
	respond.OK(c, Presets())
}
