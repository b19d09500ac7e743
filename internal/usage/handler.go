package usage

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"audit-backend/internal/shared/server/respond"
)

// Handler exposes usage endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches usage routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/usage", h.getUsage)
}

func (h *Handler) getUsage(c *gin.Context) {
	auditRunID := strings.TrimSpace(c.Query("auditRunId"))
	if auditRunID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "auditRunId is required")
		return
	}
	c.Set("auditRunId", auditRunID)

	u, err := h.Svc.Get(c.Request.Context(), auditRunID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch usage")
		return
	}

	respond.OK(c, u)
}
