package auditruns

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"audit-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the audit runs service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches audit run routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/audit-runs", h.create)
	rg.GET("/audit-runs", h.list)
	rg.GET("/audit-runs/:id", h.get)
}

type createRequest struct {
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	run, err := h.Svc.Create(c.Request.Context(), req.Name, req.ClientName)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create audit run")
		}
		return
	}
	c.Set("auditRunId", run.ID)

	respond.Created(c, run)
}

func (h *Handler) list(c *gin.Context) {
	runs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list audit runs")
		return
	}
	respond.OK(c, runs)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	run, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "audit run not found")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch audit run")
		}
		return
	}
	c.Set("auditRunId", run.ID)
	respond.OK(c, run)
}
