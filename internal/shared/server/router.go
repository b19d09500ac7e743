package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"audit-backend/internal/auditruns"
	"audit-backend/internal/documents"
	"audit-backend/internal/extractions"
	"audit-backend/internal/observations"
	"audit-backend/internal/services/health"
	"audit-backend/internal/shared/config"
	"audit-backend/internal/shared/metrics"
	"audit-backend/internal/shared/server/middleware"
	"audit-backend/internal/shared/server/respond"
	"audit-backend/internal/usage"
)

// RouterDeps are the handlers the router mounts. They are built by
// bootstrap so tests can assemble a router around in-memory state.
type RouterDeps struct {
	Health       *health.Service
	Extractions  *extractions.Handler
	Observations *observations.Handler
	AuditRuns    *auditruns.Handler
	Documents    *documents.Handler
	Usage        *usage.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	deps.Extractions.RegisterRoutes(api)
	deps.Observations.RegisterRoutes(api)
	deps.AuditRuns.RegisterRoutes(api)
	deps.Documents.RegisterRoutes(api)
	deps.Usage.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
