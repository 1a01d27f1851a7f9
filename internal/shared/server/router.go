package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"treasurebook-backend/internal/insights"
	"treasurebook-backend/internal/records"
	"treasurebook-backend/internal/services/health"
	"treasurebook-backend/internal/shared/config"
	"treasurebook-backend/internal/shared/metrics"
	"treasurebook-backend/internal/shared/server/middleware"
	"treasurebook-backend/internal/shared/server/respond"
)

const (
	rateGroupInsights = "INSIGHTS"
	rateGroupDefault  = "DEFAULT"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	InsightsHandler *insights.Handler
	RecordsHandler  *records.Handler
	Health          *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateGroupFor,
			Rules: map[string]middleware.RateLimitRule{
				rateGroupInsights: {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status := deps.Health.Check(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	if deps.InsightsHandler != nil {
		deps.InsightsHandler.RegisterRoutes(api)
	}
	// Record ingest is a dev and test convenience; production records come from the host app.
	if deps.RecordsHandler != nil && deps.Config.Env != "production" {
		deps.RecordsHandler.RegisterRoutes(api)
	}

	return r
}

func rateGroupFor(c *gin.Context) string {
	if c.FullPath() == "/api/v1/students/:id/insights" {
		return rateGroupInsights
	}
	return rateGroupDefault
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
