package handler

import (
	"net/http"

	"trust-engine/internal/adapter/http/middleware"
	"trust-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	FraudSvc       ports.FraudCheckService
	ReportingSvc   ports.ReportingService
	TokenSvc       ports.TokenService
	Counters       ports.VelocityCounter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	MetricsHandler http.Handler // nil = metrics endpoint disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if a counter store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.Counters == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.Counters, group, rule, deps.Logger)
	}

	// API v1 routes (all JWT-authenticated service-to-service calls)
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	fraudHandler := NewFraudHandler(deps.FraudSvc)
	auditHandler := NewAuditHandler(deps.ReportingSvc)

	v1 := r.Group("/api/v1", jwtAuth)

	fraud := v1.Group("/fraud")
	{
		fraud.POST("/check", rl("fraud_check"), fraudHandler.Check)
	}

	audits := v1.Group("/audits")
	{
		audits.GET("/recent", rl("reporting"), auditHandler.ListRecent)
	}

	return r
}
