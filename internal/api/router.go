package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/stockmetrics/internal/metrics"
	"github.com/guttosm/stockmetrics/internal/middleware"
	"github.com/guttosm/stockmetrics/internal/ratelimit"
	"github.com/guttosm/stockmetrics/internal/validation"
)

// RouterDeps carries the collaborators of the middleware chain.
type RouterDeps struct {
	RequestTimeout time.Duration
	Limiter        ratelimit.Limiter
	Validator      *validation.DateRangeValidator
	Recorder       *metrics.Recorder
	Gatherer       prometheus.Gatherer
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, Metrics, ErrorHandler).
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Configures API routes (/api) behind rate limiting, the request timeout
//     and the input validation gate.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, deps RouterDeps) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	global := []gin.HandlerFunc{
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
	}
	if deps.Recorder != nil {
		global = append(global, middleware.Metrics(deps.Recorder))
	}
	global = append(global, middleware.ErrorHandler)
	router.Use(global...)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Metrics ──────────────────────────────────
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// ─── API ──────────────────────────────────────
	validator := deps.Validator
	if validator == nil {
		validator = validation.NewDateRangeValidator(nil)
	}

	apiGroup := router.Group("/api")
	if deps.Limiter != nil {
		apiGroup.Use(middleware.RateLimiter(deps.Limiter))
	}
	apiGroup.Use(
		middleware.Timeout(deps.RequestTimeout),
		middleware.ValidateInput(validator),
	)
	{
		apiGroup.GET("/return", handler.GetReturn)
		apiGroup.GET("/alpha", handler.GetAlpha)
	}

	return router
}
