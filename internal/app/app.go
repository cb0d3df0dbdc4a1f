package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/guttosm/stockmetrics/config"
	"github.com/guttosm/stockmetrics/internal/api"
	"github.com/guttosm/stockmetrics/internal/logger"
	"github.com/guttosm/stockmetrics/internal/marketdata"
	"github.com/guttosm/stockmetrics/internal/metrics"
	"github.com/guttosm/stockmetrics/internal/service"
	"github.com/guttosm/stockmetrics/internal/validation"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the rate-limit backend (memory or Redis).
//   - Creates a Prometheus registry owned by this app instance.
//   - Builds the IEX market-data client, instrumented with upstream metrics.
//   - Creates the metrics service and the HTTP handler layer.
//   - Configures the Gin router and registers health and readiness probes.
//   - Provides a cleanup function to close resources.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	log := logger.Component("app")

	// indirection for unit testing
	limiter, err := limiterOpener(cfg.RateLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}
	if cfg.RateLimit.RedisAddr != "" {
		log.Info().Str("addr", cfg.RateLimit.RedisAddr).Msg("rate limiting backed by redis")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.New(registry)

	iex := marketdata.NewIEX(marketdata.IEXOptions{
		BaseURL: cfg.MarketData.BaseURL,
		Token:   cfg.MarketData.Token,
		Timeout: cfg.MarketData.Timeout,
	}, *logger.L())
	provider := marketdata.NewInstrumented(iex, recorder)

	svc := service.NewMetricsService(provider, nil)
	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, api.RouterDeps{
		RequestTimeout: cfg.Server.RequestTimeout,
		Limiter:        limiter,
		Validator:      validation.NewDateRangeValidator(nil),
		Recorder:       recorder,
		Gatherer:       registry,
	})

	healthHandler := api.NewHealthHandler(limiter.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		if err := limiter.Close(); err != nil {
			log.Warn().Err(err).Msg("closing rate limiter")
		}
	}

	return router, cleanup, nil
}
