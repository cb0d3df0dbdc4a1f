package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream fetch outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Recorder records HTTP and upstream metrics on a single registry.
type Recorder struct {
	upstreamFetches *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

// New registers the collectors on reg. Each app instance owns its registry,
// so building several apps in one process does not collide.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		upstreamFetches: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockmetrics_upstream_fetch_total",
				Help: "Total number of upstream market-data fetches",
			},
			[]string{"window", "outcome"},
		),
		upstreamLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockmetrics_upstream_fetch_duration_seconds",
				Help:    "Duration of upstream market-data fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"window"},
		),
		httpRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockmetrics_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		httpLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockmetrics_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"route", "method", "class"},
		),
	}
}

// ObserveUpstream records one upstream fetch.
func (r *Recorder) ObserveUpstream(window, outcome string, elapsed time.Duration) {
	r.upstreamFetches.WithLabelValues(window, outcome).Inc()
	r.upstreamLatency.WithLabelValues(window).Observe(elapsed.Seconds())
}

// ObserveHTTP records one served request. route should be the templated
// path to keep label cardinality low.
func (r *Recorder) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(route, method, StatusClass(status)).Observe(elapsed.Seconds())
}

// StatusClass buckets a status code as 1xx..5xx.
func StatusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
