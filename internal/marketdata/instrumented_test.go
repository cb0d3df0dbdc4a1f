package marketdata

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/guttosm/stockmetrics/internal/apperror"
	"github.com/guttosm/stockmetrics/internal/domain/models"
	"github.com/guttosm/stockmetrics/internal/metrics"
)

type stubProvider struct {
	bars []models.PriceBar
	err  error
}

func (s stubProvider) FetchDailyBars(context.Context, string, models.Window) ([]models.PriceBar, error) {
	return s.bars, s.err
}

func fetchCount(t *testing.T, reg *prometheus.Registry, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "stockmetrics_upstream_fetch_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "outcome" && lp.GetValue() == outcome {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestInstrumentedOutcomes(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		outcome string
	}{
		{"ok", nil, metrics.OutcomeOK},
		{"not found", apperror.New(apperror.KindUpstreamNotFound, "Request failed: Unknown symbol"), metrics.OutcomeNotFound},
		{"failure", apperror.New(apperror.KindUpstreamFailure, "Request failed: Bad Gateway"), metrics.OutcomeError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			p := NewInstrumented(stubProvider{err: tc.err}, metrics.New(reg))

			_, err := p.FetchDailyBars(context.Background(), "AAPL", models.WindowYTD)
			if err != tc.err {
				t.Fatalf("error must pass through unchanged, got %v", err)
			}
			if v := fetchCount(t, reg, tc.outcome); v != 1 {
				t.Fatalf("outcome %s count=%v, want 1", tc.outcome, v)
			}
		})
	}
}
