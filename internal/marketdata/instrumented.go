package marketdata

import (
	"context"
	"time"

	"github.com/guttosm/stockmetrics/internal/apperror"
	"github.com/guttosm/stockmetrics/internal/domain/models"
	"github.com/guttosm/stockmetrics/internal/metrics"
)

// Instrumented records fetch counts and latency around another Provider.
type Instrumented struct {
	next     Provider
	recorder *metrics.Recorder
}

// NewInstrumented wraps next.
func NewInstrumented(next Provider, recorder *metrics.Recorder) *Instrumented {
	return &Instrumented{next: next, recorder: recorder}
}

// FetchDailyBars delegates to the wrapped provider.
func (p *Instrumented) FetchDailyBars(ctx context.Context, symbol string, window models.Window) ([]models.PriceBar, error) {
	start := time.Now()
	bars, err := p.next.FetchDailyBars(ctx, symbol, window)
	p.recorder.ObserveUpstream(string(window), outcome(err), time.Since(start))
	return bars, err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case apperror.IsKind(err, apperror.KindUpstreamNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

var _ Provider = (*Instrumented)(nil)
