package marketdata

import (
	"context"

	"github.com/guttosm/stockmetrics/internal/domain/models"
)

// Provider yields the daily bars of one symbol, oldest first.
//
// Failures are *apperror.Error values of kind UpstreamNotFound or
// UpstreamFailure, carrying a client-safe message.
type Provider interface {
	FetchDailyBars(ctx context.Context, symbol string, window models.Window) ([]models.PriceBar, error)
}
