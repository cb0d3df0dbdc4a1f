package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockmetrics/internal/apperror"
	"github.com/guttosm/stockmetrics/internal/calc"
	"github.com/guttosm/stockmetrics/internal/domain/models"
	"github.com/guttosm/stockmetrics/internal/marketdata"
	"github.com/guttosm/stockmetrics/internal/validation"
)

const (
	msgNoData         = "No stock data available for the specified date range"
	msgSeriesMismatch = "Data mismatch: The stock and benchmark data don't match up. Please check if both have data for the same time period."
)

// MetricsService computes return and alpha series for the HTTP layer.
type MetricsService interface {
	ComputeReturn(ctx context.Context, q models.ReturnQuery) ([]models.ReturnRecord, error)
	ComputeAlpha(ctx context.Context, q models.AlphaQuery) ([]models.AlphaRecord, error)
}

type metricsService struct {
	provider  marketdata.Provider
	validator *validation.DateRangeValidator
	now       func() time.Time
}

// NewMetricsService wires the service. A nil clock defaults to time.Now.
func NewMetricsService(provider marketdata.Provider, now func() time.Time) MetricsService {
	if now == nil {
		now = time.Now
	}
	return &metricsService{
		provider:  provider,
		validator: validation.NewDateRangeValidator(now),
		now:       now,
	}
}

// ComputeReturn validates the query, fetches the bars of the symbol and
// converts the requested window into daily returns.
//
// The upstream window is full history when from is given and year-to-date
// otherwise. An empty series is reported as NoDataInRange.
func (s *metricsService) ComputeReturn(ctx context.Context, q models.ReturnQuery) ([]models.ReturnRecord, error) {
	symbol := NormalizeSymbol(q.Symbol)

	rng, err := s.validator.Validate(symbol, q.From, q.To)
	if err != nil {
		return nil, err
	}

	bars, err := s.provider.FetchDailyBars(ctx, symbol, models.WindowFor(rng.From != nil))
	if err != nil {
		return nil, apperror.As(err)
	}

	from := rng.StartOrYearStart(validation.Today(s.now()))
	returns, err := calc.ReturnSeries(bars, from, rng.To)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(returns) == 0 {
		return nil, apperror.New(apperror.KindNoDataInRange, msgNoData)
	}
	return returns, nil
}

// ComputeAlpha fetches the symbol and benchmark series concurrently and
// subtracts them position by position.
//
// When both fetches fail the symbol's failure is reported.
func (s *metricsService) ComputeAlpha(ctx context.Context, q models.AlphaQuery) ([]models.AlphaRecord, error) {
	benchmark := NormalizeSymbol(q.Benchmark)
	if err := validation.ValidateBenchmark(benchmark); err != nil {
		return nil, err
	}
	symbol := NormalizeSymbol(q.Symbol)
	if _, err := s.validator.Validate(symbol, q.From, q.To); err != nil {
		return nil, err
	}

	var (
		g                  errgroup.Group
		stock, bench       []models.ReturnRecord
		stockErr, benchErr error
	)
	g.Go(func() error {
		stock, stockErr = s.ComputeReturn(ctx, q.ReturnQuery(symbol))
		return stockErr
	})
	g.Go(func() error {
		bench, benchErr = s.ComputeReturn(ctx, q.ReturnQuery(benchmark))
		return benchErr
	})
	if err := g.Wait(); err != nil {
		if stockErr != nil {
			return nil, stockErr
		}
		return nil, benchErr
	}

	if len(stock) != len(bench) {
		return nil, apperror.New(apperror.KindSeriesLengthMismatch, msgSeriesMismatch)
	}

	alpha, err := calc.Alpha(stock, bench)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return alpha, nil
}

// NormalizeSymbol trims and upper-cases a ticker.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
