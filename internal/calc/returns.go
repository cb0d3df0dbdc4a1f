package calc

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/stockmetrics/internal/domain/models"
)

// MaxWindowBars caps how many bars a return series is computed from.
const MaxWindowBars = 30

// DailyReturn is the fractional change from previousClose to closePrice.
func DailyReturn(closePrice, previousClose float64) float64 {
	return closePrice/previousClose - 1
}

// FormatPercent renders a decimal return as a percentage with exactly three
// decimals, rounding half away from zero.
func FormatPercent(decimalReturn float64) string {
	return decimal.NewFromFloat(decimalReturn * 100).StringFixed(3)
}

// EffectiveStart returns the index of the first bar of the trading-day window
// starting at from: the first bar dated on or after from, stepped back one
// bar so the first in-range day has a previous close. It returns len(bars)
// when every bar is older than from.
func EffectiveStart(bars []models.PriceBar, from time.Time) int {
	for i, b := range bars {
		if !b.Date.Before(from) {
			if i > 0 {
				return i - 1
			}
			return 0
		}
	}
	return len(bars)
}

// SelectWindow picks the bars of the trading-day window [from, to], including
// the one prior bar, truncated to MaxWindowBars. A nil to means no upper bound.
func SelectWindow(bars []models.PriceBar, from time.Time, to *time.Time) []models.PriceBar {
	start := EffectiveStart(bars, from)
	if start >= len(bars) {
		return nil
	}
	startDate := bars[start].Date

	out := make([]models.PriceBar, 0, MaxWindowBars)
	for _, b := range bars[start:] {
		if len(out) == MaxWindowBars {
			break
		}
		if b.Date.Before(startDate) {
			continue
		}
		if to != nil && b.Date.After(*to) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// BuildReturns converts consecutive closes into daily return records, oldest
// first. N bars yield N-1 records, each dated with the later bar. A zero or
// non-finite close makes the series unusable and is reported as an error.
func BuildReturns(bars []models.PriceBar) ([]models.ReturnRecord, error) {
	if len(bars) < 2 {
		return []models.ReturnRecord{}, nil
	}
	out := make([]models.ReturnRecord, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		r := DailyReturn(bars[i].Close, bars[i-1].Close)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("non-finite return on %s (close %v, previous %v)",
				bars[i].Date.Format(models.DateLayout), bars[i].Close, bars[i-1].Close)
		}
		out = append(out, models.ReturnRecord{
			Date:             bars[i].Date,
			DecimalReturn:    r,
			PercentileReturn: FormatPercent(r),
		})
	}
	return out, nil
}

// ReturnSeries runs the full builder: window selection followed by return
// conversion. An empty result means the window held fewer than two bars.
func ReturnSeries(bars []models.PriceBar, from time.Time, to *time.Time) ([]models.ReturnRecord, error) {
	return BuildReturns(SelectWindow(bars, from, to))
}
