package calc

import (
	"fmt"

	"github.com/guttosm/stockmetrics/internal/domain/models"
)

// Alpha subtracts the benchmark return from the stock return index by index.
// Each record takes its date from the stock series. The two series are
// aligned by position only; their dates are not compared.
//
// Callers check lengths first; a mismatch here is a programming error.
func Alpha(stock, benchmark []models.ReturnRecord) ([]models.AlphaRecord, error) {
	if len(stock) != len(benchmark) {
		return nil, fmt.Errorf("alpha: series length mismatch (%d stock, %d benchmark)", len(stock), len(benchmark))
	}
	out := make([]models.AlphaRecord, len(stock))
	for i := range stock {
		out[i] = models.AlphaRecord{
			Date:   stock[i].Date,
			Result: stock[i].DecimalReturn - benchmark[i].DecimalReturn,
		}
	}
	return out, nil
}
