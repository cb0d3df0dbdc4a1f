package models

import "time"

// ReturnRecord is the daily return between two consecutive bars.
//
// Fields:
//   - Date: date of the later bar.
//   - DecimalReturn: close[i]/close[i-1] - 1, full precision.
//   - PercentileReturn: DecimalReturn*100 as text with exactly 3 decimals.
type ReturnRecord struct {
	Date             time.Time
	DecimalReturn    float64
	PercentileReturn string
}

// AlphaRecord is the excess return of a stock over its benchmark on one date.
type AlphaRecord struct {
	Date   time.Time
	Result float64
}

// ReturnQuery holds the raw query parameters of a return request.
type ReturnQuery struct {
	Symbol string
	From   string
	To     string
}

// AlphaQuery holds the raw query parameters of an alpha request.
type AlphaQuery struct {
	Symbol    string
	Benchmark string
	From      string
	To        string
}

// ReturnQuery projects the alpha request onto the return request of one symbol.
func (q AlphaQuery) ReturnQuery(symbol string) ReturnQuery {
	return ReturnQuery{Symbol: symbol, From: q.From, To: q.To}
}
