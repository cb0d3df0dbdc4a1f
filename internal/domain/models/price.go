package models

import "time"

// DateLayout is the calendar date format used on the wire and in query parameters.
const DateLayout = "2006-01-02"

// PriceBar is one trading day of upstream market data.
//
// Fields:
//   - Date: trading day (UTC midnight).
//   - Close: closing price of the day.
//
// Bars are delivered oldest first.
type PriceBar struct {
	Date  time.Time
	Close float64
}

// Window selects how much history the upstream provider returns.
type Window string

const (
	// WindowYTD returns bars from January 1 of the current year.
	WindowYTD Window = "ytd"
	// WindowMax returns the full available history.
	WindowMax Window = "max"
)

// WindowFor picks the upstream window for a request: full history when a
// start date was given, year-to-date otherwise.
func WindowFor(hasFrom bool) Window {
	if hasFrom {
		return WindowMax
	}
	return WindowYTD
}
