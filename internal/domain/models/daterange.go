package models

import "time"

// DateRange is a validated request window. A nil bound is absent.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// StartOrYearStart returns From, or January 1 of today's year when From is absent.
func (r DateRange) StartOrYearStart(today time.Time) time.Time {
	if r.From != nil {
		return *r.From
	}
	return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}
