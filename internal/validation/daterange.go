package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/guttosm/stockmetrics/internal/apperror"
	"github.com/guttosm/stockmetrics/internal/domain/models"
)

// MaxRangeDays is the widest span allowed between from and to.
const MaxRangeDays = 30

var validate = validator.New()

// DateRangeValidator checks the symbol/from/to query parameters shared by
// every metrics endpoint. It is pure apart from reading the clock.
type DateRangeValidator struct {
	now func() time.Time
}

// NewDateRangeValidator builds a validator. A nil clock defaults to time.Now.
func NewDateRangeValidator(now func() time.Time) *DateRangeValidator {
	if now == nil {
		now = time.Now
	}
	return &DateRangeValidator{now: now}
}

// Validate runs the rules in order and returns the first failure:
//
//  1. symbol present
//  2. from: YYYY-MM-DD, not in the future
//  3. to: YYYY-MM-DD, not in the future
//  4. from <= to, and to - from <= MaxRangeDays days
//
// On success the parsed bounds are returned; absent bounds stay nil.
func (v *DateRangeValidator) Validate(symbol, from, to string) (models.DateRange, error) {
	var out models.DateRange

	if strings.TrimSpace(symbol) == "" {
		return out, apperror.New(apperror.KindMissingSymbol, "Stock Ticker Symbol is required.")
	}

	today := Today(v.now())

	if from != "" {
		d, err := checkDate(from, "from", today)
		if err != nil {
			return out, err
		}
		out.From = &d
	}

	if to != "" {
		d, err := checkDate(to, "to", today)
		if err != nil {
			return out, err
		}
		out.To = &d
	}

	if out.From != nil && out.To != nil {
		if out.From.After(*out.To) {
			return out, apperror.New(apperror.KindInvalidRange, "Invalid date range: from date must be before to date.")
		}
		if out.To.Sub(*out.From) > MaxRangeDays*24*time.Hour {
			return out, apperror.New(apperror.KindRangeTooLong, "Date range exceeds 30 days.")
		}
	}

	return out, nil
}

func checkDate(s, name string, today time.Time) (time.Time, error) {
	d, ok := ParseDate(s)
	if !ok {
		return time.Time{}, apperror.New(apperror.KindInvalidDateFormat,
			"Invalid date format on "+name+" date! use (YYYY-MM-DD).")
	}
	if d.After(today) {
		return time.Time{}, apperror.New(apperror.KindFutureDate,
			"Dates cannot be in the future. "+name+" Date is in the future!")
	}
	return d, nil
}

// ValidateBenchmark fails with MissingBenchmark when the benchmark symbol is absent.
func ValidateBenchmark(benchmark string) error {
	if strings.TrimSpace(benchmark) == "" {
		return apperror.New(apperror.KindMissingBenchmark, "Benchmark symbol is required")
	}
	return nil
}

// IsDateFormatValid reports whether s is a real calendar date in strict YYYY-MM-DD form.
func IsDateFormatValid(s string) bool {
	return validate.Var(s, "required,datetime="+models.DateLayout) == nil
}

// ParseDate parses a strict YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, bool) {
	if !IsDateFormatValid(s) {
		return time.Time{}, false
	}
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Today returns the calendar date of now, in now's location, as UTC midnight
// so it compares directly against parsed dates.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
