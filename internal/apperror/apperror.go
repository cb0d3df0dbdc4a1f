package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error. The HTTP status of an error is
// derived from its kind unless the error carries an explicit status.
type Kind string

const (
	// Validation failures, detected before any upstream call.
	KindMissingSymbol     Kind = "missing_symbol"
	KindMissingBenchmark  Kind = "missing_benchmark"
	KindInvalidDateFormat Kind = "invalid_date_format"
	KindFutureDate        Kind = "future_date"
	KindInvalidRange      Kind = "invalid_range"
	KindRangeTooLong      Kind = "range_too_long"

	// Data failures, detected after fetch/compute.
	KindNoDataInRange        Kind = "no_data_in_range"
	KindSeriesLengthMismatch Kind = "series_length_mismatch"

	// Upstream failures.
	KindUpstreamNotFound Kind = "upstream_not_found"
	KindUpstreamFailure  Kind = "upstream_failure"

	KindInternal Kind = "internal"
)

// InternalMessage is the only text a client ever sees for an unexpected fault.
const InternalMessage = "Internal server error"

// Error is an application-level error with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status the error maps to.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	return StatusFor(e.Kind)
}

// IsValidation reports whether the kind belongs to the validation family.
func (k Kind) IsValidation() bool {
	switch k {
	case KindMissingSymbol, KindMissingBenchmark, KindInvalidDateFormat,
		KindFutureDate, KindInvalidRange, KindRangeTooLong:
		return true
	}
	return false
}

// StatusFor maps a kind to its HTTP status.
func StatusFor(k Kind) int {
	switch {
	case k.IsValidation(), k == KindSeriesLengthMismatch:
		return http.StatusBadRequest
	case k == KindNoDataInRange, k == KindUpstreamNotFound:
		return http.StatusNotFound
	case k == KindUpstreamFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithStatus overrides the status derived from the kind.
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

// Internal wraps an unexpected fault. The cause is kept for logging only.
func Internal(err error) *Error {
	return Wrap(KindInternal, InternalMessage, err)
}

// As extracts an *Error from err, converting anything else into an internal error.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
