package dto

import "time"

// ErrorResponse is the single-message envelope returned for every failed request.
//
// Example:
//
//	{
//	  "error": "Date range exceeds 30 days.",
//	  "timestamp": "2024-03-01T12:00:00Z"
//	}
//
// ErrorDetails carries the underlying cause for logging and is never serialized.
type ErrorResponse struct {
	Message      string    `json:"error" example:"Stock Ticker Symbol is required."`
	ErrorDetails string    `json:"-"`
	Timestamp    time.Time `json:"timestamp" example:"2024-03-01T12:00:00Z"`
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an envelope stamped with the current UTC time.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
