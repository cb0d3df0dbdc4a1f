package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockmetrics/internal/validation"
)

// ValidateInput rejects requests whose symbol, from or to query parameters
// fail the date-range rules before they reach a handler. Mount it on the API
// group only; docs and probes take no such parameters.
func ValidateInput(v *validation.DateRangeValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := v.Validate(c.Query("symbol"), c.Query("from"), c.Query("to")); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}
