package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockmetrics/internal/apperror"
	"github.com/guttosm/stockmetrics/internal/domain/dto"
	"github.com/guttosm/stockmetrics/internal/logger"
)

// ErrorHandler renders the last error pushed with c.Error as the JSON error
// envelope. Application errors keep their message and status; anything else
// becomes a generic 500. Responses already written are left untouched.
//
// Handlers report failures like this:
//
//	if err != nil {
//	    _ = c.Error(err)
//	    return
//	}
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	appErr := apperror.As(err)
	status := appErr.HTTPStatus()

	rid, _ := c.Get(RequestIDKey)
	ev := logger.L().Warn()
	if status >= http.StatusInternalServerError {
		ev = logger.L().Error()
	}
	ev.Err(err).
		Str("request_id", toString(rid)).
		Str("kind", string(appErr.Kind)).
		Int("status", status).
		Msg("request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(appErr.Message, nil))
}

// AbortWithError stops the chain and writes the error envelope with the given status.
// err is logged, never serialized.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logger.L().Warn().Err(err).Int("status", status).Msg(message)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
