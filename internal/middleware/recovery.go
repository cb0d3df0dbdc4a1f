package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockmetrics/internal/apperror"
	"github.com/guttosm/stockmetrics/internal/domain/dto"
	"github.com/guttosm/stockmetrics/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that recovers from any panic,
// logs it with its stack trace, and responds with the generic 500 envelope.
// The panic value is never sent to the client.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Get(RequestIDKey)
				logger.L().Error().
					Str("request_id", toString(rid)).
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(apperror.InternalMessage, nil))
			}
		}()

		c.Next()
	}
}
