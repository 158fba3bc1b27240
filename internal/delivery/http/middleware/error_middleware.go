package middleware

import (
	"net/http"

	"yuva-hire-backend/internal/delivery/http/response"
	"yuva-hire-backend/pkg/apperror"
	"yuva-hire-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const msgInternalError = "An unexpected error occurred. Please try again later."

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperror.As(err); ok {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"request_id", response.RequestID(c),
					"path", c.FullPath(),
					"error", appErr.Unwrap(),
				)
				response.Error(c, appErr.Code, msgInternalError)
				return
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("unhandled error",
			"request_id", response.RequestID(c),
			"path", c.FullPath(),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, msgInternalError)
	}
}
