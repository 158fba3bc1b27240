package response

import (
	"yuva-hire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// SuccessBody is returned by endpoints that have nothing else to report.
type SuccessBody struct {
	Success bool `json:"success"`
}

// RequestID returns the id assigned by the RequestID middleware.
func RequestID(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}

// JSON sends obj as the response body.
func JSON(c *gin.Context, code int, obj any) {
	c.JSON(code, obj)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{
		Error:     message,
		RequestID: RequestID(c),
	})
}

// Abort sends an error response and stops the handler chain.
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorBody{
		Error:     message,
		RequestID: RequestID(c),
	})
}
