package middleware

import (
	"log/slog"
	"time"

	"yuva-hire-backend/internal/delivery/http/response"
	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AccessLogger writes one structured line per request.
func AccessLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", response.RequestID(c),
		}
		if userID := c.GetString(string(domain.KeyUserID)); userID != "" {
			attrs = append(attrs, "user_id", userID)
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		logger.Log.Log(c.Request.Context(), level, "http request", attrs...)
	}
}
