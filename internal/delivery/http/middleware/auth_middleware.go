package middleware

import (
	"context"
	"net/http"
	"strings"

	"yuva-hire-backend/internal/delivery/http/response"
	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/apperror"
	"yuva-hire-backend/pkg/logger"
	"yuva-hire-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// RequireAuth resolves the bearer token into a user and stores it on the
// request. Any failure aborts with 401.
func RequireAuth(authUC domain.AuthUsecase, secLog *security.SecurityLogger) gin.HandlerFunc {
	if secLog == nil {
		secLog = security.NopLogger()
	}
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			denyUnauthorized(c, secLog)
			return
		}

		user, err := authUC.ResolveToken(c.Request.Context(), token)
		if err != nil {
			if appErr, ok := apperror.As(err); ok && appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("failed to resolve token", "error", appErr.Unwrap(), "request_id", response.RequestID(c))
				response.Abort(c, http.StatusInternalServerError, msgInternalError)
				return
			}
			denyUnauthorized(c, secLog)
			return
		}

		c.Set(string(domain.KeyUser), user)
		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)
		c.Set(string(domain.KeyUserCollege), user.College)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func denyUnauthorized(c *gin.Context, secLog *security.SecurityLogger) {
	secLog.LogAccessDenied(c.Request.Context(), security.EventUnauthorizedAccess, "", c.ClientIP(), response.RequestID(c), c.FullPath())
	response.Abort(c, http.StatusUnauthorized, "Unauthorized")
}

// RequireRole must run after RequireAuth. Other roles get 403.
func RequireRole(secLog *security.SecurityLogger, roles ...string) gin.HandlerFunc {
	if secLog == nil {
		secLog = security.NopLogger()
	}
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			denyUnauthorized(c, secLog)
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		secLog.LogAccessDenied(c.Request.Context(), security.EventForbiddenAccess, user.ID, c.ClientIP(), response.RequestID(c), c.FullPath())
		response.Abort(c, http.StatusForbidden, "Forbidden")
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(string(domain.KeyUser))
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
