package middleware

import (
	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/model"
)

const (
	// ScopeKey is the gin context key holding the request's model.Scope.
	ScopeKey = "scope"

	userIDHeader   = "X-User-ID"
	usernameHeader = "X-Username"
	defaultUserID  = "default"
)

// UserScope resolves the acting user from request headers. There is no
// authentication layer; the header is trusted as-is and absent headers
// fall back to a single shared user.
func (m Middleware) UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			userID = defaultUserID
		}
		c.Set(ScopeKey, model.Scope{
			UserID:   userID,
			Username: c.GetHeader(usernameHeader),
		})
		c.Next()
	}
}

// ScopeFromContext extracts the model.Scope set by UserScope. It returns
// the shared default scope when the middleware did not run.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(ScopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: defaultUserID}
}
