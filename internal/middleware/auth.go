package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"goal-planner/internal/model"
	"goal-planner/pkg/response"
)

const scopeKey = "scope"

// Auth requires a valid bearer token and stores the caller's scope in the
// gin context. With auth disabled every request acts as the dev user.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.auth.Disabled {
			c.Set(scopeKey, model.Scope{UserID: m.auth.DevUserID})
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(token))
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, model.Scope{UserID: payload.UserID})
		c.Next()
	}
}

// GetScope returns the scope Auth stored for this request.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok && sc.UserID != ""
}
