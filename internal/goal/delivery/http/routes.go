package http

import (
	"github.com/gin-gonic/gin"

	"goal-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// needs an authenticated caller and is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	goals := rg.Group("/goals", mw.Auth(), mw.RateLimit())
	{
		goals.POST("/validate", h.Validate)
		goals.POST("", h.Create)
		goals.POST("/stream", h.Stream)
		goals.GET("", h.List)
		goals.GET("/:id", h.Detail)
	}
}
