package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route runs behind the scope and rate-limit middlewares.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.UserScope(), mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.POST("/dispatch", h.Dispatch)
		tasks.PUT("/:id/complete", h.Complete)
		tasks.DELETE("/:id", h.Delete)
	}

	insights := rg.Group("/insights", mw.UserScope(), mw.RateLimit())
	{
		insights.GET("/suggestions", h.Suggestions)
		insights.GET("/productivity", h.Productivity)
	}
}
