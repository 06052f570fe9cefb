package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	eng := rg.Group("/engine", mw.RateLimit())
	{
		eng.POST("/analyze", h.Analyze)
		eng.POST("/classify", h.Classify)
		eng.GET("/suggestions", h.Suggestions)
	}
}
