package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Dispatch(c *gin.Context)
	Complete(c *gin.Context)
	Delete(c *gin.Context)
	Suggestions(c *gin.Context)
	Productivity(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
