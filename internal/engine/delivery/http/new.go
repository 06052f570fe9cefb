package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/engine"
	"smart-task-assistant/pkg/clock"
	"smart-task-assistant/pkg/log"
)

// Handler exposes the intelligence engine directly, without touching the
// store. Useful for clients that run their own task persistence.
type Handler interface {
	Analyze(c *gin.Context)
	Classify(c *gin.Context)
	Suggestions(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  engine.UseCase
	clk clock.Clock
}

// New creates a new HTTP handler for the engine domain.
func New(l log.Logger, uc engine.UseCase, clk clock.Clock) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		clk: clk,
	}
}
