package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/response"
)

// respondError maps domain errors onto the JSON envelope. Not-found class
// errors become 404, validation class errors 400, everything else 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, task.ErrNoMatchingTask):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyInput), errors.Is(err, task.ErrAlreadyComplete):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
