package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoMatchingTask  = errors.New("no task matches the command text")
	ErrAlreadyComplete = errors.New("task is already completed")
)
