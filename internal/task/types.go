package task

import (
	"smart-task-assistant/internal/engine"
	"smart-task-assistant/internal/model"
)

// CreateFromTextInput is the input for creating a task from raw text.
type CreateFromTextInput struct {
	Text string // Natural language task description from the user
}

// DispatchInput is the input for classifying and executing a command.
type DispatchInput struct {
	Text string // Already-transcribed voice text or typed text
}

// DispatchOutput is the result of a dispatched command.
type DispatchOutput struct {
	CommandType engine.CommandType
	Reply       string       // Confirmation phrase to be spoken/sent back
	Task        *model.Task  // The task acted on (add/complete/delete), if any
	Tasks       []model.Task // Result set for search/show commands
}

// ProductivityOutput wraps the engine analysis for delivery layers.
type ProductivityOutput struct {
	Analysis       engine.ProductivityAnalysis
	CompletedTotal int
}
