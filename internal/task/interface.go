package task

import (
	"context"

	"smart-task-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// It glues the intelligence engine to the persistence store: the engine
// produces analyses and commands, this layer applies them to tasks.
type UseCase interface {
	// CreateFromText analyzes raw text and persists the resulting task.
	CreateFromText(ctx context.Context, sc model.Scope, input CreateFromTextInput) (model.Task, error)

	// Dispatch classifies raw text into a command and executes it.
	Dispatch(ctx context.Context, sc model.Scope, input DispatchInput) (DispatchOutput, error)

	// List returns the user's tasks, pending first.
	List(ctx context.Context, sc model.Scope) ([]model.Task, error)

	// Search returns the user's tasks whose title contains the query.
	Search(ctx context.Context, sc model.Scope, query string) ([]model.Task, error)

	// Complete marks a task done by ID.
	Complete(ctx context.Context, sc model.Scope, taskID string) (model.Task, error)

	// Delete removes a task by ID.
	Delete(ctx context.Context, sc model.Scope, taskID string) error

	// Suggestions returns candidate task titles for the current moment.
	Suggestions(ctx context.Context, sc model.Scope) []string

	// Productivity scores the user's completion history.
	Productivity(ctx context.Context, sc model.Scope) (ProductivityOutput, error)
}
