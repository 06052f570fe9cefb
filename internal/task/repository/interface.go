package repository

import (
	"context"

	"smart-task-assistant/internal/model"
)

// TaskRepository is the contract with the persistence collaborator.
// The engine itself never persists anything; this is the external store the
// task use case writes analyzed tasks into.
type TaskRepository interface {
	Create(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	Get(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	Update(ctx context.Context, task model.Task) (model.Task, error)
	Delete(ctx context.Context, id string) error
}
