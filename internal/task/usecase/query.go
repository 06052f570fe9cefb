package usecase

import (
	"context"
	"errors"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	tasks, err := uc.repo.List(ctx, repository.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to list tasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, query string) ([]model.Task, error) {
	tasks, err := uc.repo.List(ctx, repository.ListTasksOptions{UserID: sc.UserID, Query: query})
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to search tasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, taskID string) (model.Task, error) {
	t, err := uc.getOwned(ctx, sc, taskID)
	if err != nil {
		return model.Task{}, err
	}
	if t.Done {
		return model.Task{}, task.ErrAlreadyComplete
	}

	now := uc.clk.Now()
	t.Done = true
	t.CompletedAt = &now

	updated, err := uc.repo.Update(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to complete task %s: %v", taskID, err)
		return model.Task{}, err
	}
	return updated, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, taskID string) error {
	if _, err := uc.getOwned(ctx, sc, taskID); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task usecase: failed to delete task %s: %v", taskID, err)
		return err
	}
	return nil
}

// getOwned fetches a task and verifies it belongs to the scope's user.
// Foreign tasks surface as not found so ownership is never leaked.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, taskID string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		return model.Task{}, err
	}
	if t.UserID != sc.UserID {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
