package inmem

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task/repository"
	"smart-task-assistant/pkg/clock"
	pkgLog "smart-task-assistant/pkg/log"
)

// implRepository is an in-memory reference implementation of the store
// collaborator. It keeps the service runnable standalone; a real deployment
// swaps it for an external store behind the same interface.
type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	clk   clock.Clock
	l     pkgLog.Logger
}

// New creates a new in-memory task repository.
func New(clk clock.Clock, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		tasks: make(map[string]model.Task),
		clk:   clk,
		l:     l,
	}
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:                uuid.NewString(),
		UserID:            opt.UserID,
		Title:             opt.Title,
		Description:       opt.Description,
		Priority:          opt.Priority,
		Category:          opt.Category,
		DueDate:           opt.DueDate,
		EstimatedDuration: opt.EstimatedDuration,
		CreatedAt:         r.clk.Now(),
	}

	r.mu.Lock()
	r.tasks[t.ID] = t
	r.mu.Unlock()

	r.l.Debugf(ctx, "inmem store: created task %s for user %s", t.ID, t.UserID)
	return t, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	t, ok := r.tasks[id]
	r.mu.RUnlock()

	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	query := strings.ToLower(opt.Query)

	r.mu.RLock()
	result := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if opt.Done != nil && t.Done != *opt.Done {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		result = append(result, t)
	}
	r.mu.RUnlock()

	// Stable order: pending before completed, then newest first, ID as
	// tiebreaker for equal timestamps.
	sort.Slice(result, func(i, j int) bool {
		if result[i].Done != result[j].Done {
			return !result[i].Done
		}
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	if opt.Limit > 0 && len(result) > opt.Limit {
		result = result[:opt.Limit]
	}
	return result, nil
}

func (r *implRepository) Update(ctx context.Context, task model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return model.Task{}, repository.ErrNotFound
	}
	r.tasks[task.ID] = task
	return task, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}
