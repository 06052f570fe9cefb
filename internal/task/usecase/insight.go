package usecase

import (
	"context"
	"time"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
)

func (uc *implUseCase) Suggestions(ctx context.Context, sc model.Scope) []string {
	return uc.engine.SuggestTitles(ctx, uc.clk.Now())
}

// Productivity scores the user's completion history against the current
// moment. The snapshot is every completed task's CompletedAt timestamp.
func (uc *implUseCase) Productivity(ctx context.Context, sc model.Scope) (task.ProductivityOutput, error) {
	done := true
	completed, err := uc.repo.List(ctx, repository.ListTasksOptions{UserID: sc.UserID, Done: &done})
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to load completed tasks: %v", err)
		return task.ProductivityOutput{}, err
	}

	timestamps := make([]time.Time, 0, len(completed))
	for _, t := range completed {
		if t.CompletedAt != nil {
			timestamps = append(timestamps, *t.CompletedAt)
		}
	}

	return task.ProductivityOutput{
		Analysis:       uc.engine.AnalyzeProductivity(ctx, timestamps, uc.clk.Now()),
		CompletedTotal: len(timestamps),
	}, nil
}
