package usecase

import (
	"context"
	"strings"
	"time"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
	"smart-task-assistant/pkg/gcalendar"
)

// CreateFromText analyzes raw text and persists the resulting task.
// The analysis itself is never stored; only the merged task is.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input task.CreateFromTextInput) (model.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Task{}, task.ErrEmptyInput
	}

	now := uc.clk.Now()
	analysis := uc.engine.Analyze(ctx, text, now)

	created, err := uc.repo.Create(ctx, repository.CreateTaskOptions{
		UserID:            sc.UserID,
		Title:             text,
		Priority:          analysis.Priority,
		Category:          analysis.Category,
		DueDate:           analysis.DueDate,
		EstimatedDuration: analysis.EstimatedDuration,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to persist task: %v", err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task usecase: created task %s (priority=%s category=%s)",
		created.ID, created.Priority, created.Category)

	// Best-effort calendar scheduling for tasks with a resolved due date.
	if analysis.DueDate != nil && uc.calendar != nil {
		if link := uc.scheduleEvent(ctx, created, *analysis.DueDate, analysis.EstimatedDuration); link != "" {
			created.CalendarLink = link
			if updated, upErr := uc.repo.Update(ctx, created); upErr == nil {
				created = updated
			}
		}
	}

	return created, nil
}

// scheduleEvent creates a calendar event for the task's due date. Failures
// are logged and swallowed: scheduling never blocks task creation. The slot
// is checked for existing events first; a busy slot skips scheduling so the
// calendar is never double-booked.
func (uc *implUseCase) scheduleEvent(ctx context.Context, t model.Task, due time.Time, durationMinutes int) string {
	end := due.Add(time.Duration(durationMinutes) * time.Minute)

	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    due,
		TimeMax:    end,
		MaxResults: 10,
	})
	if err != nil {
		// Availability lookup is advisory; schedule anyway.
		uc.l.Warnf(ctx, "task usecase: availability check for task %s failed: %v", t.ID, err)
	} else if len(existing) > 0 {
		uc.l.Infof(ctx, "task usecase: slot %s already has %d event(s), skipping calendar event for task %s",
			due.Format(time.RFC3339), len(existing), t.ID)
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   due,
		EndTime:     end,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task usecase: calendar event for task %s failed: %v", t.ID, err)
		return ""
	}
	return event.HtmlLink
}
