package usecase

import (
	"smart-task-assistant/internal/engine"
	"smart-task-assistant/internal/task/repository"
	"smart-task-assistant/pkg/clock"
	"smart-task-assistant/pkg/gcalendar"
	pkgLog "smart-task-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	engine     engine.UseCase
	repo       repository.TaskRepository
	calendar   *gcalendar.Client // optional, nil when not configured
	clk        clock.Clock
	calendarID string
	timezone   string
}

// New creates a new task UseCase instance. calendar may be nil; scheduling
// is then skipped.
func New(
	l pkgLog.Logger,
	eng engine.UseCase,
	repo repository.TaskRepository,
	calendar *gcalendar.Client,
	clk clock.Clock,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		engine:     eng,
		repo:       repo,
		calendar:   calendar,
		clk:        clk,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
