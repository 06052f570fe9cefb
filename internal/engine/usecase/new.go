package usecase

import (
	pkgLog "smart-task-assistant/pkg/log"
)

// implUseCase implements engine.UseCase. It is stateless: the taxonomy
// tables are package-level values and every operation takes its inputs
// explicitly, so one instance is safe for concurrent use.
type implUseCase struct {
	l pkgLog.Logger
}

// New creates a new engine UseCase instance.
func New(l pkgLog.Logger) *implUseCase {
	return &implUseCase{l: l}
}
