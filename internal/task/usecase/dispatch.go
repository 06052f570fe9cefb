package usecase

import (
	"context"
	"strings"

	"smart-task-assistant/internal/engine"
	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
)

// Dispatch classifies raw text into a command and executes it against the
// store. The reply is always the fixed confirmation phrase for the detected
// intent, independent of the execution outcome.
func (uc *implUseCase) Dispatch(ctx context.Context, sc model.Scope, input task.DispatchInput) (task.DispatchOutput, error) {
	cmd := uc.engine.Classify(ctx, input.Text)
	out := task.DispatchOutput{
		CommandType: cmd.Type(),
		Reply:       engine.ConfirmationPhrase(cmd.Type()),
	}

	switch c := cmd.(type) {
	case engine.AddTaskCommand:
		created, err := uc.CreateFromText(ctx, sc, task.CreateFromTextInput{Text: c.Text})
		if err != nil {
			return task.DispatchOutput{}, err
		}
		out.Task = &created

	case engine.SearchCommand:
		tasks, err := uc.Search(ctx, sc, c.Query)
		if err != nil {
			return task.DispatchOutput{}, err
		}
		out.Tasks = tasks

	case engine.ShowTasksCommand:
		tasks, err := uc.List(ctx, sc)
		if err != nil {
			return task.DispatchOutput{}, err
		}
		out.Tasks = tasks

	case engine.CompleteTaskCommand:
		matched, err := uc.matchTask(ctx, sc, c.Text)
		if err != nil {
			return task.DispatchOutput{}, err
		}
		completed, err := uc.Complete(ctx, sc, matched.ID)
		if err != nil {
			return task.DispatchOutput{}, err
		}
		out.Task = &completed

	case engine.DeleteTaskCommand:
		matched, err := uc.matchTask(ctx, sc, c.Text)
		if err != nil {
			return task.DispatchOutput{}, err
		}
		if err := uc.Delete(ctx, sc, matched.ID); err != nil {
			return task.DispatchOutput{}, err
		}
		out.Task = &matched

	case engine.UnknownCommand:
		// Nothing to execute; the reply alone asks the user to rephrase.
	}

	return out, nil
}

// matchTask finds the user's stored task whose title appears in the command
// text. Titles are compared case-insensitively; the longest matching title
// wins so that "finish report draft" beats "report".
func (uc *implUseCase) matchTask(ctx context.Context, sc model.Scope, text string) (model.Task, error) {
	tasks, err := uc.repo.List(ctx, repository.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		return model.Task{}, err
	}

	lowered := strings.ToLower(text)
	var best model.Task
	found := false
	for _, t := range tasks {
		title := strings.ToLower(t.Title)
		if title == "" || !strings.Contains(lowered, title) {
			continue
		}
		if !found || len(t.Title) > len(best.Title) {
			best = t
			found = true
		}
	}
	if !found {
		return model.Task{}, task.ErrNoMatchingTask
	}
	return best, nil
}
