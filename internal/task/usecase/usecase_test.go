package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-task-assistant/internal/engine"
	engineuc "smart-task-assistant/internal/engine/usecase"
	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/internal/task/repository"
	"smart-task-assistant/internal/task/repository/inmem"
	"smart-task-assistant/internal/task/usecase"
	"smart-task-assistant/pkg/clock"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// failingRepo returns a fixed error from every operation.
type failingRepo struct {
	err error
}

func (f *failingRepo) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, f.err
}
func (f *failingRepo) Get(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, f.err
}
func (f *failingRepo) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	return nil, f.err
}
func (f *failingRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	return model.Task{}, f.err
}
func (f *failingRepo) Delete(ctx context.Context, id string) error {
	return f.err
}

// fixedNow is a Wednesday morning.
var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newUseCase(repo repository.TaskRepository) task.UseCase {
	l := &mockLogger{}
	return usecase.New(l, engineuc.New(l), repo, nil, clock.Fixed{T: fixedNow}, "", "UTC")
}

func newInmemUseCase() (task.UseCase, repository.TaskRepository) {
	l := &mockLogger{}
	repo := inmem.New(clock.Fixed{T: fixedNow}, l)
	return newUseCase(repo), repo
}

var sc = model.Scope{UserID: "u1", Username: "tester"}

func TestCreateFromText(t *testing.T) {
	ctx := context.Background()

	t.Run("Persists analyzed metadata", func(t *testing.T) {
		uc, _ := newInmemUseCase()

		created, err := uc.CreateFromText(ctx, sc, task.CreateFromTextInput{Text: "urgent meeting with client tomorrow"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Priority != model.PriorityHigh {
			t.Errorf("priority = %s, want high", created.Priority)
		}
		if created.Category != model.CategoryWork {
			t.Errorf("category = %s, want work", created.Category)
		}
		if created.DueDate == nil {
			t.Fatal("expected a due date for tomorrow")
		}
		want := fixedNow.AddDate(0, 0, 1)
		if !created.DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", created.DueDate, want)
		}
		if created.UserID != "u1" {
			t.Errorf("user = %s, want u1", created.UserID)
		}
	})

	t.Run("Empty input is rejected", func(t *testing.T) {
		uc, _ := newInmemUseCase()

		_, err := uc.CreateFromText(ctx, sc, task.CreateFromTextInput{Text: "   "})
		if !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Store failure propagates", func(t *testing.T) {
		boom := errors.New("store down")
		uc := newUseCase(&failingRepo{err: boom})

		_, err := uc.CreateFromText(ctx, sc, task.CreateFromTextInput{Text: "buy milk"})
		if !errors.Is(err, boom) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Add command creates task from payload", func(t *testing.T) {
		uc, _ := newInmemUseCase()

		out, err := uc.Dispatch(ctx, sc, task.DispatchInput{Text: "add task buy milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CommandType != engine.CommandTypeAddTask {
			t.Fatalf("command = %s, want add_task", out.CommandType)
		}
		if out.Task == nil || out.Task.Title != "buy milk" {
			t.Errorf("unexpected created task: %+v", out.Task)
		}
		if out.Reply != engine.ConfirmationPhrase(engine.CommandTypeAddTask) {
			t.Errorf("unexpected reply %q", out.Reply)
		}
	})

	t.Run("Search command returns matching tasks", func(t *testing.T) {
		uc, _ := newInmemUseCase()
		mustCreate(t, uc, "buy milk")
		mustCreate(t, uc, "walk the dog")

		out, err := uc.Dispatch(ctx, sc, task.DispatchInput{Text: "find milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CommandType != engine.CommandTypeSearch {
			t.Fatalf("command = %s, want search", out.CommandType)
		}
		if len(out.Tasks) != 1 || out.Tasks[0].Title != "buy milk" {
			t.Errorf("unexpected search result: %+v", out.Tasks)
		}
	})

	t.Run("Show command lists all tasks", func(t *testing.T) {
		uc, _ := newInmemUseCase()
		mustCreate(t, uc, "buy milk")
		mustCreate(t, uc, "walk the dog")

		out, err := uc.Dispatch(ctx, sc, task.DispatchInput{Text: "show my tasks"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CommandType != engine.CommandTypeShowTasks {
			t.Fatalf("command = %s, want show_tasks", out.CommandType)
		}
		if len(out.Tasks) != 2 {
			t.Errorf("expected 2 tasks, got %d", len(out.Tasks))
		}
	})

	t.Run("Complete command matches stored title", func(t *testing.T) {
		uc, _ := newInmemUseCase()
		mustCreate(t, uc, "buy milk")

		out, err := uc.Dispatch(ctx, sc, task.DispatchInput{Text: "done buy milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CommandType != engine.CommandTypeCompleteTask {
			t.Fatalf("command = %s, want complete_task", out.CommandType)
		}
		if out.Task == nil || !out.Task.Done {
			t.Errorf("expected completed task, got %+v", out.Task)
		}
		if out.Task.CompletedAt == nil || !out.Task.CompletedAt.Equal(fixedNow) {
			t.Errorf("unexpected CompletedAt: %v", out.Task.CompletedAt)
		}
	})

	t.Run("Longest matching title wins", func(t *testing.T) {
		uc, _ := newInmemUseCase()
		mustCreate(t, uc, "report")
		long := mustCreate(t, uc, "finish report draft")

		out, err := uc.Dispatch(ctx, sc, task.DispatchInput{Text: "done finish report draft"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task == nil || out.Task.ID != long.ID {
			t.Errorf("expected the longer title to match, got %+v", out.Task)
		}
	})

	t.Run("Delete command removes the task", func(t *testing.T) {
		uc, repo := newInmemUseCase()
		created := mustCreate(t, uc, "buy milk")

		out, err := uc.Dispatch(ctx, sc, task.DispatchInput{Text: "delete buy milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CommandType != engine.CommandTypeDeleteTask {
			t.Fatalf("command = %s, want delete_task", out.CommandType)
		}
		if _, err := repo.Get(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected task to be gone, got %v", err)
		}
	})

	t.Run("Complete with no matching title fails", func(t *testing.T) {
		uc, _ := newInmemUseCase()
		mustCreate(t, uc, "buy milk")

		_, err := uc.Dispatch(ctx, sc, task.DispatchInput{Text: "done walk the dog"})
		if !errors.Is(err, task.ErrNoMatchingTask) {
			t.Errorf("expected ErrNoMatchingTask, got %v", err)
		}
	})

	t.Run("Unknown command only replies", func(t *testing.T) {
		uc, _ := newInmemUseCase()

		out, err := uc.Dispatch(ctx, sc, task.DispatchInput{Text: "hello there"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CommandType != engine.CommandTypeUnknown {
			t.Fatalf("command = %s, want unknown", out.CommandType)
		}
		if out.Task != nil || out.Tasks != nil {
			t.Errorf("expected no execution result: %+v", out)
		}
		if out.Reply != engine.ConfirmationPhrase(engine.CommandTypeUnknown) {
			t.Errorf("unexpected reply %q", out.Reply)
		}
	})
}

func TestCompleteAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Complete is not repeatable", func(t *testing.T) {
		uc, _ := newInmemUseCase()
		created := mustCreate(t, uc, "buy milk")

		if _, err := uc.Complete(ctx, sc, created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Complete(ctx, sc, created.ID); !errors.Is(err, task.ErrAlreadyComplete) {
			t.Errorf("expected ErrAlreadyComplete, got %v", err)
		}
	})

	t.Run("Foreign tasks are invisible", func(t *testing.T) {
		uc, _ := newInmemUseCase()
		created := mustCreate(t, uc, "buy milk")

		other := model.Scope{UserID: "u2"}
		if _, err := uc.Complete(ctx, other, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound on complete, got %v", err)
		}
		if err := uc.Delete(ctx, other, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound on delete, got %v", err)
		}
	})

	t.Run("Missing ID surfaces as not found", func(t *testing.T) {
		uc, _ := newInmemUseCase()

		if _, err := uc.Complete(ctx, sc, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
		if err := uc.Delete(ctx, sc, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestProductivity(t *testing.T) {
	ctx := context.Background()

	t.Run("No history scores zero", func(t *testing.T) {
		uc, _ := newInmemUseCase()

		out, err := uc.Productivity(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CompletedTotal != 0 {
			t.Errorf("expected no completed tasks, got %d", out.CompletedTotal)
		}
		if out.Analysis.Score != 0 {
			t.Errorf("score = %d, want 0", out.Analysis.Score)
		}
	})

	t.Run("Completions today score full marks", func(t *testing.T) {
		uc, _ := newInmemUseCase()
		created := mustCreate(t, uc, "buy milk")
		if _, err := uc.Complete(ctx, sc, created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Productivity(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CompletedTotal != 1 {
			t.Errorf("completed total = %d, want 1", out.CompletedTotal)
		}
		if out.Analysis.Score != 100 {
			t.Errorf("score = %d, want 100", out.Analysis.Score)
		}
		if out.Analysis.BestTimeOfDay != engine.TimeOfDayMorning {
			t.Errorf("best time = %s, want morning", out.Analysis.BestTimeOfDay)
		}
	})
}

func TestSuggestions(t *testing.T) {
	uc, _ := newInmemUseCase()

	got := uc.Suggestions(context.Background(), sc)
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("expected 1 to 3 suggestions, got %d", len(got))
	}
}

func mustCreate(t *testing.T, uc task.UseCase, text string) model.Task {
	t.Helper()
	created, err := uc.CreateFromText(context.Background(), sc, task.CreateFromTextInput{Text: text})
	if err != nil {
		t.Fatalf("create %q failed: %v", text, err)
	}
	return created
}
