package usecase_test

import (
	"context"
	"strings"
	"testing"

	"smart-task-assistant/internal/engine"
	"smart-task-assistant/internal/engine/usecase"
)

func TestClassify_AddTask(t *testing.T) {
	uc := usecase.New(&mockLogger{})
	ctx := context.Background()

	t.Run("Trigger phrases stripped from payload", func(t *testing.T) {
		cmd := uc.Classify(ctx, "add task: buy milk")
		add, ok := cmd.(engine.AddTaskCommand)
		if !ok {
			t.Fatalf("expected AddTaskCommand, got %T", cmd)
		}
		if add.Text != "buy milk" {
			t.Errorf("payload = %q, want %q", add.Text, "buy milk")
		}
		if strings.Contains(strings.ToLower(add.Text), "add") || strings.Contains(strings.ToLower(add.Text), "task") {
			t.Errorf("payload still contains trigger words: %q", add.Text)
		}
	})

	t.Run("Case-insensitive trigger", func(t *testing.T) {
		cmd := uc.Classify(ctx, "ADD TASK call the plumber")
		add, ok := cmd.(engine.AddTaskCommand)
		if !ok {
			t.Fatalf("expected AddTaskCommand, got %T", cmd)
		}
		if add.Text != "call the plumber" {
			t.Errorf("payload = %q, want %q", add.Text, "call the plumber")
		}
	})

	t.Run("Arabic trigger", func(t *testing.T) {
		cmd := uc.Classify(ctx, "أضف مهمة شراء الحليب")
		add, ok := cmd.(engine.AddTaskCommand)
		if !ok {
			t.Fatalf("expected AddTaskCommand, got %T", cmd)
		}
		if add.Text != "شراء الحليب" {
			t.Errorf("payload = %q, want %q", add.Text, "شراء الحليب")
		}
	})

	t.Run("Empty remainder falls back to original text", func(t *testing.T) {
		original := "add task"
		cmd := uc.Classify(ctx, original)
		add, ok := cmd.(engine.AddTaskCommand)
		if !ok {
			t.Fatalf("expected AddTaskCommand, got %T", cmd)
		}
		if add.Text != original {
			t.Errorf("payload = %q, want original %q", add.Text, original)
		}
	})
}

func TestClassify_Search(t *testing.T) {
	uc := usecase.New(&mockLogger{})
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "Connector stripped", text: "search about milk", want: "milk"},
		{name: "Find trigger", text: "find the budget report", want: "the budget report"},
		{name: "Arabic search", text: "ابحث عن تقرير الشهر", want: "تقرير الشهر"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := uc.Classify(ctx, tt.text)
			search, ok := cmd.(engine.SearchCommand)
			if !ok {
				t.Fatalf("expected SearchCommand, got %T", cmd)
			}
			if search.Query != tt.want {
				t.Errorf("query = %q, want %q", search.Query, tt.want)
			}
		})
	}
}

func TestClassify_FixedOrderAndFallthrough(t *testing.T) {
	uc := usecase.New(&mockLogger{})
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want engine.CommandType
	}{
		{name: "Show tasks", text: "show my tasks please", want: engine.CommandTypeShowTasks},
		{name: "Show tasks Arabic", text: "اعرض المهام", want: engine.CommandTypeShowTasks},
		{name: "Complete keeps whole text", text: "I am done with the laundry", want: engine.CommandTypeCompleteTask},
		{name: "Delete keeps whole text", text: "delete the laundry reminder", want: engine.CommandTypeDeleteTask},
		{name: "Add wins over complete", text: "add task mark attendance done", want: engine.CommandTypeAddTask},
		{name: "Unknown", text: "what is the weather", want: engine.CommandTypeUnknown},
		{name: "Empty text is unknown", text: "", want: engine.CommandTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := uc.Classify(ctx, tt.text)
			if cmd.Type() != tt.want {
				t.Errorf("Classify(%q).Type() = %s, want %s", tt.text, cmd.Type(), tt.want)
			}
		})
	}
}

func TestClassify_PayloadCarriesOriginalText(t *testing.T) {
	uc := usecase.New(&mockLogger{})
	ctx := context.Background()

	t.Run("Complete", func(t *testing.T) {
		text := "finished the tax declaration"
		cmd := uc.Classify(ctx, text)
		complete, ok := cmd.(engine.CompleteTaskCommand)
		if !ok {
			t.Fatalf("expected CompleteTaskCommand, got %T", cmd)
		}
		if complete.Text != text {
			t.Errorf("payload = %q, want full original %q", complete.Text, text)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		text := "remove the gym reminder"
		cmd := uc.Classify(ctx, text)
		del, ok := cmd.(engine.DeleteTaskCommand)
		if !ok {
			t.Fatalf("expected DeleteTaskCommand, got %T", cmd)
		}
		if del.Text != text {
			t.Errorf("payload = %q, want full original %q", del.Text, text)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		text := "how are you"
		cmd := uc.Classify(ctx, text)
		unknown, ok := cmd.(engine.UnknownCommand)
		if !ok {
			t.Fatalf("expected UnknownCommand, got %T", cmd)
		}
		if unknown.Text != text {
			t.Errorf("payload = %q, want full original %q", unknown.Text, text)
		}
	})
}
