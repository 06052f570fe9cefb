package engine

import (
	"time"

	"smart-task-assistant/internal/model"
)

// TaskAnalysis is the structured metadata extracted from one raw text.
// It is an ephemeral value produced fresh per call; the caller decides
// whether to merge it into a persisted task.
type TaskAnalysis struct {
	Priority          model.Priority
	DueDate           *time.Time // nil when no date signal was found
	EstimatedDuration int        // minutes
	Category          model.Category
}

// CommandType identifies the intent of a classified command.
type CommandType string

const (
	CommandTypeAddTask      CommandType = "add_task"
	CommandTypeSearch       CommandType = "search"
	CommandTypeShowTasks    CommandType = "show_tasks"
	CommandTypeCompleteTask CommandType = "complete_task"
	CommandTypeDeleteTask   CommandType = "delete_task"
	CommandTypeUnknown      CommandType = "unknown"
)

// Command is a classified voice/text command. Each intent carries only the
// fields relevant to it, so dispatchers switch on the concrete type instead
// of digging through a string map.
type Command interface {
	Type() CommandType
}

// AddTaskCommand creates a new task from the remaining text.
type AddTaskCommand struct {
	Text string // trigger phrases stripped; original text when nothing remains
}

func (AddTaskCommand) Type() CommandType { return CommandTypeAddTask }

// SearchCommand searches tasks by the extracted query.
type SearchCommand struct {
	Query string
}

func (SearchCommand) Type() CommandType { return CommandTypeSearch }

// ShowTasksCommand lists the user's tasks. No payload.
type ShowTasksCommand struct{}

func (ShowTasksCommand) Type() CommandType { return CommandTypeShowTasks }

// CompleteTaskCommand marks a task as done. The full original text is kept
// so the dispatcher can match it against stored titles.
type CompleteTaskCommand struct {
	Text string
}

func (CompleteTaskCommand) Type() CommandType { return CommandTypeCompleteTask }

// DeleteTaskCommand removes a task, carrying the full original text.
type DeleteTaskCommand struct {
	Text string
}

func (DeleteTaskCommand) Type() CommandType { return CommandTypeDeleteTask }

// UnknownCommand is the fallback when no intent tier matched.
type UnknownCommand struct {
	Text string
}

func (UnknownCommand) Type() CommandType { return CommandTypeUnknown }

// TimeOfDay is the coarse completion-hour bucket.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"   // 06:00–11:59
	TimeOfDayAfternoon TimeOfDay = "afternoon" // 12:00–16:59
	TimeOfDayEvening   TimeOfDay = "evening"   // everything else
)

// ProductivityAnalysis summarizes a snapshot of completion timestamps.
type ProductivityAnalysis struct {
	Score         int       // 0–100
	BestTimeOfDay TimeOfDay // defaults to Morning
	Suggestions   []string  // 1–3 advice strings
}
