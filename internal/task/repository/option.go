package repository

import (
	"time"

	"smart-task-assistant/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	UserID            string
	Title             string
	Description       string
	Priority          model.Priority
	Category          model.Category
	DueDate           *time.Time
	EstimatedDuration int // minutes
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	UserID string // Filter by owner (required)
	Query  string // Case-insensitive substring filter on the title (optional)
	Done   *bool  // Filter by completion state (optional)
	Limit  int    // Max number of results, 0 means no limit
}
