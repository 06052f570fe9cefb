package model

import "time"

// Priority is the task priority tier.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Category is the suggested task category.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryHealth   Category = "health"
	CategoryGeneral  Category = "general"
)

// Task represents a task owned by a user.
type Task struct {
	ID                string     // UUID assigned by the store
	UserID            string     // Owner (from Scope)
	Title             string
	Description       string
	Priority          Priority
	Category          Category
	DueDate           *time.Time // nil when no due date was resolved
	EstimatedDuration int        // minutes
	Done              bool
	CompletedAt       *time.Time // set when Done flips to true
	CalendarLink      string     // deep link to the calendar event (may be empty)
	CreatedAt         time.Time
}
