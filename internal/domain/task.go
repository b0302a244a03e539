package domain

import "strings"

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the priorities from least to most urgent.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority accepts a priority name in any letter case.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Priorities {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// Task is a unit of study work with a due date.
// The JSON field names are the persisted and exported shape.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
	Subject     string   `json:"subject"`
}

// TaskDraft carries the user-editable fields of a task.
type TaskDraft struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority
	Completed   bool
	Subject     string
}

// NewTask builds a task from a draft under the given id.
func NewTask(id string, draft TaskDraft) Task {
	return Task{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		Priority:    draft.Priority,
		Completed:   draft.Completed,
		Subject:     draft.Subject,
	}
}

// Draft returns the editable fields of the task.
func (t Task) Draft() TaskDraft {
	return TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Completed:   t.Completed,
		Subject:     t.Subject,
	}
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
