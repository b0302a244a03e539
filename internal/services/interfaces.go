package services

import (
	"context"
	"time"

	"study-planner/internal/domain"
)

// StatusFilter selects tasks by completion state
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// PriorityAll disables the priority filter
const PriorityAll = "all"

// DefaultUpcomingLimit is how many tasks the dashboard lists as upcoming
const DefaultUpcomingLimit = 3

// TaskFilter holds the task list filters; zero values match everything
type TaskFilter struct {
	Search   string       `json:"search,omitempty"`
	Status   StatusFilter `json:"status,omitempty"`
	Priority string       `json:"priority,omitempty"`
}

// TaskStats represents the dashboard counters
type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// DaySchedule represents the classes of one weekday in start-time order
type DaySchedule struct {
	Day   domain.Day            `json:"day"`
	Items []domain.ScheduleItem `json:"items"`
}

// ProfileSummary represents the counters shown on the profile screen
type ProfileSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Subjects  int `json:"subjects"`
}

// AchievementStats represents the aggregates badges are evaluated against
type AchievementStats struct {
	TotalCompleted        int     `json:"total_completed"`
	TotalTasks            int     `json:"total_tasks"`
	CompletionRate        float64 `json:"completion_rate"`
	SubjectsCount         int     `json:"subjects_count"`
	CurrentStreak         int     `json:"current_streak"`
	MaxStreak             int     `json:"max_streak"`
	HighPriorityCompleted int     `json:"high_priority_completed"`
}

// CalendarCell is one day of a month grid. Days outside the month are zero.
type CalendarCell struct {
	Date     time.Time `json:"date"`
	InMonth  bool      `json:"in_month"`
	HasTasks bool      `json:"has_tasks"`
	IsToday  bool      `json:"is_today"`
}

// Artifact is an exported backup ready to be written to disk
type Artifact struct {
	Filename string
	Data     []byte
}

// ImportResult reports which parts of a backup were applied
type ImportResult struct {
	TasksImported    bool   `json:"tasks_imported"`
	TaskCount        int    `json:"task_count"`
	SettingsImported bool   `json:"settings_imported"`
	Version          string `json:"version,omitempty"`
}

// BackupService handles data export, import and reset
type BackupService interface {
	Export(ctx context.Context, now time.Time) (*Artifact, error)
	Import(ctx context.Context, data []byte) (*ImportResult, error)
	ClearAll(ctx context.Context) error
}
