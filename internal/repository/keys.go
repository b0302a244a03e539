// Package repository owns the persisted collections of the planner. Each
// repository holds exactly one slot of the key/value store.
package repository

// Storage keys of the persisted slots
const (
	TasksKey    = "student-tasks"
	ScheduleKey = "student-schedule"
	ProfileKey  = "user-profile"
	SettingsKey = "app-settings"
)
