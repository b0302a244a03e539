package domain

import "time"

// AchievementCategory groups badges on the achievements screen.
type AchievementCategory string

const (
	CategoryTasks       AchievementCategory = "tasks"
	CategoryConsistency AchievementCategory = "consistency"
	CategorySubjects    AchievementCategory = "subjects"
	CategorySpeed       AchievementCategory = "speed"
)

// Achievement is a badge computed from the task list. It is never stored.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    AchievementCategory `json:"category"`
	Threshold   int                 `json:"threshold"`
	Current     int                 `json:"current"`
	Unlocked    bool                `json:"unlocked"`
	UnlockedAt  *time.Time          `json:"unlockedAt,omitempty"`
}

// Progress returns how far Current is towards Threshold as a percentage in [0, 100].
func (a Achievement) Progress() float64 {
	if a.Threshold <= 0 {
		return 100
	}
	p := float64(a.Current) / float64(a.Threshold) * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
