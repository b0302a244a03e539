package services

import (
	"math"
	"time"

	"study-planner/internal/domain"
)

// streakWindowDays is how many days, today included, the streak looks back
const streakWindowDays = 7

// ComputeAchievementStats aggregates the task list for badge evaluation.
//
// The streak counts the days among the last seven (today included) that have at
// least one completed task due on them. The days need not be consecutive, and
// the same count is reported as both current and max streak.
func ComputeAchievementStats(tasks []domain.Task, now time.Time) AchievementStats {
	loc := now.Location()
	stats := AchievementStats{TotalTasks: len(tasks)}

	completedDays := make(map[domain.Date]bool)
	for _, task := range tasks {
		if !task.Completed {
			continue
		}
		stats.TotalCompleted++
		if task.Priority == domain.PriorityHigh {
			stats.HighPriorityCompleted++
		}
		if day, ok := task.DueDay(loc); ok {
			completedDays[day] = true
		}
	}

	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.TotalCompleted) / float64(stats.TotalTasks) * 100
	}
	stats.SubjectsCount = countSubjects(tasks)

	today := domain.DateOf(now, loc)
	for i := 0; i < streakWindowDays; i++ {
		if completedDays[today.AddDays(-i)] {
			stats.CurrentStreak++
		}
	}
	stats.MaxStreak = stats.CurrentStreak

	return stats
}

// AchievementEvaluator computes the badge list from a snapshot of aggregates
type AchievementEvaluator struct {
	stats AchievementStats
}

// NewAchievementEvaluator creates an evaluator for the given task list at now
func NewAchievementEvaluator(tasks []domain.Task, now time.Time) *AchievementEvaluator {
	return &AchievementEvaluator{stats: ComputeAchievementStats(tasks, now)}
}

// Stats returns the aggregates the badges were evaluated against
func (e *AchievementEvaluator) Stats() AchievementStats {
	return e.stats
}

// Achievements returns every badge in display order
func (e *AchievementEvaluator) Achievements() []domain.Achievement {
	s := e.stats
	return []domain.Achievement{
		// Task milestones
		e.countAchievement("first-task", "First Task", "Complete your first task", domain.CategoryTasks, 1, s.TotalCompleted),
		e.countAchievement("task-master", "Task Master", "Complete 10 tasks", domain.CategoryTasks, 10, s.TotalCompleted),
		e.countAchievement("task-legend", "Task Legend", "Complete 50 tasks", domain.CategoryTasks, 50, s.TotalCompleted),

		// Consistency
		e.countAchievement("streak-3", "3-Day Streak", "Complete tasks on 3 days in a week", domain.CategoryConsistency, 3, s.CurrentStreak),
		e.countAchievement("streak-7", "Perfect Week", "Complete tasks on all 7 days of the week", domain.CategoryConsistency, 7, s.CurrentStreak),

		// Subjects
		e.countAchievement("multi-subject", "Versatile Student", "Have tasks in 3 different subjects", domain.CategorySubjects, 3, s.SubjectsCount),
		e.countAchievement("subject-master", "Multidisciplinary Master", "Have tasks in 5 different subjects", domain.CategorySubjects, 5, s.SubjectsCount),

		// Speed and quality
		e.rateAchievement("efficient", "Efficient Student", "Keep a completion rate of at least 80%", 80),
		e.countAchievement("priority-master", "Priority Master", "Complete 5 high priority tasks", domain.CategorySpeed, 5, s.HighPriorityCompleted),
	}
}

func (e *AchievementEvaluator) countAchievement(id, title, desc string, category domain.AchievementCategory, threshold, current int) domain.Achievement {
	return domain.Achievement{
		ID:          id,
		Title:       title,
		Description: desc,
		Category:    category,
		Threshold:   threshold,
		Current:     current,
		Unlocked:    current >= threshold,
	}
}

// rateAchievement unlocks on the exact rate but reports it rounded
func (e *AchievementEvaluator) rateAchievement(id, title, desc string, threshold int) domain.Achievement {
	rate := e.stats.CompletionRate
	return domain.Achievement{
		ID:          id,
		Title:       title,
		Description: desc,
		Category:    domain.CategorySpeed,
		Threshold:   threshold,
		Current:     int(math.Round(rate)),
		Unlocked:    rate >= float64(threshold),
	}
}

// EvaluateAchievements returns every badge with its progress and unlocked state
func EvaluateAchievements(tasks []domain.Task, now time.Time) []domain.Achievement {
	return NewAchievementEvaluator(tasks, now).Achievements()
}

// SplitAchievements partitions badges into unlocked and locked, keeping order
func SplitAchievements(achievements []domain.Achievement) (unlocked, locked []domain.Achievement) {
	unlocked = make([]domain.Achievement, 0)
	locked = make([]domain.Achievement, 0)
	for _, a := range achievements {
		if a.Unlocked {
			unlocked = append(unlocked, a)
		} else {
			locked = append(locked, a)
		}
	}
	return unlocked, locked
}
