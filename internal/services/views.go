package services

import (
	"sort"
	"strings"
	"time"

	"study-planner/internal/domain"
)

// FilterTasks returns the tasks matching every filter, in their original order.
// Search is a case-insensitive substring match on title or subject.
func FilterTasks(tasks []domain.Task, filter TaskFilter) []domain.Task {
	search := strings.ToLower(filter.Search)
	result := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if matchesSearch(task, search) && matchesStatus(task, filter.Status) && matchesPriority(task, filter.Priority) {
			result = append(result, task)
		}
	}
	return result
}

func matchesSearch(task domain.Task, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(task.Title), search) ||
		strings.Contains(strings.ToLower(task.Subject), search)
}

func matchesStatus(task domain.Task, status StatusFilter) bool {
	switch status {
	case StatusPending:
		return !task.Completed
	case StatusCompleted:
		return task.Completed
	default:
		return true
	}
}

func matchesPriority(task domain.Task, priority string) bool {
	if priority == "" || priority == PriorityAll {
		return true
	}
	return string(task.Priority) == priority
}

// IsOverdue reports whether an incomplete task's due date is strictly before now.
// A due date that cannot be parsed is never overdue.
func IsOverdue(task domain.Task, now time.Time) bool {
	if task.Completed {
		return false
	}
	due, ok := domain.ParseDueDate(task.DueDate, now.Location())
	return ok && due.Before(now)
}

// UpcomingTasks returns up to limit incomplete tasks, earliest due first.
// Unparseable due dates sort last; ties keep their original order.
func UpcomingTasks(tasks []domain.Task, limit int, loc *time.Location) []domain.Task {
	type dated struct {
		task domain.Task
		due  time.Time
		ok   bool
	}

	pending := make([]dated, 0, len(tasks))
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		due, ok := domain.ParseDueDate(task.DueDate, loc)
		pending = append(pending, dated{task: task, due: due, ok: ok})
	}

	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i], pending[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.ok && a.due.Before(b.due)
	})

	if limit >= 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	result := make([]domain.Task, len(pending))
	for i, d := range pending {
		result[i] = d.task
	}
	return result
}

// CompletedTasks returns the completed tasks in their original order
func CompletedTasks(tasks []domain.Task) []domain.Task {
	return FilterTasks(tasks, TaskFilter{Status: StatusCompleted})
}

// VisibleTasks applies the showCompleted display setting
func VisibleTasks(tasks []domain.Task, settings domain.AppSettings) []domain.Task {
	if settings.ShowCompleted {
		return tasks
	}
	return FilterTasks(tasks, TaskFilter{Status: StatusPending})
}

// ComputeStats counts total, completed, pending and overdue tasks in one pass
func ComputeStats(tasks []domain.Task, now time.Time) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
		}
		if IsOverdue(task, now) {
			stats.Overdue++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// ScheduleForDay returns the classes held on day ordered by start time
func ScheduleForDay(items []domain.ScheduleItem, day domain.Day) []domain.ScheduleItem {
	result := make([]domain.ScheduleItem, 0)
	for _, item := range items {
		if item.Day == day {
			result = append(result, item)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime < result[j].StartTime
	})
	return result
}

// WeeklySchedule returns one entry per schedule day, monday first
func WeeklySchedule(items []domain.ScheduleItem) []DaySchedule {
	week := make([]DaySchedule, len(domain.Days))
	for i, day := range domain.Days {
		week[i] = DaySchedule{Day: day, Items: ScheduleForDay(items, day)}
	}
	return week
}

// TasksForDate returns the tasks due on date's calendar day, ignoring time of day
func TasksForDate(tasks []domain.Task, date time.Time) []domain.Task {
	loc := date.Location()
	want := domain.DateOf(date, loc)
	result := make([]domain.Task, 0)
	for _, task := range tasks {
		if day, ok := task.DueDay(loc); ok && day == want {
			result = append(result, task)
		}
	}
	return result
}

// DatesWithTasks returns each calendar day that has at least one task, ascending
func DatesWithTasks(tasks []domain.Task, loc *time.Location) []time.Time {
	seen := make(map[domain.Date]bool)
	days := make([]domain.Date, 0)
	for _, task := range tasks {
		day, ok := task.DueDay(loc)
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	dates := make([]time.Time, len(days))
	for i, day := range days {
		dates[i] = day.Start(loc)
	}
	return dates
}

// SummarizeProfile returns the completed, total and distinct subject counts
func SummarizeProfile(tasks []domain.Task) ProfileSummary {
	summary := ProfileSummary{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			summary.Completed++
		}
	}
	summary.Subjects = countSubjects(tasks)
	return summary
}

// countSubjects counts distinct subject strings, the empty subject included
func countSubjects(tasks []domain.Task) int {
	subjects := make(map[string]struct{})
	for _, task := range tasks {
		subjects[task.Subject] = struct{}{}
	}
	return len(subjects)
}
