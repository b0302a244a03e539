package services

import (
	"time"

	"study-planner/internal/domain"
)

// MonthGrid lays out the month containing month as weeks of seven cells,
// starting on weekStart. Cells before the first and after the last day of
// the month have InMonth false.
func MonthGrid(month time.Time, weekStart domain.WeekStart, tasks []domain.Task, now time.Time) [][]CalendarCell {
	loc := month.Location()
	y, m, _ := month.In(loc).Date()
	first := domain.Date{Year: y, Month: m, Day: 1}
	daysInMonth := time.Date(y, m+1, 0, 12, 0, 0, 0, loc).Day()

	marked := make(map[domain.Date]bool)
	for _, task := range tasks {
		if day, ok := task.DueDay(loc); ok {
			marked[day] = true
		}
	}
	today := domain.DateOf(now, loc)

	lead := leadingBlanks(first.Start(loc).Weekday(), weekStart)
	var weeks [][]CalendarCell
	week := make([]CalendarCell, 0, 7)
	for i := 0; i < lead; i++ {
		week = append(week, CalendarCell{})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := domain.Date{Year: y, Month: m, Day: d}
		week = append(week, CalendarCell{
			Date:     date.Start(loc),
			InMonth:  true,
			HasTasks: marked[date],
			IsToday:  date == today,
		})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]CalendarCell, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, CalendarCell{})
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// WeekdayHeaders returns the short weekday names in grid column order
func WeekdayHeaders(weekStart domain.WeekStart) []string {
	names := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	if weekStart == domain.WeekStartsSunday {
		return names
	}
	return append(names[1:], names[0])
}

func leadingBlanks(weekday time.Weekday, weekStart domain.WeekStart) int {
	if weekStart == domain.WeekStartsSunday {
		return int(weekday)
	}
	return (int(weekday) + 6) % 7
}
