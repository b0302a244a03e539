package services

import (
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"

	"study-planner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byID(achievements []domain.Achievement) map[string]domain.Achievement {
	m := make(map[string]domain.Achievement, len(achievements))
	for _, a := range achievements {
		m[a.ID] = a
	}
	return m
}

func TestEvaluateAchievements_NoTasks(t *testing.T) {
	stats := ComputeAchievementStats(nil, fixedNow)
	assert.Equal(t, AchievementStats{}, stats)

	achievements := EvaluateAchievements(nil, fixedNow)
	require.Len(t, achievements, 9)
	for _, a := range achievements {
		assert.Greater(t, a.Threshold, 0)
		assert.False(t, a.Unlocked, a.ID)
		assert.Nil(t, a.UnlockedAt)
	}
}

func TestEvaluateAchievements_OneCompletedToday(t *testing.T) {
	tasks := []domain.Task{{ID: "1", Subject: "Math", DueDate: "2026-10-16", Completed: true}}

	stats := ComputeAchievementStats(tasks, fixedNow)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.MaxStreak)
	assert.InDelta(t, 100.0, stats.CompletionRate, 0.001)

	got := byID(EvaluateAchievements(tasks, fixedNow))
	assert.True(t, got["first-task"].Unlocked)
	assert.False(t, got["task-master"].Unlocked)
	assert.Equal(t, 1, got["task-master"].Current)
	assert.True(t, got["efficient"].Unlocked)
	assert.Equal(t, 100, got["efficient"].Current)
}

func TestEvaluateAchievements_Order(t *testing.T) {
	want := []string{
		"first-task", "task-master", "task-legend",
		"streak-3", "streak-7",
		"multi-subject", "subject-master",
		"efficient", "priority-master",
	}
	got := EvaluateAchievements(nil, fixedNow)
	for i, a := range got {
		assert.Equal(t, want[i], a.ID)
	}
}

func TestComputeAchievementStats_Streak(t *testing.T) {
	tests := []struct {
		name     string
		dueDates []string
		expected int
	}{
		{name: "today only", dueDates: []string{"2026-10-16"}, expected: 1},
		{name: "gaps still count", dueDates: []string{"2026-10-16", "2026-10-14", "2026-10-10"}, expected: 3},
		{name: "same day counted once", dueDates: []string{"2026-10-15", "2026-10-15T18:00"}, expected: 1},
		{name: "eight days back is outside", dueDates: []string{"2026-10-09"}, expected: 0},
		{name: "future is outside", dueDates: []string{"2026-10-17"}, expected: 0},
		{
			name:     "full week",
			dueDates: []string{"2026-10-10", "2026-10-11", "2026-10-12", "2026-10-13", "2026-10-14", "2026-10-15", "2026-10-16"},
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tasks []domain.Task
			for i, due := range tt.dueDates {
				tasks = append(tasks, domain.Task{ID: fmt.Sprint(i), DueDate: due, Completed: true})
			}
			stats := ComputeAchievementStats(tasks, fixedNow)
			assert.Equal(t, tt.expected, stats.CurrentStreak)
			assert.Equal(t, stats.CurrentStreak, stats.MaxStreak)
		})
	}
}

func TestComputeAchievementStats_StreakAcrossSkippedMidnight(t *testing.T) {
	// Chile moves its clocks from 00:00 to 01:00 on 2026-09-06
	loc, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)
	now := time.Date(2026, 9, 6, 12, 0, 0, 0, loc)

	tasks := []domain.Task{
		{ID: "1", DueDate: "2026-09-04", Completed: true},
		{ID: "2", DueDate: "2026-09-05", Completed: true},
		{ID: "3", DueDate: "2026-09-06", Completed: true},
	}

	stats := ComputeAchievementStats(tasks, now)
	assert.Equal(t, 3, stats.CurrentStreak)

	later := time.Date(2026, 9, 10, 9, 0, 0, 0, loc)
	assert.Equal(t, 3, ComputeAchievementStats(tasks, later).CurrentStreak)
}

func TestComputeAchievementStats_PendingTasksDoNotCountTowardStreak(t *testing.T) {
	tasks := []domain.Task{{DueDate: "2026-10-16"}}
	assert.Equal(t, 0, ComputeAchievementStats(tasks, fixedNow).CurrentStreak)
}

func TestEvaluateAchievements_Thresholds(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, domain.Task{
			ID:        fmt.Sprint(i),
			Subject:   fmt.Sprintf("subject-%d", i%5),
			Priority:  domain.PriorityHigh,
			DueDate:   "2026-01-01",
			Completed: i < 8,
		})
	}

	stats := ComputeAchievementStats(tasks, fixedNow)
	assert.Equal(t, 8, stats.TotalCompleted)
	assert.Equal(t, 10, stats.TotalTasks)
	assert.Equal(t, 5, stats.SubjectsCount)
	assert.Equal(t, 8, stats.HighPriorityCompleted)
	assert.InDelta(t, 80.0, stats.CompletionRate, 0.001)

	got := byID(EvaluateAchievements(tasks, fixedNow))
	assert.False(t, got["task-master"].Unlocked)
	assert.True(t, got["multi-subject"].Unlocked)
	assert.True(t, got["subject-master"].Unlocked)
	assert.True(t, got["priority-master"].Unlocked)
	assert.True(t, got["efficient"].Unlocked, "80% exactly unlocks")
	assert.False(t, got["streak-3"].Unlocked)
}

func TestEvaluateAchievements_EfficientUsesUnroundedRate(t *testing.T) {
	// 79.6% rounds to 80 for display but stays locked
	var tasks []domain.Task
	for i := 0; i < 250; i++ {
		tasks = append(tasks, domain.Task{ID: fmt.Sprint(i), Completed: i < 199})
	}

	got := byID(EvaluateAchievements(tasks, fixedNow))
	assert.Equal(t, 80, got["efficient"].Current)
	assert.False(t, got["efficient"].Unlocked)
}

func TestEvaluateAchievements_EmptySubjectCounts(t *testing.T) {
	tasks := []domain.Task{{Subject: ""}, {Subject: "Math"}, {Subject: "Art"}}
	assert.Equal(t, 3, ComputeAchievementStats(tasks, fixedNow).SubjectsCount)
}

func TestSplitAchievements(t *testing.T) {
	achievements := []domain.Achievement{
		{ID: "a", Unlocked: true},
		{ID: "b"},
		{ID: "c", Unlocked: true},
	}

	unlocked, locked := SplitAchievements(achievements)
	assert.Equal(t, []domain.Achievement{{ID: "a", Unlocked: true}, {ID: "c", Unlocked: true}}, unlocked)
	assert.Equal(t, []domain.Achievement{{ID: "b"}}, locked)

	unlocked, locked = SplitAchievements(nil)
	assert.Empty(t, unlocked)
	assert.Empty(t, locked)
}

func TestAchievementEvaluator_Stats(t *testing.T) {
	now := time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)
	e := NewAchievementEvaluator([]domain.Task{{DueDate: "2026-10-16T23:59", Completed: true}}, now)
	assert.Equal(t, 1, e.Stats().CurrentStreak)
	assert.Len(t, e.Achievements(), 9)
}
