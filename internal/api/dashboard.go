package api

import (
	"context"
	"time"

	"study-planner/internal/domain"
	"study-planner/internal/services"
)

// Dashboard holds everything the task screen renders
type Dashboard struct {
	Tasks    []domain.Task      `json:"tasks"`
	Upcoming []domain.Task      `json:"upcoming"`
	Stats    services.TaskStats `json:"stats"`
	Settings domain.AppSettings `json:"settings"`
	Now      time.Time          `json:"now"`
}

// CalendarView holds the month grid and the tasks of the selected day
type CalendarView struct {
	Date      time.Time                 `json:"date"`
	Headers   []string                  `json:"headers"`
	Weeks     [][]services.CalendarCell `json:"weeks"`
	Tasks     []domain.Task             `json:"tasks"`
	TaskDates []time.Time               `json:"task_dates"`
}

// AchievementsView holds the evaluated badges split by state
type AchievementsView struct {
	Stats    services.AchievementStats `json:"stats"`
	Unlocked []domain.Achievement      `json:"unlocked"`
	Locked   []domain.Achievement      `json:"locked"`
}

// ProfileView holds the stored profile and the counters derived from tasks
type ProfileView struct {
	Profile domain.UserProfile      `json:"profile"`
	Summary services.ProfileSummary `json:"summary"`
}

// Dashboard reads the tasks and settings once and derives the task screen.
// showCompleted=false hides completed tasks unless the completed status is
// asked for explicitly.
func (p *plannerImpl) Dashboard(ctx context.Context, filter services.TaskFilter) (*Dashboard, error) {
	if err := p.taskValidator.ValidateFilter(string(filter.Status), filter.Priority); err != nil {
		return nil, err
	}

	tasks, err := p.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := p.now()
	listed := services.FilterTasks(tasks, filter)
	if filter.Status != services.StatusCompleted {
		listed = services.VisibleTasks(listed, settings)
	}

	return &Dashboard{
		Tasks:    listed,
		Upcoming: services.UpcomingTasks(tasks, services.DefaultUpcomingLimit, now.Location()),
		Stats:    services.ComputeStats(tasks, now),
		Settings: settings,
		Now:      now,
	}, nil
}

// Calendar builds the month around date, in the planner clock's location
func (p *plannerImpl) Calendar(ctx context.Context, date time.Time) (*CalendarView, error) {
	tasks, err := p.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := p.now()
	date = domain.StartOfDay(date, now.Location())

	return &CalendarView{
		Date:      date,
		Headers:   services.WeekdayHeaders(settings.WeekStartsOn),
		Weeks:     services.MonthGrid(date, settings.WeekStartsOn, tasks, now),
		Tasks:     services.TasksForDate(tasks, date),
		TaskDates: services.DatesWithTasks(tasks, now.Location()),
	}, nil
}

func (p *plannerImpl) Achievements(ctx context.Context) (*AchievementsView, error) {
	tasks, err := p.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	evaluator := services.NewAchievementEvaluator(tasks, p.now())
	unlocked, locked := services.SplitAchievements(evaluator.Achievements())
	return &AchievementsView{
		Stats:    evaluator.Stats(),
		Unlocked: unlocked,
		Locked:   locked,
	}, nil
}

func (p *plannerImpl) GetProfile(ctx context.Context) (*ProfileView, error) {
	profile, err := p.profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := p.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ProfileView{
		Profile: profile,
		Summary: services.SummarizeProfile(tasks),
	}, nil
}
