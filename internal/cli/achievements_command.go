package cli

import (
	"context"
	"fmt"

	"study-planner/internal/api"
	"study-planner/internal/domain"
	"study-planner/internal/ui"
)

const progressBarWidth = 20

// AchievementsCommand handles the achievements command
type AchievementsCommand struct {
	app          *App
	planner      api.Planner
	errorHandler *ErrorHandler
}

// NewAchievementsCommand creates a new achievements command handler
func NewAchievementsCommand(app *App) *AchievementsCommand {
	return &AchievementsCommand{
		app:          app,
		planner:      app.planner,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the statistics, then unlocked and locked badges
func (c *AchievementsCommand) Execute(ctx context.Context) error {
	view, err := c.planner.Achievements(ctx)
	if err != nil {
		return c.errorHandler.Handle("evaluate achievements", err)
	}

	stats := view.Stats
	c.app.println(ui.Heading(ui.IconTrophy, "Achievements"))
	c.app.println(ui.LabelValue("Completed", fmt.Sprintf("%d of %d", stats.TotalCompleted, stats.TotalTasks)))
	c.app.println(ui.LabelValue("Completion rate", fmt.Sprintf("%.0f%%", stats.CompletionRate)))
	c.app.println(ui.LabelValue("Subjects", stats.SubjectsCount))
	c.app.println(ui.LabelValue("Current streak", fmt.Sprintf("%d days", stats.CurrentStreak)))
	c.app.println(ui.LabelValue("High priority completed", stats.HighPriorityCompleted))
	c.app.println("")

	c.app.println(ui.H2.Render(fmt.Sprintf("Unlocked (%d)", len(view.Unlocked))))
	if len(view.Unlocked) == 0 {
		c.app.println(ui.Muted.Render("  None yet. Complete a task to earn your first badge."))
	}
	for _, a := range view.Unlocked {
		c.app.printf("  %s %s  %s\n", ui.IconTrophy, ui.Gold.Render(a.Title), ui.Muted.Render(a.Description))
	}
	c.app.println("")

	c.app.println(ui.H2.Render(fmt.Sprintf("Locked (%d)", len(view.Locked))))
	for _, a := range view.Locked {
		c.printLocked(a)
	}
	return nil
}

func (c *AchievementsCommand) printLocked(a domain.Achievement) {
	c.app.printf("  %s %s  %s\n", ui.IconLock, a.Title, ui.Muted.Render(a.Description))
	c.app.printf("     %s %d/%d\n", ui.ProgressBar(a.Progress(), progressBarWidth), a.Current, a.Threshold)
}
