package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"study-planner/internal/api"
	"study-planner/internal/domain"
	"study-planner/internal/services"
	"study-planner/internal/ui"
)

// TaskInput carries task fields from flags. Nil fields were not given.
type TaskInput struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *string
	Subject     *string
}

// apply overlays the given fields on draft
func (in TaskInput) apply(draft domain.TaskDraft) domain.TaskDraft {
	if in.Title != nil {
		draft.Title = *in.Title
	}
	if in.Description != nil {
		draft.Description = *in.Description
	}
	if in.DueDate != nil {
		draft.DueDate = *in.DueDate
	}
	if in.Priority != nil {
		draft.Priority = domain.Priority(strings.ToLower(strings.TrimSpace(*in.Priority)))
	}
	if in.Subject != nil {
		draft.Subject = *in.Subject
	}
	return draft
}

// TaskCommand handles the task subcommands
type TaskCommand struct {
	app          *App
	planner      api.Planner
	errorHandler *ErrorHandler
}

// NewTaskCommand creates a new task command handler
func NewTaskCommand(app *App) *TaskCommand {
	return &TaskCommand{
		app:          app,
		planner:      app.planner,
		errorHandler: NewErrorHandler(),
	}
}

// List prints the filtered task list with the dashboard counters
func (c *TaskCommand) List(ctx context.Context, filter services.TaskFilter) error {
	dashboard, err := c.planner.Dashboard(ctx, filter)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	c.app.println(ui.Heading(ui.IconTasks, "Tasks"))
	c.printStats(dashboard.Stats)
	c.app.println("")

	if len(dashboard.Tasks) == 0 {
		c.app.println(ui.Muted.Render("No tasks found."))
		return nil
	}
	c.printTasks(dashboard.Tasks, dashboard.Settings.CompactView, dashboard.Now)
	return nil
}

// Upcoming prints the next pending tasks by due date
func (c *TaskCommand) Upcoming(ctx context.Context) error {
	dashboard, err := c.planner.Dashboard(ctx, services.TaskFilter{})
	if err != nil {
		return c.errorHandler.Handle("list upcoming tasks", err)
	}

	c.app.println(ui.Heading(ui.IconCalendar, "Upcoming"))
	if len(dashboard.Upcoming) == 0 {
		c.app.println(ui.Muted.Render("Nothing pending."))
		return nil
	}
	c.printTasks(dashboard.Upcoming, true, dashboard.Now)
	return nil
}

// Completed prints the completed tasks in their stored order
func (c *TaskCommand) Completed(ctx context.Context) error {
	dashboard, err := c.planner.Dashboard(ctx, services.TaskFilter{Status: services.StatusCompleted})
	if err != nil {
		return c.errorHandler.Handle("list completed tasks", err)
	}

	c.app.println(ui.Heading(ui.IconDone, "Completed"))
	if len(dashboard.Tasks) == 0 {
		c.app.println(ui.Muted.Render("No completed tasks yet."))
		return nil
	}
	c.printTasks(dashboard.Tasks, dashboard.Settings.CompactView, dashboard.Now)
	return nil
}

// Stats prints the dashboard counters only
func (c *TaskCommand) Stats(ctx context.Context) error {
	dashboard, err := c.planner.Dashboard(ctx, services.TaskFilter{})
	if err != nil {
		return c.errorHandler.Handle("compute statistics", err)
	}
	c.printStats(dashboard.Stats)
	return nil
}

// Show prints one task in full
func (c *TaskCommand) Show(ctx context.Context, id string) error {
	task, err := c.planner.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}
	c.printTask(*task, false, c.planner.Now())
	return nil
}

// Add creates a task. The priority falls back to the defaultPriority setting.
func (c *TaskCommand) Add(ctx context.Context, input TaskInput) error {
	draft := input.apply(domain.TaskDraft{})
	if input.Priority == nil {
		settings, err := c.planner.GetSettings(ctx)
		if err != nil {
			return c.errorHandler.Handle("add task", err)
		}
		draft.Priority = settings.DefaultPriority
	}

	task, err := c.planner.AddTask(ctx, draft)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.app.notify(ctx, fmt.Sprintf("Task added: %s (%s)", task.Title, task.ID))
	return nil
}

// Edit changes the given fields of an existing task
func (c *TaskCommand) Edit(ctx context.Context, id string, input TaskInput) error {
	task, err := c.planner.GetTask(ctx, id)
	if c.errorHandler.IsNotFoundError(err) {
		c.app.warn(fmt.Sprintf("No task with id %s", id))
		return nil
	}
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	updated, err := c.planner.UpdateTask(ctx, id, input.apply(task.Draft()))
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}
	if !updated {
		c.app.warn(fmt.Sprintf("No task with id %s", id))
		return nil
	}

	c.app.notify(ctx, "Task updated")
	return nil
}

// Toggle flips the completed flag of a task
func (c *TaskCommand) Toggle(ctx context.Context, id string) error {
	toggled, err := c.planner.ToggleTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}
	if !toggled {
		c.app.warn(fmt.Sprintf("No task with id %s", id))
		return nil
	}

	task, err := c.planner.GetTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}
	if task.Completed {
		c.app.notify(ctx, "Task completed: "+task.Title)
	} else {
		c.app.notify(ctx, "Task reopened: "+task.Title)
	}
	return nil
}

// Delete removes a task
func (c *TaskCommand) Delete(ctx context.Context, id string) error {
	deleted, err := c.planner.DeleteTask(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}
	if !deleted {
		c.app.warn(fmt.Sprintf("No task with id %s", id))
		return nil
	}

	c.app.notify(ctx, "Task deleted")
	return nil
}

func (c *TaskCommand) printStats(stats services.TaskStats) {
	c.app.printf("%s  %s  %s  %s\n",
		ui.LabelValue("Total", stats.Total),
		ui.LabelValue("Completed", ui.Good.Render(fmt.Sprint(stats.Completed))),
		ui.LabelValue("Pending", ui.Warn.Render(fmt.Sprint(stats.Pending))),
		ui.LabelValue("Overdue", ui.Bad.Render(fmt.Sprint(stats.Overdue))),
	)
}

func (c *TaskCommand) printTasks(tasks []domain.Task, compact bool, now time.Time) {
	for _, task := range tasks {
		c.printTask(task, compact, now)
	}
}

func (c *TaskCommand) printTask(task domain.Task, compact bool, now time.Time) {
	loc := now.Location()
	due := c.app.formatDueDate(task.DueDate, loc)
	if services.IsOverdue(task, now) {
		due = ui.Bad.Render(due + " overdue")
	}

	if compact {
		c.app.printf("%s %s  %s  %s  %s\n",
			ui.CheckIcon(task.Completed),
			ui.Truncate(task.Title, c.app.config.Display.SummaryWidth),
			ui.PriorityText(string(task.Priority)),
			due,
			ui.Muted.Render(task.ID),
		)
		return
	}

	c.app.printf("%s %s\n", ui.CheckIcon(task.Completed), ui.H2.Render(task.Title))
	c.app.printf("   %s\n", ui.LabelValue("ID", ui.Muted.Render(task.ID)))
	c.app.printf("   %s\n", ui.LabelValue("Due", due))
	c.app.printf("   %s\n", ui.LabelValue("Priority", ui.PriorityText(string(task.Priority))))
	if task.Subject != "" {
		c.app.printf("   %s\n", ui.LabelValue("Subject", task.Subject))
	}
	if task.Description != "" {
		c.app.printf("   %s\n", ui.Muted.Render(ui.Truncate(task.Description, c.app.config.Display.SummaryWidth)))
	}
}
