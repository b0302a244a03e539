package cli

import (
	"context"
	"fmt"
	"strings"

	"study-planner/internal/api"
	"study-planner/internal/domain"
	"study-planner/internal/ui"
)

// ScheduleInput carries class fields from flags. Nil fields were not given.
type ScheduleInput struct {
	Subject   *string
	Teacher   *string
	Day       *string
	StartTime *string
	EndTime   *string
	Classroom *string
	Color     *string
}

func (in ScheduleInput) apply(draft domain.ScheduleDraft) domain.ScheduleDraft {
	if in.Subject != nil {
		draft.Subject = *in.Subject
	}
	if in.Teacher != nil {
		draft.Teacher = *in.Teacher
	}
	if in.Day != nil {
		draft.Day = domain.Day(strings.ToLower(strings.TrimSpace(*in.Day)))
	}
	if in.StartTime != nil {
		draft.StartTime = strings.TrimSpace(*in.StartTime)
	}
	if in.EndTime != nil {
		draft.EndTime = strings.TrimSpace(*in.EndTime)
	}
	if in.Classroom != nil {
		draft.Classroom = *in.Classroom
	}
	if in.Color != nil {
		draft.Color = strings.TrimSpace(*in.Color)
	}
	return draft
}

// ScheduleCommand handles the schedule subcommands
type ScheduleCommand struct {
	app          *App
	planner      api.Planner
	errorHandler *ErrorHandler
}

// NewScheduleCommand creates a new schedule command handler
func NewScheduleCommand(app *App) *ScheduleCommand {
	return &ScheduleCommand{
		app:          app,
		planner:      app.planner,
		errorHandler: NewErrorHandler(),
	}
}

// List prints one day's classes, or the whole week when args is empty
func (c *ScheduleCommand) List(ctx context.Context, args []string) error {
	if len(args) > 0 {
		day := domain.Day(strings.ToLower(strings.TrimSpace(args[0])))
		items, err := c.planner.ScheduleForDay(ctx, day)
		if err != nil {
			return c.errorHandler.Handle("list schedule", err)
		}
		c.printDay(day, items)
		return nil
	}

	week, err := c.planner.WeeklySchedule(ctx)
	if err != nil {
		return c.errorHandler.Handle("list schedule", err)
	}
	c.app.println(ui.Heading(ui.IconSchedule, "Weekly schedule"))
	for _, day := range week {
		c.app.println("")
		c.printDay(day.Day, day.Items)
	}
	return nil
}

// Add creates a class
func (c *ScheduleCommand) Add(ctx context.Context, input ScheduleInput) error {
	item, err := c.planner.AddClass(ctx, input.apply(domain.ScheduleDraft{}))
	if err != nil {
		return c.errorHandler.Handle("add class", err)
	}
	c.app.notify(ctx, fmt.Sprintf("Class added: %s on %s (%s)", item.Subject, item.Day.Title(), item.ID))
	return nil
}

// Edit changes the given fields of an existing class
func (c *ScheduleCommand) Edit(ctx context.Context, id string, input ScheduleInput) error {
	item, err := c.planner.GetClass(ctx, id)
	if c.errorHandler.IsNotFoundError(err) {
		c.app.warn(fmt.Sprintf("No class with id %s", id))
		return nil
	}
	if err != nil {
		return c.errorHandler.Handle("edit class", err)
	}

	updated, err := c.planner.UpdateClass(ctx, id, input.apply(item.Draft()))
	if err != nil {
		return c.errorHandler.Handle("edit class", err)
	}
	if !updated {
		c.app.warn(fmt.Sprintf("No class with id %s", id))
		return nil
	}
	c.app.notify(ctx, "Class updated")
	return nil
}

// Delete removes a class
func (c *ScheduleCommand) Delete(ctx context.Context, id string) error {
	deleted, err := c.planner.DeleteClass(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("delete class", err)
	}
	if !deleted {
		c.app.warn(fmt.Sprintf("No class with id %s", id))
		return nil
	}
	c.app.notify(ctx, "Class deleted")
	return nil
}

func (c *ScheduleCommand) printDay(day domain.Day, items []domain.ScheduleItem) {
	c.app.println(ui.H2.Render(day.Title()))
	if len(items) == 0 {
		c.app.println(ui.Muted.Render("  No classes"))
		return
	}
	for _, item := range items {
		details := make([]string, 0, 2)
		if item.Teacher != "" {
			details = append(details, item.Teacher)
		}
		if item.Classroom != "" {
			details = append(details, item.Classroom)
		}
		c.app.printf("  %s %s-%s  %s  %s  %s\n",
			ui.Swatch(item.Color),
			item.StartTime,
			item.EndTime,
			item.Subject,
			ui.Muted.Render(strings.Join(details, ", ")),
			ui.Muted.Render(item.ID),
		)
	}
}
