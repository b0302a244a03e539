package cli

import (
	"context"
	"fmt"

	"study-planner/internal/api"
	"study-planner/internal/domain"
	"study-planner/internal/ui"
)

// ProfileInput carries profile fields from flags. Nil fields were not given.
type ProfileInput struct {
	Name        *string
	Email       *string
	Avatar      *string
	Bio         *string
	Institution *string
	Career      *string
	Semester    *string
}

func (in ProfileInput) apply(p domain.UserProfile) domain.UserProfile {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Name, in.Name)
	set(&p.Email, in.Email)
	set(&p.Avatar, in.Avatar)
	set(&p.Bio, in.Bio)
	set(&p.Institution, in.Institution)
	set(&p.Career, in.Career)
	set(&p.Semester, in.Semester)
	return p
}

// ProfileCommand handles the profile subcommands
type ProfileCommand struct {
	app          *App
	planner      api.Planner
	errorHandler *ErrorHandler
}

// NewProfileCommand creates a new profile command handler
func NewProfileCommand(app *App) *ProfileCommand {
	return &ProfileCommand{
		app:          app,
		planner:      app.planner,
		errorHandler: NewErrorHandler(),
	}
}

// Show prints the profile card, the task counters and the goals
func (c *ProfileCommand) Show(ctx context.Context) error {
	view, err := c.planner.GetProfile(ctx)
	if err != nil {
		return c.errorHandler.Handle("show profile", err)
	}

	p := view.Profile
	initials := p.Initials()
	if initials == "" {
		initials = "?"
	}

	card := fmt.Sprintf("%s  %s\n%s\n%s",
		ui.Title.Render("["+initials+"]"),
		ui.H2.Render(blankAs(p.Name, "Unnamed student")),
		ui.Muted.Render(blankAs(p.Email, "no email")),
		blankAs(p.Bio, ui.Muted.Render("no bio")),
	)
	c.app.println(ui.Heading(ui.IconProfile, "Profile"))
	c.app.println(ui.Panel.Render(card))

	c.app.println(ui.LabelValue("Institution", blankAs(p.Institution, "-")))
	c.app.println(ui.LabelValue("Career", blankAs(p.Career, "-")))
	c.app.println(ui.LabelValue("Semester", blankAs(p.Semester, "-")))
	c.app.println("")

	s := view.Summary
	c.app.printf("%s  %s  %s\n",
		ui.LabelValue("Completed", s.Completed),
		ui.LabelValue("Total", s.Total),
		ui.LabelValue("Subjects", s.Subjects),
	)
	c.app.println("")

	c.app.println(ui.H2.Render("Goals"))
	if len(p.Goals) == 0 {
		c.app.println(ui.Muted.Render("  No goals yet."))
	}
	for i, goal := range p.Goals {
		c.app.printf("  %d. %s\n", i+1, goal)
	}
	return nil
}

// Set saves the given profile fields
func (c *ProfileCommand) Set(ctx context.Context, input ProfileInput) error {
	view, err := c.planner.GetProfile(ctx)
	if err != nil {
		return c.errorHandler.Handle("update profile", err)
	}
	if err := c.planner.SaveProfile(ctx, input.apply(view.Profile)); err != nil {
		return c.errorHandler.Handle("update profile", err)
	}
	c.app.notify(ctx, "Profile saved")
	return nil
}

// AddGoal appends a goal
func (c *ProfileCommand) AddGoal(ctx context.Context, goal string) error {
	if err := c.planner.AddGoal(ctx, goal); err != nil {
		return c.errorHandler.Handle("add goal", err)
	}
	c.app.notify(ctx, "Goal added")
	return nil
}

// RemoveGoal drops the goal at the 1-based position shown by Show
func (c *ProfileCommand) RemoveGoal(ctx context.Context, position int) error {
	if err := c.planner.RemoveGoal(ctx, position-1); err != nil {
		return c.errorHandler.Handle("remove goal", err)
	}
	c.app.notify(ctx, "Goal removed")
	return nil
}
