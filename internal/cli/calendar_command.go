package cli

import (
	"context"
	"fmt"
	"strings"

	"study-planner/internal/api"
	"study-planner/internal/services"
	"study-planner/internal/ui"
)

// CalendarCommand handles the calendar command
type CalendarCommand struct {
	app          *App
	planner      api.Planner
	errorHandler *ErrorHandler
}

// NewCalendarCommand creates a new calendar command handler
func NewCalendarCommand(app *App) *CalendarCommand {
	return &CalendarCommand{
		app:          app,
		planner:      app.planner,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the tasks due on the given day (today when args is empty),
// preceded by the month grid when month is set
func (c *CalendarCommand) Execute(ctx context.Context, args []string, month bool) error {
	now := c.planner.Now()
	date := now
	if len(args) > 0 {
		parsed, err := parseDate(args[0], now.Location())
		if err != nil {
			return c.errorHandler.Handle("show calendar", err)
		}
		date = parsed
	}

	view, err := c.planner.Calendar(ctx, date)
	if err != nil {
		return c.errorHandler.Handle("show calendar", err)
	}

	if month {
		c.printMonth(view)
		c.app.println("")
	}

	c.app.println(ui.Heading(ui.IconCalendar, view.Date.Format("Monday, 2 January 2006")))
	if len(view.Tasks) == 0 {
		c.app.println(ui.Muted.Render("No tasks for this day."))
		return nil
	}
	for _, task := range view.Tasks {
		c.app.printf("%s %s  %s  %s\n",
			ui.CheckIcon(task.Completed),
			task.Title,
			ui.PriorityText(string(task.Priority)),
			ui.Muted.Render(blankAs(task.Subject, "-")),
		)
	}
	return nil
}

// printMonth draws the grid; days with tasks carry a dot, today is highlighted
func (c *CalendarCommand) printMonth(view *api.CalendarView) {
	c.app.println(ui.H2.Render(view.Date.Format("January 2006")))
	headers := make([]string, len(view.Headers))
	for i, h := range view.Headers {
		headers[i] = fmt.Sprintf("%-4s", h)
	}
	c.app.println(ui.Muted.Render(strings.TrimRight(strings.Join(headers, ""), " ")))

	for _, week := range view.Weeks {
		var line strings.Builder
		for _, cell := range week {
			line.WriteString(renderCell(cell))
		}
		c.app.println(strings.TrimRight(line.String(), " "))
	}
}

func renderCell(cell services.CalendarCell) string {
	if !cell.InMonth {
		return "    "
	}
	marker := " "
	if cell.HasTasks {
		marker = "•"
	}
	day := fmt.Sprintf("%2d", cell.Date.Day())
	if cell.IsToday {
		day = ui.Today.Render(day)
	}
	return day + marker + " "
}
