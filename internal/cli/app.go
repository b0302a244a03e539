package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"study-planner/internal/api"
	"study-planner/internal/config"
	"study-planner/internal/domain"
	"study-planner/internal/errors"
	"study-planner/internal/logging"
	"study-planner/internal/ui"
)

// App holds what every command handler needs: the planner, the display
// configuration and the streams to talk to the user on.
type App struct {
	planner api.Planner
	config  *config.Config
	out     io.Writer
	in      io.Reader
}

// NewApp creates a new CLI application instance with default configuration
func NewApp(planner api.Planner) *App {
	return NewAppWithConfig(planner, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application instance with the given configuration
func NewAppWithConfig(planner api.Planner, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		planner: planner,
		config:  cfg,
		out:     os.Stdout,
		in:      os.Stdin,
	}
}

// WithIO returns a copy of the app writing to out and reading from in
func (a *App) WithIO(out io.Writer, in io.Reader) *App {
	copied := *a
	copied.out = out
	copied.in = in
	return &copied
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// notify prints a success notice unless notifications are turned off.
// A settings read failure only costs the notice.
func (a *App) notify(ctx context.Context, message string) {
	settings, err := a.planner.GetSettings(ctx)
	if err != nil {
		logging.Debugf("reading settings for notice: %v", err)
		return
	}
	if !settings.Notifications {
		return
	}
	a.println(ui.Good.Render(ui.IconDone + " " + message))
}

// warn prints a notice that is shown regardless of settings
func (a *App) warn(message string) {
	a.println(ui.Warn.Render(ui.IconWarn + " " + message))
}

// formatDueDate renders a due date with the configured layouts. Dates that
// do not parse are shown as stored.
func (a *App) formatDueDate(raw string, loc *time.Location) string {
	due, ok := domain.ParseDueDate(raw, loc)
	if !ok {
		return raw
	}
	if due.Hour() == 0 && due.Minute() == 0 {
		return due.Format(a.config.Display.DateFormat)
	}
	return due.Format(a.config.Display.DateFormat + " " + a.config.Display.TimeFormat)
}

// parseDate reads a YYYY-MM-DD argument as a calendar day in loc
func parseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("date", s, "expected YYYY-MM-DD")
	}
	return domain.DateOf(t, time.UTC).Start(loc), nil
}

func blankAs(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
