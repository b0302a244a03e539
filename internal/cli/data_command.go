package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"study-planner/internal/api"
	"study-planner/internal/errors"
	"study-planner/internal/ui"
)

// DataCommand handles export, import and clear
type DataCommand struct {
	app          *App
	planner      api.Planner
	errorHandler *ErrorHandler
}

// NewDataCommand creates a new data management command handler
func NewDataCommand(app *App) *DataCommand {
	return &DataCommand{
		app:          app,
		planner:      app.planner,
		errorHandler: NewErrorHandler(),
	}
}

// Export writes the backup file into dir, or the configured backup directory
// when dir is empty
func (c *DataCommand) Export(ctx context.Context, dir string) error {
	if dir == "" {
		dir = c.app.config.Backup.Dir
	}

	artifact, err := c.planner.Export(ctx)
	if err != nil {
		return c.errorHandler.Handle("export data", err)
	}

	path := filepath.Join(dir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
		return c.errorHandler.Handle("export data", errors.NewExportError("write "+path, err))
	}

	c.app.println(ui.LabelValue("Exported", path))
	return nil
}

// Import applies a backup file
func (c *DataCommand) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return c.errorHandler.Handle("import data", errors.NewInvalidInputError("file", path, err.Error()))
	}

	result, err := c.planner.Import(ctx, data)
	if err != nil {
		return c.errorHandler.Handle("import data", err)
	}

	parts := make([]string, 0, 2)
	if result.TasksImported {
		parts = append(parts, fmt.Sprintf("%d tasks", result.TaskCount))
	}
	if result.SettingsImported {
		parts = append(parts, "settings")
	}
	if len(parts) == 0 {
		c.app.warn("The file contained nothing to import")
		return nil
	}
	c.app.notify(ctx, "Imported "+strings.Join(parts, " and "))
	return nil
}

// Clear deletes all tasks and resets settings. Without confirmed the user
// is asked first and anything but "y" or "yes" cancels.
func (c *DataCommand) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		c.app.printf("%s ", ui.Warn.Render("Delete all tasks and reset settings? This cannot be undone [y/N]:"))
		answer, _ := bufio.NewReader(c.app.in).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			c.app.println("Clear cancelled.")
			return nil
		}
	}

	if err := c.planner.ClearAll(ctx); err != nil {
		return c.errorHandler.Handle("clear data", err)
	}
	c.app.notify(ctx, "All tasks deleted and settings reset")
	return nil
}

// Storage lists what the database holds, one line per slot
func (c *DataCommand) Storage(ctx context.Context) error {
	slots, err := c.planner.Storage(ctx)
	if err != nil {
		return c.errorHandler.Handle("inspect storage", err)
	}

	c.app.println(ui.Heading(ui.IconBox, "Storage"))
	c.app.println(ui.LabelValue("Database", c.app.config.GetDatabasePath()))
	if len(slots) == 0 {
		c.app.println(ui.Muted.Render("Nothing stored yet."))
		return nil
	}

	layout := c.app.config.Display.DateFormat + " " + c.app.config.Display.TimeFormat
	loc := c.planner.Now().Location()
	for _, slot := range slots {
		detail := fmt.Sprintf("%d bytes", slot.Size)
		if !slot.UpdatedAt.IsZero() {
			detail += ", updated " + slot.UpdatedAt.In(loc).Format(layout)
		}
		c.app.println(ui.LabelValue(slot.Key, detail))
	}
	return nil
}
