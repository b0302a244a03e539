package cli

import (
	"context"
	"fmt"

	"study-planner/internal/api"
	"study-planner/internal/domain"
	"study-planner/internal/ui"
)

// SettingsCommand handles the settings subcommands
type SettingsCommand struct {
	app          *App
	planner      api.Planner
	errorHandler *ErrorHandler
}

// NewSettingsCommand creates a new settings command handler
func NewSettingsCommand(app *App) *SettingsCommand {
	return &SettingsCommand{
		app:          app,
		planner:      app.planner,
		errorHandler: NewErrorHandler(),
	}
}

// Show prints every setting in display order
func (c *SettingsCommand) Show(ctx context.Context) error {
	settings, err := c.planner.GetSettings(ctx)
	if err != nil {
		return c.errorHandler.Handle("show settings", err)
	}
	c.app.println(ui.Heading(ui.IconSettings, "Settings"))
	c.printSettings(settings)
	return nil
}

// Set changes one setting and prints its new value
func (c *SettingsCommand) Set(ctx context.Context, key, value string) error {
	settings, err := c.planner.SetSetting(ctx, key, value)
	if err != nil {
		return c.errorHandler.Handle("change setting", err)
	}
	current, _ := settings.Value(key)
	c.app.println(ui.LabelValue(key, current))
	return nil
}

// Reset restores the default settings
func (c *SettingsCommand) Reset(ctx context.Context) error {
	if err := c.planner.ResetSettings(ctx); err != nil {
		return c.errorHandler.Handle("reset settings", err)
	}
	c.app.notify(ctx, "Settings restored to defaults")
	return nil
}

func (c *SettingsCommand) printSettings(settings domain.AppSettings) {
	for _, key := range domain.SettingKeys {
		value, _ := settings.Value(key)
		c.app.println(fmt.Sprintf("  %s", ui.LabelValue(key, value)))
	}
}
