package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"study-planner/internal/api"
	"study-planner/internal/config"
	"study-planner/internal/logging"
	"study-planner/internal/services"
)

// PlannerFactory opens the planner once flags have been applied to the
// configuration. The returned func releases the underlying store.
type PlannerFactory func(cfg *config.Config) (api.Planner, func() error, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	factory PlannerFactory
	planner api.Planner
	closer  func() error
	config  *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(factory PlannerFactory, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		factory: factory,
		config:  cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "sp",
		Short: "A command-line study planner",
		Long: `Study Planner (sp) keeps your tasks, weekly class schedule, profile and
achievements in a local database.

EXAMPLES:
  sp task add "Essay draft" --due 2026-10-20 --subject History
  sp task list --status pending --priority high
  sp task toggle <id>
  sp calendar --month
  sp schedule add --subject Physics --day monday --start 08:00 --end 09:30
  sp achievements
  sp settings set showCompleted false
  sp export --dir ~/backups
  sp storage

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > .env > defaults

    SP_DATA_DIR                Data directory (default: ~/.studyplanner)
    SP_DB_FILENAME             Database filename (default: planner.db)
    SP_DB_BUSY_TIMEOUT         SQLite busy timeout (default: 5s)
    SP_DISPLAY_DATE_FORMAT     Date layout (default: 2006-01-02)
    SP_DISPLAY_TIME_FORMAT     Time layout (default: 15:04)
    SP_DISPLAY_SUMMARY_WIDTH   Maximum title width in lists (default: 72)
    SP_APP_TIMEOUT             Per-command timeout (default: 30s)
    SP_APP_VERBOSE             Verbose logging (default: false)
    SP_DEBUG                   Debug logging
    SP_BACKUP_DIR              Export directory (default: .)
    SP_CONFIG                  YAML config file (default: <data dir>/config.yaml)
    SP_ENV                     development, testing or production`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(cmd.Flags()); err != nil {
				return err
			}
			return root.openPlanner()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.Close()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the cobra command, mainly for tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Close releases the planner's store if one was opened. It is safe to call
// more than once.
func (r *RootCommand) Close() error {
	if r.closer == nil {
		return nil
	}
	closer := r.closer
	r.closer = nil
	r.planner = nil
	return closer()
}

func (r *RootCommand) openPlanner() error {
	if r.planner != nil {
		return nil
	}
	planner, closer, err := r.factory(r.config)
	if err != nil {
		return NewErrorHandler().Handle("open planner", err)
	}
	r.planner = planner
	r.closer = closer
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("data-dir", "", "Data directory (overrides SP_DATA_DIR)")
	flags.String("db-filename", "", "Database filename (overrides SP_DB_FILENAME)")
	flags.Duration("busy-timeout", 0, "SQLite busy timeout (overrides SP_DB_BUSY_TIMEOUT)")

	// Display configuration
	flags.String("date-format", "", "Date layout (overrides SP_DISPLAY_DATE_FORMAT)")
	flags.String("time-format", "", "Time layout (overrides SP_DISPLAY_TIME_FORMAT)")
	flags.Int("summary-width", 0, "Maximum title width in lists (overrides SP_DISPLAY_SUMMARY_WIDTH)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Per-command timeout (overrides SP_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides SP_APP_VERBOSE)")
	flags.Bool("debug", false, "Enable debug logging (overrides SP_DEBUG)")

	// Backup configuration
	flags.String("backup-dir", "", "Export directory (overrides SP_BACKUP_DIR)")
}

// getConfigFromFlags applies the flags the user actually set, then validates
// the result and configures logging
func (r *RootCommand) getConfigFromFlags(flags *pflag.FlagSet) error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	overrides := &config.ConfigOverrides{}
	if flags.Changed("data-dir") {
		v, _ := flags.GetString("data-dir")
		overrides.DataDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("busy-timeout") {
		v, _ := flags.GetDuration("busy-timeout")
		overrides.BusyTimeout = &v
	}
	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		overrides.DateFormat = &v
	}
	if flags.Changed("time-format") {
		v, _ := flags.GetString("time-format")
		overrides.TimeFormat = &v
	}
	if flags.Changed("summary-width") {
		v, _ := flags.GetInt("summary-width")
		overrides.SummaryWidth = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		overrides.Debug = &v
	}
	if flags.Changed("backup-dir") {
		v, _ := flags.GetString("backup-dir")
		overrides.BackupDir = &v
	}

	overrides.Apply(r.config)
	if err := r.config.Validate(); err != nil {
		return err
	}

	logging.Configure(r.config.Application.Verbose, r.config.Application.Debug)
	return nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// runE wraps a handler with the per-command timeout and an App bound to the
// command's streams
func (r *RootCommand) runE(fn func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
		defer cancel()

		app := NewAppWithConfig(r.planner, r.config).WithIO(cmd.OutOrStdout(), cmd.InOrStdin())
		return fn(ctx, app, cmd, args)
	}
}

// changedString returns the flag value when the user set it, nil otherwise
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newTaskCmd(),
		r.newCalendarCmd(),
		r.newScheduleCmd(),
		r.newAchievementsCmd(),
		r.newProfileCmd(),
		r.newSettingsCmd(),
		r.newExportCmd(),
		r.newImportCmd(),
		r.newClearCmd(),
		r.newStorageCmd(),
	)
}

func addTaskFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Task title")
	cmd.Flags().StringP("description", "d", "", "Task description")
	cmd.Flags().String("due", "", "Due date, YYYY-MM-DD or YYYY-MM-DDTHH:MM")
	cmd.Flags().StringP("priority", "p", "", "Priority: low, medium or high")
	cmd.Flags().StringP("subject", "s", "", "Subject")
}

func taskInputFromFlags(cmd *cobra.Command) TaskInput {
	return TaskInput{
		Title:       changedString(cmd, "title"),
		Description: changedString(cmd, "description"),
		DueDate:     changedString(cmd, "due"),
		Priority:    changedString(cmd, "priority"),
		Subject:     changedString(cmd, "subject"),
	}
}

func (r *RootCommand) newTaskCmd() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage study tasks",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks with the dashboard counters",
		Long: `List tasks with optional filtering.

The search text matches the title or subject, ignoring case. Completed tasks
are hidden when the showCompleted setting is off, unless --status completed
is given.`,
		Args: cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			status, _ := cmd.Flags().GetString("status")
			priority, _ := cmd.Flags().GetString("priority")
			filter := services.TaskFilter{
				Search:   search,
				Status:   services.StatusFilter(strings.ToLower(status)),
				Priority: strings.ToLower(priority),
			}
			return NewTaskCommand(app).List(ctx, filter)
		}),
	}
	listCmd.Flags().String("search", "", "Match title or subject")
	listCmd.Flags().String("status", "all", "all, pending or completed")
	listCmd.Flags().String("priority", "all", "all, low, medium or high")

	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show the next pending tasks by due date",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewTaskCommand(app).Upcoming(ctx)
		}),
	}

	completedCmd := &cobra.Command{
		Use:   "completed",
		Short: "Show completed tasks",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewTaskCommand(app).Completed(ctx)
		}),
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show total, completed, pending and overdue counts",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewTaskCommand(app).Stats(ctx)
		}),
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewTaskCommand(app).Show(ctx, args[0])
		}),
	}

	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Long: `Add a task. The title can be given as arguments or with --title.
The priority defaults to the defaultPriority setting.`,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			input := taskInputFromFlags(cmd)
			if len(args) > 0 {
				title := strings.Join(args, " ")
				input.Title = &title
			}
			return NewTaskCommand(app).Add(ctx, input)
		}),
	}
	addTaskFlags(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewTaskCommand(app).Edit(ctx, args[0], taskInputFromFlags(cmd))
		}),
	}
	addTaskFlags(editCmd)

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task completed or pending",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewTaskCommand(app).Toggle(ctx, args[0])
		}),
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewTaskCommand(app).Delete(ctx, args[0])
		}),
	}

	taskCmd.AddCommand(listCmd, upcomingCmd, completedCmd, statsCmd, showCmd, addCmd, editCmd, toggleCmd, deleteCmd)
	return taskCmd
}

func (r *RootCommand) newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar [YYYY-MM-DD]",
		Short: "Show the tasks due on a day",
		Long: `Show the tasks due on a day, today by default. With --month the month grid
is drawn first, starting on the weekStartsOn setting, with a dot on days
that have tasks.`,
		Args: cobra.MaximumNArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetBool("month")
			return NewCalendarCommand(app).Execute(ctx, args, month)
		}),
	}
	cmd.Flags().BoolP("month", "m", false, "Draw the month grid")
	return cmd
}

func addScheduleFlags(cmd *cobra.Command) {
	cmd.Flags().String("subject", "", "Subject")
	cmd.Flags().String("teacher", "", "Teacher")
	cmd.Flags().String("day", "", "monday to saturday")
	cmd.Flags().String("start", "", "Start time, HH:MM")
	cmd.Flags().String("end", "", "End time, HH:MM")
	cmd.Flags().String("classroom", "", "Classroom")
	cmd.Flags().String("color", "", "Colour, #RRGGBB")
}

func scheduleInputFromFlags(cmd *cobra.Command) ScheduleInput {
	return ScheduleInput{
		Subject:   changedString(cmd, "subject"),
		Teacher:   changedString(cmd, "teacher"),
		Day:       changedString(cmd, "day"),
		StartTime: changedString(cmd, "start"),
		EndTime:   changedString(cmd, "end"),
		Classroom: changedString(cmd, "classroom"),
		Color:     changedString(cmd, "color"),
	}
}

func (r *RootCommand) newScheduleCmd() *cobra.Command {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage the weekly class schedule",
	}

	listCmd := &cobra.Command{
		Use:   "list [day]",
		Short: "Show the week, or one day, in start-time order",
		Args:  cobra.MaximumNArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewScheduleCommand(app).List(ctx, args)
		}),
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a class",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewScheduleCommand(app).Add(ctx, scheduleInputFromFlags(cmd))
		}),
	}
	addScheduleFlags(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a class",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewScheduleCommand(app).Edit(ctx, args[0], scheduleInputFromFlags(cmd))
		}),
	}
	addScheduleFlags(editCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a class",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewScheduleCommand(app).Delete(ctx, args[0])
		}),
	}

	scheduleCmd.AddCommand(listCmd, addCmd, editCmd, deleteCmd)
	return scheduleCmd
}

func (r *RootCommand) newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show badges and progress",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewAchievementsCommand(app).Execute(ctx)
		}),
	}
}

func (r *RootCommand) newProfileCmd() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your student profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewProfileCommand(app).Show(ctx)
		}),
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewProfileCommand(app).Set(ctx, ProfileInput{
				Name:        changedString(cmd, "name"),
				Email:       changedString(cmd, "email"),
				Avatar:      changedString(cmd, "avatar"),
				Bio:         changedString(cmd, "bio"),
				Institution: changedString(cmd, "institution"),
				Career:      changedString(cmd, "career"),
				Semester:    changedString(cmd, "semester"),
			})
		}),
	}
	for _, name := range []string{"name", "email", "avatar", "bio", "institution", "career", "semester"} {
		setCmd.Flags().String(name, "", "Profile "+name)
	}

	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage academic goals",
	}
	goalAddCmd := &cobra.Command{
		Use:   "add <goal>",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewProfileCommand(app).AddGoal(ctx, strings.Join(args, " "))
		}),
	}
	goalRemoveCmd := &cobra.Command{
		Use:   "remove <number>",
		Short: "Remove the goal at the position shown by profile show",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("failed to remove goal: %q is not a number", args[0])
			}
			return NewProfileCommand(app).RemoveGoal(ctx, position)
		}),
	}
	goalCmd.AddCommand(goalAddCmd, goalRemoveCmd)

	profileCmd.AddCommand(showCmd, setCmd, goalCmd)
	return profileCmd
}

func (r *RootCommand) newSettingsCmd() *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show all settings",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewSettingsCommand(app).Show(ctx)
		}),
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: `Change one setting. Keys: notifications, autoSave, compactView,
showCompleted (true/false), defaultPriority (low/medium/high),
weekStartsOn (monday/sunday).`,
		Args: cobra.ExactArgs(2),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewSettingsCommand(app).Set(ctx, args[0], args[1])
		}),
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewSettingsCommand(app).Reset(ctx)
		}),
	}

	settingsCmd.AddCommand(showCmd, setCmd, resetCmd)
	return settingsCmd
}

func (r *RootCommand) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write tasks and settings to a JSON backup",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return NewDataCommand(app).Export(ctx, dir)
		}),
	}
	cmd.Flags().String("dir", "", "Directory for the backup file (default: backup dir)")
	return cmd
}

func (r *RootCommand) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore tasks and settings from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewDataCommand(app).Import(ctx, args[0])
		}),
	}
}

func (r *RootCommand) newStorageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "storage",
		Short: "Show the database path and the stored slots",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			return NewDataCommand(app).Storage(ctx)
		}),
	}
}

func (r *RootCommand) newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks and reset settings",
		Args:  cobra.NoArgs,
		RunE: r.runE(func(ctx context.Context, app *App, cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			return NewDataCommand(app).Clear(ctx, yes)
		}),
	}
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	return cmd
}
