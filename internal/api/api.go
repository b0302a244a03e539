package api

import (
	"context"
	"time"

	"study-planner/internal/domain"
	"study-planner/internal/errors"
	"study-planner/internal/logging"
	"study-planner/internal/persist"
	"study-planner/internal/repository"
	"study-planner/internal/services"
	"study-planner/internal/validation"
)

// Planner defines every operation the CLI performs against the study data.
type Planner interface {
	// Task operations
	ListTasks(ctx context.Context, filter services.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	AddTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, draft domain.TaskDraft) (bool, error)
	ToggleTask(ctx context.Context, id string) (bool, error)
	DeleteTask(ctx context.Context, id string) (bool, error)

	// Schedule operations
	ListSchedule(ctx context.Context) ([]domain.ScheduleItem, error)
	ScheduleForDay(ctx context.Context, day domain.Day) ([]domain.ScheduleItem, error)
	WeeklySchedule(ctx context.Context) ([]services.DaySchedule, error)
	GetClass(ctx context.Context, id string) (*domain.ScheduleItem, error)
	AddClass(ctx context.Context, draft domain.ScheduleDraft) (*domain.ScheduleItem, error)
	UpdateClass(ctx context.Context, id string, draft domain.ScheduleDraft) (bool, error)
	DeleteClass(ctx context.Context, id string) (bool, error)

	// Profile operations
	GetProfile(ctx context.Context) (*ProfileView, error)
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	AddGoal(ctx context.Context, goal string) error
	RemoveGoal(ctx context.Context, index int) error

	// Settings operations
	GetSettings(ctx context.Context) (domain.AppSettings, error)
	SetSetting(ctx context.Context, key, value string) (domain.AppSettings, error)
	ResetSettings(ctx context.Context) error

	// Backup operations
	Export(ctx context.Context) (*services.Artifact, error)
	Import(ctx context.Context, data []byte) (*services.ImportResult, error)
	ClearAll(ctx context.Context) error

	// Composite views
	Dashboard(ctx context.Context, filter services.TaskFilter) (*Dashboard, error)
	Calendar(ctx context.Context, date time.Time) (*CalendarView, error)
	Achievements(ctx context.Context) (*AchievementsView, error)

	// Storage lists the stored slots when the backend can enumerate them
	Storage(ctx context.Context) ([]persist.SlotInfo, error)

	// Now returns the planner's clock reading
	Now() time.Time
}

// Option configures a planner built by New.
type Option func(*plannerImpl)

// WithClock replaces time.Now. The clock's location is used for every
// calendar-day computation.
func WithClock(now func() time.Time) Option {
	return func(p *plannerImpl) {
		p.now = now
	}
}

// WithIDGenerator replaces the time-ordered uuid generator.
func WithIDGenerator(newID repository.IDGenerator) Option {
	return func(p *plannerImpl) {
		p.newID = newID
	}
}

type plannerImpl struct {
	store    persist.KeyValueStore
	tasks    repository.TaskRepository
	schedule repository.ScheduleRepository
	profile  repository.ProfileRepository
	settings repository.SettingsRepository
	backup   services.BackupService

	taskValidator     *validation.TaskValidator
	scheduleValidator *validation.ScheduleValidator
	profileValidator  *validation.ProfileValidator

	now   func() time.Time
	newID repository.IDGenerator
}

// New creates a planner whose repositories all persist to store.
func New(store persist.KeyValueStore, opts ...Option) Planner {
	p := &plannerImpl{
		store:             store,
		taskValidator:     validation.NewTaskValidator(),
		scheduleValidator: validation.NewScheduleValidator(),
		profileValidator:  validation.NewProfileValidator(),
		now:               time.Now,
		newID:             repository.NewTimeOrderedID,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.tasks = repository.NewTaskRepository(store, p.newID)
	p.schedule = repository.NewScheduleRepository(store, p.newID)
	p.profile = repository.NewProfileRepository(store)
	p.settings = repository.NewSettingsRepository(store)
	p.backup = services.NewBackupService(p.tasks, p.settings)
	return p
}

func (p *plannerImpl) Now() time.Time {
	return p.now()
}

// Storage returns nothing for backends that cannot list their contents
func (p *plannerImpl) Storage(ctx context.Context) ([]persist.SlotInfo, error) {
	inventory, ok := p.store.(persist.Inventory)
	if !ok {
		return []persist.SlotInfo{}, nil
	}
	return inventory.Slots(ctx)
}

// ========== Tasks ==========

func (p *plannerImpl) ListTasks(ctx context.Context, filter services.TaskFilter) ([]domain.Task, error) {
	if err := p.taskValidator.ValidateFilter(string(filter.Status), filter.Priority); err != nil {
		return nil, err
	}

	tasks, err := p.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return services.FilterTasks(tasks, filter), nil
}

func (p *plannerImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if err := p.taskValidator.ValidateID(id); err != nil {
		return nil, err
	}

	task, ok, err := p.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewNotFoundError("task", id)
	}
	return &task, nil
}

func (p *plannerImpl) AddTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	cleaned, err := p.taskValidator.ValidateDraft(draft)
	if err != nil {
		return nil, err
	}

	task, err := p.tasks.Add(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	logging.WithField("task_id", task.ID).Debug("task added")
	return &task, nil
}

func (p *plannerImpl) UpdateTask(ctx context.Context, id string, draft domain.TaskDraft) (bool, error) {
	if err := p.taskValidator.ValidateID(id); err != nil {
		return false, err
	}
	cleaned, err := p.taskValidator.ValidateDraft(draft)
	if err != nil {
		return false, err
	}
	return p.tasks.Update(ctx, id, cleaned)
}

func (p *plannerImpl) ToggleTask(ctx context.Context, id string) (bool, error) {
	if err := p.taskValidator.ValidateID(id); err != nil {
		return false, err
	}
	return p.tasks.ToggleComplete(ctx, id)
}

func (p *plannerImpl) DeleteTask(ctx context.Context, id string) (bool, error) {
	if err := p.taskValidator.ValidateID(id); err != nil {
		return false, err
	}
	return p.tasks.Remove(ctx, id)
}

// ========== Schedule ==========

func (p *plannerImpl) ListSchedule(ctx context.Context) ([]domain.ScheduleItem, error) {
	return p.schedule.List(ctx)
}

func (p *plannerImpl) ScheduleForDay(ctx context.Context, day domain.Day) ([]domain.ScheduleItem, error) {
	if err := p.scheduleValidator.ValidateDay(day); err != nil {
		return nil, err
	}

	items, err := p.schedule.List(ctx)
	if err != nil {
		return nil, err
	}
	return services.ScheduleForDay(items, day), nil
}

func (p *plannerImpl) WeeklySchedule(ctx context.Context) ([]services.DaySchedule, error) {
	items, err := p.schedule.List(ctx)
	if err != nil {
		return nil, err
	}
	return services.WeeklySchedule(items), nil
}

func (p *plannerImpl) GetClass(ctx context.Context, id string) (*domain.ScheduleItem, error) {
	item, ok, err := p.schedule.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewNotFoundError("class", id)
	}
	return &item, nil
}

func (p *plannerImpl) AddClass(ctx context.Context, draft domain.ScheduleDraft) (*domain.ScheduleItem, error) {
	cleaned, err := p.scheduleValidator.ValidateDraft(draft)
	if err != nil {
		return nil, err
	}

	item, err := p.schedule.Add(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (p *plannerImpl) UpdateClass(ctx context.Context, id string, draft domain.ScheduleDraft) (bool, error) {
	cleaned, err := p.scheduleValidator.ValidateDraft(draft)
	if err != nil {
		return false, err
	}
	return p.schedule.Update(ctx, id, cleaned)
}

func (p *plannerImpl) DeleteClass(ctx context.Context, id string) (bool, error) {
	return p.schedule.Remove(ctx, id)
}

// ========== Profile ==========

func (p *plannerImpl) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	return p.profile.Save(ctx, profile)
}

func (p *plannerImpl) AddGoal(ctx context.Context, goal string) error {
	added, err := p.profile.AddGoal(ctx, goal)
	if err != nil {
		return err
	}
	if !added {
		validationError := validation.NewValidationError()
		validationError.AddRequiredError("goal")
		return validationError
	}
	return nil
}

func (p *plannerImpl) RemoveGoal(ctx context.Context, index int) error {
	profile, err := p.profile.Get(ctx)
	if err != nil {
		return err
	}
	if err := p.profileValidator.ValidateGoalIndex(index, len(profile.Goals)); err != nil {
		return err
	}

	_, err = p.profile.RemoveGoal(ctx, index)
	return err
}

// ========== Settings ==========

func (p *plannerImpl) GetSettings(ctx context.Context) (domain.AppSettings, error) {
	return p.settings.Get(ctx)
}

func (p *plannerImpl) SetSetting(ctx context.Context, key, value string) (domain.AppSettings, error) {
	if err := p.profileValidator.ValidateSetting(key, value); err != nil {
		return domain.AppSettings{}, err
	}
	return p.settings.Set(ctx, key, value)
}

func (p *plannerImpl) ResetSettings(ctx context.Context) error {
	return p.settings.Reset(ctx)
}

// ========== Backup ==========

func (p *plannerImpl) Export(ctx context.Context) (*services.Artifact, error) {
	return p.backup.Export(ctx, p.now())
}

func (p *plannerImpl) Import(ctx context.Context, data []byte) (*services.ImportResult, error) {
	return p.backup.Import(ctx, data)
}

func (p *plannerImpl) ClearAll(ctx context.Context) error {
	return p.backup.ClearAll(ctx)
}
