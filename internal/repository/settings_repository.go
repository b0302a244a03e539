package repository

import (
	"context"
	"sync"

	"study-planner/internal/domain"
	"study-planner/internal/persist"
)

// SettingsRepository stores the singleton app settings under SettingsKey
type SettingsRepository interface {
	Get(ctx context.Context) (domain.AppSettings, error)
	Save(ctx context.Context, settings domain.AppSettings) error
	Set(ctx context.Context, key, value string) (domain.AppSettings, error)
	Reset(ctx context.Context) error
}

type settingsRepository struct {
	mu   sync.Mutex
	slot *persist.Slot[domain.AppSettings]
}

// NewSettingsRepository creates a settings repository over store
func NewSettingsRepository(store persist.KeyValueStore) SettingsRepository {
	return &settingsRepository{slot: persist.NewSlot(store, SettingsKey, domain.DefaultSettings)}
}

func (r *settingsRepository) Get(ctx context.Context) (domain.AppSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slot.Read(ctx)
}

func (r *settingsRepository) Save(ctx context.Context, settings domain.AppSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slot.Write(ctx, settings)
}

// Set changes one setting by name. An unknown key or malformed value is
// returned as an error without writing.
func (r *settingsRepository) Set(ctx context.Context, key, value string) (domain.AppSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.slot.Read(ctx)
	if err != nil {
		return domain.AppSettings{}, err
	}
	updated, err := current.With(key, value)
	if err != nil {
		return current, err
	}
	return updated, r.slot.Write(ctx, updated)
}

// Reset removes the stored settings so reads return the defaults
func (r *settingsRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slot.Clear(ctx)
}
