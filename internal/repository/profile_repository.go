package repository

import (
	"context"
	"sync"

	"study-planner/internal/domain"
	"study-planner/internal/persist"
)

// ProfileRepository stores the singleton user profile under ProfileKey
type ProfileRepository interface {
	Get(ctx context.Context) (domain.UserProfile, error)
	Save(ctx context.Context, profile domain.UserProfile) error
	AddGoal(ctx context.Context, goal string) (bool, error)
	RemoveGoal(ctx context.Context, index int) (bool, error)
	Reset(ctx context.Context) error
}

type profileRepository struct {
	mu   sync.Mutex
	slot *persist.Slot[domain.UserProfile]
}

// NewProfileRepository creates a profile repository over store
func NewProfileRepository(store persist.KeyValueStore) ProfileRepository {
	return &profileRepository{slot: persist.NewSlot(store, ProfileKey, domain.DefaultProfile)}
}

func (r *profileRepository) Get(ctx context.Context) (domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(ctx)
}

// read never hands out a nil goal list, whatever was stored
func (r *profileRepository) read(ctx context.Context) (domain.UserProfile, error) {
	profile, err := r.slot.Read(ctx)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if profile.Goals == nil {
		profile.Goals = []string{}
	}
	return profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.Goals == nil {
		profile.Goals = []string{}
	}
	return r.slot.Write(ctx, profile)
}

// AddGoal appends a trimmed goal; a blank goal is ignored and reports false
func (r *profileRepository) AddGoal(ctx context.Context, goal string) (bool, error) {
	return r.update(ctx, func(p domain.UserProfile) (domain.UserProfile, bool) {
		return p.WithGoal(goal)
	})
}

// RemoveGoal drops the goal at index; an out-of-range index reports false
func (r *profileRepository) RemoveGoal(ctx context.Context, index int) (bool, error) {
	return r.update(ctx, func(p domain.UserProfile) (domain.UserProfile, bool) {
		return p.WithoutGoal(index)
	})
}

// Reset removes the stored profile; reads fall back to the default
func (r *profileRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slot.Clear(ctx)
}

func (r *profileRepository) update(ctx context.Context, fn func(domain.UserProfile) (domain.UserProfile, bool)) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, err := r.read(ctx)
	if err != nil {
		return false, err
	}
	updated, changed := fn(profile)
	if !changed {
		return false, nil
	}
	return true, r.slot.Write(ctx, updated)
}
