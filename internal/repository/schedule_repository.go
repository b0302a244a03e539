package repository

import (
	"context"

	"study-planner/internal/domain"
	"study-planner/internal/persist"
)

// ScheduleRepository stores the weekly timetable under ScheduleKey.
// Overlapping items are allowed.
type ScheduleRepository interface {
	List(ctx context.Context) ([]domain.ScheduleItem, error)
	Get(ctx context.Context, id string) (domain.ScheduleItem, bool, error)
	Add(ctx context.Context, draft domain.ScheduleDraft) (domain.ScheduleItem, error)
	Update(ctx context.Context, id string, draft domain.ScheduleDraft) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type scheduleRepository struct {
	items *collection[domain.ScheduleItem]
	newID IDGenerator
}

// NewScheduleRepository creates a schedule repository over store
func NewScheduleRepository(store persist.KeyValueStore, newID IDGenerator) ScheduleRepository {
	if newID == nil {
		newID = NewTimeOrderedID
	}
	return &scheduleRepository{
		items: newCollection(store, ScheduleKey, func(s domain.ScheduleItem) string { return s.ID }),
		newID: newID,
	}
}

func (r *scheduleRepository) List(ctx context.Context) ([]domain.ScheduleItem, error) {
	return r.items.list(ctx)
}

func (r *scheduleRepository) Get(ctx context.Context, id string) (domain.ScheduleItem, bool, error) {
	return r.items.get(ctx, id)
}

func (r *scheduleRepository) Add(ctx context.Context, draft domain.ScheduleDraft) (domain.ScheduleItem, error) {
	item := domain.NewScheduleItem(r.newID(), draft)
	if err := r.items.add(ctx, item); err != nil {
		return domain.ScheduleItem{}, err
	}
	return item, nil
}

func (r *scheduleRepository) Update(ctx context.Context, id string, draft domain.ScheduleDraft) (bool, error) {
	return r.items.modify(ctx, id, func(domain.ScheduleItem) domain.ScheduleItem {
		return domain.NewScheduleItem(id, draft)
	})
}

func (r *scheduleRepository) Remove(ctx context.Context, id string) (bool, error) {
	return r.items.remove(ctx, id)
}
