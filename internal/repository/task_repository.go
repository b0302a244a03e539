package repository

import (
	"context"

	"study-planner/internal/domain"
	"study-planner/internal/persist"
)

// TaskRepository stores the task list under TasksKey
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id string) (domain.Task, bool, error)
	Add(ctx context.Context, draft domain.TaskDraft) (domain.Task, error)
	Update(ctx context.Context, id string, draft domain.TaskDraft) (bool, error)
	ToggleComplete(ctx context.Context, id string) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
	Replace(ctx context.Context, tasks []domain.Task) error
	Clear(ctx context.Context) error
}

type taskRepository struct {
	tasks *collection[domain.Task]
	newID IDGenerator
}

// NewTaskRepository creates a task repository over store
func NewTaskRepository(store persist.KeyValueStore, newID IDGenerator) TaskRepository {
	if newID == nil {
		newID = NewTimeOrderedID
	}
	return &taskRepository{
		tasks: newCollection(store, TasksKey, func(t domain.Task) string { return t.ID }),
		newID: newID,
	}
}

// List returns the tasks in insertion order
func (r *taskRepository) List(ctx context.Context) ([]domain.Task, error) {
	return r.tasks.list(ctx)
}

func (r *taskRepository) Get(ctx context.Context, id string) (domain.Task, bool, error) {
	return r.tasks.get(ctx, id)
}

// Add appends a new task with a fresh id
func (r *taskRepository) Add(ctx context.Context, draft domain.TaskDraft) (domain.Task, error) {
	task := domain.NewTask(r.newID(), draft)
	if err := r.tasks.add(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Update replaces the task's fields with the draft, keeping its id
func (r *taskRepository) Update(ctx context.Context, id string, draft domain.TaskDraft) (bool, error) {
	return r.tasks.modify(ctx, id, func(domain.Task) domain.Task {
		return domain.NewTask(id, draft)
	})
}

// ToggleComplete flips the completed flag
func (r *taskRepository) ToggleComplete(ctx context.Context, id string) (bool, error) {
	return r.tasks.modify(ctx, id, func(t domain.Task) domain.Task {
		t.Completed = !t.Completed
		return t
	})
}

func (r *taskRepository) Remove(ctx context.Context, id string) (bool, error) {
	return r.tasks.remove(ctx, id)
}

// Clear deletes every task
func (r *taskRepository) Clear(ctx context.Context) error {
	return r.tasks.clear(ctx)
}

// Replace overwrites the whole task list
func (r *taskRepository) Replace(ctx context.Context, tasks []domain.Task) error {
	return r.tasks.replace(ctx, tasks)
}
