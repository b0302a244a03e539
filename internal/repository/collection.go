package repository

import (
	"context"
	"sync"

	"study-planner/internal/persist"
)

// collection is a list slot mutated by whole-value read-modify-write.
// The mutex serialises mutations issued through the same repository.
type collection[T any] struct {
	mu    sync.Mutex
	slot  *persist.Slot[[]T]
	getID func(T) string
}

func newCollection[T any](store persist.KeyValueStore, key string, getID func(T) string) *collection[T] {
	return &collection[T]{
		slot:  persist.NewSlot(store, key, func() []T { return []T{} }),
		getID: getID,
	}
}

func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read(ctx)
}

// read returns the stored items; a stored null reads as an empty list
func (c *collection[T]) read(ctx context.Context) ([]T, error) {
	items, err := c.slot.Read(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	items, err := c.list(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if c.getID(item) == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}

func (c *collection[T]) add(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return err
	}
	return c.slot.Write(ctx, append(items, item))
}

// modify applies fn to every item with the given id. It reports false,
// and writes nothing, when no item matches.
func (c *collection[T]) modify(ctx context.Context, id string, fn func(T) T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return false, err
	}
	found := false
	for i, item := range items {
		if c.getID(item) == id {
			items[i] = fn(item)
			found = true
		}
	}
	if !found {
		return false, nil
	}
	return true, c.slot.Write(ctx, items)
}

// remove drops every item with the given id.
func (c *collection[T]) remove(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if c.getID(item) != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	return true, c.slot.Write(ctx, kept)
}

// clear removes the stored list so reads return an empty one
func (c *collection[T]) clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slot.Clear(ctx)
}

func (c *collection[T]) replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if items == nil {
		items = []T{}
	}
	return c.slot.Write(ctx, items)
}
