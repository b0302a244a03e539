package persist

import (
	"context"
	"encoding/json"

	"study-planner/internal/errors"
	"study-planner/internal/logging"
)

// Slot is one named value of type T in a KeyValueStore.
//
// A missing or unparseable value reads as the default; the default is not
// written back until the first Write.
type Slot[T any] struct {
	store    KeyValueStore
	key      string
	fallback func() T
}

// NewSlot binds key in store to type T. def is called on every read that
// needs the default so callers always receive a fresh value.
func NewSlot[T any](store KeyValueStore, key string, def func() T) *Slot[T] {
	return &Slot[T]{store: store, key: key, fallback: def}
}

// Read returns the stored value, or the default when nothing usable is stored.
// Only a backend failure is reported as an error.
func (s *Slot[T]) Read(ctx context.Context) (T, error) {
	raw, found, err := s.store.Get(ctx, s.key)
	if err != nil {
		var zero T
		return zero, wrapStoreError("read", s.key, err)
	}
	if !found {
		return s.fallback(), nil
	}

	// decode over a fresh default so fields absent from the stored text keep their default
	value := s.fallback()
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		logging.WithField("key", s.key).Debugf("discarding unparseable stored value: %v", err)
		return s.fallback(), nil
	}
	return value, nil
}

// Write stores v, replacing whatever was there
func (s *Slot[T]) Write(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.NewStorageError("encode "+s.key, err).WithContext("key", s.key)
	}
	if err := s.store.Set(ctx, s.key, string(data)); err != nil {
		return wrapStoreError("write", s.key, err)
	}
	return nil
}

// Clear removes the stored value so the next read yields the default
func (s *Slot[T]) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return wrapStoreError("clear", s.key, err)
	}
	return nil
}

// wrapStoreError turns a backend failure into an AppError tagged with the slot key
func wrapStoreError(operation, key string, err error) error {
	appErr, ok := errors.AsAppError(err)
	switch {
	case ok:
	case errors.IsDeadline(err):
		appErr = errors.NewTimeoutError(operation+" "+key, err.Error())
	default:
		appErr = errors.NewStorageError(operation+" "+key, err)
	}
	return appErr.WithContext("key", key)
}
