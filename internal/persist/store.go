// Package persist maps named slots of a key/value store onto typed values.
package persist

import (
	"context"
	"sort"
	"sync"
	"time"
)

// KeyValueStore is the text backend a Slot reads and writes
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SlotInfo describes one stored value without decoding it. UpdatedAt is zero
// when the backend does not record write times.
type SlotInfo struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}

// Inventory is implemented by stores that can list what they hold
type Inventory interface {
	Slots(ctx context.Context) ([]SlotInfo, error)
}

// MemoryStore is a KeyValueStore held in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Slots lists the stored values in key order
func (m *MemoryStore) Slots(ctx context.Context) ([]SlotInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	slots := make([]SlotInfo, 0, len(m.values))
	for k, v := range m.values {
		slots = append(slots, SlotInfo{Key: k, Size: len(v)})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Key < slots[j].Key })
	return slots, nil
}

// Keys returns the stored keys in sorted order
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
