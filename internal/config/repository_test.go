package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateStore(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv("SP_DATA_DIR", tmpDir)
	t.Setenv("SP_CONFIG", filepath.Join(tmpDir, "absent.yaml"))

	cfg, err := NewLoaderWithEnvFiles().Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := CreateStore(cfg)
	if err != nil {
		t.Fatalf("CreateStore() error = %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, "planner.db")); err != nil {
		t.Errorf("expected database file to be created: %v", err)
	}

	ctx := context.Background()
	if err := store.Set(ctx, "student-tasks", "[]"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	value, found, err := store.Get(ctx, "student-tasks")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found || value != "[]" {
		t.Errorf("Get() = %q, %v; want %q, true", value, found, "[]")
	}
}

func TestCreateStore_InMemory(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "never-created")
	cfg.Storage.Filename = ":memory:"

	store, err := CreateStore(cfg)
	if err != nil {
		t.Fatalf("CreateStore() error = %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(cfg.Storage.Dir); !os.IsNotExist(err) {
		t.Errorf("in-memory store should not create the data directory")
	}
}

func TestCreateTestStore(t *testing.T) {
	store, err := CreateTestStore()
	if err != nil {
		t.Fatalf("CreateTestStore() error = %v", err)
	}
	defer store.Close()

	if err := store.Set(context.Background(), "app-settings", "{}"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	entries, err := store.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Entries() returned %d entries, want 1", len(entries))
	}
}
