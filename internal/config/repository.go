package config

import (
	"fmt"
	"os"

	"study-planner/internal/repository/sqlite"
)

// CreateStore opens the key/value store described by the configuration,
// creating the data directory on first use.
func CreateStore(config *Config) (sqlite.Repository, error) {
	dbPath := config.GetDatabasePath()

	if dbPath != ":memory:" {
		if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", config.Storage.Dir, err)
		}
	}

	repo, err := sqlite.NewWithOptions(dbPath, sqlite.Options{BusyTimeout: config.Storage.BusyTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
