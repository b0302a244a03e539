package main

import (
	"fmt"
	"os"

	"study-planner/internal/api"
	"study-planner/internal/config"
	"study-planner/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// StoreFactory creates key/value stores based on environment
type StoreFactory struct {
	env Environment
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment) *StoreFactory {
	return &StoreFactory{env: env}
}

// CreateStore creates a store instance based on the current environment
func (sf *StoreFactory) CreateStore(cfg *config.Config) (sqlite.Repository, error) {
	switch sf.env {
	case Development:
		return sf.createDevelopmentStore(cfg)
	case Testing:
		return sf.createTestingStore()
	default:
		return sf.createProductionStore(cfg)
	}
}

// CreatePlanner opens the store and builds a planner over it. It matches
// cli.PlannerFactory.
func (sf *StoreFactory) CreatePlanner(cfg *config.Config) (api.Planner, func() error, error) {
	store, err := sf.CreateStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return api.New(store), store.Close, nil
}

// createDevelopmentStore uses planner.db in the working directory
func (sf *StoreFactory) createDevelopmentStore(cfg *config.Config) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions("planner.db", sqlite.Options{BusyTimeout: cfg.Storage.BusyTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return repo, nil
}

// createTestingStore uses an in-memory database
func (sf *StoreFactory) createTestingStore() (sqlite.Repository, error) {
	repo, err := config.CreateTestStore()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return repo, nil
}

// createProductionStore uses the configured data directory
func (sf *StoreFactory) createProductionStore(cfg *config.Config) (sqlite.Repository, error) {
	repo, err := config.CreateStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize production database: %w", err)
	}
	return repo, nil
}

// getEnvironment reads SP_ENV, defaulting to production
func getEnvironment() Environment {
	switch os.Getenv("SP_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}
