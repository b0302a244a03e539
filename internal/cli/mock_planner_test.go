package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"study-planner/internal/api"
	"study-planner/internal/config"
	"study-planner/internal/domain"
	apperrors "study-planner/internal/errors"
	"study-planner/internal/persist"
	"study-planner/internal/services"
)

var fixedNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

// mockPlanner runs the real planner over an in-memory store with a fixed
// clock and lets a test make chosen operations fail
type mockPlanner struct {
	api.Planner
	failures map[string]error
}

func newMockPlanner() *mockPlanner {
	n := 0
	return &mockPlanner{
		Planner: api.New(persist.NewMemoryStore(),
			api.WithClock(func() time.Time { return fixedNow }),
			api.WithIDGenerator(func() string {
				n++
				return fmt.Sprintf("id-%d", n)
			}),
		),
		failures: make(map[string]error),
	}
}

func (m *mockPlanner) failOn(operation string, err error) {
	m.failures[operation] = err
}

func (m *mockPlanner) Dashboard(ctx context.Context, filter services.TaskFilter) (*api.Dashboard, error) {
	if err := m.failures["Dashboard"]; err != nil {
		return nil, err
	}
	return m.Planner.Dashboard(ctx, filter)
}

func (m *mockPlanner) AddTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if err := m.failures["AddTask"]; err != nil {
		return nil, err
	}
	return m.Planner.AddTask(ctx, draft)
}

func (m *mockPlanner) Export(ctx context.Context) (*services.Artifact, error) {
	if err := m.failures["Export"]; err != nil {
		return nil, err
	}
	return m.Planner.Export(ctx)
}

func (m *mockPlanner) ClearAll(ctx context.Context) error {
	if err := m.failures["ClearAll"]; err != nil {
		return err
	}
	return m.Planner.ClearAll(ctx)
}

func (m *mockPlanner) mustAddTask(t *testing.T, title, due string, priority domain.Priority, subject string) *domain.Task {
	t.Helper()
	task, err := m.Planner.AddTask(context.Background(), domain.TaskDraft{
		Title: title, DueDate: due, Priority: priority, Subject: subject,
	})
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	return task
}

var errStorageDown = apperrors.NewStorageError("get", fmt.Errorf("disk unavailable"))

// setupTestAppWithMockPlanner returns an app that writes to the returned
// buffer and reads input from in
func setupTestAppWithMockPlanner(t *testing.T, in string) (*App, *mockPlanner, *bytes.Buffer) {
	t.Helper()
	mock := newMockPlanner()
	out := &bytes.Buffer{}
	app := NewAppWithConfig(mock, config.NewConfig()).WithIO(out, strings.NewReader(in))
	return app, mock, out
}

func strPtr(s string) *string {
	return &s
}
