package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/internal/domain"
)

func TestAchievementsCommand_Execute(t *testing.T) {
	app, mock, out := setupTestAppWithMockPlanner(t, "")
	ctx := context.Background()
	cmd := NewAchievementsCommand(app)

	t.Run("nothing unlocked", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx))
		output := out.String()
		assert.Contains(t, output, "Unlocked (0)")
		assert.Contains(t, output, "Locked (9)")
		assert.Contains(t, output, "0/1")
	})

	t.Run("first task", func(t *testing.T) {
		task := mock.mustAddTask(t, "Today", "2026-10-16", domain.PriorityHigh, "")
		_, err := mock.ToggleTask(ctx, task.ID)
		require.NoError(t, err)

		out.Reset()
		require.NoError(t, cmd.Execute(ctx))
		output := out.String()
		assert.Contains(t, output, "First Task")
		assert.Contains(t, output, "1 of 1")
		assert.Contains(t, output, "100%")
		assert.Contains(t, output, "1 days")
	})
}
