package taskline

import (
	"context"
	"testing"

	"github.com/kcwebb/taskline/internal/core/task"
	"github.com/kcwebb/taskline/internal/data/stores"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *TaskService {
	return NewTaskService(stores.NewTaskStore(), zerolog.Nop())
}

func TestTaskService(t *testing.T) {
	ctx := context.Background()

	t.Run("add wraps validation errors", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Add(ctx, "  ")
		require.Error(t, err)
		assert.ErrorIs(t, err, task.ErrEmptyDescription)
	})

	t.Run("get wraps not found", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Get(ctx, 1)
		assert.ErrorIs(t, err, task.ErrNotFound)
	})

	t.Run("round trip through the service", func(t *testing.T) {
		svc := newTestService()

		added, err := svc.Add(ctx, "Buy milk")
		require.NoError(t, err)

		updated, err := svc.Update(ctx, added.ID, "Buy milk and eggs")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk and eggs", updated.Description)

		toggled, err := svc.ToggleComplete(ctx, added.ID)
		require.NoError(t, err)
		assert.True(t, toggled.Complete)

		assert.Equal(t, 1, svc.Count(ctx))
		assert.True(t, svc.Delete(ctx, added.ID))
		assert.False(t, svc.Delete(ctx, added.ID))
		assert.Zero(t, svc.Count(ctx))
	})
}
