package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

func TestWorkoutServiceLifecycle(t *testing.T) {
	svc := NewWorkoutService(newTestStore(), logger.NewNop())
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, ports.WorkoutRequest{Name: "Bench", Sets: "3", Reps: "10", Best: "80kg"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Date.IsZero())

	workouts, err := svc.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.Len(t, workouts, 1)

	updated, err := svc.UpdateWorkout(ctx, created.ID, ports.WorkoutRequest{Name: "Incline Bench", Sets: "4", Reps: "8"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Incline Bench", updated.Name)
	assert.Empty(t, updated.Best)

	_, err = svc.UpdateWorkout(ctx, "missing", ports.WorkoutRequest{Name: "Deadlift"})
	assert.ErrorIs(t, err, entities.ErrWorkoutNotFound)

	require.NoError(t, svc.DeleteWorkout(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteWorkout(ctx, created.ID), entities.ErrWorkoutNotFound)
}
