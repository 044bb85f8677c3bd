package services

import (
	"context"
	"fmt"

	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// WorkoutService handles the workout log
type WorkoutService struct {
	store  ports.DocumentStore
	logger *logger.Logger
}

// NewWorkoutService creates a new workout service
func NewWorkoutService(store ports.DocumentStore, logger *logger.Logger) *WorkoutService {
	return &WorkoutService{
		store:  store,
		logger: logger,
	}
}

// ListWorkouts returns all workout entries
func (s *WorkoutService) ListWorkouts(ctx context.Context) ([]entities.Workout, error) {
	workouts, err := s.store.GetWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	return workouts, nil
}

// CreateWorkout appends a new workout entry stamped with the current time
func (s *WorkoutService) CreateWorkout(ctx context.Context, req ports.WorkoutRequest) (*entities.Workout, error) {
	workout, err := s.store.SaveWorkout(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	s.logger.Info("Workout created", "workout_id", workout.ID, "name", workout.Name)

	return workout, nil
}

// UpdateWorkout replaces a workout entry wholesale and returns it
func (s *WorkoutService) UpdateWorkout(ctx context.Context, id string, req ports.WorkoutRequest) (*entities.Workout, error) {
	ok, err := s.store.UpdateWorkout(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}
	if !ok {
		return nil, entities.ErrWorkoutNotFound
	}

	s.logger.Info("Workout updated", "workout_id", id)

	workouts, err := s.store.GetWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload workouts: %w", err)
	}
	for i := range workouts {
		if workouts[i].ID == id {
			return &workouts[i], nil
		}
	}
	return nil, entities.ErrWorkoutNotFound
}

// DeleteWorkout removes a workout entry by ID
func (s *WorkoutService) DeleteWorkout(ctx context.Context, id string) error {
	ok, err := s.store.DeleteWorkout(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if !ok {
		return entities.ErrWorkoutNotFound
	}

	s.logger.Info("Workout deleted", "workout_id", id)

	return nil
}
