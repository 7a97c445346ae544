package services

import (
	"context"
	"fmt"

	"lifehub/internal/client/api"
	"lifehub/internal/client/models"
)

// WorkoutService exposes the workout CRUD passthroughs to the views.
type WorkoutService interface {
	List(ctx context.Context, filter api.WorkoutFilter) (*models.WorkoutList, error)
	Create(ctx context.Context, workout models.NewWorkout) (*models.Workout, error)
	Delete(ctx context.Context, id int64) error
}

type workoutService struct {
	client api.Client
}

func NewWorkoutService(client api.Client) WorkoutService {
	return &workoutService{client: client}
}

func (s *workoutService) List(ctx context.Context, filter api.WorkoutFilter) (*models.WorkoutList, error) {
	list, err := s.client.ListWorkouts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing workouts: %w", err)
	}
	return list, nil
}

func (s *workoutService) Create(ctx context.Context, workout models.NewWorkout) (*models.Workout, error) {
	created, err := s.client.CreateWorkout(ctx, workout)
	if err != nil {
		return nil, fmt.Errorf("error creating workout: %w", err)
	}
	return created, nil
}

func (s *workoutService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteWorkout(ctx, id); err != nil {
		return fmt.Errorf("error deleting workout: %w", err)
	}
	return nil
}
