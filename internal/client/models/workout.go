package models

import (
	"fmt"
	"strings"
)

// WorkoutType enumerates the workout kinds the server accepts.
type WorkoutType string

const (
	WorkoutStrength WorkoutType = "Strength"
	WorkoutCardio   WorkoutType = "Cardio"
	WorkoutYoga     WorkoutType = "Yoga"
)

// WorkoutTypes lists all valid workout values, in display order.
var WorkoutTypes = []WorkoutType{WorkoutStrength, WorkoutCardio, WorkoutYoga}

// ParseWorkoutType matches s against the known workout values,
// case-insensitively.
func ParseWorkoutType(s string) (WorkoutType, error) {
	for _, w := range WorkoutTypes {
		if strings.EqualFold(s, string(w)) {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown workout type %q", s)
}

// Workout is a workout record as returned by the server.
// CaloriesBurned is computed server-side from duration, intensity and type.
type Workout struct {
	ID              int64  `json:"id"`
	WorkoutType     string `json:"workout_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Intensity       int    `json:"intensity"`
	Notes           string `json:"notes"`
	GoalAchieved    bool   `json:"goal_achieved"`
	CaloriesBurned  int    `json:"calories_burned"`
}

// NewWorkout is the creation payload for POST /workouts.
// Intensity is a 1–5 scale.
type NewWorkout struct {
	WorkoutType     WorkoutType `json:"workout_type"`
	DurationMinutes int         `json:"duration_minutes"`
	Intensity       int         `json:"intensity"`
	Notes           string      `json:"notes"`
	GoalAchieved    bool        `json:"goal_achieved"`
}

// WorkoutList is the envelope returned by GET /workouts; same missing-key
// policy as RecipeList.
type WorkoutList struct {
	Workouts    []Workout `json:"workouts"`
	Total       int       `json:"total"`
	Pages       int       `json:"pages"`
	CurrentPage int       `json:"current_page"`
}
