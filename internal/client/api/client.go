// Package api talks to the Lifestyle Hub HTTP API. It owns request
// authorization (bearer token from the session store), JSON codec and error
// normalization; it never retries, caches or queues — each call is
// independent and at-most-once from the client's perspective.
package api

import (
	"context"

	"lifehub/internal/client/models"
)

// TokenSource supplies the current bearer token, if any. The session manager
// implements it; the adapter reads it immediately before every send.
type TokenSource interface {
	CurrentToken() (string, bool)
}

// RecipeFilter narrows GET /recipes. Zero values mean "not set" and are
// omitted from the query string.
type RecipeFilter struct {
	CuisineType string
	Vegetarian  *bool
	Page        int
	PerPage     int
}

// WorkoutFilter narrows GET /workouts.
type WorkoutFilter struct {
	WorkoutType string
	Search      string
	Page        int
	PerPage     int
}

// Client is the outbound API surface the services depend on.
type Client interface {
	Close() error

	// Register creates an account. It does not log the user in; callers
	// wanting "register then login" must issue the Login call themselves.
	Register(ctx context.Context, username, password string) error

	// Login exchanges credentials for an access token.
	Login(ctx context.Context, username, password string) (string, error)

	// Ping checks server reachability. Any HTTP response, regardless of
	// status, counts as reachable; only transport failures are errors.
	Ping(ctx context.Context) error

	// CheckAuth asks the server whether the current token is accepted.
	CheckAuth(ctx context.Context) error

	ListRecipes(ctx context.Context, filter RecipeFilter) (*models.RecipeList, error)
	CreateRecipe(ctx context.Context, recipe models.NewRecipe) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error

	ListWorkouts(ctx context.Context, filter WorkoutFilter) (*models.WorkoutList, error)
	CreateWorkout(ctx context.Context, workout models.NewWorkout) (*models.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) error
}
