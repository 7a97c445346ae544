package services

import (
	"context"
	"fmt"

	"lifehub/internal/client/api"
	"lifehub/internal/client/models"
)

// RecipeService exposes the recipe CRUD passthroughs to the views. No
// caching, no local copies: every call goes to the server.
type RecipeService interface {
	List(ctx context.Context, filter api.RecipeFilter) (*models.RecipeList, error)
	Create(ctx context.Context, recipe models.NewRecipe) (*models.Recipe, error)
	Delete(ctx context.Context, id int64) error
}

type recipeService struct {
	client api.Client
}

func NewRecipeService(client api.Client) RecipeService {
	return &recipeService{client: client}
}

func (s *recipeService) List(ctx context.Context, filter api.RecipeFilter) (*models.RecipeList, error) {
	list, err := s.client.ListRecipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}
	return list, nil
}

func (s *recipeService) Create(ctx context.Context, recipe models.NewRecipe) (*models.Recipe, error) {
	created, err := s.client.CreateRecipe(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("error creating recipe: %w", err)
	}
	return created, nil
}

func (s *recipeService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("error deleting recipe: %w", err)
	}
	return nil
}
