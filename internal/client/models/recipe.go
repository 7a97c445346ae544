// Package models defines the record shapes exchanged with the Lifestyle Hub
// API. The client treats server-computed fields (total cooking time, burned
// calories) as opaque: it displays them and never recomputes them.
package models

import (
	"fmt"
	"strings"
)

// CuisineType enumerates the cuisine kinds the server accepts.
type CuisineType string

const (
	CuisineItalian CuisineType = "Italian"
	CuisineIndian  CuisineType = "Indian"
	CuisineMexican CuisineType = "Mexican"
	CuisineChinese CuisineType = "Chinese"
	CuisineOther   CuisineType = "Other"
)

// CuisineTypes lists all valid cuisine values, in display order.
var CuisineTypes = []CuisineType{
	CuisineItalian, CuisineIndian, CuisineMexican, CuisineChinese, CuisineOther,
}

// ParseCuisineType matches s against the known cuisine values,
// case-insensitively. The server is the validator of record; this only keeps
// obviously bad input from leaving the client.
func ParseCuisineType(s string) (CuisineType, error) {
	for _, c := range CuisineTypes {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown cuisine type %q", s)
}

// Recipe is a recipe record as returned by the server.
// TotalCookingTime is computed server-side (prep + cook).
type Recipe struct {
	ID               int64  `json:"id"`
	RecipeName       string `json:"recipe_name"`
	CuisineType      string `json:"cuisine_type"`
	IsVegetarian     bool   `json:"is_vegetarian"`
	PrepTimeMinutes  int    `json:"prep_time_minutes"`
	CookTimeMinutes  int    `json:"cook_time_minutes"`
	Ingredients      string `json:"ingredients"`
	TotalCookingTime int    `json:"total_cooking_time"`
}

// NewRecipe is the creation payload for POST /recipes.
type NewRecipe struct {
	RecipeName      string      `json:"recipe_name"`
	CuisineType     CuisineType `json:"cuisine_type"`
	IsVegetarian    bool        `json:"is_vegetarian"`
	PrepTimeMinutes int         `json:"prep_time_minutes"`
	CookTimeMinutes int         `json:"cook_time_minutes"`
	Ingredients     string      `json:"ingredients"`
}

// RecipeList is the envelope returned by GET /recipes. A response without the
// "recipes" key unmarshals to a nil Recipes slice, which callers treat as an
// empty collection.
type RecipeList struct {
	Recipes     []Recipe `json:"recipes"`
	Total       int      `json:"total"`
	Pages       int      `json:"pages"`
	CurrentPage int      `json:"current_page"`
}
