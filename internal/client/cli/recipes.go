package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"lifehub/internal/client/api"
	"lifehub/internal/client/models"
)

// ListRecipes prompts for optional filters and prints the matching recipes,
// one per line, with the pagination summary the server returned.
func (a *App) ListRecipes(ctx context.Context) error {
	filter, err := a.recipeFilter()
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	list, err := a.recipeService.List(ctx, filter)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", errText(err))
		return err
	}

	if len(list.Recipes) == 0 {
		fmt.Fprintln(a.out, "No recipes yet.")
		return nil
	}

	fmt.Fprintf(a.out, "Recipes (page %d of %d, %d total):\n", list.CurrentPage, list.Pages, list.Total)
	for _, r := range list.Recipes {
		veg := ""
		if r.IsVegetarian {
			veg = " veg"
		}
		fmt.Fprintf(a.out, "#%d %s [%s]%s prep %dm cook %dm total %dm\n",
			r.ID, r.RecipeName, r.CuisineType, veg,
			r.PrepTimeMinutes, r.CookTimeMinutes, r.TotalCookingTime)
	}
	return nil
}

func (a *App) recipeFilter() (api.RecipeFilter, error) {
	var filter api.RecipeFilter

	cuisine, err := getSimpleText(a.reader, "Filter by cuisine (empty for all)", a.out)
	if err != nil {
		return filter, err
	}
	if cuisine != "" {
		ct, err := models.ParseCuisineType(cuisine)
		if err != nil {
			return filter, err
		}
		filter.CuisineType = string(ct)
	}

	veg, err := getSimpleText(a.reader, "Vegetarian only? (y/n, empty for all)", a.out)
	if err != nil {
		return filter, err
	}
	switch strings.ToLower(veg) {
	case "y", "yes":
		v := true
		filter.Vegetarian = &v
	case "n", "no":
		v := false
		filter.Vegetarian = &v
	}

	page, err := GetInt(a.reader, "Page (empty for first)", 1, a.out)
	if err != nil {
		return filter, err
	}
	filter.Page = page
	return filter, nil
}

// AddRecipe collects the recipe fields interactively and creates the recipe
// on the server. The total cooking time is computed server-side and printed.
func (a *App) AddRecipe(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Recipe name", a.out)
	if err != nil {
		return err
	}

	cuisineText, err := getSimpleText(a.reader,
		fmt.Sprintf("Cuisine type %v", models.CuisineTypes), a.out)
	if err != nil {
		return err
	}
	cuisine, err := models.ParseCuisineType(cuisineText)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	vegetarian, err := GetBool(a.reader, "Vegetarian?", false, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	prep, err := GetInt(a.reader, "Prep time, minutes", 0, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	cook, err := GetInt(a.reader, "Cook time, minutes", 0, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	ingredients, err := GetMultiline(a.reader, "Ingredients:", a.out)
	if err != nil {
		return err
	}

	created, err := a.recipeService.Create(ctx, models.NewRecipe{
		RecipeName:      name,
		CuisineType:     cuisine,
		IsVegetarian:    vegetarian,
		PrepTimeMinutes: prep,
		CookTimeMinutes: cook,
		Ingredients:     ingredients,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", errText(err))
		return err
	}

	fmt.Fprintf(a.out, "Created recipe #%d (total cooking time %dm).\n",
		created.ID, created.TotalCookingTime)
	return nil
}

// DeleteRecipe prompts for a recipe id and deletes it on the server.
func (a *App) DeleteRecipe(ctx context.Context) error {
	idText, err := getSimpleText(a.reader, "Recipe id to delete", a.out)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Error: not a number: %q\n", idText)
		return err
	}

	if err := a.recipeService.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", errText(err))
		return err
	}
	fmt.Fprintf(a.out, "Recipe #%d deleted.\n", id)
	return nil
}
