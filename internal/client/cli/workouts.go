package cli

import (
	"context"
	"fmt"
	"strconv"

	"lifehub/internal/client/api"
	"lifehub/internal/client/models"
)

// ListWorkouts prompts for optional filters and prints the matching workouts
// with the pagination summary the server returned.
func (a *App) ListWorkouts(ctx context.Context) error {
	filter, err := a.workoutFilter()
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	list, err := a.workoutService.List(ctx, filter)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", errText(err))
		return err
	}

	if len(list.Workouts) == 0 {
		fmt.Fprintln(a.out, "No workouts yet.")
		return nil
	}

	fmt.Fprintf(a.out, "Workouts (page %d of %d, %d total):\n", list.CurrentPage, list.Pages, list.Total)
	for _, w := range list.Workouts {
		goal := ""
		if w.GoalAchieved {
			goal = " goal met"
		}
		fmt.Fprintf(a.out, "#%d %s %dm intensity %d/5 %d kcal%s\n",
			w.ID, w.WorkoutType, w.DurationMinutes, w.Intensity, w.CaloriesBurned, goal)
		if w.Notes != "" {
			fmt.Fprintf(a.out, "   %s\n", w.Notes)
		}
	}
	return nil
}

func (a *App) workoutFilter() (api.WorkoutFilter, error) {
	var filter api.WorkoutFilter

	workoutType, err := getSimpleText(a.reader, "Filter by type (empty for all)", a.out)
	if err != nil {
		return filter, err
	}
	if workoutType != "" {
		wt, err := models.ParseWorkoutType(workoutType)
		if err != nil {
			return filter, err
		}
		filter.WorkoutType = string(wt)
	}

	search, err := getSimpleText(a.reader, "Search notes (empty to skip)", a.out)
	if err != nil {
		return filter, err
	}
	filter.Search = search

	page, err := GetInt(a.reader, "Page (empty for first)", 1, a.out)
	if err != nil {
		return filter, err
	}
	filter.Page = page
	return filter, nil
}

// AddWorkout collects the workout fields interactively and creates the
// workout on the server. Burned calories are computed server-side and printed.
func (a *App) AddWorkout(ctx context.Context) error {
	typeText, err := getSimpleText(a.reader,
		fmt.Sprintf("Workout type %v", models.WorkoutTypes), a.out)
	if err != nil {
		return err
	}
	workoutType, err := models.ParseWorkoutType(typeText)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	duration, err := GetInt(a.reader, "Duration, minutes", 0, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	intensity, err := GetInt(a.reader, "Intensity (1-5)", 3, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if intensity < 1 || intensity > 5 {
		err := fmt.Errorf("intensity must be between 1 and 5, got %d", intensity)
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	notes, err := GetMultiline(a.reader, "Notes:", a.out)
	if err != nil {
		return err
	}

	goalAchieved, err := GetBool(a.reader, "Goal achieved?", false, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	created, err := a.workoutService.Create(ctx, models.NewWorkout{
		WorkoutType:     workoutType,
		DurationMinutes: duration,
		Intensity:       intensity,
		Notes:           notes,
		GoalAchieved:    goalAchieved,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", errText(err))
		return err
	}

	fmt.Fprintf(a.out, "Created workout #%d (%d kcal burned).\n",
		created.ID, created.CaloriesBurned)
	return nil
}

// DeleteWorkout prompts for a workout id and deletes it on the server.
func (a *App) DeleteWorkout(ctx context.Context) error {
	idText, err := getSimpleText(a.reader, "Workout id to delete", a.out)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Error: not a number: %q\n", idText)
		return err
	}

	if err := a.workoutService.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", errText(err))
		return err
	}
	fmt.Fprintf(a.out, "Workout #%d deleted.\n", id)
	return nil
}
