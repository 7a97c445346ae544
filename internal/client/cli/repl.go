package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	ListRecipes(ctx context.Context) error
	AddRecipe(ctx context.Context) error
	DeleteRecipe(ctx context.Context) error
	ListWorkouts(ctx context.Context) error
	AddWorkout(ctx context.Context) error
	DeleteWorkout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Lifestyle Hub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - status         — show connectivity and session state
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - recipes        — list recipes (with filters and paging)
//	  - addrecipe      — add a recipe
//	  - delrecipe      — delete a recipe by id
//	  - workouts       — list workouts (with filters and paging)
//	  - addworkout     — add a workout
//	  - delworkout     — delete a workout by id
//	  - status         — show connectivity and session state
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hub %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: recipes, addrecipe, delrecipe, workouts, addworkout, delworkout, status, logout, exit")
			} else {
				printlnFn("Available commands: register, login, status, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "status":
			_ = a.Status(ctx)

		case "r", "recipes":
			_ = a.ListRecipes(ctx)

		case "addrecipe":
			_ = a.AddRecipe(ctx)

		case "delrecipe":
			_ = a.DeleteRecipe(ctx)

		case "w", "workouts":
			_ = a.ListWorkouts(ctx)

		case "addworkout":
			_ = a.AddWorkout(ctx)

		case "delworkout":
			_ = a.DeleteWorkout(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
