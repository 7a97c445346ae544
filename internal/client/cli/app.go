package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"lifehub/internal/client/api"
	"lifehub/internal/client/config"
	"lifehub/internal/client/repositories/metadata"
	"lifehub/internal/client/services"
	"lifehub/internal/client/session"
	"lifehub/internal/client/store"
	"lifehub/internal/logging"
)

// Mode reflects the last known server reachability.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single connectivity probe.
const pingTimeout = 3 * time.Second

// App ties the config, session store, API client and services together and
// drives the interactive loop.
type App struct {
	config *config.Config
	logger logging.Logger

	db       *sql.DB
	sessions *session.Manager

	authService    services.AuthService
	recipeService  services.RecipeService
	workoutService services.WorkoutService

	// modeMu guards mode, which the watcher goroutine writes while the REPL
	// goroutine reads it for the prompt and status output.
	modeMu sync.Mutex
	mode   Mode

	reader *bufio.Reader
	out    io.Writer

	// wasLoggedIn and explicitLogout let the session-change callback tell an
	// expiry-driven logout apart from one the user asked for.
	wasLoggedIn    atomic.Bool
	explicitLogout atomic.Bool
}

// NewApp wires the full client stack: sqlite-backed session slot, session
// manager, HTTP API client and the services on top of them.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	sessions := session.NewManager(metadata.NewSQLiteRepository(db), logger)
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, sessions, logger)

	a := &App{
		config:         c,
		logger:         logger,
		db:             db,
		sessions:       sessions,
		authService:    services.NewAuthService(apiClient, sessions),
		recipeService:  services.NewRecipeService(apiClient),
		workoutService: services.NewWorkoutService(apiClient),
		mode:           ModeOnline,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}
	sessions.OnChange(a.onSessionChange)
	return a, nil
}

// onSessionChange is invoked by the session manager after every state
// transition. It announces expiry-driven logouts; logouts the user typed
// themselves already print their own confirmation.
func (a *App) onSessionChange(loggedIn bool) {
	was := a.wasLoggedIn.Swap(loggedIn)
	if was && !loggedIn && !a.explicitLogout.Load() {
		fmt.Fprintln(a.out, "\nSession expired. Type 'login' to sign in again.")
	}
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.CurrentToken()
	return ok
}

func (a *App) getStatus() string {
	s := ""
	if claims, ok := a.sessions.Claims(); ok {
		s = claims.Subject + " "
	}
	if mode := a.currentMode(); mode != "" {
		s = s + string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run restores any persisted session, starts the connectivity watcher and
// blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	if err := a.sessions.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err)
	}
	if claims, ok := a.sessions.Claims(); ok {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", claims.Subject)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Lifestyle Hub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) close(ctx context.Context) {
	a.sessions.Close()
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "error closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(ctx, "error closing database", "error", err)
	}
}

// StartOnlineStatusWatcher periodically pings the server and flips Mode
// between online and offline. It returns when ctx is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
