// Package cli provides the interactive Lifestyle Hub command-line client.
//
// It wires configuration, the persisted session store, the HTTP API client
// and an interactive REPL for managing recipes and workouts. Typical flow:
// restore a persisted session, start a background connectivity watcher, and
// execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout against the server
//   - Automatic logout when the access token expires
//   - Recipe and workout listing with filters and pagination
//   - Adding and deleting recipes and workouts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
