package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsLoggedIn_EmptySession(t *testing.T) {
	a, _ := newTestApp(t, "")
	require.False(t, a.isLoggedIn())
}

func TestIsLoggedIn_WithSession(t *testing.T) {
	a, _ := newTestApp(t, "")
	token := signedToken(t, "alice", time.Now().Add(time.Hour))
	require.NoError(t, a.sessions.Login(context.Background(), token))
	require.True(t, a.isLoggedIn())
}

func TestSetMode_ChangesAndPrintsOnce(t *testing.T) {
	a, out := newTestApp(t, "")
	a.mode = ModeOffline

	a.setMode(ModeOnline)
	require.Equal(t, ModeOnline, a.currentMode())
	require.Contains(t, out.String(), "Switched to online mode")

	out.Reset()
	a.setMode(ModeOnline)
	require.Empty(t, out.String())

	a.setMode(ModeOffline)
	require.Contains(t, out.String(), "Switched to offline mode")
}

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp(t, "")
	require.Equal(t, "(online)", a.getStatus())

	token := signedToken(t, "alice", time.Now().Add(time.Hour))
	require.NoError(t, a.sessions.Login(context.Background(), token))
	require.Equal(t, "(alice online)", a.getStatus())
}

func TestOnlineStatusWatcher_FlipsMode(t *testing.T) {
	a, _ := newTestApp(t, "")
	f := &fakeAuth{sessions: a.sessions, pingErr: context.DeadlineExceeded}
	a.authService = f

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}

	require.Equal(t, ModeOffline, a.currentMode())
}

func TestMode_ConcurrentWatcherAndReplAccess(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.authService = &fakeAuth{sessions: a.sessions, pingErr: context.DeadlineExceeded}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, time.Millisecond)
		close(done)
	}()

	// The REPL side reads and flips the mode while the watcher runs.
	for i := 0; i < 200; i++ {
		_ = a.getStatus()
		a.setMode(ModeOnline)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}

	mode := a.currentMode()
	require.True(t, mode == ModeOnline || mode == ModeOffline)
}
