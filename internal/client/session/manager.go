// Package session is the single authority for "is the user logged in, and
// with what identity/expiry". It holds the current access token, persists it
// in the local metadata slot so it survives restarts, and owns the one timer
// that logs the user out when the token's exp claim passes.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"lifehub/internal/client/repositories/metadata"
	"lifehub/internal/common"
	"lifehub/internal/logging"
)

// TokenSlotKey is the single well-known metadata key holding the raw token.
const TokenSlotKey = "token"

// slotTimeout bounds durable-slot writes performed from the expiry timer,
// which has no caller-supplied context.
const slotTimeout = 5 * time.Second

// Manager implements the session store.
//
// All mutations (Login, Logout, Restore, timer-fired logout) are serialized
// under one mutex, so a login racing a timer fire resolves deterministically:
// the later event wins. Each armed timer carries the generation it was armed
// for and is ignored when it fires stale, so a superseded timer can never log
// out a newer session.
type Manager struct {
	slot   metadata.Repository
	logger logging.Logger

	mu     sync.Mutex
	token  string
	claims *Claims
	timer  *time.Timer
	gen    uint64

	// onChange is invoked (outside the lock) after every authenticated-state
	// transition, with the new logged-in state. Views use it to switch screens.
	onChange func(loggedIn bool)

	// now is a test seam.
	now func() time.Time
}

func NewManager(slot metadata.Repository, logger logging.Logger) *Manager {
	return &Manager{slot: slot, logger: logger, now: time.Now}
}

// OnChange registers the state-transition callback. Must be set before the
// manager is shared between goroutines.
func (m *Manager) OnChange(fn func(loggedIn bool)) {
	m.onChange = fn
}

// Restore loads a previously persisted token at process start.
//
// Absent slot: the session stays empty. Undecodable token: the slot is purged
// so the next start does not retry it, and the session stays empty — never an
// error to the caller, an expired or broken session is a normal lifecycle
// event. Expired token: logout immediately. Otherwise the token is adopted
// and the expiry timer armed.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()

	raw, err := m.slot.Get(ctx, TokenSlotKey)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	if raw == nil {
		m.mu.Unlock()
		return nil
	}

	claims, err := DecodeClaims(string(raw))
	if err != nil {
		m.logger.Warn(ctx, "discarding undecodable persisted token", "error", err)
		err = m.clearLocked(ctx)
		m.mu.Unlock()
		return err
	}

	m.token = string(raw)
	m.claims = claims
	loggedIn := m.armExpiryLocked(ctx)

	if loggedIn {
		m.logger.Info(ctx, "session restored", "user", claims.Subject, "expires_at", claims.ExpiresAt)
	}
	m.notifyUnlock(loggedIn)
	return nil
}

// Login adopts a freshly issued token: persists it in the durable slot,
// decodes its expiry claim and arms the expiry timer.
//
// A malformed token never returns an error; it leaves an empty session and a
// purged slot, exactly as if no token had been issued.
func (m *Manager) Login(ctx context.Context, token string) error {
	m.mu.Lock()

	claims, err := DecodeClaims(token)
	if err != nil {
		m.logger.Warn(ctx, "login with undecodable token", "error", err)
		if cerr := m.clearLocked(ctx); cerr != nil {
			m.mu.Unlock()
			return cerr
		}
		m.notifyUnlock(false)
		return nil
	}

	if err := m.slot.Replace(ctx, TokenSlotKey, []byte(token)); err != nil {
		m.mu.Unlock()
		return err
	}

	m.token = token
	m.claims = claims
	loggedIn := m.armExpiryLocked(ctx)

	if loggedIn {
		m.logger.Info(ctx, "logged in", "user", claims.Subject, "expires_at", claims.ExpiresAt)
	}
	m.notifyUnlock(loggedIn)
	return nil
}

// Logout clears the in-memory token, removes it from the durable slot and
// cancels any armed expiry timer. Idempotent: logging out twice leaves the
// same empty state, though the change signal fires each time.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	err := m.clearLocked(ctx)
	m.notifyUnlock(false)
	return err
}

// CurrentToken returns the token if one is present and not expired. It is a
// pure read: expiry clearing belongs to the timer and restore paths only.
func (m *Manager) CurrentToken() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == "" {
		return "", false
	}
	if !m.claims.ExpiresAt.IsZero() && !m.now().Before(m.claims.ExpiresAt) {
		return "", false
	}
	return m.token, true
}

// Claims returns a copy of the current token's claims, if logged in.
func (m *Manager) Claims() (Claims, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == "" || m.claims == nil {
		return Claims{}, false
	}
	if !m.claims.ExpiresAt.IsZero() && !m.now().Before(m.claims.ExpiresAt) {
		return Claims{}, false
	}
	return *m.claims, true
}

// Close cancels the expiry timer. The persisted token is left in place so the
// session survives the restart.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.stopTimerLocked()
}

// armExpiryLocked arms the timer for the current claims and reports whether
// the session ended up logged in. A token whose expiry already passed is
// logged out on the spot rather than scheduled with a negative delay.
// Arming always supersedes the previous timer.
func (m *Manager) armExpiryLocked(ctx context.Context) bool {
	m.gen++
	m.stopTimerLocked()

	if m.claims.ExpiresAt.IsZero() {
		return true
	}

	d := m.claims.ExpiresAt.Sub(m.now())
	if d <= 0 {
		m.logger.Info(ctx, "token already expired, logging out")
		if err := m.clearLocked(ctx); err != nil {
			m.logger.Error(ctx, "failed to clear expired session", "error", err)
		}
		return false
	}

	gen := m.gen
	m.timer = time.AfterFunc(d, func() { m.expire(gen) })
	return true
}

// expire is the timer callback. The generation check rejects firings armed
// for a token that has since been replaced or logged out.
func (m *Manager) expire(gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), slotTimeout)
	defer cancel()

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}

	m.logger.Info(ctx, "session expired, logging out")
	if err := m.clearLocked(ctx); err != nil {
		m.logger.Error(ctx, "failed to clear expired session", "error", err)
	}
	m.notifyUnlock(false)
}

// clearLocked wipes the in-memory session, cancels the timer and removes the
// persisted token. Safe to call when already empty.
func (m *Manager) clearLocked(ctx context.Context) error {
	m.gen++
	m.stopTimerLocked()
	m.token = ""
	m.claims = nil

	if err := m.slot.Delete(ctx, TokenSlotKey); err != nil && !errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return nil
}

func (m *Manager) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// notifyUnlock releases the mutex and then fires the change callback, so the
// callback may call back into the manager without deadlocking.
func (m *Manager) notifyUnlock(loggedIn bool) {
	fn := m.onChange
	m.mu.Unlock()
	if fn != nil {
		fn(loggedIn)
	}
}
