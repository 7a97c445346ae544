// Package services contains application services for the lifehub CLI.
// This file defines the authentication service: the credential exchange
// against the server and the handoff of issued tokens to the session store.
package services

import (
	"context"
	"fmt"

	"lifehub/internal/client/api"
	"lifehub/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and adopt it as the session.
//   - Register: create a new user on the server; does NOT log the user in.
//   - Logout: end the session and purge the persisted token.
//   - Ping: check server reachability.
//   - CheckAuth: ask the server whether the current token is still accepted.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts. Credentials are
// transient: callers own the password buffer and should wipe it afterwards.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	CheckAuth(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote API client
// and the session manager.
type authService struct {
	client   api.Client
	sessions *session.Manager
}

// NewAuthService constructs an AuthService bound to the given API client and
// session manager.
func NewAuthService(client api.Client, sessions *session.Manager) AuthService {
	return &authService{client: client, sessions: sessions}
}

// Login performs the credential exchange and hands the issued token to the
// session store, which persists it and arms the expiry timer.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	token, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.sessions.Login(ctx, token); err != nil {
		return fmt.Errorf("session error: %w", err)
	}
	return nil
}

// Register creates a new account on the server. Registration does not imply
// login; the caller decides whether to follow up with a Login call.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	if err := a.client.Register(ctx, username, string(password)); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}

// Ping proxies a reachability check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// CheckAuth proxies a server-side token validity probe.
func (a *authService) CheckAuth(ctx context.Context) error {
	return a.client.CheckAuth(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
