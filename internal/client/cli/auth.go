package cli

import (
	"context"
	"errors"
	"fmt"

	"lifehub/internal/client/api"
	"lifehub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account via the AuthService.
//
// Registration does not sign the user in; on success the user is told to run
// 'login'. The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", errText(err))
		return err
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts the user for credentials, exchanges them for a token and
// adopts it as the current session.
//
// The password is securely wiped before returning. On server unreachability
// the app flips to offline mode; other failures are reported verbatim.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, password); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			fmt.Fprintln(a.out, "Server unreachable, try again later.")
			a.setMode(ModeOffline)
		} else {
			fmt.Fprintf(a.out, "Login failed: %s\n", errText(err))
		}
		return err
	}

	claims, ok := a.sessions.Claims()
	if !ok {
		// Exchange succeeded but the token was unusable; the session store
		// already logged the details.
		fmt.Fprintln(a.out, "Login did not produce a usable session, try again.")
		return nil
	}

	a.setMode(ModeOnline)
	if claims.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Logged in as %s.\n", claims.Subject)
	} else {
		fmt.Fprintf(a.out, "Logged in as %s (session expires at %s).\n",
			claims.Subject, claims.ExpiresAt.Local().Format("15:04:05"))
	}
	return nil
}

// Logout ends the session and purges the persisted token.
func (a *App) Logout(ctx context.Context) error {
	a.explicitLogout.Store(true)
	defer a.explicitLogout.Store(false)

	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", errText(err))
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Status reports connectivity mode, the current session claims and, when
// logged in, whether the server still accepts the token.
func (a *App) Status(ctx context.Context) error {
	fmt.Fprintf(a.out, "Mode: %s\n", a.currentMode())

	claims, ok := a.sessions.Claims()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as: %s\n", claims.Subject)
	if !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Session expires: %s\n", claims.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
	}

	if err := a.authService.CheckAuth(ctx); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Server no longer accepts the token.")
		} else {
			fmt.Fprintf(a.out, "Token check failed: %s\n", errText(err))
		}
		return nil
	}
	fmt.Fprintln(a.out, "Token accepted by the server.")
	return nil
}

// errText prefers the server-provided message of an APIError over the full
// wrapped chain.
func errText(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
