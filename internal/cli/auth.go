package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursemate/coursemate/internal/common"
	"github.com/coursemate/coursemate/internal/models"
)

// Register prompts for account details, validates them, and dispatches the
// registration. A successful registration also logs the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := checkInput(registerInput{Username: username, Email: email, Password: password}); err != nil {
		fmt.Fprintln(a.out, "Invalid input:", err)
		return err
	}

	if err := a.ctrl.Register(ctx, username, email, password); err != nil {
		a.renderAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.ctrl.State().Session.Username)
	return nil
}

// Login prompts for credentials and dispatches the login.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := checkInput(loginInput{Username: username, Password: password}); err != nil {
		fmt.Fprintln(a.out, "Invalid input:", err)
		return err
	}

	if err := a.ctrl.Login(ctx, username, password); err != nil {
		a.renderAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.ctrl.State().Session.Username)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.ctrl.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Profile prints the current session identity.
func (a *App) Profile(ctx context.Context) error {
	s := a.ctrl.State()
	if s.Session == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return common.ErrNoActiveSession
	}
	fmt.Fprintf(a.out, "User name: %s\nEmail: %s\n", s.Session.Username, s.Session.Email)
	if s.Session.About != "" {
		fmt.Fprintf(a.out, "About: %s\n", s.Session.About)
	}
	if s.Session.Avatar != "" {
		fmt.Fprintf(a.out, "Avatar: %s\n", s.Session.Avatar)
	}
	return nil
}

// EditProfile prompts for profile changes and dispatches the update. Empty
// answers leave the corresponding field unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	s := a.ctrl.State()
	if s.Session == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return common.ErrNoActiveSession
	}

	username, err := GetSimpleText(a.reader, "User name ["+s.Session.Username+"] (empty to keep)", a.out)
	if err != nil {
		return err
	}
	about, err := GetSimpleText(a.reader, "About (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var patch models.ProfilePatch
	if username != "" {
		if err := checkInput(profileInput{Username: username}); err != nil {
			fmt.Fprintln(a.out, "Invalid input:", err)
			return err
		}
		patch.Username = &username
	}
	if about != "" {
		patch.About = &about
	}

	if patch.Username == nil && patch.About == nil {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	if err := a.ctrl.UpdateProfile(ctx, patch); err != nil {
		a.renderAuthError(err)
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// renderAuthError maps the typed auth errors onto user-facing messages. The
// error kind, not any message text, decides which field is blamed.
func (a *App) renderAuthError(err error) {
	switch {
	case errors.Is(err, common.ErrAccountExists):
		fmt.Fprintln(a.out, "An account with this user name already exists. Please log in instead.")
	case errors.Is(err, common.ErrAccountNotFound):
		fmt.Fprintln(a.out, "No account found with that user name. Please sign up first.")
	case errors.Is(err, common.ErrInvalidCredential):
		fmt.Fprintln(a.out, "Incorrect password for this user name.")
	case errors.Is(err, common.ErrNoActiveSession):
		fmt.Fprintln(a.out, "Not logged in.")
	default:
		fmt.Fprintln(a.out, "Operation failed:", err)
	}
}
