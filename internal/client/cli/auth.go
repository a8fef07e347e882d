package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/client/client"
	"github.com/dmitrijs2005/notto/internal/client/services"
	"github.com/dmitrijs2005/notto/internal/common"
)

// Indirections over the interactive input helpers, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// readNewPassword asks twice and returns the password only if both match.
func (a *App) readNewPassword() ([]byte, error) {
	pw, err := getPassword(a.out, "New password")
	if err != nil {
		return nil, err
	}
	again, err := getPassword(a.out, "Repeat password")
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(again)
	if len(pw) == 0 || string(pw) != string(again) {
		common.WipeByteArray(pw)
		return nil, errors.New("passwords are empty or do not match")
	}
	return pw, nil
}

// Register creates an account and prints the recovery phrase once. The
// phrase is the only way back in if the password is lost.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := a.readNewPassword()
	if err != nil {
		a.fail(err)
		return err
	}
	defer common.WipeByteArray(password)

	stop := startSpinner(a.out, "Deriving keys...")
	phrase, err := a.auth.Register(ctx, username, password)
	stop()
	if err != nil {
		a.fail(err)
		return err
	}

	a.ok("Account %q created", username)
	fmt.Fprintln(a.out, "Recovery phrase (write it down, it is shown only once):")
	fmt.Fprintln(a.out, "  "+phrase)
	a.hint("Run login to unlock your notes")
	return nil
}

// Login tries the server first and falls back to the cached account when
// the server is unreachable. A successful login starts background sync.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		err := errors.New("already logged in, run logout first")
		a.fail(err)
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	stop := startSpinner(a.out, "Unlocking...")
	mode, err := a.auth.Login(ctx, username, password)
	stop()
	if err != nil {
		switch {
		case errors.Is(err, client.ErrLocalDataNotAvailable):
			a.fail(errors.New("server unreachable and no cached account on this device"))
		case errors.Is(err, common.ErrorUnauthorized):
			a.fail(errors.New("wrong username or password"))
		default:
			a.fail(err)
		}
		return err
	}

	a.ok("Logged in as %s (%s)", username, mode)
	if mode == services.ModeOffline {
		a.hint("Changes stay on this device until the server is reachable")
	}
	a.startEngine(ctx, mode)
	return nil
}

// Recover unlocks the account with the recovery phrase and sets a new
// password. It needs the server.
func (a *App) Recover(ctx context.Context) error {
	if a.isLoggedIn() {
		err := errors.New("already logged in, run logout first")
		a.fail(err)
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	phrase, err := getSimpleText(a.reader, "Enter recovery phrase", a.out)
	if err != nil {
		return err
	}
	password, err := a.readNewPassword()
	if err != nil {
		a.fail(err)
		return err
	}
	defer common.WipeByteArray(password)

	stop := startSpinner(a.out, "Recovering...")
	err = a.auth.RecoveryLogin(ctx, username, phrase, password)
	stop()
	if err != nil {
		a.fail(err)
		return err
	}

	a.ok("Password reset, logged in as %s", username)
	a.startEngine(ctx, services.ModeOnline)
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	password, err := a.readNewPassword()
	if err != nil {
		a.fail(err)
		return err
	}
	defer common.WipeByteArray(password)

	stop := startSpinner(a.out, "Re-wrapping key...")
	err = a.auth.ChangePassword(ctx, password)
	stop()
	if err != nil {
		a.fail(err)
		return err
	}
	a.ok("Password changed")
	return nil
}

// Logout stops sync and locks the session. Local notes stay on disk,
// encrypted, for the next login.
func (a *App) Logout(ctx context.Context) error {
	a.stopEngine()
	if err := a.auth.Logout(ctx); err != nil {
		a.fail(err)
		return err
	}
	a.ok("Logged out")
	return nil
}
