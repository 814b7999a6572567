package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/idkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, email and password and creates the account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.api.Register(ctx, userName, string(password), email)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered, user id %d\n", id)
	return nil
}

// Login prompts for a username or email and a password. On success the
// session token replaces any previous one.
func (a *App) Login(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, login, string(password))
	if err != nil {
		return err
	}

	a.token = token
	a.userName = login
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout forgets the session token. The server keeps it until the next login.
func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.userName = ""
	return nil
}

// dropStaleSession logs out locally when the server no longer accepts the
// token.
func (a *App) dropStaleSession(err error) error {
	if errors.Is(err, common.ErrInvalidToken) {
		_ = a.Logout(context.Background())
		return fmt.Errorf("session is no longer valid, please log in again: %w", err)
	}
	return err
}
