package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/idkeeper/internal/common"
)

var errNotLoggedIn = errors.New("not logged in")

// List prints every user known to the server.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	users, err := a.api.ListUsers(ctx, a.token)
	if err != nil {
		return a.dropStaleSession(err)
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Username, u.Email)
	}
	return w.Flush()
}

// Update changes one field of the current account. Passwords are read
// without echo.
func (a *App) Update(ctx context.Context, key string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	var value string
	switch key {
	case common.FieldUsername, common.FieldEmail:
		v, err := getSimpleText(a.reader, "Enter new "+key, a.out)
		if err != nil {
			return err
		}
		value = v
	case common.FieldPassword:
		pw, err := getPassword(a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(pw)
		value = string(pw)
	default:
		return fmt.Errorf("unsupported key %q: only username, password, email", key)
	}

	if err := a.api.UpdateUser(ctx, a.token, key, value); err != nil {
		return a.dropStaleSession(err)
	}

	if key == common.FieldUsername {
		a.userName = value
	}
	fmt.Fprintln(a.out, "Updated")
	return nil
}

// Delete removes the current account after confirmation and logs out.
func (a *App) Delete(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	answer, err := getSimpleText(a.reader, "Type 'yes' to delete your account", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.api.DeleteUser(ctx, a.token); err != nil {
		return a.dropStaleSession(err)
	}

	_ = a.Logout(ctx)
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}
