package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/minseo-k/fridgekeeper/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// printOpError renders a failed session operation for the user. The
// controller guarantees the message inside an AuthError is displayable.
func printOpError(err error) {
	var authErr *session.AuthError
	switch {
	case errors.Is(err, session.ErrBusy):
		fmt.Println("Another operation is still running, try again in a moment.")
	case errors.As(err, &authErr):
		fmt.Println(authErr.Message)
	default:
		fmt.Println("Unexpected error:", err)
	}
}

// Login prompts for credentials and opens a session. Field presence is
// checked here; the controller does not re-validate.
func (a *App) Login(ctx context.Context) error {
	loginID, err := getSimpleText(a.reader, "Login id", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if loginID == "" || len(password) == 0 {
		fmt.Println("Please fill in all fields.")
		return nil
	}

	if err := a.session.Login(ctx, loginID, string(password)); err != nil {
		printOpError(err)
		return err
	}

	fmt.Println("Welcome back!")
	return nil
}

// Signup prompts for the new account's fields and registers it. The two
// password entries must match; that check lives here, not in the
// controller. A created account is not logged in.
func (a *App) Signup(ctx context.Context) error {
	loginID, err := getSimpleText(a.reader, "Login id", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Nickname", os.Stdout)
	if err != nil {
		return err
	}

	password1, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password1)

	password2, err := getPassword("Repeat password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password2)

	if loginID == "" || username == "" || len(password1) == 0 {
		fmt.Println("Please fill in all fields.")
		return nil
	}
	if string(password1) != string(password2) {
		fmt.Println("Passwords do not match.")
		return nil
	}

	if err := a.session.Signup(ctx, loginID, username, string(password1), string(password2)); err != nil {
		printOpError(err)
		return err
	}

	fmt.Println("Account created, you can log in now.")
	return nil
}

// Logout drops the session. Purely local; the server keeps no session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}
