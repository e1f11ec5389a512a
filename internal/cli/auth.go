package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register creates an account. The username is taken from args or prompted
// for; the password is always read from the terminal and wiped afterwards.
func (a *App) Register(ctx context.Context, args []string) error {
	userName, password, err := a.readCredentials(args)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success! You can now log in.")
	return nil
}

// Login authenticates and keeps the issued session token. A failed login
// leaves any previous session untouched.
func (a *App) Login(ctx context.Context, args []string) error {
	userName, password, err := a.readCredentials(args)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	a.token = token
	a.userName = userName
	fmt.Fprintf(a.out, "Logged in as %s\n", userName)
	return nil
}

// Logout forgets the session token.
func (a *App) Logout(ctx context.Context, args []string) error {
	a.token = ""
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// currentUser resolves the session token to the tenant identity passed to
// every core call. An expired or invalid token ends the session.
func (a *App) currentUser() (string, error) {
	if a.token == "" {
		return "", errNotLoggedIn
	}
	userName, err := a.authService.Resolve(a.token)
	if err != nil {
		a.token = ""
		a.userName = ""
		return "", err
	}
	return userName, nil
}

func (a *App) readCredentials(args []string) (string, []byte, error) {
	var userName string
	if len(args) > 0 {
		userName = args[0]
	} else {
		var err error
		userName, err = getSimpleText(a.reader, "Enter username", a.out)
		if err != nil {
			return "", nil, err
		}
	}
	if userName == "" {
		return "", nil, common.Invalid("username is required")
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}
