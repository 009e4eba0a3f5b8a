package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/crmkeeper/internal/client/models"
	"github.com/dmitrijs2005/crmkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register runs the registration form. On success the new user is logged in.
// Form checks (confirmation, length, required fields) run before the session
// store is called. Passwords are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	var reg models.Registration
	var err error

	if reg.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return err
	}
	if reg.FirstName, err = getSimpleText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if reg.LastName, err = getSimpleText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}
	if reg.Password, err = getPassword("Enter password", a.out); err != nil {
		return err
	}
	defer common.WipeByteArray(reg.Password)
	if reg.ConfirmPassword, err = getPassword("Confirm password", a.out); err != nil {
		return err
	}
	defer common.WipeByteArray(reg.ConfirmPassword)

	if err := reg.Validate(); err != nil {
		return err
	}

	u, err := a.authService.Register(ctx,
		strings.TrimSpace(reg.Username), reg.Password,
		strings.TrimSpace(reg.FirstName), strings.TrimSpace(reg.LastName))
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			a.println("This username already exists!")
		}
		return err
	}

	a.printf("Registered and logged in as %s.\n", u.Username)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if strings.TrimSpace(username) == "" || len(password) == 0 {
		return fmt.Errorf("%w: username and password", common.ErrRequiredField)
	}

	u, err := a.authService.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.println("Invalid username or password.")
		}
		return err
	}

	a.printf("Welcome, %s!\n", u.FullName())
	return nil
}

// Logout ends the session. Calling it while logged out is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

// WhoAmI prints the active session.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.authService.Current()
	if u == nil {
		a.println("Not logged in.")
		return nil
	}
	a.printf("%s (%s)\n", u.FullName(), u.Username)
	return nil
}
