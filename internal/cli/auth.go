package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/paybook/internal/common"
	"github.com/dmitrijs2005/paybook/internal/models"
	"github.com/dmitrijs2005/paybook/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, password and role and creates the account.
// A successful registration also logs the user in.
func (a *App) Register(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeBytes(password)

	roleText, err := getSimpleText(a.reader, "Role (admin/user, Enter for user)", a.out)
	if err != nil {
		return err
	}
	role, err := models.ParseRole(roleText)
	if err != nil {
		return err
	}

	u, err := a.accounts.Register(ctx, username, password, role)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered and logged in as %s (%s)\n", u.Username, u.Role)
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeBytes(password)

	u, err := a.accounts.Login(ctx, username, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", u.Username)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.accounts.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(_ context.Context, _ []string) error {
	u, ok := a.accounts.Current()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", u.Username, u.Role)
	return nil
}

// userMessage renders err for the REPL.
func userMessage(err error) string {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		parts := make([]string, 0, len(verr.Issues))
		for _, is := range verr.Issues {
			parts = append(parts, is.Field+" "+is.Reason)
		}
		return "invalid input: " + strings.Join(parts, "; ")
	case errors.Is(err, common.ErrNotFound):
		return "no such record"
	default:
		return err.Error()
	}
}
