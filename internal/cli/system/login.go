package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifelog-cli/internal/auth"
	"github.com/julianstephens/lifelog-cli/internal/cli"
	"github.com/julianstephens/lifelog-cli/internal/keyring"
	"github.com/julianstephens/lifelog-cli/internal/validation"
)

type LoginCmd struct {
	Email string `short:"e" help:"Account email. Prompted for when omitted."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	email := c.Email
	var password string

	var fields []huh.Field
	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Validate(validation.Email).
			Value(&email))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password))

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}
	if err := validation.Email(email); err != nil {
		return err
	}

	client := auth.NewClient(ctx.APIURL)
	session, err := client.Login(context.Background(), email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fmt.Errorf("invalid email or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	if err := keyring.SetSession(session); err != nil {
		return fmt.Errorf("signed in, but failed to save the session: %w", err)
	}
	fmt.Printf("Signed in as %s.\n", session.Email)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteSession(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("Not signed in.")
			return nil
		}
		return fmt.Errorf("failed to clear the session: %w", err)
	}
	fmt.Println("Signed out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	session, err := keyring.GetSession()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("Not signed in; running as guest.")
			return nil
		}
		return err
	}
	fmt.Printf("Signed in as %s (%s)\n", session.Name, session.Email)
	return nil
}
