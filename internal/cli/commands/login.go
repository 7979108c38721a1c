package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/papilon-app/papilon-cli/internal/cli/client"
)

// ErrSoloLocales is the policy rejection for accounts the backend authenticated
// but this application does not serve.
var ErrSoloLocales = errors.New("Solo los usuarios locales pueden iniciar sesión.")

// NewLoginCmd creates the login command.
func NewLoginCmd() *cobra.Command {
	var username, password, loginType string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Papilon backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runLogin(d, username, password, loginType)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (or set PAPILON_USERNAME)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set PAPILON_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&loginType, "type", string(client.LoginTypeLocal), "Login type: local or standard")

	return cmd
}

func runLogin(d *deps, username, password, loginType string) error {
	if username == "" {
		username = os.Getenv("PAPILON_USERNAME")
	}
	if password == "" {
		password = os.Getenv("PAPILON_PASSWORD")
	}

	if username == "" {
		return fmt.Errorf("username is required (use --username flag or PAPILON_USERNAME env var)")
	}

	lt := client.LoginType(loginType)
	switch lt {
	case client.LoginTypeLocal, client.LoginTypeStandard:
	default:
		return fmt.Errorf("invalid login type %q (must be local or standard)", loginType)
	}

	if password == "" {
		if !term.IsTerminal(int(syscall.Stdin)) {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or PAPILON_PASSWORD env var)")
		}
		fmt.Fprint(d.out, "Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(bytePassword)
		fmt.Fprintln(d.out)
	}

	resp, err := d.api.Login(context.Background(), username, password, lt)
	if err != nil {
		return err
	}

	// The backend validated the credentials, but this application only serves
	// local business accounts. No session is created for anyone else.
	if resp.TipoUsuario != "local" {
		return ErrSoloLocales
	}

	if err := d.sessions.Login(resp.Token, resp.IDUsuario, resp.TipoUsuario); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Fprintln(d.out, "✓ Login successful!")
	fmt.Fprintf(d.out, "  User: %s (id %d, %s)\n", username, resp.IDUsuario, resp.TipoUsuario)

	return nil
}
