package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command.
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runLogout(d)
		},
	}
}

// runLogout clears the session unconditionally; logging out while logged out
// is a no-op, not an error.
func runLogout(d *deps) error {
	if err := d.sessions.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Fprintln(d.out, "✓ Logged out.")
	return nil
}
