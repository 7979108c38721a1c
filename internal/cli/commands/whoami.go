package commands

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command.
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			return runWhoami(d)
		},
	}
}

func runWhoami(d *deps) error {
	sess, err := d.requireSession()
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "User ID:   %d\n", sess.UserID)
	fmt.Fprintf(d.out, "User type: %s\n", sess.UserType)
	if exp, ok := tokenExpiry(sess.Token); ok {
		fmt.Fprintf(d.out, "Token expires: %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}

// tokenExpiry decodes the stored token as an unverified JWT to show its
// expiry. Display only; the backend owns token validation, and tokens that are
// not JWTs simply print nothing here.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
