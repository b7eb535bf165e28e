package main

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/pflag"

	"busjet/internal/cli"
	"busjet/internal/session"
)

func whoamiCommand() *cli.Command {
	var verify bool

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the current session",
		Usage:   "busjet whoami [flags]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
			fs.BoolVar(&verify, "verify", false, "check the token against the backend")
			return fs
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			// Read the session file directly: whoami stays offline unless
			// --verify asks for a backend check.
			a := newApp()
			sess, err := session.Load(a.store.Path())
			if err != nil {
				return err
			}
			if sess == nil {
				return fmt.Errorf("not logged in; run \"busjet login <email>\" first")
			}

			if sess.Resolved() {
				fmt.Printf("Name:         %s\n", sess.User.Name)
				fmt.Printf("Email:        %s\n", sess.User.Email)
				fmt.Printf("Role:         %s\n", sess.User.Role)
			} else {
				fmt.Println("Profile:      not resolved yet (token only)")
			}
			fmt.Printf("Session file: %s\n", a.store.Path())
			if expiry, ok := tokenExpiry(sess.Token); ok {
				fmt.Printf("Token expiry: %s\n", expiry.Local().Format("2006-01-02 15:04"))
			}

			if verify {
				user, err := a.api.Profile(context.Background(), sess.Token)
				if err != nil {
					fmt.Println("Status:       INVALID (token rejected by backend)")
					return fmt.Errorf("session expired or invalid; run \"busjet login\" again")
				}
				fmt.Printf("Status:       valid (verified as %s)\n", user.Email)
			}
			return nil
		},
	}
}

// tokenExpiry peeks at the token's exp claim without verifying the
// signature. The client never holds the signing secret.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}
