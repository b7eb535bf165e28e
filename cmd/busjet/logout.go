package main

import (
	"fmt"

	"busjet/internal/cli"
)

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "Clear the saved session",
		Usage:   "busjet logout",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			// No network call: logging out only clears local state.
			a := newApp()
			if err := a.store.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}
