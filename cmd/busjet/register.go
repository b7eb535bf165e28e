package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"busjet/internal/cli"
)

func registerCommand() *cli.Command {
	var (
		name         string
		passwordFile string
	)

	return &cli.Command{
		Name:    "register",
		Summary: "Create a new customer account",
		Usage:   "busjet register <email> --name <name> [flags]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("register", pflag.ContinueOnError)
			fs.StringVar(&name, "name", "", "display name for the new account")
			fs.StringVar(&passwordFile, "password-file", "", "path to a file containing the password (default: prompt)")
			return fs
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("email is required\n\nUsage: busjet register <email> --name <name>")
			}
			email := args[0]
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			password, err := readPassword(passwordFile, "Password: ")
			if err != nil {
				return err
			}
			// Confirmation only makes sense when the password was typed.
			if passwordFile == "" || passwordFile == "-" {
				confirm, err := cli.ReadPassword("Confirm password: ")
				if err != nil {
					return err
				}
				if confirm != password {
					return fmt.Errorf("passwords do not match")
				}
			}

			a := newApp()
			if err := a.store.Register(context.Background(), name, email, password); err != nil {
				return err
			}

			fmt.Printf("Registration successful! You can now sign in with \"busjet login %s\".\n", email)
			return nil
		},
	}
}
