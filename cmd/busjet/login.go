package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"busjet/internal/cli"
)

func loginCommand() *cli.Command {
	var passwordFile string

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate and save the session locally",
		Usage:   "busjet login <email> [flags]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
			fs.StringVar(&passwordFile, "password-file", "", "path to a file containing the password (default: prompt)")
			return fs
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("email is required\n\nUsage: busjet login <email> [flags]")
			}
			email := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			password, err := readPassword(passwordFile, "Password: ")
			if err != nil {
				return err
			}

			a := newApp()
			sess, err := a.store.Login(context.Background(), email, password)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", sess.User.Name, sess.User.Email)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", a.store.Path())
			if sess.User.Role.IsAdmin() {
				fmt.Println("Admin tools are available under \"busjet admin\".")
			}
			return nil
		},
	}
}

// readPassword reads from the given file, or prompts interactively when no
// file is set.
func readPassword(passwordFile, prompt string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", passwordFile, err)
		}
		password := strings.TrimRight(string(data), "\r\n")
		if password == "" {
			return "", fmt.Errorf("password file %s is empty", passwordFile)
		}
		return password, nil
	}
	return cli.ReadPassword(prompt)
}
