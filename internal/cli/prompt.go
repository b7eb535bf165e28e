package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadPassword prompts on stderr and reads a password from the terminal
// with echo disabled. Fails when stdin is not a terminal so scripts get a
// clear error instead of a hanging prompt.
func ReadPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal available for interactive password prompt")
	}

	fmt.Fprint(os.Stderr, prompt)
	passwordBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(passwordBytes), nil
}
