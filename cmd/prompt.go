package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var errNoTerminal = errors.New("stdin is not a terminal")

// stdinIsTerminal is swapped in tests
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readPassword is swapped in tests
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// promptPassword asks for the password of username without echoing it
func promptPassword(username string) (string, error) {
	if !stdinIsTerminal() {
		return "", errNoTerminal
	}

	fmt.Fprintf(os.Stderr, "Wordnik password for %s: ", username)
	password, err := readPassword()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimRight(string(password), "\r\n"), nil
}
