package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// terminalPasswords reads passwords from the controlling terminal with echo
// disabled.
type terminalPasswords struct {
	fd  int
	out io.Writer
}

func newTerminalPasswords(out io.Writer) *terminalPasswords {
	return &terminalPasswords{fd: int(os.Stdin.Fd()), out: out}
}

func (t *terminalPasswords) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	pw, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}
