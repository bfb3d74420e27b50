//go:build !windows

package flags

import (
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
)

// askPassword reads the basic auth password for user without echoing it.
func askPassword(user string) (string, error) {
	var fd int
	if terminal.IsTerminal(syscall.Stdin) {
		fd = syscall.Stdin
	} else {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return "", errors.Wrap(err, "opening /dev/tty for the password prompt")
		}
		defer tty.Close()
		fd = int(tty.Fd())
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", user)
	password, err := terminal.ReadPassword(fd)
	if err != nil {
		return "", errors.Wrap(err, "reading password")
	}
	fmt.Fprintln(os.Stderr)
	return string(password), nil
}
