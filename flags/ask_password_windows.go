//go:build windows

package flags

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
)

// askPassword reads the basic auth password for user without echoing it.
func askPassword(user string) (string, error) {
	fmt.Fprintf(os.Stderr, "Password for %s: ", user)
	fd := int(os.Stdin.Fd())
	password, err := terminal.ReadPassword(fd)
	if err != nil {
		return "", errors.Wrap(err, "reading password")
	}
	fmt.Fprintln(os.Stderr)
	return string(password), nil
}
