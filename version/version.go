package version

import (
	"fmt"
	"io"
	"runtime"
)

// Program is the name shown by --version.
const Program = "apitester"

// Version is a semantic version of apitester.
type Version struct {
	major int
	minor int
	patch int
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// Current returns the version of this build.
func Current() *Version {
	return &Version{major: 0, minor: 1, patch: 0}
}

// PrintVersion writes "apitester 0.1.0 (go1.x linux/amd64)".
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s (%s %s/%s)\n", Program, Current(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
