//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd
// +build !linux,!darwin,!freebsd,!openbsd,!netbsd

package sysinfo

import "errors"

// readUtsname reports that uname(2) is unavailable on this platform. The
// collector maps the error to the Unknown family, so every probe degrades
// to its placeholder.
func readUtsname() (sysname, release string, err error) {
	return "", "", errors.New("uname not available on this platform")
}
