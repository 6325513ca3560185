//go:build linux || darwin || freebsd || openbsd || netbsd
// +build linux darwin freebsd openbsd netbsd

// Package sysinfo - kernel identification via uname(2)
package sysinfo

import "golang.org/x/sys/unix"

// readUtsname queries the kernel identification in one system call and
// returns the kernel name (uname -s) and release (uname -r).
func readUtsname() (sysname, release string, err error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", "", err
	}
	return unix.ByteSliceToString(uts.Sysname[:]), unix.ByteSliceToString(uts.Release[:]), nil
}
