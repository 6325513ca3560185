package sysinfo

import "strings"

// Family is the coarse platform classification. It is detected once at
// startup and selects the probe strategy for every collected fact.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyLinux
	FamilyMacOS
	FamilyBSD
)

// bsdKernels lists the BSD kernel names folded into FamilyBSD. The matched
// name is kept so it can double as the distro description.
var bsdKernels = []string{"FreeBSD", "OpenBSD", "NetBSD"}

// DetectFamily classifies a kernel name as reported by the OS (the uname -s
// value). Matching is by prefix; anything unrecognized maps to
// FamilyUnknown. There is no error path — every input yields a family.
//
// Returns:
//   - The detected Family
//   - The BSD variant name for BSD kernels, "" for all other families
func DetectFamily(sysname string) (Family, string) {
	switch {
	case strings.HasPrefix(sysname, "Linux"):
		return FamilyLinux, ""
	case strings.HasPrefix(sysname, "Darwin"):
		return FamilyMacOS, ""
	}
	for _, kernel := range bsdKernels {
		if strings.HasPrefix(sysname, kernel) {
			return FamilyBSD, kernel
		}
	}
	return FamilyUnknown, ""
}

// String returns the family name used in debug logging.
func (f Family) String() string {
	switch f {
	case FamilyLinux:
		return "Linux"
	case FamilyMacOS:
		return "macOS"
	case FamilyBSD:
		return "BSD"
	default:
		return "Unknown"
	}
}
