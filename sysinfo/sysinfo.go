// Package sysinfo provides best-effort system information retrieval for the
// fetch banner. It detects the OS family once at startup and then runs one
// family-specific probe per fact, degrading to a fixed placeholder value
// whenever the underlying tool, pseudo-file, or system call is unavailable.
package sysinfo

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// Report represents everything the banner displays. It is filled field by
// field in one linear pass and read exactly once by the renderer. A probe
// that fails leaves its field at the documented placeholder, so no field is
// ever empty or undefined.
type Report struct {
	// Family is the coarse OS classification that drove collection.
	Family Family

	// Variant is the specific BSD kernel name (e.g. "FreeBSD");
	// empty for every other family.
	Variant string

	// Distro is the OS or distribution description
	Distro string

	// Kernel is the kernel release string
	Kernel string

	// CPUModel is the processor brand/model string
	CPUModel string

	// Threads is the logical CPU count (1 when undetectable)
	Threads int

	// User is the current username
	User string

	// Shell is the login shell from $SHELL ("N/A" when unset)
	Shell string

	// Tasks is the running process count (0 on failure)
	Tasks int

	// Modules is the loaded kernel module count on Linux, "N/A" elsewhere
	Modules string

	// MemTotalMiB is the physical memory size in MiB
	MemTotalMiB int64

	// MemUsedMiB is the in-use memory estimate in MiB
	MemUsedMiB int64

	// MemCache is the page cache figure ("<n> MiB"), or "N/A" on
	// platforms where the cache cannot be isolated
	MemCache string

	// LocalIP is the primary non-loopback IPv4 address ("N/A" if none)
	LocalIP string
}

// Collect gathers a full report for the local machine. This is the main
// entry point for the probe pass.
//
// Returns:
//   - A pointer to a populated Report
//
// Collection never fails as a whole: each probe that errors out substitutes
// its placeholder and the pass continues with the next field.
func Collect() *Report {
	return NewCollector().Collect()
}
