package sysinfo

import (
	"log/slog"
	"net"
	"os"
	"os/exec"
	"os/user"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Collector gathers one Report. All probes go through the hook fields below,
// which default to the real system calls and tools; tests substitute fakes
// and fixture files to exercise the fallback ladders without touching the
// host machine.
type Collector struct {
	log *slog.Logger

	// uname supplies the kernel name and release in a single call.
	uname func() (sysname, release string, err error)

	// run executes an external probe tool and returns trimmed stdout.
	run func(name string, args ...string) (string, error)

	// lookPath reports whether an optional tool is installed.
	lookPath func(name string) (string, error)

	getenv      func(string) string
	currentUser func() (*user.User, error)
	hostname    func() (string, error)
	lookupHost  func(host string) ([]string, error)

	// Library-backed rungs used when the native tools are unavailable.
	logicalCPUs   func() (int, error)
	pids          func() ([]int32, error)
	virtualMemory func() (*mem.VirtualMemoryStat, error)
	cpuBrand      func() string

	// Pseudo-file locations, overridable for fixture tests.
	osReleasePath string
	cpuInfoPath   string
	memInfoPath   string
}

// NewCollector returns a Collector wired to the local machine.
func NewCollector() *Collector {
	return &Collector{
		log:           newLogger(os.Getenv),
		uname:         readUtsname,
		run:           runCommand,
		lookPath:      exec.LookPath,
		getenv:        os.Getenv,
		currentUser:   user.Current,
		hostname:      os.Hostname,
		lookupHost:    net.LookupHost,
		logicalCPUs:   func() (int, error) { return cpu.Counts(true) },
		pids:          process.Pids,
		virtualMemory: mem.VirtualMemory,
		cpuBrand:      func() string { return cpuid.CPU.BrandName },
		osReleasePath: "/etc/os-release",
		cpuInfoPath:   "/proc/cpuinfo",
		memInfoPath:   "/proc/meminfo",
	}
}

// Collect runs every probe once, in a fixed order, and returns the report.
// A failed probe leaves its placeholder behind and never aborts collection
// of the remaining fields.
func (c *Collector) Collect() *Report {
	report := &Report{}

	sysname, release, err := c.uname()
	if err != nil {
		c.log.Debug("uname failed", "err", err)
	}
	report.Family, report.Variant = DetectFamily(sysname)
	c.log.Debug("detected platform", "family", report.Family, "variant", report.Variant)

	// Kernel release is printed verbatim; the family only matters for the
	// probes below.
	report.Kernel = release
	if report.Kernel == "" {
		report.Kernel = "Unknown"
	}

	report.Distro = c.collectDistro(report.Family, report.Variant)
	report.CPUModel = c.collectCPUModel(report.Family)
	report.Threads = c.collectThreads(report.Family)
	report.User = c.collectUser()
	report.Shell = c.collectShell()
	report.Tasks = c.collectTasks()
	report.Modules = c.collectModules(report.Family)
	report.MemTotalMiB, report.MemUsedMiB, report.MemCache = c.collectMemory(report.Family)
	report.LocalIP = c.collectLocalIP(report.Family)

	return report
}
