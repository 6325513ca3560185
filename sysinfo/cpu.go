package sysinfo

import (
	"os"
	"strconv"
	"strings"
)

// collectCPUModel resolves the processor brand string. Linux prefers the
// lscpu summary and falls back to the raw cpuinfo pseudo-file; macOS and the
// BSDs ask sysctl. Every family falls through to the CPUID brand register
// before settling on "Unknown".
func (c *Collector) collectCPUModel(family Family) string {
	switch family {
	case FamilyLinux:
		if out, err := c.run("lscpu"); err == nil {
			if model := parseLscpuModel(out); model != "" {
				return model
			}
		}
		if data, err := os.ReadFile(c.cpuInfoPath); err == nil {
			if model := parseCPUInfoModel(string(data)); model != "" {
				return model
			}
		}
	case FamilyMacOS:
		if out, err := c.run("sysctl", "-n", "machdep.cpu.brand_string"); err == nil {
			return out
		}
	case FamilyBSD:
		if out, err := c.run("sysctl", "-n", "hw.model"); err == nil {
			return out
		}
	}

	if brand := strings.TrimSpace(c.cpuBrand()); brand != "" {
		return brand
	}
	c.log.Debug("cpu model undetectable")
	return "Unknown"
}

// parseLscpuModel pulls the "Model name" field out of lscpu output.
func parseLscpuModel(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Model name:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Model name:"))
		}
	}
	return ""
}

// parseCPUInfoModel pulls the first "model name" entry out of the cpuinfo
// pseudo-file.
func parseCPUInfoModel(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, "model name") {
			continue
		}
		if _, value, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// collectThreads resolves the logical CPU count. Linux asks nproc and then
// getconf; macOS and the BSDs ask sysctl. The library count is the last rung
// before the default of 1.
func (c *Collector) collectThreads(family Family) int {
	switch family {
	case FamilyLinux:
		if n, ok := c.runCount("nproc", "--all"); ok {
			return n
		}
		if n, ok := c.runCount("getconf", "_NPROCESSORS_ONLN"); ok {
			return n
		}
	case FamilyMacOS, FamilyBSD:
		if n, ok := c.runCount("sysctl", "-n", "hw.ncpu"); ok {
			return n
		}
	}

	if n, err := c.logicalCPUs(); err == nil && n > 0 {
		return n
	}
	c.log.Debug("thread count undetectable")
	return 1
}

// runCount runs a probe tool whose entire output should be a positive
// integer.
func (c *Collector) runCount(name string, args ...string) (int, bool) {
	out, err := c.run(name, args...)
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
