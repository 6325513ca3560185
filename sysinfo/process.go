package sysinfo

import (
	"strconv"
	"strings"
)

// collectTasks counts running processes: one line per PID from a headerless
// ps listing, with the process-enumeration library as the fallback rung.
func (c *Collector) collectTasks() int {
	if out, err := c.run("ps", "ax", "-o", "pid="); err == nil {
		if n := countLines(out); n > 0 {
			return n
		}
	}
	if pids, err := c.pids(); err == nil && len(pids) > 0 {
		return len(pids)
	}
	c.log.Debug("task count undetectable")
	return 0
}

// collectModules counts loaded kernel modules. Linux only, and only when
// lsmod is actually installed; every other case reads "N/A". The count is
// the raw lsmod line count, header included.
func (c *Collector) collectModules(family Family) string {
	if family != FamilyLinux {
		return "N/A"
	}
	if _, err := c.lookPath("lsmod"); err != nil {
		c.log.Debug("lsmod not on PATH")
		return "N/A"
	}
	out, err := c.run("lsmod")
	if err != nil {
		c.log.Debug("lsmod failed", "err", err)
		return "N/A"
	}
	n := countLines(out)
	if n == 0 {
		return "N/A"
	}
	return strconv.Itoa(n)
}

// countLines counts non-empty lines.
func countLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
