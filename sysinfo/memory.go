package sysinfo

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// memNA marks the cache figure on platforms where the page cache cannot be
// isolated from other reclaimable memory.
const memNA = "N/A"

// linuxMemory carries the meminfo figures after conversion to MiB.
type linuxMemory struct {
	TotalMiB int64
	UsedMiB  int64
	CacheMiB int64
}

var (
	vmStatPageSize = regexp.MustCompile(`page size of (\d+) bytes`)
	topActiveMiB   = regexp.MustCompile(`(\d+)M Active`)
	topWiredMiB    = regexp.MustCompile(`(\d+)M Wired`)
)

// collectMemory resolves the total and used memory in MiB plus the cache
// display string.
//
// Returns:
//   - Linux: figures parsed from the meminfo pseudo-file, cache included
//   - macOS: total from sysctl, used approximated from vm_stat page counts
//   - BSD: total from sysctl, used approximated from a batch top snapshot
//   - Unknown family: zeros and "N/A" without attempting any probe
//
// The library statistics are the last rung before the zero fallbacks on
// every family that probes at all.
func (c *Collector) collectMemory(family Family) (totalMiB, usedMiB int64, cache string) {
	switch family {
	case FamilyLinux:
		if data, err := os.ReadFile(c.memInfoPath); err == nil {
			m, perr := parseMemInfo(string(data))
			if perr == nil {
				return m.TotalMiB, m.UsedMiB, FormatMiB(m.CacheMiB)
			}
			c.log.Debug("meminfo unparseable", "err", perr)
		} else {
			c.log.Debug("meminfo unreadable", "path", c.memInfoPath, "err", err)
		}
		if vm, err := c.virtualMemory(); err == nil && vm != nil {
			return bytesToMiB(vm.Total), bytesToMiB(vm.Used), FormatMiB(bytesToMiB(vm.Cached))
		}
		return 0, 0, FormatMiB(0)

	case FamilyMacOS:
		totalMiB = c.sysctlMiB("hw.memsize")
		if out, err := c.run("vm_stat"); err == nil {
			if used, perr := parseVMStat(out); perr == nil {
				return totalMiB, used, memNA
			}
		}
		c.log.Debug("vm_stat failed")
		if vm, err := c.virtualMemory(); err == nil && vm != nil {
			if totalMiB == 0 {
				totalMiB = bytesToMiB(vm.Total)
			}
			return totalMiB, bytesToMiB(vm.Used), memNA
		}
		return totalMiB, 0, memNA

	case FamilyBSD:
		totalMiB = c.sysctlMiB("hw.physmem")
		if out, err := c.run("top", "-b", "-d1"); err == nil {
			if used, perr := parseTopMemLine(out); perr == nil {
				return totalMiB, used, memNA
			}
		}
		c.log.Debug("top snapshot failed")
		if vm, err := c.virtualMemory(); err == nil && vm != nil {
			if totalMiB == 0 {
				totalMiB = bytesToMiB(vm.Total)
			}
			return totalMiB, bytesToMiB(vm.Used), memNA
		}
		return totalMiB, 0, memNA

	default:
		return 0, 0, memNA
	}
}

// parseMemInfo extracts MemTotal, MemAvailable and Cached (all KiB) from
// meminfo content and converts them to MiB by integer division. A missing
// MemAvailable forces the used figure to 0 rather than computing garbage.
// An available figure larger than total yields a negative used figure on
// purpose: inconsistent kernel accounting is shown raw, not papered over.
func parseMemInfo(content string) (linuxMemory, error) {
	var (
		m         linuxMemory
		totalKiB  int64
		availKiB  int64
		haveTotal bool
		haveAvail bool
	)

	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		value, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch strings.TrimSuffix(fields[0], ":") {
		case "MemTotal":
			totalKiB, haveTotal = value, true
		case "MemAvailable":
			availKiB, haveAvail = value, true
		case "Cached":
			m.CacheMiB = value / 1024
		}
	}

	if !haveTotal {
		return linuxMemory{}, fmt.Errorf("meminfo content has no MemTotal line")
	}
	m.TotalMiB = totalKiB / 1024
	if haveAvail {
		m.UsedMiB = (totalKiB - availKiB) / 1024
	}
	return m, nil
}

// parseVMStat approximates used memory from vm_stat output: the active,
// wired and speculative page counts times the page size. The page size comes
// from the report header when parseable, else the historical 4096-byte
// default. The page counts carry a trailing period.
func parseVMStat(out string) (int64, error) {
	pageSize := int64(4096)
	if m := vmStatPageSize.FindStringSubmatch(out); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil && n > 0 {
			pageSize = n
		}
	}

	var pages int64
	found := false
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Pages active", "Pages wired down", "Pages speculative":
		default:
			continue
		}
		value = strings.TrimSuffix(strings.TrimSpace(value), ".")
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		pages += n
		found = true
	}

	if !found {
		return 0, fmt.Errorf("vm_stat output has no usable page counts")
	}
	return pages * pageSize / 1024 / 1024, nil
}

// parseTopMemLine approximates used memory from a batch-mode top snapshot:
// the Active and Wired megabyte figures of the line starting "Mem:". A label
// missing from the line contributes 0.
func parseTopMemLine(out string) (int64, error) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Mem:") {
			continue
		}
		var used int64
		if m := topActiveMiB.FindStringSubmatch(line); m != nil {
			n, _ := strconv.ParseInt(m[1], 10, 64)
			used += n
		}
		if m := topWiredMiB.FindStringSubmatch(line); m != nil {
			n, _ := strconv.ParseInt(m[1], 10, 64)
			used += n
		}
		return used, nil
	}
	return 0, fmt.Errorf("top output has no Mem: line")
}

// sysctlMiB reads a byte-count sysctl value and converts it to MiB.
func (c *Collector) sysctlMiB(key string) int64 {
	out, err := c.run("sysctl", "-n", key)
	if err != nil {
		c.log.Debug("sysctl failed", "key", key, "err", err)
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		return 0
	}
	return n / 1024 / 1024
}

// bytesToMiB converts a byte count from the memory statistics library.
func bytesToMiB(b uint64) int64 {
	return int64(b / (1024 * 1024))
}
