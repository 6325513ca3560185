package sysinfo

import (
	"net"
	"strings"
)

// ipNA is shown when no non-loopback IPv4 address can be determined.
const ipNA = "N/A"

// collectLocalIP resolves the primary local IPv4 address. Linux prefers the
// routing-aware `ip` listing restricted to global-scope addresses and falls
// back to resolving the machine's own hostname; macOS and the BSDs scan
// ifconfig output for the first non-loopback inet line.
func (c *Collector) collectLocalIP(family Family) string {
	switch family {
	case FamilyLinux:
		if out, err := c.run("ip", "-4", "-o", "addr", "show", "scope", "global"); err == nil {
			if addr := parseIPAddrOutput(out); addr != "" {
				return addr
			}
		}
		if addr := c.hostnameIP(); addr != "" {
			return addr
		}
	case FamilyMacOS, FamilyBSD:
		if out, err := c.run("ifconfig"); err == nil {
			if addr := firstNonLoopbackInet(out); addr != "" {
				return addr
			}
		}
	}
	c.log.Debug("local IP undetectable")
	return ipNA
}

// parseIPAddrOutput extracts the first address from one-line-per-entry
// `ip -4 -o addr` output, dropping the prefix length.
func parseIPAddrOutput(out string) string {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		for i, field := range fields {
			if field != "inet" || i+1 >= len(fields) {
				continue
			}
			addr, _, _ := strings.Cut(fields[i+1], "/")
			if net.ParseIP(addr) != nil {
				return addr
			}
		}
	}
	return ""
}

// firstNonLoopbackInet scans ifconfig output for the first IPv4 line whose
// address is not 127.0.0.1.
func firstNonLoopbackInet(out string) string {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "inet" {
			continue
		}
		if fields[1] == "127.0.0.1" {
			continue
		}
		return fields[1]
	}
	return ""
}

// hostnameIP is the legacy fallback: resolve the machine's own hostname and
// take the first IPv4 address it maps to.
func (c *Collector) hostnameIP() string {
	host, err := c.hostname()
	if err != nil {
		return ""
	}
	addrs, err := c.lookupHost(host)
	if err != nil {
		return ""
	}
	for _, addr := range addrs {
		if ip := net.ParseIP(addr); ip != nil && ip.To4() != nil {
			return ip.To4().String()
		}
	}
	return ""
}
