package sysinfo

import (
	"bufio"
	"os"
	"strings"
)

// linuxFallbackDistro is shown when the os-release file is missing or has
// neither a pretty name nor a plain name.
const linuxFallbackDistro = "Linux (Unknown Distro)"

// collectDistro resolves the OS/distribution description.
//
// Returns:
//   - Linux: the os-release PRETTY_NAME (or NAME), else a generic label
//   - macOS: product name and version from sw_vers, else "macOS"
//   - BSD: the kernel variant name verbatim
//   - anything else: "Unknown"
func (c *Collector) collectDistro(family Family, variant string) string {
	switch family {
	case FamilyLinux:
		data, err := os.ReadFile(c.osReleasePath)
		if err != nil {
			c.log.Debug("os-release unreadable", "path", c.osReleasePath, "err", err)
			return linuxFallbackDistro
		}
		if name := parseOSRelease(string(data)); name != "" {
			return name
		}
		return linuxFallbackDistro

	case FamilyMacOS:
		name, nerr := c.run("sw_vers", "-productName")
		version, verr := c.run("sw_vers", "-productVersion")
		if nerr != nil || verr != nil {
			c.log.Debug("sw_vers failed", "nameErr", nerr, "versionErr", verr)
			return "macOS"
		}
		return name + " " + version

	case FamilyBSD:
		return variant

	default:
		return "Unknown"
	}
}

// parseOSRelease extracts the distribution description from os-release
// key=value content, preferring PRETTY_NAME over NAME and stripping the
// surrounding quotes. Returns "" when neither key carries a value.
func parseOSRelease(content string) string {
	var name string

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch key {
		case "PRETTY_NAME":
			if pretty := trimQuotes(value); pretty != "" {
				return pretty
			}
		case "NAME":
			if name == "" {
				name = trimQuotes(value)
			}
		}
	}

	return name
}

// trimQuotes strips one pair of surrounding double quotes.
func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
