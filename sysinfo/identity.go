package sysinfo

import "strings"

// collectUser resolves the current username from the process's user database
// entry, with whoami as the secondary identity lookup.
func (c *Collector) collectUser() string {
	if u, err := c.currentUser(); err == nil && u.Username != "" {
		return u.Username
	}
	if out, err := c.run("whoami"); err == nil {
		return out
	}
	c.log.Debug("username undetectable")
	return "Unknown"
}

// collectShell reads the login shell from $SHELL.
func (c *Collector) collectShell() string {
	if shell := strings.TrimSpace(c.getenv("SHELL")); shell != "" {
		return shell
	}
	return "N/A"
}
