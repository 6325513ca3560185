package sysinfo

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// commandTimeout bounds every external probe tool invocation. The probes are
// all small local commands that either answer immediately or are missing, so
// a short ceiling keeps a wedged tool from stalling the whole banner.
const commandTimeout = 2 * time.Second

var errEmptyOutput = errors.New("command produced no output")

// runCommand executes an external probe tool with a timeout and returns its
// trimmed stdout. A missing binary, nonzero exit, timeout, or blank output
// all surface as an error; callers substitute the field's placeholder.
func runCommand(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return "", errEmptyOutput
	}
	return trimmed, nil
}
