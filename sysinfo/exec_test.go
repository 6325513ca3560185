package sysinfo

import (
	"runtime"
	"testing"
)

func TestRunCommandTrimsOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("probe tools are unix-only")
	}
	out, err := runCommand("echo", "  hello  ")
	if err != nil {
		t.Fatalf("runCommand(echo) failed: %v", err)
	}
	if out != "hello" {
		t.Fatalf("runCommand(echo) = %q; want %q", out, "hello")
	}
}

func TestRunCommandEmptyOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("probe tools are unix-only")
	}
	if _, err := runCommand("true"); err == nil {
		t.Fatal("runCommand(true) should fail on empty output")
	}
}

func TestRunCommandMissingBinary(t *testing.T) {
	if _, err := runCommand("definitely-not-an-installed-tool"); err == nil {
		t.Fatal("runCommand should fail for a missing binary")
	}
}
