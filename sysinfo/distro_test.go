package sysinfo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseOSRelease(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "prefers pretty name",
			content: `NAME="Ubuntu"
VERSION="24.04 LTS (Noble Numbat)"
PRETTY_NAME="Ubuntu 24.04 LTS"
ID=ubuntu`,
			want: "Ubuntu 24.04 LTS",
		},
		{
			name: "falls back to plain name",
			content: `NAME="Alpine Linux"
ID=alpine`,
			want: "Alpine Linux",
		},
		{
			name:    "unquoted values",
			content: "NAME=Gentoo\nID=gentoo",
			want:    "Gentoo",
		},
		{
			name: "empty pretty name falls back to name",
			content: `PRETTY_NAME=""
NAME="Debian GNU/Linux"`,
			want: "Debian GNU/Linux",
		},
		{
			name:    "comments and malformed lines are skipped",
			content: "# generated file\nbogus line\nNAME=\"Arch Linux\"",
			want:    "Arch Linux",
		},
		{
			name:    "no usable keys",
			content: "ID=mystery\nVERSION_ID=1.0",
			want:    "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseOSRelease(tc.content); got != tc.want {
				t.Fatalf("parseOSRelease() = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestCollectDistroLinux(t *testing.T) {
	c := newTestCollector()
	c.osReleasePath = filepath.Join(t.TempDir(), "os-release")

	content := "NAME=\"Fedora Linux\"\nPRETTY_NAME=\"Fedora Linux 40 (Workstation Edition)\"\n"
	if err := os.WriteFile(c.osReleasePath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if got := c.collectDistro(FamilyLinux, ""); got != "Fedora Linux 40 (Workstation Edition)" {
		t.Fatalf("collectDistro() = %q; want the pretty name", got)
	}
}

func TestCollectDistroLinuxMissingFile(t *testing.T) {
	c := newTestCollector()
	c.osReleasePath = filepath.Join(t.TempDir(), "does-not-exist")

	if got := c.collectDistro(FamilyLinux, ""); got != linuxFallbackDistro {
		t.Fatalf("collectDistro() = %q; want %q", got, linuxFallbackDistro)
	}
}

func TestCollectDistroMacOS(t *testing.T) {
	c := newTestCollector()
	c.run = func(name string, args ...string) (string, error) {
		if name != "sw_vers" || len(args) != 1 {
			return "", errors.New("unexpected command")
		}
		switch args[0] {
		case "-productName":
			return "macOS", nil
		case "-productVersion":
			return "14.6.1", nil
		}
		return "", errors.New("unexpected flag")
	}

	if got := c.collectDistro(FamilyMacOS, ""); got != "macOS 14.6.1" {
		t.Fatalf("collectDistro() = %q; want %q", got, "macOS 14.6.1")
	}
}

func TestCollectDistroMacOSProbeFails(t *testing.T) {
	c := newTestCollector()
	if got := c.collectDistro(FamilyMacOS, ""); got != "macOS" {
		t.Fatalf("collectDistro() = %q; want generic %q", got, "macOS")
	}
}

func TestCollectDistroBSDAndUnknown(t *testing.T) {
	c := newTestCollector()
	if got := c.collectDistro(FamilyBSD, "OpenBSD"); got != "OpenBSD" {
		t.Fatalf("collectDistro(BSD) = %q; want the variant name", got)
	}
	if got := c.collectDistro(FamilyUnknown, ""); got != "Unknown" {
		t.Fatalf("collectDistro(Unknown) = %q; want %q", got, "Unknown")
	}
}
