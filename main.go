// Package main provides the fetch command-line tool: a one-shot system
// information banner for Linux, macOS and the BSDs, rendered beside an
// ASCII art icon.
package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/y8tireu/fetch/ascii"
	"github.com/y8tireu/fetch/sysinfo"
)

// gapSize is the number of spaces between the icon and the info column.
const gapSize = 4

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// main is the entry point for the fetch application. It collects the system
// report, pairs it with the ASCII icon, and prints the banner. The process
// always exits 0: a probe that failed shows up as a placeholder value in the
// banner, never as an error exit.
func main() {
	report := sysinfo.Collect()
	fmt.Print(renderReport(ascii.GetIcon(), report))
}

// buildInfoLines renders the report's eleven fields as "<label>: <value>"
// lines in their fixed display order. Labels are color-accented; values are
// printed plain.
func buildInfoLines(report *sysinfo.Report) []string {
	return []string{
		fmt.Sprintf("%s: %s", colorize("Distro", sysinfo.ColorBlue), report.Distro),
		fmt.Sprintf("%s: %s", colorize("Kernel", sysinfo.ColorBlue), report.Kernel),
		fmt.Sprintf("%s: %s", colorize("Memory", sysinfo.ColorBlue), sysinfo.FormatMemory(report.MemUsedMiB, report.MemTotalMiB)),
		fmt.Sprintf("%s: %s", colorize("Cache", sysinfo.ColorBlue), report.MemCache),
		fmt.Sprintf("%s: %s", colorize("Threads", sysinfo.ColorBlue), strconv.Itoa(report.Threads)),
		fmt.Sprintf("%s: %s", colorize("Tasks", sysinfo.ColorBlue), strconv.Itoa(report.Tasks)),
		fmt.Sprintf("%s: %s", colorize("Local IP", sysinfo.ColorBlue), report.LocalIP),
		fmt.Sprintf("%s: %s", colorize("Shell", sysinfo.ColorBlue), report.Shell),
		fmt.Sprintf("%s: %s", colorize("CPU", sysinfo.ColorBlue), report.CPUModel),
		fmt.Sprintf("%s: %s", colorize("User", sysinfo.ColorBlue), report.User),
		fmt.Sprintf("%s: %s", colorize("Modules", sysinfo.ColorBlue), report.Modules),
	}
}

// renderReport combines the ASCII icon and the report lines side-by-side.
//
// Parameters:
//   - icon: Slice of strings representing the ASCII art, one string per line
//   - report: Pointer to the fully populated Report
//
// Returns:
//   - The complete banner, each line newline-terminated, ending with one
//     trailing blank line
//
// Alignment uses visible width (ANSI codes stripped) so color codes never
// shift the columns.
func renderReport(icon []string, report *sysinfo.Report) string {
	infoLines := buildInfoLines(report)

	// Calculate icon width for proper spacing (excluding ANSI codes)
	iconWidth := 0
	for _, line := range icon {
		if w := getVisibleWidth(line); w > iconWidth {
			iconWidth = w
		}
	}

	maxLines := len(icon)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}

	gap := strings.Repeat(" ", gapSize)
	var b strings.Builder
	for i := 0; i < maxLines; i++ {
		var iconLine, infoLine string

		if i < len(icon) {
			iconLine = icon[i]
			if padding := iconWidth - getVisibleWidth(iconLine); padding > 0 {
				iconLine += strings.Repeat(" ", padding)
			}
		} else {
			iconLine = strings.Repeat(" ", iconWidth)
		}

		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		b.WriteString(iconLine)
		b.WriteString(gap)
		b.WriteString(infoLine)
		b.WriteString("\n")
	}

	// One blank line closes the banner.
	b.WriteString("\n")
	return b.String()
}

// getVisibleWidth calculates the visible width of a string excluding ANSI
// escape codes.
//
// Parameters:
//   - s: The string to measure (may contain ANSI color codes)
//
// Returns:
//   - The number of visible characters (excluding ANSI escape sequences)
//
// This is essential for proper alignment when strings contain color codes.
func getVisibleWidth(s string) int {
	stripped := ansiRegex.ReplaceAllString(s, "")
	// Use runewidth to count display width (handles wide runes)
	return runewidth.StringWidth(stripped)
}

// colorize wraps text with ANSI color codes for terminal output.
//
// Parameters:
//   - text: The string to be colorized
//   - color: ANSI color code (e.g., "\033[34m" for blue)
//
// Returns:
//   - A string with ANSI color codes applied, followed by a reset code
func colorize(text, color string) string {
	return color + text + sysinfo.ColorReset
}
