// Package ascii provides the ASCII art icon displayed beside the system
// report. The icon is color-coded using ANSI escape sequences for terminal
// display.
package ascii

import "github.com/y8tireu/fetch/sysinfo"

// GetIcon returns the stylized computer icon shown on the left of the
// banner.
//
// Returns:
//   - A slice of strings, where each string represents one line of ASCII
//     art with color codes already applied
//
// The icon is the same for every OS family; the report text next to it is
// what identifies the platform.
func GetIcon() []string {
	c := sysinfo.ColorCyan
	g := sysinfo.ColorGreen
	r := sysinfo.ColorReset

	return []string{
		c + ".---------------------." + r,
		c + "|  .---------------.  |" + r,
		c + "|  |               |  |" + r,
		c + "|  |  " + r + g + ">_" + r + c + "           |  |" + r,
		c + "|  |               |  |" + r,
		c + "|  |               |  |" + r,
		c + "|  '---------------'  |" + r,
		c + "'----------+----------'" + r,
		c + "     ______|______" + r,
		c + "    /             \\" + r,
		c + "   '---------------'" + r,
	}
}
