// Package sysinfo - formatting helpers for banner values
package sysinfo

import "fmt"

// FormatMemory renders the banner's memory value.
//
// Parameters:
//   - usedMiB: in-use memory in MiB (may be negative for raw inconsistent
//     kernel accounting)
//   - totalMiB: physical memory in MiB
//
// Returns:
//   - A string in the form "<used> MiB / <total> MiB"
//
// Example: FormatMemory(7812, 16000) returns "7812 MiB / 16000 MiB"
func FormatMemory(usedMiB, totalMiB int64) string {
	return fmt.Sprintf("%d MiB / %d MiB", usedMiB, totalMiB)
}

// FormatMiB renders a single MiB figure with its unit.
//
// Example: FormatMiB(4000) returns "4000 MiB"
func FormatMiB(n int64) string {
	return fmt.Sprintf("%d MiB", n)
}
