package iocache

import (
	"fmt"

	"github.com/covidboard/covidstore/schema"
)

// PrintCacheStatus writes a human-readable cache status summary to stdout.
func PrintCacheStatus(status schema.CacheStatus) {
	fmt.Printf("Backend:   %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	fmt.Printf("Entries:   %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("Newest:    %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest:    %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Size:      %s\n", formatBytes(status.TableSizeBytes))
	}
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
