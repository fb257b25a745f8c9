package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Trend label constants.
const (
	RisingValue  = "Rising"  // New cases accelerating
	FallingValue = "Falling" // New cases decelerating
	FlatValue    = "Flat"    // No meaningful change
)

// Color variables for console output.
var (
	RisingColor  = color.New(color.FgRed, color.Bold) // risingColor represents standard danger.
	FallingColor = color.New(color.FgCyan)            // fallingColor represents improvement.
	FlatColor    = color.New(color.FgYellow)          // flatColor represents no strong signal.
)

// GetPlainTrend returns a plain text label for a week-over-week relative
// change in new cases. This is the core logic used for CSV, JSON, and table
// printing.
func GetPlainTrend(change float64) string {
	switch {
	case change >= 0.1:
		return RisingValue
	case change <= -0.1:
		return FallingValue
	default:
		return FlatValue
	}
}

// GetColorTrend returns a colored text label for console output (table).
func GetColorTrend(change float64) string {
	text := GetPlainTrend(change)

	switch text {
	case RisingValue:
		return RisingColor.Sprint(text)
	case FallingValue:
		return FallingColor.Sprint(text)
	default: // "Flat"
		return FlatColor.Sprint(text)
	}
}

// GetCacheDBFilePath returns the path to the SQLite DB file for snapshot
// cache storage.
func GetCacheDBFilePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "covidstore")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "snapshot.db")
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateLocation truncates a location name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for the "..."
// suffix and at least one character of content.
func TruncateLocation(location string, maxWidth int) string {
	runes := []rune(location)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return location
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarning logs a warning.
func LogWarning(msg string) {
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}
