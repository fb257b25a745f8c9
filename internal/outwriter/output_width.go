package outwriter

import (
	"os"

	"github.com/covidboard/covidstore/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableLocationWidth calculates the maximum width for location names in
// table output based on terminal width and table configuration.
func GetMaxTableLocationWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the index column plus table borders, separators and
	// padding.
	baseWidth := 15

	// Calculate available space for the location name
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable location width
		return 15
	}
	if available > 60 {
		// Maximum location width to prevent overly wide tables
		return 60
	}
	return available
}
