package outwriter

import (
	"encoding/csv"
	"io"
)

// writeJSONResultsForLocations marshals the location index to JSON and writes it.
func writeJSONResultsForLocations(w io.Writer, locations []string) error {
	return writeJSON(w, locations)
}

// writeCSVResultsForLocations writes the location index to a CSV writer.
func writeCSVResultsForLocations(w *csv.Writer, locations []string) error {
	for _, location := range locations {
		if err := w.Write([]string{location}); err != nil {
			return err
		}
	}
	return nil
}
