package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintLocationResults outputs the location index, dispatching based on the output format configured.
func PrintLocationResults(locations []string, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForLocations(locations, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForLocations(locations, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printLocationTable(os.Stdout, locations, cfg, duration); err != nil {
			return fmt.Errorf("error writing location table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForLocations handles opening the file and calling the JSON writer.
func printJSONResultsForLocations(locations []string, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForLocations(w, locations)
	}, "Wrote JSON location results")
}

// printCSVResultsForLocations handles opening the file and calling the CSV writer.
func printCSVResultsForLocations(locations []string, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, []string{"location"}, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForLocations(csvWriter, locations)
		})
	}, "Wrote CSV location results")
}

// printLocationTable prints the location index in a two-column table. The
// table shows at most ResultLimit rows; CSV and JSON output always carry the
// full index.
func printLocationTable(w io.Writer, locations []string, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Location"})

	maxWidth := GetMaxTableLocationWidth(cfg)
	shown := locations
	if cfg.ResultLimit > 0 && len(shown) > cfg.ResultLimit {
		shown = shown[:cfg.ResultLimit]
	}

	var data [][]string
	for i, location := range shown {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			contract.TruncateLocation(location, maxWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%d of %d locations shown in %v. Cache backend: %s\n", len(shown), len(locations), duration, cfg.CacheBackend)
	return nil
}
