// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteLocations prints the location index using the configured output format.
func (ow *OutWriter) WriteLocations(locations []string, cfg *contract.Config, duration time.Duration) error {
	return PrintLocationResults(locations, cfg, duration)
}

// WriteSeries prints per-location series using the configured output format.
func (ow *OutWriter) WriteSeries(series []*schema.LocationSeriesWithMetrics, cfg *contract.Config, duration time.Duration) error {
	return PrintSeriesResults(series, cfg, duration)
}

// WriteRecord prints a single daily record using the configured output format.
func (ow *OutWriter) WriteRecord(location string, record schema.ValuesOnDateWithMetrics, cfg *contract.Config) error {
	return PrintRecordResult(location, record, cfg)
}

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// notAvailable marks absent counters in human-readable output.
const notAvailable = "n/a"

// formatCount renders an optional counter for table output.
func formatCount(v *int) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%d", *v)
}

// formatRate renders an optional rate for table output.
func formatRate(v *float64, fmtFloat func(float64) string) string {
	if v == nil {
		return notAvailable
	}
	return fmtFloat(*v)
}

// csvCount renders an optional counter for CSV output. Absent counters become
// empty cells so downstream tooling can tell them from real zeros.
func csvCount(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

// csvRate renders an optional rate for CSV output.
func csvRate(v *float64, fmtFloat func(float64) string) string {
	if v == nil {
		return ""
	}
	return fmtFloat(*v)
}

// trendChange computes the relative change in new confirmed cases between two
// consecutive days, used to pick the trend label.
func trendChange(prev, cur int) float64 {
	if prev == 0 {
		if cur > 0 {
			return 1
		}
		return 0
	}
	return float64(cur-prev) / float64(prev)
}

// trendLabel renders a trend label, colored when the config asks for it.
func trendLabel(change float64, cfg *contract.Config) string {
	if cfg.Color {
		return contract.GetColorTrend(change)
	}
	return contract.GetPlainTrend(change)
}
