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
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSeriesResults outputs per-location series, dispatching based on the output format configured.
func PrintSeriesResults(series []*schema.LocationSeriesWithMetrics, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForSeries(series, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForSeries(series, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable tables
		if err := printSeriesTables(os.Stdout, series, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing series table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForSeries handles opening the file and calling the JSON writer.
func printJSONResultsForSeries(series []*schema.LocationSeriesWithMetrics, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForSeries(w, series)
	}, "Wrote JSON series results")
}

// printCSVResultsForSeries handles opening the file and calling the CSV writer.
func printCSVResultsForSeries(series []*schema.LocationSeriesWithMetrics, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, seriesCSVHeader, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForSeries(csvWriter, series, fmtFloat)
		})
	}, "Wrote CSV series results")
}

// printSeriesTables prints one table per location. The table shows the most
// recent ResultLimit days; CSV and JSON output always carry the full series.
func printSeriesTables(w io.Writer, series []*schema.LocationSeriesWithMetrics, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	for _, s := range series {
		fmt.Fprintf(w, "📍 %s\n", s.Location)

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Date", "Confirmed", "New", "Deaths", "Recovered", "Mortality", "Recovery", "Trend"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		values := s.Values
		if cfg.ResultLimit > 0 && len(values) > cfg.ResultLimit {
			values = values[len(values)-cfg.ResultLimit:]
		}
		offset := len(s.Values) - len(values)

		var data [][]string
		for i, v := range values {
			change := 0.0
			if full := offset + i; full > 0 {
				change = trendChange(s.Values[full-1].NewConfirmed, v.NewConfirmed)
			}
			data = append(data, []string{
				v.Date,
				fmt.Sprintf("%d", v.Confirmed),
				fmt.Sprintf("%d", v.NewConfirmed),
				formatCount(v.Deaths),
				formatCount(v.Recovered),
				formatRate(v.MortalityRate, fmtFloat),
				formatRate(v.RecoveryRate, fmtFloat),
				trendLabel(change, cfg),
			})
		}

		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "%d location(s) in %v. Cache backend: %s\n", len(series), duration, cfg.CacheBackend)
	return nil
}

// PrintRecordResult outputs one daily record, dispatching based on the output format configured.
func PrintRecordResult(location string, record schema.ValuesOnDateWithMetrics, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, recordDocument{Location: location, ValuesOnDateWithMetrics: record})
		}, "Wrote JSON record result")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, seriesCSVHeader, func(csvWriter *csv.Writer) error {
				return csvWriter.Write(recordCSVRow(location, record, fmtFloat))
			})
		}, "Wrote CSV record result")
	default:
		return printRecordTable(os.Stdout, location, record, fmtFloat)
	}
}

// printRecordTable prints one daily record as a single-row table.
func printRecordTable(w io.Writer, location string, record schema.ValuesOnDateWithMetrics, fmtFloat func(float64) string) error {
	fmt.Fprintf(w, "📍 %s\n", location)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Confirmed", "New", "Deaths", "Recovered", "Mortality", "Recovery"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	row := []string{
		record.Date,
		fmt.Sprintf("%d", record.Confirmed),
		fmt.Sprintf("%d", record.NewConfirmed),
		formatCount(record.Deaths),
		formatCount(record.Recovered),
		formatRate(record.MortalityRate, fmtFloat),
		formatRate(record.RecoveryRate, fmtFloat),
	}
	if err := table.Append(row); err != nil {
		return err
	}
	return table.Render()
}
