package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/covidboard/covidstore/schema"
)

// seriesCSVHeader is the column layout shared by series and record CSV output.
var seriesCSVHeader = []string{
	"location",
	"date",
	"confirmed",
	"deaths",
	"recovered",
	"new_confirmed",
	"new_deaths",
	"new_recovered",
	"mortality_rate",
	"recovery_rate",
}

// writeJSONResultsForSeries marshals the series to JSON and writes it.
func writeJSONResultsForSeries(w io.Writer, series []*schema.LocationSeriesWithMetrics) error {
	return writeJSON(w, series)
}

// writeCSVResultsForSeries writes every location's daily rows to a CSV writer.
func writeCSVResultsForSeries(w *csv.Writer, series []*schema.LocationSeriesWithMetrics, fmtFloat func(float64) string) error {
	for _, s := range series {
		for _, v := range s.Values {
			if err := w.Write(recordCSVRow(s.Location, v, fmtFloat)); err != nil {
				return err
			}
		}
	}
	return nil
}

// recordCSVRow renders one daily record as a CSV row.
func recordCSVRow(location string, v schema.ValuesOnDateWithMetrics, fmtFloat func(float64) string) []string {
	return []string{
		location,
		v.Date,
		fmt.Sprintf("%d", v.Confirmed),
		csvCount(v.Deaths),
		csvCount(v.Recovered),
		fmt.Sprintf("%d", v.NewConfirmed),
		csvCount(v.NewDeaths),
		csvCount(v.NewRecovered),
		csvRate(v.MortalityRate, fmtFloat),
		csvRate(v.RecoveryRate, fmtFloat),
	}
}

// recordDocument is the JSON shape for a single daily record lookup.
type recordDocument struct {
	Location string `json:"location"`
	schema.ValuesOnDateWithMetrics
}
