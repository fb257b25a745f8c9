// Package parquet provides data structures and functions for exporting
// time-series snapshot data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/covidboard/covidstore/schema"
	"github.com/parquet-go/parquet-go"
)

// SeriesRow represents one location's daily record in flattened form, one row
// per (location, date) pair.
type SeriesRow struct {
	// Location is the nested human-readable location name
	Location string `parquet:"location,snappy"`

	// CountryOrRegion is the country component of the location key
	CountryOrRegion string `parquet:"country_or_region,snappy"`

	// ProvinceOrState is the province component of the location key (nullable)
	ProvinceOrState *string `parquet:"province_or_state,optional,snappy"`

	// County is the county component of the location key (nullable)
	County *string `parquet:"county,optional,snappy"`

	// Latitude and Longitude position the location, as reported upstream
	Latitude  string `parquet:"latitude,snappy"`
	Longitude string `parquet:"longitude,snappy"`

	// Date is the reporting day in M/D/YY form
	Date string `parquet:"date,snappy"`

	// Confirmed is the cumulative confirmed case count
	Confirmed int64 `parquet:"confirmed,snappy"`

	// Deaths is the cumulative death count (nullable upstream)
	Deaths *int64 `parquet:"deaths,optional,snappy"`

	// Recovered is the cumulative recovery count (nullable upstream)
	Recovered *int64 `parquet:"recovered,optional,snappy"`

	// NewConfirmed is the day-over-day confirmed delta
	NewConfirmed int64 `parquet:"new_confirmed,snappy"`

	// NewDeaths is the day-over-day death delta (nullable)
	NewDeaths *int64 `parquet:"new_deaths,optional,snappy"`

	// NewRecovered is the day-over-day recovery delta (nullable)
	NewRecovered *int64 `parquet:"new_recovered,optional,snappy"`

	// MortalityRate is deaths over confirmed (nullable)
	MortalityRate *float64 `parquet:"mortality_rate,optional,snappy"`

	// RecoveryRate is recoveries over confirmed (nullable)
	RecoveryRate *float64 `parquet:"recovery_rate,optional,snappy"`
}

// BuildSeriesRows flattens derived location series into Parquet export rows.
func BuildSeriesRows(series []*schema.LocationSeriesWithMetrics) []SeriesRow {
	var rows []SeriesRow
	for _, s := range series {
		for _, v := range s.Values {
			rows = append(rows, SeriesRow{
				Location:        s.Location,
				CountryOrRegion: s.CountryOrRegion,
				ProvinceOrState: optionalString(s.ProvinceOrState),
				County:          optionalString(s.County),
				Latitude:        s.Latitude,
				Longitude:       s.Longitude,
				Date:            v.Date,
				Confirmed:       int64(v.Confirmed),
				Deaths:          optionalInt64(v.Deaths),
				Recovered:       optionalInt64(v.Recovered),
				NewConfirmed:    int64(v.NewConfirmed),
				NewDeaths:       optionalInt64(v.NewDeaths),
				NewRecovered:    optionalInt64(v.NewRecovered),
				MortalityRate:   v.MortalityRate,
				RecoveryRate:    v.RecoveryRate,
			})
		}
	}
	return rows
}

// WriteSeriesParquet writes a slice of SeriesRow structs to a Parquet file.
func WriteSeriesParquet(data []SeriesRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the SeriesRow struct tags
	writer := parquet.NewGenericWriter[SeriesRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// optionalString maps an empty string to a null Parquet cell.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optionalInt64 widens an optional counter for Parquet storage.
func optionalInt64(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
