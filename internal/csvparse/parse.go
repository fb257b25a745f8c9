// Package csvparse parses the upstream cross-sectional CSV time-series feeds
// into typed rows. The two upstream schemas (global and US-specific) name the
// identifying columns differently; header classification maps both to one
// canonical row shape.
package csvparse

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Row is one location's record in a single feed: the identifying columns plus
// the cumulative count for every date column, aligned with Table.Dates.
type Row struct {
	CountryOrRegion string
	ProvinceOrState string
	County          string
	Latitude        string
	Longitude       string
	Counts          []int
}

// Table is a fully parsed feed: the ordered date columns shared by every row,
// and one Row per location.
type Table struct {
	Dates []string
	Rows  []Row
}

// dateHeaderPattern matches M/D/YY-style date column headers.
var dateHeaderPattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)

// columnClass is the role a header cell assigns to its column.
type columnClass int

const (
	colIgnore columnClass = iota
	colCountry
	colProvince
	colCounty
	colLat
	colLong
	colDate
)

// classifyHeader maps a header cell to its column class. The alternate
// spellings used by the US feeds (Province_State, Country_Region, Long_,
// Admin2) normalize to the same classes as the global feed headers.
func classifyHeader(h string) columnClass {
	h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	switch h {
	case "Country/Region", "Country_Region":
		return colCountry
	case "Province/State", "Province_State":
		return colProvince
	case "Admin2":
		return colCounty
	case "Lat":
		return colLat
	case "Long", "Long_":
		return colLong
	}
	if dateHeaderPattern.MatchString(h) {
		return colDate
	}
	return colIgnore
}

// Parse parses a raw CSV feed into a Table. Cells under date columns are cast
// to integers (empty cells count as zero); all other cells remain strings.
// Malformed CSV (unterminated quotes, inconsistent column counts) is an error.
func Parse(csvText string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(csvText))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	header := records[0]
	classes := make([]columnClass, len(header))
	var dates []string
	for i, h := range header {
		classes[i] = classifyHeader(h)
		if classes[i] == colDate {
			dates = append(dates, strings.TrimSpace(h))
		}
	}

	table := &Table{Dates: dates, Rows: make([]Row, 0, len(records)-1)}
	for n, rec := range records[1:] {
		row := Row{Counts: make([]int, 0, len(dates))}
		for i, cell := range rec {
			switch classes[i] {
			case colCountry:
				row.CountryOrRegion = strings.TrimSpace(cell)
			case colProvince:
				row.ProvinceOrState = strings.TrimSpace(cell)
			case colCounty:
				row.County = strings.TrimSpace(cell)
			case colLat:
				row.Latitude = strings.TrimSpace(cell)
			case colLong:
				row.Longitude = strings.TrimSpace(cell)
			case colDate:
				count, err := parseCount(cell)
				if err != nil {
					return nil, fmt.Errorf("malformed CSV: row %d has non-numeric count %q: %w", n+2, cell, err)
				}
				row.Counts = append(row.Counts, count)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// parseCount casts a date-column cell to an integer. The upstream feeds
// occasionally leave cells empty or format whole numbers as floats.
func parseCount(cell string) (int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
