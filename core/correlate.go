package core

import (
	"github.com/covidboard/covidstore/internal/csvparse"
	"github.com/covidboard/covidstore/schema"
)

// knownBadCanadaProvinces are pseudo-locations in the upstream Canada rows
// that hold no real province data. They are skipped everywhere.
var knownBadCanadaProvinces = map[string]struct{}{
	"Recovered":        {},
	"Diamond Princess": {},
}

// isKnownBadRow reports whether an upstream row is a known data defect.
func isKnownBadRow(row *csvparse.Row) bool {
	if row.CountryOrRegion != "Canada" {
		return false
	}
	_, bad := knownBadCanadaProvinces[row.ProvinceOrState]
	return bad
}

// correlate merges the parsed feed tables into one series per location. The
// confirmed feeds define the set of locations; deaths rows are matched on the
// full (country, province, county) key and recovered rows on
// (country, province) for global rows only, since the recovered feed has no
// US county detail.
func correlate(tables map[schema.Feed]*csvparse.Table) schema.DataByLocation {
	deathCounts := make(map[schema.LocationKey][]int)
	for _, feed := range []schema.Feed{schema.GlobalDeathsFeed, schema.USDeathsFeed} {
		table := tables[feed]
		if table == nil {
			continue
		}
		for i := range table.Rows {
			row := &table.Rows[i]
			if isKnownBadRow(row) {
				continue
			}
			key := schema.LocationKey{
				CountryOrRegion: row.CountryOrRegion,
				ProvinceOrState: row.ProvinceOrState,
				County:          row.County,
			}
			deathCounts[key] = row.Counts
		}
	}

	recoveredCounts := make(map[schema.LocationKey][]int)
	if table := tables[schema.GlobalRecoveredFeed]; table != nil {
		for i := range table.Rows {
			row := &table.Rows[i]
			if isKnownBadRow(row) {
				continue
			}
			key := schema.LocationKey{
				CountryOrRegion: row.CountryOrRegion,
				ProvinceOrState: row.ProvinceOrState,
			}
			recoveredCounts[key] = row.Counts
		}
	}

	data := make(schema.DataByLocation)
	for _, feed := range []schema.Feed{schema.GlobalConfirmedFeed, schema.USConfirmedFeed} {
		table := tables[feed]
		if table == nil {
			continue
		}
		isUS := feed == schema.USConfirmedFeed
		for i := range table.Rows {
			row := &table.Rows[i]
			if isKnownBadRow(row) {
				continue
			}
			key := schema.LocationKey{
				CountryOrRegion: row.CountryOrRegion,
				ProvinceOrState: row.ProvinceOrState,
				County:          row.County,
			}
			data[key.Name()] = buildSeries(key, row, table.Dates, deathCounts, recoveredCounts, isUS)
		}
	}
	return data
}

// buildSeries assembles the daily values for one confirmed row, pairing
// deaths and recovered counts positionally by date index. Counts shorter than
// the calendar leave the trailing fields nil.
func buildSeries(
	key schema.LocationKey,
	row *csvparse.Row,
	dates []string,
	deathCounts, recoveredCounts map[schema.LocationKey][]int,
	isUS bool,
) *schema.LocationSeries {
	deaths := deathCounts[key]
	var recovered []int
	if !isUS {
		recovered = recoveredCounts[schema.LocationKey{
			CountryOrRegion: key.CountryOrRegion,
			ProvinceOrState: key.ProvinceOrState,
		}]
	}

	series := &schema.LocationSeries{
		Location:        key.Name(),
		CountryOrRegion: key.CountryOrRegion,
		ProvinceOrState: key.ProvinceOrState,
		County:          key.County,
		Latitude:        row.Latitude,
		Longitude:       row.Longitude,
		Values:          make([]schema.ValuesOnDate, 0, len(dates)),
	}
	for i, date := range dates {
		if i >= len(row.Counts) {
			break
		}
		v := schema.ValuesOnDate{Date: date, Confirmed: row.Counts[i]}
		if i < len(deaths) {
			v.Deaths = schema.IntPtr(deaths[i])
		}
		if i < len(recovered) {
			v.Recovered = schema.IntPtr(recovered[i])
		}
		series.Values = append(series.Values, v)
	}
	return series
}
