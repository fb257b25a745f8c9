package core

import (
	"testing"

	"github.com/covidboard/covidstore/internal/csvparse"
	"github.com/covidboard/covidstore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDates is the shared reporting calendar used by correlate fixtures.
var testDates = []string{"1/22/20", "1/23/20", "1/24/20"}

func globalRow(country, province string, counts ...int) csvparse.Row {
	return csvparse.Row{
		CountryOrRegion: country,
		ProvinceOrState: province,
		Latitude:        "1.0",
		Longitude:       "2.0",
		Counts:          counts,
	}
}

func usRow(county, province string, counts ...int) csvparse.Row {
	return csvparse.Row{
		CountryOrRegion: "US",
		ProvinceOrState: province,
		County:          county,
		Latitude:        "3.0",
		Longitude:       "4.0",
		Counts:          counts,
	}
}

func TestCorrelate(t *testing.T) {
	tables := map[schema.Feed]*csvparse.Table{
		schema.GlobalConfirmedFeed: {Dates: testDates, Rows: []csvparse.Row{
			globalRow("Italy", "", 0, 100, 250),
			globalRow("Canada", "Ontario", 1, 2, 3),
		}},
		schema.GlobalDeathsFeed: {Dates: testDates, Rows: []csvparse.Row{
			globalRow("Italy", "", 0, 0, 25),
		}},
		schema.GlobalRecoveredFeed: {Dates: testDates, Rows: []csvparse.Row{
			globalRow("Italy", "", 0, 10, 50),
		}},
		schema.USConfirmedFeed: {Dates: testDates, Rows: []csvparse.Row{
			usRow("King", "Washington", 1, 5, 10),
		}},
		schema.USDeathsFeed: {Dates: testDates, Rows: []csvparse.Row{
			usRow("King", "Washington", 0, 0, 1),
		}},
	}

	data := correlate(tables)
	require.Len(t, data, 3)

	italy := data["Italy"]
	require.NotNil(t, italy)
	assert.Equal(t, "Italy", italy.CountryOrRegion)
	assert.Equal(t, "1.0", italy.Latitude)
	require.Len(t, italy.Values, 3)
	assert.Equal(t, 250, italy.Values[2].Confirmed)
	require.NotNil(t, italy.Values[2].Deaths)
	assert.Equal(t, 25, *italy.Values[2].Deaths)
	require.NotNil(t, italy.Values[2].Recovered)
	assert.Equal(t, 50, *italy.Values[2].Recovered)

	// No deaths or recovered rows for Ontario
	ontario := data["Canada (Ontario)"]
	require.NotNil(t, ontario)
	assert.Nil(t, ontario.Values[0].Deaths)
	assert.Nil(t, ontario.Values[0].Recovered)

	// US rows never get recovered counts; deaths match on the county key
	king := data["US (King, Washington)"]
	require.NotNil(t, king)
	require.NotNil(t, king.Values[2].Deaths)
	assert.Equal(t, 1, *king.Values[2].Deaths)
	assert.Nil(t, king.Values[2].Recovered)
}

func TestCorrelateSkipsKnownBadRows(t *testing.T) {
	tables := map[schema.Feed]*csvparse.Table{
		schema.GlobalConfirmedFeed: {Dates: testDates, Rows: []csvparse.Row{
			globalRow("Canada", "Ontario", 1, 2, 3),
			globalRow("Canada", "Recovered", 9, 9, 9),
			globalRow("Canada", "Diamond Princess", 1, 1, 1),
		}},
	}

	data := correlate(tables)
	assert.Len(t, data, 1)
	assert.Contains(t, data, "Canada (Ontario)")
}

func TestCorrelateShortCounts(t *testing.T) {
	tables := map[schema.Feed]*csvparse.Table{
		schema.GlobalConfirmedFeed: {Dates: testDates, Rows: []csvparse.Row{
			globalRow("Italy", "", 0, 100), // one date short
		}},
		schema.GlobalDeathsFeed: {Dates: testDates, Rows: []csvparse.Row{
			globalRow("Italy", "", 0), // two dates short
		}},
	}

	data := correlate(tables)
	italy := data["Italy"]
	require.NotNil(t, italy)
	require.Len(t, italy.Values, 2)
	require.NotNil(t, italy.Values[0].Deaths)
	assert.Nil(t, italy.Values[1].Deaths)
}
