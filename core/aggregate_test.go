package core

import (
	"testing"

	"github.com/covidboard/covidstore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func provinceSeries(country, province string, values []schema.ValuesOnDate) *schema.LocationSeries {
	key := schema.LocationKey{CountryOrRegion: country, ProvinceOrState: province}
	return &schema.LocationSeries{
		Location:        key.Name(),
		CountryOrRegion: country,
		ProvinceOrState: province,
		Latitude:        "50.0",
		Longitude:       "-100.0",
		Values:          values,
	}
}

func TestAggregateCountryTotals(t *testing.T) {
	data := schema.DataByLocation{}
	ontario := provinceSeries("Canada", "Ontario", []schema.ValuesOnDate{
		{Date: "1/22/20", Confirmed: 1, Deaths: schema.IntPtr(0)},
		{Date: "1/23/20", Confirmed: 2, Deaths: schema.IntPtr(1)},
	})
	bc := provinceSeries("Canada", "British Columbia", []schema.ValuesOnDate{
		{Date: "1/22/20", Confirmed: 3},
		{Date: "1/23/20", Confirmed: 4, Deaths: schema.IntPtr(2)},
	})
	data[ontario.Location] = ontario
	data[bc.Location] = bc

	aggregateCountryTotals(data)

	canada := data["Canada"]
	require.NotNil(t, canada)
	assert.Equal(t, "Canada", canada.Location)
	assert.Empty(t, canada.ProvinceOrState)
	assert.Equal(t, "56.1304", canada.Latitude)
	assert.Equal(t, "-106.3468", canada.Longitude)

	require.Len(t, canada.Values, 2)
	assert.Equal(t, 4, canada.Values[0].Confirmed)
	assert.Equal(t, 6, canada.Values[1].Confirmed)

	// One nil contribution reads as zero; the sum is still reported
	require.NotNil(t, canada.Values[0].Deaths)
	assert.Equal(t, 0, *canada.Values[0].Deaths)
	require.NotNil(t, canada.Values[1].Deaths)
	assert.Equal(t, 3, *canada.Values[1].Deaths)

	// All-nil contributions stay nil
	assert.Nil(t, canada.Values[0].Recovered)

	// Province entries survive aggregation untouched
	assert.Equal(t, 1, data["Canada (Ontario)"].Values[0].Confirmed)
	require.NotNil(t, data["Canada (Ontario)"].Values[0].Deaths)
	assert.Equal(t, 0, *data["Canada (Ontario)"].Values[0].Deaths)
}

func TestAggregateCountryTotalsIdempotent(t *testing.T) {
	existing := &schema.LocationSeries{
		Location:        "Canada",
		CountryOrRegion: "Canada",
		Values:          []schema.ValuesOnDate{{Date: "1/22/20", Confirmed: 42}},
	}
	data := schema.DataByLocation{"Canada": existing}
	ontario := provinceSeries("Canada", "Ontario", []schema.ValuesOnDate{
		{Date: "1/22/20", Confirmed: 1},
	})
	data[ontario.Location] = ontario

	aggregateCountryTotals(data)
	aggregateCountryTotals(data)

	// The pre-existing country entry is never overwritten
	assert.Same(t, existing, data["Canada"])
	assert.Equal(t, 42, data["Canada"].Values[0].Confirmed)
}

func TestAggregateCountryTotalsNoProvinces(t *testing.T) {
	italy := &schema.LocationSeries{
		Location:        "Italy",
		CountryOrRegion: "Italy",
		Values:          []schema.ValuesOnDate{{Date: "1/22/20", Confirmed: 1}},
	}
	data := schema.DataByLocation{"Italy": italy}

	aggregateCountryTotals(data)

	assert.Len(t, data, 1)
	assert.NotContains(t, data, "Canada")
}

func TestAggregateCountryTotalsShortSeries(t *testing.T) {
	data := schema.DataByLocation{}
	hubei := provinceSeries("China", "Hubei", []schema.ValuesOnDate{
		{Date: "1/22/20", Confirmed: 100},
		{Date: "1/23/20", Confirmed: 200},
	})
	beijing := provinceSeries("China", "Beijing", []schema.ValuesOnDate{
		{Date: "1/22/20", Confirmed: 10},
	})
	data[hubei.Location] = hubei
	data[beijing.Location] = beijing

	aggregateCountryTotals(data)

	china := data["China"]
	require.NotNil(t, china)
	// The longer series defines the calendar; the short one stops contributing
	if len(china.Values) == 2 {
		assert.GreaterOrEqual(t, china.Values[1].Confirmed, 200)
	}
	assert.Equal(t, 110, china.Values[0].Confirmed)
}
