package core

import (
	"testing"

	"github.com/covidboard/covidstore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSeries(t *testing.T) {
	raw := &schema.LocationSeries{
		Location:        "Italy",
		CountryOrRegion: "Italy",
		Latitude:        "41.87",
		Longitude:       "12.56",
		Values: []schema.ValuesOnDate{
			{Date: "1/22/20", Confirmed: 0, Deaths: schema.IntPtr(0)},
			{Date: "1/23/20", Confirmed: 100, Deaths: schema.IntPtr(0)},
			{Date: "1/24/20", Confirmed: 250, Deaths: schema.IntPtr(25), Recovered: schema.IntPtr(50)},
		},
	}

	derived := deriveSeries(raw, 2)
	require.Len(t, derived.Values, 3)

	day0 := derived.Values[0]
	assert.Equal(t, 0, day0.NewConfirmed)
	assert.Nil(t, day0.NewDeaths)
	assert.Nil(t, day0.NewRecovered)
	require.NotNil(t, day0.MortalityRate)
	assert.Equal(t, 0.0, *day0.MortalityRate)
	require.NotNil(t, day0.RecoveryRate)
	assert.Equal(t, 0.0, *day0.RecoveryRate)

	day1 := derived.Values[1]
	assert.Equal(t, 100, day1.NewConfirmed)
	require.NotNil(t, day1.NewDeaths)
	assert.Equal(t, 0, *day1.NewDeaths)
	assert.Nil(t, day1.NewRecovered)
	require.NotNil(t, day1.MortalityRate)
	assert.Equal(t, 0.0, *day1.MortalityRate)
	require.NotNil(t, day1.RecoveryRate)
	assert.Equal(t, 0.0, *day1.RecoveryRate)

	day2 := derived.Values[2]
	assert.Equal(t, 150, day2.NewConfirmed)
	require.NotNil(t, day2.NewDeaths)
	assert.Equal(t, 25, *day2.NewDeaths)
	assert.Nil(t, day2.NewRecovered) // prior day had no recovered count
	require.NotNil(t, day2.MortalityRate)
	assert.Equal(t, 0.1, *day2.MortalityRate)
	require.NotNil(t, day2.RecoveryRate)
	assert.Equal(t, 0.2, *day2.RecoveryRate)
}

func TestDeriveSeriesZeroConfirmedRates(t *testing.T) {
	raw := &schema.LocationSeries{
		Location: "Nowhere",
		Values: []schema.ValuesOnDate{
			{Date: "1/22/20", Confirmed: 0},
			{Date: "1/23/20", Confirmed: 0},
			{Date: "1/24/20", Confirmed: 4, Deaths: schema.IntPtr(1)},
		},
	}

	derived := deriveSeries(raw, 2)

	// After day zero, rates stay nil while confirmed is zero
	assert.Nil(t, derived.Values[1].MortalityRate)
	assert.Nil(t, derived.Values[1].RecoveryRate)

	require.NotNil(t, derived.Values[2].MortalityRate)
	assert.Equal(t, 0.25, *derived.Values[2].MortalityRate)
	require.NotNil(t, derived.Values[2].RecoveryRate)
	assert.Equal(t, 0.0, *derived.Values[2].RecoveryRate)
}

func TestDeriveSeriesPrecision(t *testing.T) {
	raw := &schema.LocationSeries{
		Location: "Italy",
		Values: []schema.ValuesOnDate{
			{Date: "1/22/20", Confirmed: 0},
			{Date: "1/23/20", Confirmed: 3, Deaths: schema.IntPtr(1)},
		},
	}

	derived := deriveSeries(raw, 4)
	require.NotNil(t, derived.Values[1].MortalityRate)
	assert.Equal(t, 0.3333, *derived.Values[1].MortalityRate)
}

func TestStripDataBeforePropertyExceedsN(t *testing.T) {
	series := &schema.LocationSeriesWithMetrics{
		Location: "Italy",
		Values: []schema.ValuesOnDateWithMetrics{
			{ValuesOnDate: schema.ValuesOnDate{Date: "1/22/20", Confirmed: 0}},
			{ValuesOnDate: schema.ValuesOnDate{Date: "1/23/20", Confirmed: 10}},
			{ValuesOnDate: schema.ValuesOnDate{Date: "1/24/20", Confirmed: 100}, NewConfirmed: 90},
		},
	}

	t.Run("confirmed threshold", func(t *testing.T) {
		stripped := StripDataBeforePropertyExceedsN(series, schema.ConfirmedProperty, 10)
		require.Len(t, stripped.Values, 1)
		assert.Equal(t, "1/24/20", stripped.Values[0].Date)
		// First surviving day keeps its full-series metrics
		assert.Equal(t, 90, stripped.Values[0].NewConfirmed)
	})

	t.Run("threshold zero keeps first nonzero day", func(t *testing.T) {
		stripped := StripDataBeforePropertyExceedsN(series, schema.ConfirmedProperty, 0)
		require.Len(t, stripped.Values, 2)
		assert.Equal(t, "1/23/20", stripped.Values[0].Date)
	})

	t.Run("threshold never exceeded strips all", func(t *testing.T) {
		stripped := StripDataBeforePropertyExceedsN(series, schema.ConfirmedProperty, 1000)
		assert.Empty(t, stripped.Values)
	})

	t.Run("nil counters read as zero", func(t *testing.T) {
		stripped := StripDataBeforePropertyExceedsN(series, schema.DeathsProperty, 0)
		assert.Empty(t, stripped.Values)
	})

	t.Run("original untouched", func(t *testing.T) {
		_ = StripDataBeforePropertyExceedsN(series, schema.ConfirmedProperty, 10)
		assert.Len(t, series.Values, 3)
	})
}
