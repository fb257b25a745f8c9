package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationKeyName(t *testing.T) {
	tests := []struct {
		name string
		key  LocationKey
		want string
	}{
		{"country only", LocationKey{CountryOrRegion: "France"}, "France"},
		{"country and province", LocationKey{CountryOrRegion: "Canada", ProvinceOrState: "Ontario"}, "Canada (Ontario)"},
		{"country, county and province", LocationKey{CountryOrRegion: "US", ProvinceOrState: "New York", County: "Bronx"}, "US (Bronx, New York)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.Name())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1/22/20")
	require.NoError(t, err)
	assert.Equal(t, 2020, d.Year())
	assert.Equal(t, 1, int(d.Month()))
	assert.Equal(t, 22, d.Day())

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestLocationSeriesClone(t *testing.T) {
	orig := &LocationSeries{
		Location:        "Canada (Ontario)",
		CountryOrRegion: "Canada",
		ProvinceOrState: "Ontario",
		Values: []ValuesOnDate{
			{Date: "1/22/20", Confirmed: 5, Deaths: IntPtr(1), Recovered: nil},
		},
	}

	clone := orig.Clone()
	require.Len(t, clone.Values, 1)

	// Mutating the clone must not touch the original.
	clone.Values[0].Confirmed = 100
	*clone.Values[0].Deaths = 42
	assert.Equal(t, 5, orig.Values[0].Confirmed)
	assert.Equal(t, 1, *orig.Values[0].Deaths)
	assert.Nil(t, clone.Values[0].Recovered)
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&FetchError{Status: 503, StatusText: "Service Unavailable"}).Error(), "503")
	assert.Contains(t, (&DataAnomalyError{Detail: "no commits"}).Error(), "no commits")
	assert.Contains(t, (&InvalidLocationError{Location: "Atlantis"}).Error(), "Atlantis")
	assert.Contains(t, (&DateNotFoundError{Location: "France", Date: "1/1/20"}).Error(), "1/1/20")
	assert.NotEmpty(t, (&NotLoadedError{}).Error())
}
