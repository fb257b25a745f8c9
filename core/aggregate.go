package core

import (
	"strings"

	"github.com/covidboard/covidstore/schema"
)

// federatedCountries are countries that upstream reports only as per-province
// rows. A synthetic country-total entry is added for each, positioned at the
// country centroid.
var federatedCountries = []struct {
	name      string
	latitude  string
	longitude string
}{
	{"Canada", "56.1304", "-106.3468"},
	{"Australia", "-25.2744", "133.7751"},
	{"China", "35.8617", "104.1954"},
}

// aggregateCountryTotals adds a country-level entry for each federated
// country by summing its province series. A pre-existing country-level entry
// is left untouched, so the pass is idempotent.
func aggregateCountryTotals(data schema.DataByLocation) {
	for _, country := range federatedCountries {
		if _, ok := data[country.name]; ok {
			continue
		}

		var total *schema.LocationSeries
		prefix := country.name + " ("
		for name, series := range data {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			if total == nil {
				total = series.Clone()
				continue
			}
			addSeries(total, series)
		}
		if total == nil {
			continue
		}

		total.Location = country.name
		total.ProvinceOrState = ""
		total.County = ""
		total.Latitude = country.latitude
		total.Longitude = country.longitude
		data[country.name] = total
	}
}

// addSeries accumulates src into dst positionally. A nil counter contributes
// zero; the sum stays nil only while every contribution has been nil.
func addSeries(dst, src *schema.LocationSeries) {
	for i := range dst.Values {
		if i >= len(src.Values) {
			break
		}
		d := &dst.Values[i]
		s := src.Values[i]
		d.Confirmed += s.Confirmed
		d.Deaths = addCount(d.Deaths, s.Deaths)
		d.Recovered = addCount(d.Recovered, s.Recovered)
	}
}

// addCount sums two optional counters, treating nil as zero unless both sides
// are nil.
func addCount(a, b *int) *int {
	if a == nil && b == nil {
		return nil
	}
	sum := 0
	if a != nil {
		sum += *a
	}
	if b != nil {
		sum += *b
	}
	return schema.IntPtr(sum)
}
