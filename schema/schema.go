// Package schema has configs, models and shared types for all parts of covidstore.
package schema

import "time"

// DateFormat is the layout of the upstream feed's date columns (M/D/YY).
const DateFormat = "1/2/06"

// ParseDate parses an upstream date key such as "1/22/20".
func ParseDate(key string) (time.Time, error) {
	return time.Parse(DateFormat, key)
}

// ValuesOnDate is one upstream data point for one location on one date.
// Confirmed is always reported; deaths and recoveries may be absent upstream,
// in which case the pointer is nil.
type ValuesOnDate struct {
	Date      string `json:"date"`
	Confirmed int    `json:"confirmed"`
	Deaths    *int   `json:"deaths"`
	Recovered *int   `json:"recovered"`
}

// LocationKey is the composite identity of a location, exactly as given
// upstream. Two keys are equal iff all three components match.
type LocationKey struct {
	CountryOrRegion string
	ProvinceOrState string
	County          string
}

// Name returns the human-readable nested location name:
// "Country", "Country (Province)" or "Country (County, Province)".
func (k LocationKey) Name() string {
	switch {
	case k.County != "":
		return k.CountryOrRegion + " (" + k.County + ", " + k.ProvinceOrState + ")"
	case k.ProvinceOrState != "":
		return k.CountryOrRegion + " (" + k.ProvinceOrState + ")"
	default:
		return k.CountryOrRegion
	}
}

// LocationSeries is the full daily series for one location. Values is ordered
// ascending by date and shares the same reporting calendar as every other
// location in the dataset.
type LocationSeries struct {
	Location        string         `json:"location"`
	CountryOrRegion string         `json:"countryOrRegion"`
	ProvinceOrState string         `json:"provinceOrState,omitempty"`
	County          string         `json:"county,omitempty"`
	Latitude        string         `json:"latitude"`
	Longitude       string         `json:"longitude"`
	Values          []ValuesOnDate `json:"values"`
}

// Clone returns a deep copy of the series. Pointer-valued fields in Values are
// re-allocated so the copy can be mutated without aliasing the original.
func (s *LocationSeries) Clone() *LocationSeries {
	out := *s
	out.Values = make([]ValuesOnDate, len(s.Values))
	for i, v := range s.Values {
		c := v
		if v.Deaths != nil {
			d := *v.Deaths
			c.Deaths = &d
		}
		if v.Recovered != nil {
			r := *v.Recovered
			c.Recovered = &r
		}
		out.Values[i] = c
	}
	return &out
}

// DataByLocation maps a location name to its raw series. It is built once per
// cache epoch and never mutated after the post-processing passes.
type DataByLocation map[string]*LocationSeries
