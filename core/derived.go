package core

import (
	"math"

	"github.com/covidboard/covidstore/schema"
)

// deriveSeries computes day-over-day deltas and rates for one raw series.
// Deltas need a prior day, so they are nil on day zero except for
// NewConfirmed, which is always reported and defaults to zero. A delta is
// also nil whenever either day's counter is absent upstream. Rates are zero
// on day zero and nil on later days only while the confirmed count is still
// zero; an absent counter counts as zero in a rate.
func deriveSeries(s *schema.LocationSeries, precision int) *schema.LocationSeriesWithMetrics {
	out := &schema.LocationSeriesWithMetrics{
		Location:        s.Location,
		CountryOrRegion: s.CountryOrRegion,
		ProvinceOrState: s.ProvinceOrState,
		County:          s.County,
		Latitude:        s.Latitude,
		Longitude:       s.Longitude,
		Values:          make([]schema.ValuesOnDateWithMetrics, len(s.Values)),
	}

	for i, v := range s.Values {
		m := schema.ValuesOnDateWithMetrics{ValuesOnDate: v}

		if i == 0 {
			m.MortalityRate = schema.Float64Ptr(0)
			m.RecoveryRate = schema.Float64Ptr(0)
			out.Values[i] = m
			continue
		}

		prev := s.Values[i-1]
		m.NewConfirmed = v.Confirmed - prev.Confirmed
		m.NewDeaths = diffCount(v.Deaths, prev.Deaths)
		m.NewRecovered = diffCount(v.Recovered, prev.Recovered)

		if v.Confirmed > 0 {
			m.MortalityRate = rate(v.Deaths, v.Confirmed, precision)
			m.RecoveryRate = rate(v.Recovered, v.Confirmed, precision)
		}

		out.Values[i] = m
	}
	return out
}

// diffCount returns the day-over-day delta of an optional counter, or nil if
// either day lacks it.
func diffCount(cur, prev *int) *int {
	if cur == nil || prev == nil {
		return nil
	}
	return schema.IntPtr(*cur - *prev)
}

// rate divides an optional counter by the confirmed count, rounding to the
// configured precision. A nil counter reads as zero.
func rate(count *int, confirmed, precision int) *float64 {
	n := 0
	if count != nil {
		n = *count
	}
	pow := math.Pow(10, float64(precision))
	return schema.Float64Ptr(math.Round(float64(n)/float64(confirmed)*pow) / pow)
}

// StripDataBeforePropertyExceedsN returns a copy of the series with the
// leading days removed while the given cumulative property is at or below n.
// An absent counter reads as zero. Deltas and rates are untouched, so the
// first surviving day keeps the metrics it had in the full series.
func StripDataBeforePropertyExceedsN(series *schema.LocationSeriesWithMetrics, property schema.CumulativeProperty, n int) *schema.LocationSeriesWithMetrics {
	start := len(series.Values)
	for i, v := range series.Values {
		if propertyValue(v, property) > n {
			start = i
			break
		}
	}

	out := *series
	out.Values = make([]schema.ValuesOnDateWithMetrics, len(series.Values)-start)
	copy(out.Values, series.Values[start:])
	return &out
}

// propertyValue reads one cumulative counter from a daily record, with nil
// reading as zero.
func propertyValue(v schema.ValuesOnDateWithMetrics, property schema.CumulativeProperty) int {
	switch property {
	case schema.DeathsProperty:
		if v.Deaths == nil {
			return 0
		}
		return *v.Deaths
	case schema.RecoveredProperty:
		if v.Recovered == nil {
			return 0
		}
		return *v.Recovered
	default:
		return v.Confirmed
	}
}
