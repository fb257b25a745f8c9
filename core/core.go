// Package core has core logic for building, caching and querying the
// time-series data store.
package core

import (
	"time"

	"github.com/covidboard/covidstore/schema"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Store is an immutable snapshot of the fully processed dataset. A zero-value
// Store rejects every accessor with NotLoadedError; use LoadStore to obtain a
// usable one.
type Store struct {
	loaded      bool
	data        schema.DataByLocation
	locations   []string
	lastUpdated time.Time
	firstDate   time.Time
	lastDate    time.Time
	precision   int
}

// newStore indexes the processed dataset and returns a queryable store.
func newStore(data schema.DataByLocation, lastUpdated time.Time, precision int) *Store {
	locations := make([]string, 0, len(data))
	for name := range data {
		locations = append(locations, name)
	}
	collate.New(language.English).SortStrings(locations)

	s := &Store{
		loaded:      true,
		data:        data,
		locations:   locations,
		lastUpdated: lastUpdated,
		precision:   precision,
	}

	// Every location shares the same reporting calendar, so any series
	// yields the date range.
	for _, series := range data {
		if len(series.Values) == 0 {
			continue
		}
		if first, err := schema.ParseDate(series.Values[0].Date); err == nil {
			s.firstDate = first
		}
		if last, err := schema.ParseDate(series.Values[len(series.Values)-1].Date); err == nil {
			s.lastDate = last
		}
		break
	}
	return s
}

// Locations returns every known location name in locale-aware sorted order.
func (s *Store) Locations() ([]string, error) {
	if !s.loaded {
		return nil, &schema.NotLoadedError{}
	}
	out := make([]string, len(s.locations))
	copy(out, s.locations)
	return out, nil
}

// LastUpdated returns the upstream publication time of the dataset.
func (s *Store) LastUpdated() (time.Time, error) {
	if !s.loaded {
		return time.Time{}, &schema.NotLoadedError{}
	}
	return s.lastUpdated, nil
}

// FirstDate returns the earliest date in the shared reporting calendar.
func (s *Store) FirstDate() (time.Time, error) {
	if !s.loaded {
		return time.Time{}, &schema.NotLoadedError{}
	}
	return s.firstDate, nil
}

// LastDate returns the latest date in the shared reporting calendar.
func (s *Store) LastDate() (time.Time, error) {
	if !s.loaded {
		return time.Time{}, &schema.NotLoadedError{}
	}
	return s.lastDate, nil
}

// GetDataByLocation returns the derived series for one location.
func (s *Store) GetDataByLocation(location string) (*schema.LocationSeriesWithMetrics, error) {
	if !s.loaded {
		return nil, &schema.NotLoadedError{}
	}
	series, ok := s.data[location]
	if !ok {
		return nil, &schema.InvalidLocationError{Location: location}
	}
	return deriveSeries(series, s.precision), nil
}

// GetDataByLocations returns derived series for the given locations. An empty
// or nil slice selects every known location. Any unknown location fails the
// whole call.
func (s *Store) GetDataByLocations(locations []string) ([]*schema.LocationSeriesWithMetrics, error) {
	if !s.loaded {
		return nil, &schema.NotLoadedError{}
	}
	if len(locations) == 0 {
		locations = s.locations
	}
	out := make([]*schema.LocationSeriesWithMetrics, 0, len(locations))
	for _, location := range locations {
		series, err := s.GetDataByLocation(location)
		if err != nil {
			return nil, err
		}
		out = append(out, series)
	}
	return out, nil
}

// GetDataByLocationAndDate returns the derived record for one location on one
// date. The date accepts any M/D/YY spelling that parses to the same day as a
// stored date key.
func (s *Store) GetDataByLocationAndDate(location, date string) (schema.ValuesOnDateWithMetrics, error) {
	series, err := s.GetDataByLocation(location)
	if err != nil {
		return schema.ValuesOnDateWithMetrics{}, err
	}
	want, err := schema.ParseDate(date)
	if err != nil {
		return schema.ValuesOnDateWithMetrics{}, &schema.DateNotFoundError{Location: location, Date: date}
	}
	key := want.Format(schema.DateFormat)
	for _, v := range series.Values {
		if v.Date == key {
			return v, nil
		}
	}
	return schema.ValuesOnDateWithMetrics{}, &schema.DateNotFoundError{Location: location, Date: date}
}
