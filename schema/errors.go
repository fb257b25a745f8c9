package schema

import "fmt"

// FetchError indicates a non-2xx HTTP response from an upstream feed or the
// commit-metadata endpoint. It is never retried automatically.
type FetchError struct {
	Status     int
	StatusText string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed with status %d %s", e.Status, e.StatusText)
}

// DataAnomalyError indicates an upstream response that parsed successfully but
// is structurally empty or violates a basic invariant. It is fatal for the
// initialization attempt that observed it.
type DataAnomalyError struct {
	Detail string
}

func (e *DataAnomalyError) Error() string {
	return "upstream data anomaly: " + e.Detail
}

// InvalidLocationError indicates a requested location that is not present in
// the materialized dataset.
type InvalidLocationError struct {
	Location string
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("no data for location %q", e.Location)
}

// DateNotFoundError indicates a requested (location, date) pair with no
// matching date in the location's series.
type DateNotFoundError struct {
	Location string
	Date     string
}

func (e *DateNotFoundError) Error() string {
	return fmt.Sprintf("no data for location %q on date %q", e.Location, e.Date)
}

// NotLoadedError indicates a store accessor called before initialization
// completed. This is a programming error in the consumer.
type NotLoadedError struct{}

func (e *NotLoadedError) Error() string {
	return "store is not loaded; call LoadStore first"
}
