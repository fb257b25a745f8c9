package schema

// ValuesOnDateWithMetrics extends ValuesOnDate with day-over-day deltas and
// rates. Delta fields are nil on day zero (no prior day to diff against) while
// rate fields default to zero on day zero; this asymmetry matches the upstream
// consumers, which special-case "n/a" display only for nil fields.
type ValuesOnDateWithMetrics struct {
	ValuesOnDate
	NewConfirmed  int      `json:"newConfirmed"`
	NewDeaths     *int     `json:"newDeaths"`
	NewRecovered  *int     `json:"newRecovered"`
	MortalityRate *float64 `json:"mortalityRate"`
	RecoveryRate  *float64 `json:"recoveryRate"`
}

// LocationSeriesWithMetrics is the derived view of a LocationSeries, computed
// on demand from the stored raw values.
type LocationSeriesWithMetrics struct {
	Location        string                    `json:"location"`
	CountryOrRegion string                    `json:"countryOrRegion"`
	ProvinceOrState string                    `json:"provinceOrState,omitempty"`
	County          string                    `json:"county,omitempty"`
	Latitude        string                    `json:"latitude"`
	Longitude       string                    `json:"longitude"`
	Values          []ValuesOnDateWithMetrics `json:"values"`
}

// CumulativeProperty names a running-total metric in a daily record.
type CumulativeProperty string

// Cumulative properties supported by series filtering.
const (
	ConfirmedProperty CumulativeProperty = "confirmed"
	DeathsProperty    CumulativeProperty = "deaths"
	RecoveredProperty CumulativeProperty = "recovered"
)

// ValidCumulativeProperties lists all valid cumulative properties.
var ValidCumulativeProperties = map[CumulativeProperty]struct{}{
	ConfirmedProperty: {},
	DeathsProperty:    {},
	RecoveredProperty: {},
}
