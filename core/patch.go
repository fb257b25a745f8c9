package core

import (
	"github.com/covidboard/covidstore/internal/csvparse"
	"github.com/covidboard/covidstore/schema"
)

// patchCanadaRecovered fills the recovered counters of the aggregated Canada
// entry from the country-level Canada row of the global recovered feed. The
// confirmed feeds split Canada by province while the recovered feed reports
// it whole, so the counts cannot be correlated per province. Dates absent
// from the recovered row stay nil.
func patchCanadaRecovered(data schema.DataByLocation, recovered *csvparse.Table) {
	canada, ok := data["Canada"]
	if !ok || recovered == nil {
		return
	}

	var row *csvparse.Row
	for i := range recovered.Rows {
		r := &recovered.Rows[i]
		if r.CountryOrRegion == "Canada" && r.ProvinceOrState == "" {
			row = r
			break
		}
	}
	if row == nil {
		return
	}

	countsByDate := make(map[string]int, len(row.Counts))
	for i, date := range recovered.Dates {
		if i >= len(row.Counts) {
			break
		}
		countsByDate[date] = row.Counts[i]
	}

	for i := range canada.Values {
		v := &canada.Values[i]
		if count, ok := countsByDate[v.Date]; ok {
			v.Recovered = schema.IntPtr(count)
		} else {
			v.Recovered = nil
		}
	}
}
