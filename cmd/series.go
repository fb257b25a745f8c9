package cmd

import (
	"fmt"
	"time"

	"github.com/covidboard/covidstore/core"
	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/internal/outwriter"
	"github.com/covidboard/covidstore/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// seriesCmd shows daily series for one or more locations.
var seriesCmd = &cobra.Command{
	Use:   "series [location...]",
	Short: "Show daily numbers for one or more locations.",
	Long: `Show the daily series for the given locations, including
day-over-day deltas, mortality rate and recovery rate.

With no locations, every location is selected (useful with --output json
or csv). With --date, exactly one location must be given and only that
day's record is shown.

Examples:
  # Last 50 days for Italy
  covidstore series Italy

  # One day for one location
  covidstore series "Canada (Ontario)" --date 3/15/20

  # Skip the leading days before an outbreak took hold
  covidstore series Italy --property confirmed --threshold 100

  # Full dataset as JSON
  covidstore series --output json --output-file all.json`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		date := viper.GetString("date")
		property := schema.CumulativeProperty(viper.GetString("property"))
		threshold := viper.GetInt("threshold")

		if _, ok := schema.ValidCumulativeProperties[property]; !ok {
			return fmt.Errorf("invalid property %q. must be confirmed, deaths, or recovered", property)
		}
		if date != "" && len(args) != 1 {
			return fmt.Errorf("--date requires exactly one location")
		}

		start := time.Now()
		store, err := loadStore(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load data store", err)
		}

		ow := outwriter.NewOutWriter()
		if date != "" {
			record, err := store.GetDataByLocationAndDate(args[0], date)
			if err != nil {
				contract.LogFatal("Cannot look up record", err)
			}
			if err := ow.WriteRecord(args[0], record, cfg); err != nil {
				contract.LogFatal("Cannot write record", err)
			}
			return nil
		}

		series, err := store.GetDataByLocations(args)
		if err != nil {
			contract.LogFatal("Cannot look up series", err)
		}
		if threshold > 0 {
			for i, s := range series {
				series[i] = core.StripDataBeforePropertyExceedsN(s, property, threshold)
			}
		}
		if err := ow.WriteSeries(series, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write series", err)
		}
		return nil
	},
}
